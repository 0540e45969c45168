// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package specifier // import "github.com/cadets/dparse/specifier"

import "strconv"

const (
	separator     = ':'
	numComponents = 4
)

// nameChars marks the bytes allowed inside a component name.
var nameChars = func() (t [256]bool) {
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	t['-'] = true
	t['_'] = true
	t['*'] = true
	return t
}()

// IsNameChar reports whether c may appear in a component name.
func IsNameChar(c byte) bool {
	return nameChars[c]
}

// Parse parses text as provider:module:function:action. Each component is
// optional, but all three separators are required and the whole of text must
// be consumed. Failures are returned as *Error of kind KindIncomplete or
// KindMalformed.
func Parse(text string) (ProbeSpecifier, error) {
	p := parser{in: text}
	var c [numComponents]Component
	for i := range c {
		if i > 0 {
			if err := p.separator(numComponents - i); err != nil {
				return ProbeSpecifier{}, err
			}
		}
		c[i] = p.component()
	}
	if !p.eof() {
		return ProbeSpecifier{}, p.malformed("name character or end of input")
	}
	return ProbeSpecifier{
		provider: c[0],
		module:   c[1],
		function: c[2],
		action:   c[3],
	}, nil
}

// MustParse is like Parse but panics if text cannot be parsed.
func MustParse(text string) ProbeSpecifier {
	s, err := Parse(text)
	if err != nil {
		panic(`specifier: Parse(` + strconv.Quote(text) + `): ` + err.Error())
	}
	return s
}

type parser struct {
	in  string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.in)
}

// component consumes the longest run of name characters. An empty run yields
// an absent component.
func (p *parser) component() Component {
	start := p.pos
	for !p.eof() && nameChars[p.in[p.pos]] {
		p.pos++
	}
	return newComponent(p.in[start:p.pos])
}

// separator consumes one ':'. missing is the number of separators still
// required, counting this one.
func (p *parser) separator(missing int) error {
	if p.eof() {
		return &Error{Kind: KindIncomplete, Needed: missing}
	}
	if p.in[p.pos] != separator {
		return p.malformed("name character or ':'")
	}
	p.pos++
	return nil
}

func (p *parser) malformed(expected string) *Error {
	return &Error{
		Kind:     KindMalformed,
		Offset:   p.pos,
		Found:    p.in[p.pos],
		Expected: expected,
	}
}
