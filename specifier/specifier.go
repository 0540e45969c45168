// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package specifier parses DTrace-style probe specifiers of the form
// provider:module:function:action and renders them back to their canonical
// text.
//
// Every component may be left empty, in which case it is absent. The parser
// does not interpret the wildcard character '*'; it is an ordinary name
// character at this layer.
package specifier // import "github.com/cadets/dparse/specifier"

import (
	"strings"
)

// Component is one name slot of a ProbeSpecifier. The zero value is an
// absent component. A present component never holds the empty string.
type Component struct {
	name    string
	present bool
}

func newComponent(name string) Component {
	if name == "" {
		return Component{}
	}
	return Component{name: name, present: true}
}

// Name returns the component's name and whether the component is present.
func (c Component) Name() (string, bool) {
	return c.name, c.present
}

// IsPresent reports whether the component was non-empty in the parsed input.
func (c Component) IsPresent() bool {
	return c.present
}

// String returns the name, or "" for an absent component.
func (c Component) String() string {
	return c.name
}

// ProbeSpecifier names one or more tracing probes by provider, module,
// function and action. Values are only produced by Parse and are immutable.
// Two specifiers are equal, component by component, if they compare equal
// with ==.
type ProbeSpecifier struct {
	provider Component
	module   Component
	function Component
	action   Component
}

// Provider returns the first component.
func (s ProbeSpecifier) Provider() Component { return s.provider }

// Module returns the second component.
func (s ProbeSpecifier) Module() Component { return s.module }

// Function returns the third component.
func (s ProbeSpecifier) Function() Component { return s.function }

// Action returns the fourth component.
func (s ProbeSpecifier) Action() Component { return s.action }

// Components returns provider, module, function and action in that order.
func (s ProbeSpecifier) Components() [numComponents]Component {
	return [numComponents]Component{s.provider, s.module, s.function, s.action}
}

// String renders the canonical form of the specifier: the four components
// joined by ':', with absent components left empty. The result always holds
// exactly three separators.
func (s ProbeSpecifier) String() string {
	var sb strings.Builder
	sb.Grow(len(s.provider.name) + len(s.module.name) + len(s.function.name) +
		len(s.action.name) + numComponents - 1)
	for i, c := range s.Components() {
		if i > 0 {
			sb.WriteByte(separator)
		}
		sb.WriteString(c.name)
	}
	return sb.String()
}
