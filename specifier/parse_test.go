// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package specifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func present(name string) Component {
	return Component{name: name, present: true}
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected ProbeSpecifier
	}{
		"empty_name": {
			input: ":::",
		},
		"full_name": {
			input: "foo:bar:baz:wibble",
			expected: ProbeSpecifier{
				provider: present("foo"),
				module:   present("bar"),
				function: present("baz"),
				action:   present("wibble"),
			},
		},
		"provider_only": {
			input:    "foo:::",
			expected: ProbeSpecifier{provider: present("foo")},
		},
		"wildcards": {
			input: "perl*:::*-entry",
			expected: ProbeSpecifier{
				provider: present("perl*"),
				action:   present("*-entry"),
			},
		},
		"function_only": {
			input:    "::arc_adjust:",
			expected: ProbeSpecifier{function: present("arc_adjust")},
		},
		"action_without_trailing_colon": {
			input:    ":::entry",
			expected: ProbeSpecifier{action: present("entry")},
		},
		"digits_and_underscores": {
			input: "syscall:freebsd:__sys_read_0:return",
			expected: ProbeSpecifier{
				provider: present("syscall"),
				module:   present("freebsd"),
				function: present("__sys_read_0"),
				action:   present("return"),
			},
		},
		"all_wildcards": {
			input: "*:*:*:*",
			expected: ProbeSpecifier{
				provider: present("*"),
				module:   present("*"),
				function: present("*"),
				action:   present("*"),
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		input    string
		kind     ErrorKind
		needed   int
		offset   int
		found    byte
		sentinel error
	}{
		"empty_string": {
			input:    "",
			kind:     KindIncomplete,
			needed:   3,
			sentinel: ErrIncomplete,
		},
		"no_separator": {
			input:    "foo",
			kind:     KindIncomplete,
			needed:   3,
			sentinel: ErrIncomplete,
		},
		"one_separator": {
			input:    "foo:bar",
			kind:     KindIncomplete,
			needed:   2,
			sentinel: ErrIncomplete,
		},
		"two_separators": {
			input:    "foo:bar:baz",
			kind:     KindIncomplete,
			needed:   1,
			sentinel: ErrIncomplete,
		},
		"space_in_provider": {
			input:    "foo bar:::",
			kind:     KindMalformed,
			offset:   3,
			found:    ' ',
			sentinel: ErrMalformed,
		},
		"leading_space": {
			input:    " foo:::",
			kind:     KindMalformed,
			offset:   0,
			found:    ' ',
			sentinel: ErrMalformed,
		},
		"space_in_action": {
			input:    "foo:bar:baz:wib ble",
			kind:     KindMalformed,
			offset:   15,
			found:    ' ',
			sentinel: ErrMalformed,
		},
		"trailing_newline": {
			input:    "foo:bar:baz:qux\n",
			kind:     KindMalformed,
			offset:   15,
			found:    '\n',
			sentinel: ErrMalformed,
		},
		"fourth_separator": {
			input:    "a:b:c:d:e",
			kind:     KindMalformed,
			offset:   7,
			found:    ':',
			sentinel: ErrMalformed,
		},
		"four_empty_separators": {
			input:    "::::",
			kind:     KindMalformed,
			offset:   3,
			found:    ':',
			sentinel: ErrMalformed,
		},
		"disallowed_punctuation": {
			input:    "foo:bar.so:baz:",
			kind:     KindMalformed,
			offset:   7,
			found:    '.',
			sentinel: ErrMalformed,
		},
		"non_ascii": {
			input:    "föo:::",
			kind:     KindMalformed,
			offset:   1,
			found:    0xc3,
			sentinel: ErrMalformed,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.Error(t, err)
			assert.Equal(t, ProbeSpecifier{}, got)
			assert.ErrorIs(t, err, tc.sentinel)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.kind, perr.Kind)
			switch tc.kind {
			case KindIncomplete:
				assert.Equal(t, tc.needed, perr.Needed)
			case KindMalformed:
				assert.Equal(t, tc.offset, perr.Offset)
				assert.Equal(t, tc.found, perr.Found)
				assert.NotEmpty(t, perr.Expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	names := []string{"", "foo", "perl*", "*-entry", "a_b-c", "0", "*"}
	for _, p := range names {
		for _, m := range names {
			for _, f := range names {
				for _, a := range names {
					in := p + ":" + m + ":" + f + ":" + a
					s, err := Parse(in)
					require.NoError(t, err, in)
					assert.Equal(t, in, s.String())

					again, err := Parse(s.String())
					require.NoError(t, err, in)
					assert.Equal(t, s, again)
				}
			}
		}
	}
}

func TestComponentsMatchInput(t *testing.T) {
	s := MustParse("fbt::vfs_read:")
	components := s.Components()

	name, ok := components[0].Name()
	assert.True(t, ok)
	assert.Equal(t, "fbt", name)

	name, ok = components[1].Name()
	assert.False(t, ok)
	assert.Empty(t, name)

	assert.Equal(t, "vfs_read", s.Function().String())
	assert.True(t, s.Function().IsPresent())
	assert.False(t, s.Action().IsPresent())
	assert.Equal(t, s.Provider(), components[0])
	assert.Equal(t, s.Module(), components[1])
}

func TestMustParsePanics(t *testing.T) {
	assert.PanicsWithValue(t,
		`specifier: Parse("foo"): incomplete probe specifier: need at least 3 more byte(s)`,
		func() { MustParse("foo") })
}

func TestIsNameChar(t *testing.T) {
	for _, c := range []byte("AZaz09-_*") {
		assert.True(t, IsNameChar(c), "%q", c)
	}
	for _, c := range []byte(": \t\n./$@\x00\xff") {
		assert.False(t, IsNameChar(c), "%q", c)
	}
}
