// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package specifier // import "github.com/cadets/dparse/specifier"

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a probe specifier could not be produced.
type ErrorKind int

const (
	// KindIncomplete means the input ended before the grammar could decide.
	KindIncomplete ErrorKind = iota + 1
	// KindMalformed means the input holds a byte that can never satisfy the
	// grammar at its position.
	KindMalformed
	// KindSourceUnavailable means the text to parse could not be obtained.
	// Parse never returns it; readers of script files do.
	KindSourceUnavailable
)

var (
	ErrIncomplete        = errors.New("incomplete probe specifier")
	ErrMalformed         = errors.New("malformed probe specifier")
	ErrSourceUnavailable = errors.New("probe specifier source unavailable")
)

func (k ErrorKind) String() string {
	switch k {
	case KindIncomplete:
		return "incomplete"
	case KindMalformed:
		return "malformed"
	case KindSourceUnavailable:
		return "source unavailable"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindIncomplete:
		return ErrIncomplete
	case KindMalformed:
		return ErrMalformed
	case KindSourceUnavailable:
		return ErrSourceUnavailable
	}
	return nil
}

// Error describes a failure to obtain or parse a probe specifier. Which
// fields are meaningful depends on Kind.
type Error struct {
	Kind ErrorKind

	// Needed is the minimum number of bytes that would have to be appended
	// to complete the input (KindIncomplete).
	Needed int

	// Offset is the byte offset of Found in the input (KindMalformed).
	Offset int
	// Found is the offending byte (KindMalformed).
	Found byte
	// Expected names what the grammar accepts at Offset (KindMalformed).
	Expected string

	// Path identifies the source that could not be read
	// (KindSourceUnavailable).
	Path string
	// Err is the underlying failure (KindSourceUnavailable).
	Err error
}

// SourceError wraps err as a KindSourceUnavailable error for path.
func SourceError(path string, err error) *Error {
	return &Error{Kind: KindSourceUnavailable, Path: path, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIncomplete:
		return fmt.Sprintf("%v: need at least %d more byte(s)", ErrIncomplete, e.Needed)
	case KindMalformed:
		return fmt.Sprintf("%v: unexpected %q at offset %d, expected %s",
			ErrMalformed, e.Found, e.Offset, e.Expected)
	case KindSourceUnavailable:
		if e.Path == "" {
			return fmt.Sprintf("%v: %v", ErrSourceUnavailable, e.Err)
		}
		return fmt.Sprintf("%v: %s: %v", ErrSourceUnavailable, e.Path, e.Err)
	default:
		return fmt.Sprintf("probe specifier error (%v)", e.Kind)
	}
}

// Is makes errors.Is(err, ErrMalformed) and friends match by kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

func (e *Error) Unwrap() error {
	return e.Err
}
