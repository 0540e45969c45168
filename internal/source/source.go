// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package source reads the D scripts that dparse feeds to the probe
// specifier parser.
package source // import "github.com/cadets/dparse/internal/source"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"

	"github.com/cadets/dparse/specifier"
)

// ErrNotText is wrapped by errors for sources that are not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Script is the text content of one source file.
type Script struct {
	Path    string
	Content string
}

// Line is one specifier candidate of a Script.
type Line struct {
	// Number is 1-based.
	Number int
	Text   string
}

// Open reads the file at path. zstd-compressed files are decompressed
// transparently. All failures are *specifier.Error of kind
// specifier.KindSourceUnavailable.
func Open(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, specifier.SourceError(path, err)
	}
	defer f.Close()

	return Read(path, f)
}

// Read reads a Script from r. name identifies r in errors.
func Read(name string, r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, specifier.SourceError(name, err)
	}

	if bytes.HasPrefix(data, zstdMagic) {
		if data, err = decompress(data); err != nil {
			return nil, specifier.SourceError(name, err)
		}
	}

	if !utf8.Valid(data) {
		return nil, specifier.SourceError(name, ErrNotText)
	}
	return &Script{Path: name, Content: string(data)}, nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return out, nil
}

// Whole returns the content as a single specifier candidate, with one
// trailing line terminator removed.
func (s *Script) Whole() string {
	return trimEOL(s.Content)
}

// Lines returns one entry per line that is neither blank nor a '#' comment.
// Line terminators are removed; no other whitespace is touched.
func (s *Script) Lines() []Line {
	var lines []Line
	rest := s.Content
	for n := 1; rest != ""; n++ {
		var line string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			line, rest = rest, ""
		}
		line = strings.TrimSuffix(line, "\r")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Text: line})
	}
	return lines
}

func trimEOL(s string) string {
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r")
	}
	return s
}
