// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/cadets/dparse/internal/log"
	"github.com/cadets/dparse/internal/source"
	"github.com/cadets/dparse/specifier"
)

// inputError reports the script (and line, in line mode) that stopped a batch.
type inputError struct {
	Path string
	Line int
	Err  error
}

func (e *inputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Error parsing '%s' (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("Error parsing '%s': %v", e.Path, e.Err)
}

func (e *inputError) Unwrap() error {
	return e.Err
}

type parseFunc func(string) (specifier.ProbeSpecifier, error)

// batchCmd processes scripts in order and stops at the first error.
type batchCmd struct {
	args arguments

	// out receives canonical specifiers; nil means validate only.
	out io.Writer
}

func newParseCmd(out io.Writer) *ffcli.Command {
	cmd := &batchCmd{out: out}
	return &ffcli.Command{
		Name:       "parse",
		ShortUsage: "dparse parse [flags] SCRIPT...",
		ShortHelp:  "Print the probe specifiers of each script in canonical form",
		FlagSet:    newBatchFlagSet("parse", &cmd.args),
		Options:    ffOptions(),
		Exec:       cmd.exec,
	}
}

func newCheckCmd() *ffcli.Command {
	cmd := &batchCmd{}
	return &ffcli.Command{
		Name:       "check",
		ShortUsage: "dparse check [flags] SCRIPT...",
		ShortHelp:  "Validate the probe specifiers of each script",
		FlagSet:    newBatchFlagSet("check", &cmd.args),
		Options:    ffOptions(),
		Exec:       cmd.exec,
	}
}

func (cmd *batchCmd) exec(ctx context.Context, scripts []string) error {
	if err := cmd.args.SanityCheck(scripts); err != nil {
		return err
	}
	if cmd.args.verboseMode {
		log.SetLevel(log.DebugLevel)
		cmd.args.dump()
	}

	parse := parseFunc(specifier.Parse)
	if !cmd.args.wholeFile && cmd.args.cacheSize > 0 {
		cache, err := specifier.NewCache(uint32(cmd.args.cacheSize))
		if err != nil {
			return err
		}
		defer func() {
			stats := cache.GetAndResetStatistics()
			log.Debugf("Parse cache: %d hits, %d misses, %d added, %d evicted",
				stats.Hit, stats.Miss, stats.Added, stats.Evicted)
		}()
		parse = cache.Parse
	}

	for _, path := range scripts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cmd.script(path, parse); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *batchCmd) script(path string, parse parseFunc) error {
	script, err := source.Open(path)
	if err != nil {
		return &inputError{Path: path, Err: err}
	}

	var n int
	if cmd.args.wholeFile {
		spec, err := parse(script.Whole())
		if err != nil {
			return &inputError{Path: path, Err: err}
		}
		if err := cmd.emit(spec); err != nil {
			return err
		}
		n = 1
	} else {
		for _, line := range script.Lines() {
			spec, err := parse(line.Text)
			if err != nil {
				return &inputError{Path: path, Line: line.Number, Err: err}
			}
			if err := cmd.emit(spec); err != nil {
				return err
			}
			n++
		}
	}

	labels := log.Labels{"file": path, "specifiers": n}
	if cmd.out == nil {
		log.With(labels).Infof("ok")
	} else {
		log.With(labels).Debugf("Parsed script")
	}
	return nil
}

func (cmd *batchCmd) emit(spec specifier.ProbeSpecifier) error {
	if cmd.out == nil {
		return nil
	}
	_, err := fmt.Fprintln(cmd.out, spec)
	return err
}
