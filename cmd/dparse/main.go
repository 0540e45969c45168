// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// dparse parses the probe specifiers of D scripts and prints them in
// canonical form.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/sys/unix"

	"github.com/cadets/dparse/internal/log"
)

type exitCode int

const (
	exitSuccess exitCode = 0
	exitFailure exitCode = 1

	// Go 'flag' package calls os.Exit(2) on flag parse errors, if ExitOnError is set
	exitParseError exitCode = 2
)

func main() {
	os.Exit(int(mainWithExitCode()))
}

func mainWithExitCode() exitCode {
	// Cancelled between inputs of a batch.
	ctx, cancel := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer cancel()

	err := newRootCmd(os.Stdout).ParseAndRun(ctx, os.Args[1:])
	return exitCodeFor(err)
}

func newRootCmd(out io.Writer) *ffcli.Command {
	return &ffcli.Command{
		Name:       "dparse",
		ShortUsage: "dparse <subcommand> [flags] SCRIPT...",
		ShortHelp:  "Parse DTrace probe specifiers",
		Subcommands: []*ffcli.Command{
			newParseCmd(out),
			newCheckCmd(),
			newVersionCmd(out),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}
}

func exitCodeFor(err error) exitCode {
	var inErr *inputError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitSuccess
	case errors.As(err, &inErr):
		log.Errorf("%v", err)
		return exitFailure
	case errors.Is(err, context.Canceled):
		log.Warnf("Interrupted, remaining scripts were not processed")
		return exitFailure
	default:
		log.Errorf("%v", err)
		return exitParseError
	}
}
