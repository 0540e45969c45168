// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/peterbourgon/ff/v3"

	"github.com/cadets/dparse/internal/log"
)

const (
	defaultArgCacheSize = 1024
	envVarPrefix        = "DPARSE"
)

// Help strings for command line arguments
var (
	wholeFileHelp = "Treat each script as a single probe specifier instead of " +
		"one specifier per line."
	cacheSizeHelp = "Number of parsed specifiers to remember in line mode. " +
		"0 disables the cache."
	verboseHelp = "Enable verbose logging and debugging capabilities."
	configHelp  = "Path to a plain 'flag value' configuration file."
)

var errNoScripts = errors.New("no script(s) specified")

type arguments struct {
	wholeFile   bool
	cacheSize   int
	verboseMode bool
	configFile  string
}

func newBatchFlagSet(name string, args *arguments) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.BoolVar(&args.wholeFile, "whole-file", false, wholeFileHelp)
	fs.IntVar(&args.cacheSize, "cache-size", defaultArgCacheSize, cacheSizeHelp)
	fs.BoolVar(&args.verboseMode, "v", false, verboseHelp)
	fs.BoolVar(&args.verboseMode, "verbose", false, verboseHelp)
	fs.StringVar(&args.configFile, "config", "", configHelp)

	return fs
}

// ffOptions lets every flag of a batch command also come from the
// environment (DPARSE_WHOLE_FILE, ...) or the -config file.
func ffOptions() []ff.Option {
	return []ff.Option{
		ff.WithEnvVarPrefix(envVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	}
}

func (args *arguments) SanityCheck(scripts []string) error {
	if len(scripts) == 0 {
		return errNoScripts
	}
	if args.cacheSize < 0 || int64(args.cacheSize) > math.MaxUint32 {
		return fmt.Errorf("invalid cache size %d (max: %d)", args.cacheSize, uint32(math.MaxUint32))
	}
	return nil
}

func (args *arguments) dump() {
	log.Debugf("Config:")
	log.Debugf("whole-file: %t", args.wholeFile)
	log.Debugf("cache-size: %d", args.cacheSize)
	log.Debugf("config: %q", args.configFile)
}
