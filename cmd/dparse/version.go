// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/cadets/dparse/vc"
)

func newVersionCmd(out io.Writer) *ffcli.Command {
	return &ffcli.Command{
		Name:       "version",
		ShortUsage: "dparse version",
		ShortHelp:  "Print build information",
		Exec: func(context.Context, []string) error {
			_, err := fmt.Fprintf(out, "dparse %s (revision %s, build timestamp %s)\n",
				vc.Version(), vc.Revision(), vc.BuildTimestamp())
			return err
		},
	}
}
