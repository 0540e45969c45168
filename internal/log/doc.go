// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package log is a thin wrapper around the logrus library.
All diagnostics of dparse go through the single logger it holds, written to
stderr so that standard output carries nothing but probe specifiers.
*/
package log // import "github.com/cadets/dparse/internal/log"
