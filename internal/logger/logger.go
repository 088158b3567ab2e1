// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors used throughout the oxex-horses client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on
// *Logger. Application code should pass *Logger by pointer and obtain
// scoped loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing
// the application to add helper methods without modifying the upstream
// type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given deployment label
// (e.g. "client", "admin") writing JSON to w.
//
// The logger is configured with:
//   - a "deployment" field set to deployment, for filtering logs from the
//     two console binaries;
//   - a "ts" timestamp field on every entry;
//   - a "func" caller field recording the fully-qualified function name.
func New(deployment string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("deployment", deployment).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// Intended for tests and other contexts where logging would be noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with extra context fields without
// affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// log.Ctx helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
