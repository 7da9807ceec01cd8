package uidraw

import (
	"fmt"
	"log/slog"
)

// BugReporter receives the toolkit's bug diagnostics.
//
// ImplBug is called when uidraw itself, or the renderer underneath it,
// misbehaves in a way that should never happen (for example a pattern that
// could not be created). UserBug is called when the caller misuses the API
// (for example drawing with a path that was never ended).
//
// Reports are diagnostic only: drawing always continues afterwards.
type BugReporter interface {
	ImplBug(format string, args ...any)
	UserBug(format string, args ...any)
}

// logReporter is the default BugReporter. It writes to a fixed logger when
// one was supplied via WithLogger, and to the package logger otherwise.
type logReporter struct {
	logger *slog.Logger
}

func (r logReporter) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

func (r logReporter) ImplBug(format string, args ...any) {
	r.log().Error(fmt.Sprintf(format, args...), "bug", "implementation")
}

func (r logReporter) UserBug(format string, args ...any) {
	r.log().Warn(fmt.Sprintf(format, args...), "bug", "user")
}
