package uidraw

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	c := uidraw.NewContext(r, style, uidraw.WithLogger(slog.Default()))
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	logger *slog.Logger
	bugs   BugReporter
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		logger: nil, // Falls back to the package logger at report time
		bugs:   nil, // Will be set to a logReporter if nil
	}
}

// WithLogger sets the logger the Context reports bugs to, overriding the
// package logger set with SetLogger. It has no effect when a custom
// BugReporter is also supplied.
func WithLogger(l *slog.Logger) Option {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// WithBugReporter routes bug diagnostics to r instead of the logger.
// Toolkits use this to feed their own diagnostics layer.
func WithBugReporter(r BugReporter) Option {
	return func(o *contextOptions) {
		o.bugs = r
	}
}
