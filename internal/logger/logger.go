// Package logger re-exports the shared goLogger module so internal packages
// depend on a single import path.
package logger

import (
	"context"

	pkglogger "github.com/Bparsons0904/goLogger"
)

type (
	Logger = pkglogger.Logger
	Config = pkglogger.Config
	Format = pkglogger.Format
)

const (
	DefaultTraceIDKey = pkglogger.DefaultTraceIDKey
	FormatJSON        = pkglogger.FormatJSON
	FormatText        = pkglogger.FormatText
)

var (
	New                    = pkglogger.New
	NewWithConfig          = pkglogger.NewWithConfig
	ContextWithTraceID     = pkglogger.ContextWithTraceID
	ContextWithTraceIDName = pkglogger.ContextWithTraceIDName
	TraceIDFromContext     = pkglogger.TraceIDFromContext
	TraceIDFromContextName = pkglogger.TraceIDFromContextName
)

// NewWithContext creates a package logger carrying the trace ID from ctx, if any.
func NewWithContext(ctx context.Context, name string) Logger {
	return pkglogger.New(name).TraceFromContext(ctx)
}
