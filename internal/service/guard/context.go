// Package guard holds the wrappers every elex subcommand runs behind: one
// resolves the election date or data file input, the other turns AP API and
// credential failures into log lines and a non-zero exit.
package guard

import (
	"context"
	"time"
)

const ExitFailure = 1

type Logger interface {
	Error(msg string)
	Debug(msg string)
}

// Context is the per-invocation state shared by a handler and its wrappers.
type Context struct {
	Program  string
	Command  string
	DataFile string
	DateArgs []string

	// ElectionDate is set by RequireDate when no data file is given.
	ElectionDate time.Time

	Logger Logger
	// Exit terminates the process. Wrappers return right after calling it.
	Exit func(code int)
}

type Handler func(ctx context.Context, cc *Context) error
