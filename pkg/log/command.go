package log

import (
	"context"

	"github.com/rs/zerolog"
)

// CommandLogger adapts zerolog to the plain Error/Debug sink used by command guards.
type CommandLogger struct {
	logger *zerolog.Logger
}

func (c *CommandLogger) Error(msg string) {
	c.logger.Error().Msg(msg)
}

func (c *CommandLogger) Debug(msg string) {
	c.logger.Debug().Msg(msg)
}

func NewCommandLoggerFromCtx(ctx context.Context) *CommandLogger {
	return &CommandLogger{
		logger: FromCtx(ctx),
	}
}
