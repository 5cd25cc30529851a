package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// NewContextWithLogger installs a console logger on stderr and returns the
// context carrying it plus a flush function that drains the diode buffer.
func NewContextWithLogger(ctx context.Context, debug bool) (context.Context, func()) {
	return newContextWithLogger(ctx, os.Stderr, debug, !isatty.IsTerminal(os.Stderr.Fd()))
}

func newContextWithLogger(ctx context.Context, out io.Writer, debug, noColor bool) (context.Context, func()) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Ring buffer of 1000 entries, polled every 5ms. writerOnly keeps
	// Close from closing the process's stderr.
	wr := diode.NewWriter(writerOnly{out}, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "Logger Dropped %d messages\n", missed)
	})

	output := zerolog.ConsoleWriter{
		Out:        wr,
		NoColor:    noColor,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	log.Logger = logger

	var once sync.Once
	return log.With().Logger().WithContext(ctx), func() {
		once.Do(func() { wr.Close() })
	}
}

type writerOnly struct {
	io.Writer
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
