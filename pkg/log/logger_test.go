package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandLogger_LevelsAndFlush(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info level hides debug", debug: false, wantDebug: false},
		{name: "debug level shows debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx, flush := newContextWithLogger(context.Background(), &buf, tt.debug, true)

			l := NewCommandLoggerFromCtx(ctx)
			l.Error("HTTP Error 401 - Unauthorized.")
			l.Debug("HTTP Error 401 (https://api.ap.org/v2/elections/2015-11-03)")
			flush()

			out := buf.String()
			assert.Contains(t, out, "HTTP Error 401 - Unauthorized.")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("api.ap.org")))
		})
	}
}
