package guard

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/elex/pkg/dates"
)

// RequireDate lets fn run only when a data file or a parseable election date
// was supplied. A date, when used, is stored on Context.ElectionDate first.
func RequireDate(fn Handler) Handler {
	return func(ctx context.Context, cc *Context) error {
		if cc.DataFile != "" {
			return fn(ctx, cc)
		}

		if len(cc.DateArgs) > 0 && cc.DateArgs[0] != "" {
			raw := cc.DateArgs[0]
			date, err := dates.Parse(raw)
			if err != nil {
				cc.Logger.Error(fmt.Sprintf("%s could not be recognized as a date.", raw))
				cc.Exit(ExitFailure)
				return nil
			}
			cc.ElectionDate = date
			return fn(ctx, cc)
		}

		name := strings.ReplaceAll(cc.Command, "_", "-")
		cc.Logger.Error(fmt.Sprintf(
			"No election date (e.g. `%[1]s %[2]s 2015-11-03`) or data file (e.g. `%[1]s %[2]s --data-file path/to/file.json`) specified.",
			cc.Program, name,
		))
		cc.Exit(ExitFailure)
		return nil
	}
}
