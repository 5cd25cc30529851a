package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/elex/internal/config"
	"github.com/sandevgo/elex/internal/providers/ap"
)

type FaultKind int

const (
	FaultBadRequest FaultKind = iota + 1
	FaultUnauthorized
	FaultHTTP
	FaultMissingCredential
)

func (k FaultKind) String() string {
	switch k {
	case FaultBadRequest:
		return "bad_request"
	case FaultUnauthorized:
		return "unauthorized"
	case FaultHTTP:
		return "http"
	case FaultMissingCredential:
		return "missing_credential"
	default:
		return "unknown"
	}
}

// Fault is a classified handler failure.
type Fault struct {
	Kind    FaultKind
	Status  int
	Reason  string
	URL     string
	Message string
}

// Classify maps err to a Fault. The second result is false for errors that
// are neither AP HTTP errors nor a missing AP_API_KEY.
func Classify(err error) (Fault, bool) {
	var httpErr *ap.HTTPError
	if errors.As(err, &httpErr) {
		f := Fault{
			Status:  httpErr.StatusCode,
			Reason:  httpErr.Reason,
			URL:     httpErr.URL,
			Message: httpErr.Message(),
		}
		switch httpErr.Kind() {
		case ap.KindBadRequest:
			f.Kind = FaultBadRequest
		case ap.KindUnauthorized:
			f.Kind = FaultUnauthorized
		default:
			f.Kind = FaultHTTP
		}
		return f, true
	}

	var missing *config.MissingKeyError
	if errors.As(err, &missing) && missing.Key == config.APIKeyEnv {
		return Fault{
			Kind:    FaultMissingCredential,
			Message: "AP_API_KEY environment variable is not set.",
		}, true
	}

	return Fault{}, false
}

// RequireAPIKey runs fn once and reports AP HTTP and credential failures
// before exiting with status 1. Other errors are returned unchanged.
func RequireAPIKey(fn Handler) Handler {
	return func(ctx context.Context, cc *Context) error {
		err := fn(ctx, cc)
		if err == nil {
			return nil
		}

		f, ok := Classify(err)
		if !ok {
			return err
		}

		switch f.Kind {
		case FaultMissingCredential:
			cc.Logger.Error(f.Message)
		default:
			cc.Logger.Error(fmt.Sprintf("HTTP Error %d - %s.", f.Status, f.Reason))
			cc.Logger.Debug(fmt.Sprintf("HTTP Error %d (%s): %s", f.Status, f.URL, f.Message))
		}
		cc.Exit(ExitFailure)
		return nil
	}
}
