package ap

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	KindOther Kind = iota
	KindBadRequest
	KindUnauthorized
)

// HTTPError is returned for every non-2xx answer from the AP API.
type HTTPError struct {
	StatusCode int
	Reason     string
	// URL has the apiKey query parameter redacted.
	URL  string
	Body []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error %d - %s", e.StatusCode, e.Reason)
}

func (e *HTTPError) Kind() Kind {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	default:
		return KindOther
	}
}

// BadRequestMessage returns the errorMessage field of a 400 body, or the
// reason phrase when the body does not carry one.
func (e *HTTPError) BadRequestMessage() string {
	var payload struct {
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil || payload.ErrorMessage == "" {
		return e.Reason
	}
	return payload.ErrorMessage
}

// UnauthorizedMessage composes "<faultstring> (<errorcode>)" from a 401 body.
func (e *HTTPError) UnauthorizedMessage() string {
	var payload struct {
		Fault struct {
			FaultString string `json:"faultstring"`
			Detail      struct {
				ErrorCode string `json:"errorcode"`
			} `json:"detail"`
		} `json:"fault"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil || payload.Fault.FaultString == "" {
		return e.Reason
	}
	if payload.Fault.Detail.ErrorCode == "" {
		return payload.Fault.FaultString
	}
	return fmt.Sprintf("%s (%s)", payload.Fault.FaultString, payload.Fault.Detail.ErrorCode)
}

// Message is the human readable detail for the error's kind.
func (e *HTTPError) Message() string {
	switch e.Kind() {
	case KindBadRequest:
		return e.BadRequestMessage()
	case KindUnauthorized:
		return e.UnauthorizedMessage()
	default:
		return e.Reason
	}
}
