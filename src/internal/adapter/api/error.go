package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a transport failure: the request never completed or the server
// answered with a non-2xx status.
type Error struct {
	Method     string
	URL        string
	StatusCode int
	// Message is the server supplied message when the body carried one,
	// otherwise a generic description of the failure.
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail extracts the text a screen should show for err.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func statusFailureMessage(url string, status int) string {
	return fmt.Sprintf("Http failure response for %s: %d %s", url, status, http.StatusText(status))
}
