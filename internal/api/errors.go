package api

import (
	"errors"
	"fmt"
)

// RequestError is a transport-level failure: the request never completed, or
// the response body could not be decoded. The backend may or may not have
// seen the request.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Rejection is a completed request the backend refused. Message carries the
// backend's own error text, shown to the operator verbatim.
type Rejection struct {
	Status  int
	Message string
}

func (e *Rejection) Error() string {
	return e.Message
}

// UserMessage returns the text to surface for an API error. Rejections pass
// the backend's message through untouched; transport failures get a generic
// connectivity message since the raw error is logged, not displayed.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Message
	}
	return "cannot reach server"
}
