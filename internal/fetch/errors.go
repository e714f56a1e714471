package fetch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedStatus matches every StatusError.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrTransport matches every TransportError.
	ErrTransport = errors.New("http transport failure")

	// ErrBodyTooLarge is returned when a response body exceeds the
	// configured size limit.
	ErrBodyTooLarge = errors.New("response body too large")
)

// maxErrorBody is how much of a failed response body a StatusError keeps.
const maxErrorBody = 512

// Phase names the stage of a request in which a transport failure happened.
type Phase string

const (
	// PhaseConnect covers everything until response headers arrive:
	// DNS, dial, TLS and request timeouts.
	PhaseConnect Phase = "connect"

	// PhaseReadBody covers reading the response body.
	PhaseReadBody Phase = "read-body"
)

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	URL        string
	StatusCode int

	// Body is the beginning of the response body, for diagnostics.
	Body string
}

// Error implements error.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += fmt.Sprintf(": %q", body)
	}
	return msg
}

// Is makes StatusError match ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// TransportError reports a failure to execute a request or read its body.
type TransportError struct {
	Phase Phase
	URL   string
	Err   error
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: %s: %v", e.URL, e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes TransportError match ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
