package sparql

import (
	"errors"
	"fmt"
)

// UpstreamQueryError reports a failed store round trip: a transport error, a
// timeout, a non-2xx status or an undecodable SELECT body. Query and Body are
// for logs only and must never reach a client.
type UpstreamQueryError struct {
	Form    Form
	Status  int
	Body    string
	Query   string
	Timeout bool
	Err     error
}

func (e *UpstreamQueryError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("sparql %s timed out", e.Form)
	case e.Status != 0:
		return fmt.Sprintf("sparql %s failed with status %d", e.Form, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("sparql %s failed: %v", e.Form, e.Err)
	default:
		return fmt.Sprintf("sparql %s failed", e.Form)
	}
}

func (e *UpstreamQueryError) Unwrap() error { return e.Err }

// IsUpstreamQueryError reports whether err wraps an UpstreamQueryError.
func IsUpstreamQueryError(err error) bool {
	var target *UpstreamQueryError
	return errors.As(err, &target)
}
