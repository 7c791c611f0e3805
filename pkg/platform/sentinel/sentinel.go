// Package sentinel names the infrastructure failures that cross package
// boundaries. Cache stores return ErrNotFound for an empty slot and the
// registry client wraps outages in ErrUnavailable. Client input problems
// belong in pkg/domain-errors instead.
package sentinel

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
