// Package apperr defines the error kinds the service layer reports, so
// handlers can pick an HTTP status without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery means the caller supplied neither a city name nor a
// complete coordinate pair, or the values were malformed.
var ErrInvalidQuery = errors.New("invalid query: provide either city or lat and lng")

// UpstreamError wraps a failed or malformed upstream provider response.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError builds an UpstreamError for the named provider.
func NewUpstreamError(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}

// NotFoundError means an administrative operation targeted a record id that
// does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// PersistenceError wraps a store read or write failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsUpstream reports whether err is an UpstreamError anywhere in its chain.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
