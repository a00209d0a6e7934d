// Package endpoint defines a named, validated URL kept by the registry.
package endpoint

import (
	"errors"
	"time"

	domain "url-toolkit/internal/domain/url"
)

var (
	// ErrAliasExists indicates that the alias is already registered
	ErrAliasExists = errors.New("alias already exists")
	// ErrEndpointNotFound indicates that no endpoint has the requested alias
	ErrEndpointNotFound = errors.New("endpoint not found")
	// ErrNotRedirectable indicates that the endpoint is not an HTTP URL
	ErrNotRedirectable = errors.New("endpoint is not redirectable")
)

type Endpoint struct {
	Alias     string
	Kind      domain.Kind
	URL       domain.Validated
	CreatedAt time.Time
}

// Redirectable reports whether browsers can be sent to the endpoint.
func (e Endpoint) Redirectable() bool {
	return e.Kind == domain.KindHTTP
}
