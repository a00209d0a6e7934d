package storage

import (
	"context"
	"errors"

	"url-toolkit/internal/domain/endpoint"
)

var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrEndpointExists   = errors.New("endpoint already exists")
)

type Storage interface {
	SaveEndpoint(ctx context.Context, e endpoint.Endpoint) error
	Endpoint(ctx context.Context, alias string) (endpoint.Endpoint, error)
	Endpoints(ctx context.Context) ([]endpoint.Endpoint, error)
	DeleteEndpoint(ctx context.Context, alias string) error
	Close() error
}
