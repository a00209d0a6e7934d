package registry

import (
	"context"
	"log/slog"
	"time"

	"url-toolkit/internal/domain/endpoint"
)

// Provider defines the interface for endpoint storage operations.
//
//go:generate go run github.com/vektra/mockery/v3
type Provider interface {
	SaveEndpoint(ctx context.Context, e endpoint.Endpoint) error
	Endpoint(ctx context.Context, alias string) (endpoint.Endpoint, error)
	Endpoints(ctx context.Context) ([]endpoint.Endpoint, error)
	DeleteEndpoint(ctx context.Context, alias string) error
}

type Service struct {
	log         *slog.Logger
	provider    Provider
	aliasLength int
	now         func() time.Time
}

// New creates a new endpoint registry. Aliases generated by Register are
// aliasLength characters long.
func New(log *slog.Logger, provider Provider, aliasLength int) *Service {
	return &Service{
		log:         log,
		provider:    provider,
		aliasLength: aliasLength,
		now:         time.Now,
	}
}
