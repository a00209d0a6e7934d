package registry

import (
	"context"
	"errors"
	"fmt"

	"url-toolkit/internal/domain/endpoint"
	domain "url-toolkit/internal/domain/url"
	"url-toolkit/internal/storage"
)

func (s *Service) Resolve(ctx context.Context, alias string) (endpoint.Endpoint, error) {
	const op = "registry.Service.Resolve"

	e, err := s.provider.Endpoint(ctx, alias)
	if err != nil {
		if errors.Is(err, storage.ErrEndpointNotFound) {
			return endpoint.Endpoint{}, fmt.Errorf("%s: %w", op, endpoint.ErrEndpointNotFound)
		}
		return endpoint.Endpoint{}, fmt.Errorf("%s: failed to get endpoint: %w", op, err)
	}

	return e, nil
}

func (s *Service) List(ctx context.Context) ([]endpoint.Endpoint, error) {
	const op = "registry.Service.List"

	list, err := s.provider.Endpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list endpoints: %w", op, err)
	}

	return list, nil
}

// RedirectTarget returns the URL a client should be redirected to.
// Only HTTP endpoints are redirectable.
func (s *Service) RedirectTarget(ctx context.Context, alias string) (domain.Validated, error) {
	const op = "registry.Service.RedirectTarget"

	e, err := s.Resolve(ctx, alias)
	if err != nil {
		return domain.Validated{}, fmt.Errorf("%s: %w", op, err)
	}

	if !e.Redirectable() {
		return domain.Validated{}, fmt.Errorf("%s: %w", op, endpoint.ErrNotRedirectable)
	}

	return e.URL, nil
}
