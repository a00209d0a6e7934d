package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"url-toolkit/internal/domain/endpoint"
	domain "url-toolkit/internal/domain/url"
	"url-toolkit/internal/lib/api/random"
	"url-toolkit/internal/storage"
)

// Register validates rawURL against kind and stores it under alias.
// If the alias is empty, a random one is generated.
func (s *Service) Register(ctx context.Context, kind domain.Kind, rawURL, alias string) (endpoint.Endpoint, error) {
	const op = "registry.Service.Register"

	u, err := domain.New(kind, rawURL)
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("%s: %w", op, err)
	}

	if alias == "" {
		alias, err = random.NewRandomString(s.aliasLength)
		if err != nil {
			return endpoint.Endpoint{}, fmt.Errorf("%s: failed to generate alias: %w", op, err)
		}
	}

	e := endpoint.Endpoint{
		Alias:     alias,
		Kind:      kind,
		URL:       u,
		CreatedAt: s.now().UTC(),
	}

	if err = s.provider.SaveEndpoint(ctx, e); err != nil {
		if errors.Is(err, storage.ErrEndpointExists) {
			return endpoint.Endpoint{}, fmt.Errorf("%s: %w", op, endpoint.ErrAliasExists)
		}
		return endpoint.Endpoint{}, fmt.Errorf("%s: failed to save endpoint: %w", op, err)
	}

	s.log.Debug("endpoint registered",
		slog.String("op", op),
		slog.String("alias", alias),
		slog.String("kind", kind.String()),
		slog.String("host", u.ASCIIHost()),
	)

	return e, nil
}
