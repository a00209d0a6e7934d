package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"url-toolkit/internal/domain/endpoint"
	"url-toolkit/internal/storage"
)

func (s *Service) Delete(ctx context.Context, alias string) error {
	const op = "registry.Service.Delete"

	if err := s.provider.DeleteEndpoint(ctx, alias); err != nil {
		if errors.Is(err, storage.ErrEndpointNotFound) {
			return fmt.Errorf("%s: %w", op, endpoint.ErrEndpointNotFound)
		}
		return fmt.Errorf("%s: failed to delete endpoint: %w", op, err)
	}

	s.log.Info("endpoint deleted", slog.String("op", op), slog.String("alias", alias))

	return nil
}
