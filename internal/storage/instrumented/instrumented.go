package instrumented

import (
	"context"
	"time"

	"url-toolkit/internal/domain/endpoint"
	"url-toolkit/internal/lib/metrics"
	"url-toolkit/internal/storage"
)

// Storage records operation counts and latencies around another storage.Storage.
type Storage struct {
	next storage.Storage
}

func New(next storage.Storage) *Storage {
	return &Storage{next: next}
}

func (s *Storage) SaveEndpoint(ctx context.Context, e endpoint.Endpoint) error {
	const op = "SaveEndpoint"
	start := time.Now()
	err := s.next.SaveEndpoint(ctx, e)
	s.recordMetrics(op, err, start)
	return err
}

func (s *Storage) Endpoint(ctx context.Context, alias string) (endpoint.Endpoint, error) {
	const op = "Endpoint"
	start := time.Now()
	e, err := s.next.Endpoint(ctx, alias)
	s.recordMetrics(op, err, start)
	return e, err
}

func (s *Storage) Endpoints(ctx context.Context) ([]endpoint.Endpoint, error) {
	const op = "Endpoints"
	start := time.Now()
	list, err := s.next.Endpoints(ctx)
	s.recordMetrics(op, err, start)
	return list, err
}

func (s *Storage) DeleteEndpoint(ctx context.Context, alias string) error {
	const op = "DeleteEndpoint"
	start := time.Now()
	err := s.next.DeleteEndpoint(ctx, alias)
	s.recordMetrics(op, err, start)
	return err
}

func (s *Storage) Close() error {
	return s.next.Close()
}

func (s *Storage) recordMetrics(operation string, err error, start time.Time) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.StorageOperationDuration.WithLabelValues(operation).Observe(duration)
}
