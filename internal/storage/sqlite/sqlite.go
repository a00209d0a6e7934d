package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"url-toolkit/internal/domain/endpoint"
	domain "url-toolkit/internal/domain/url"
	"url-toolkit/internal/storage"

	"github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

// New initializes a new SQLite storage with the given file path.
// The schema is expected to be applied by the migrator.
func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// SaveEndpoint stores e under its alias. The URL is persisted as its original text.
func (s *Storage) SaveEndpoint(ctx context.Context, e endpoint.Endpoint) error {
	const op = "storage.sqlite.SaveEndpoint"

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO endpoint(alias, kind, url, created_at) VALUES(?, ?, ?, ?)",
		e.Alias, e.Kind.String(), e.URL.Value(), e.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%s: %w", op, storage.ErrEndpointExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Endpoint returns the endpoint registered under alias.
func (s *Storage) Endpoint(ctx context.Context, alias string) (endpoint.Endpoint, error) {
	const op = "storage.sqlite.Endpoint"

	row := s.db.QueryRowContext(ctx,
		"SELECT alias, kind, url, created_at FROM endpoint WHERE alias = ?", alias)

	e, err := scanEndpoint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return endpoint.Endpoint{}, fmt.Errorf("%s: %w", op, storage.ErrEndpointNotFound)
	}
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

// Endpoints returns every endpoint in registration order.
func (s *Storage) Endpoints(ctx context.Context) ([]endpoint.Endpoint, error) {
	const op = "storage.sqlite.Endpoints"

	rows, err := s.db.QueryContext(ctx,
		"SELECT alias, kind, url, created_at FROM endpoint ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	res := make([]endpoint.Endpoint, 0)
	for rows.Next() {
		e, err := scanEndpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res = append(res, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// DeleteEndpoint removes the endpoint registered under alias.
func (s *Storage) DeleteEndpoint(ctx context.Context, alias string) error {
	const op = "storage.sqlite.DeleteEndpoint"

	res, err := s.db.ExecContext(ctx, "DELETE FROM endpoint WHERE alias = ?", alias)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEndpointNotFound)
	}

	return nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanEndpoint re-validates the stored text, so a row that no longer passes
// validation surfaces as an error instead of a half-built value.
func scanEndpoint(row scanner) (endpoint.Endpoint, error) {
	var (
		e         endpoint.Endpoint
		kind, raw string
		createdAt int64
	)

	if err := row.Scan(&e.Alias, &kind, &raw, &createdAt); err != nil {
		return endpoint.Endpoint{}, err
	}

	k, err := domain.ParseKind(kind)
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("stored kind of %q is invalid: %w", e.Alias, err)
	}

	u, err := domain.New(k, raw)
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("stored url of %q is invalid: %w", e.Alias, err)
	}

	e.Kind = k
	e.URL = u
	e.CreatedAt = time.Unix(0, createdAt).UTC()

	return e, nil
}
