package registry_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"url-toolkit/internal/domain/endpoint"
	domain "url-toolkit/internal/domain/url"
	"url-toolkit/internal/service/registry"
	"url-toolkit/internal/service/registry/mocks"
	"url-toolkit/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const aliasLength = 6

func newService(p registry.Provider) *registry.Service {
	return registry.New(slog.New(slog.NewTextHandler(io.Discard, nil)), p, aliasLength)
}

func TestRegister(t *testing.T) {
	cases := []struct {
		name       string
		kind       domain.Kind
		url        string
		alias      string
		saveErr    error
		expectSave bool
		wantErr    error
	}{
		{
			name:       "Success with alias",
			kind:       domain.KindHTTP,
			url:        " https://example.com/docs ",
			alias:      "docs",
			expectSave: true,
		},
		{
			name:       "Success with generated alias",
			kind:       domain.KindWebSocket,
			url:        "wss://events.example.com",
			expectSave: true,
		},
		{
			name:    "Invalid URL",
			kind:    domain.KindHTTP,
			url:     "not a url",
			alias:   "x",
			wantErr: domain.ErrMalformedSyntax,
		},
		{
			name:    "Scheme not allowed for kind",
			kind:    domain.KindWebSocket,
			url:     "https://example.com",
			wantErr: domain.ErrUnsupportedScheme,
		},
		{
			name:       "Alias exists",
			kind:       domain.KindHTTP,
			url:        "https://example.com",
			alias:      "taken",
			saveErr:    storage.ErrEndpointExists,
			expectSave: true,
			wantErr:    endpoint.ErrAliasExists,
		},
		{
			name:       "Storage failure",
			kind:       domain.KindHTTP,
			url:        "https://example.com",
			alias:      "x",
			saveErr:    errors.New("disk full"),
			expectSave: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewMockProvider(t)
			if tc.expectSave {
				provider.On("SaveEndpoint", mock.Anything, mock.MatchedBy(func(e endpoint.Endpoint) bool {
					if tc.alias != "" && e.Alias != tc.alias {
						return false
					}
					return len(e.Alias) > 0 && e.Kind == tc.kind && !e.URL.IsZero()
				})).Return(tc.saveErr).Once()
			}

			e, err := newService(provider).Register(context.Background(), tc.kind, tc.url, tc.alias)

			if tc.saveErr != nil && tc.wantErr == nil {
				require.ErrorIs(t, err, tc.saveErr)
				return
			}
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.kind, e.Kind)
			assert.WithinDuration(t, time.Now(), e.CreatedAt, time.Minute)
			if tc.alias == "" {
				assert.Len(t, e.Alias, aliasLength)
			} else {
				assert.Equal(t, tc.alias, e.Alias)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	u, err := domain.NewHTTP("https://example.com")
	require.NoError(t, err)
	stored := endpoint.Endpoint{Alias: "a", Kind: domain.KindHTTP, URL: u.Validated}

	provider := mocks.NewMockProvider(t)
	provider.On("Endpoint", mock.Anything, "a").Return(stored, nil).Once()
	provider.On("Endpoint", mock.Anything, "missing").Return(endpoint.Endpoint{}, storage.ErrEndpointNotFound).Once()
	provider.On("Endpoint", mock.Anything, "broken").Return(endpoint.Endpoint{}, errors.New("db down")).Once()

	s := newService(provider)

	got, err := s.Resolve(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = s.Resolve(context.Background(), "missing")
	require.ErrorIs(t, err, endpoint.ErrEndpointNotFound)

	_, err = s.Resolve(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, endpoint.ErrEndpointNotFound)
}

func TestList(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("Endpoints", mock.Anything).Return([]endpoint.Endpoint{{Alias: "a"}, {Alias: "b"}}, nil).Once()
	provider.On("Endpoints", mock.Anything).Return(nil, errors.New("db down")).Once()

	s := newService(provider)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = s.List(context.Background())
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("DeleteEndpoint", mock.Anything, "a").Return(nil).Once()
	provider.On("DeleteEndpoint", mock.Anything, "missing").Return(storage.ErrEndpointNotFound).Once()

	s := newService(provider)

	require.NoError(t, s.Delete(context.Background(), "a"))
	require.ErrorIs(t, s.Delete(context.Background(), "missing"), endpoint.ErrEndpointNotFound)
}

func TestRedirectTarget(t *testing.T) {
	httpURL, err := domain.New(domain.KindHTTP, "https://example.com/landing")
	require.NoError(t, err)
	wsURL, err := domain.New(domain.KindWebSocket, "wss://example.com/socket")
	require.NoError(t, err)

	provider := mocks.NewMockProvider(t)
	provider.On("Endpoint", mock.Anything, "web").
		Return(endpoint.Endpoint{Alias: "web", Kind: domain.KindHTTP, URL: httpURL}, nil).Once()
	provider.On("Endpoint", mock.Anything, "socket").
		Return(endpoint.Endpoint{Alias: "socket", Kind: domain.KindWebSocket, URL: wsURL}, nil).Once()
	provider.On("Endpoint", mock.Anything, "missing").
		Return(endpoint.Endpoint{}, storage.ErrEndpointNotFound).Once()

	s := newService(provider)

	target, err := s.RedirectTarget(context.Background(), "web")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/landing", target.Value())

	_, err = s.RedirectTarget(context.Background(), "socket")
	require.ErrorIs(t, err, endpoint.ErrNotRedirectable)

	_, err = s.RedirectTarget(context.Background(), "missing")
	require.ErrorIs(t, err, endpoint.ErrEndpointNotFound)
}
