package delete_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"url-toolkit/internal/domain/endpoint"
	"url-toolkit/internal/http-server/handlers/endpoint/delete"
	"url-toolkit/internal/http-server/handlers/endpoint/delete/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteHandler(t *testing.T) {
	cases := []struct {
		name       string
		alias      string
		setupMocks func(deleter *mocks.MockEndpointDeleter)
		statusCode int
	}{
		{
			name:  "Success",
			alias: "test_alias",
			setupMocks: func(deleter *mocks.MockEndpointDeleter) {
				deleter.On("Delete", mock.Anything, "test_alias").Return(nil).Once()
			},
			statusCode: http.StatusOK,
		},
		{
			name:  "Error - Endpoint not found",
			alias: "nonexistent",
			setupMocks: func(deleter *mocks.MockEndpointDeleter) {
				deleter.On("Delete", mock.Anything, "nonexistent").
					Return(endpoint.ErrEndpointNotFound).Once()
			},
			statusCode: http.StatusNotFound,
		},
		{
			name:  "Error - Delete fails",
			alias: "test_alias",
			setupMocks: func(deleter *mocks.MockEndpointDeleter) {
				deleter.On("Delete", mock.Anything, "test_alias").
					Return(errors.New("database error")).Once()
			},
			statusCode: http.StatusInternalServerError,
		},
		{
			name:       "Error - Empty alias parameter",
			alias:      "",
			setupMocks: func(deleter *mocks.MockEndpointDeleter) {},
			statusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleterMock := mocks.NewMockEndpointDeleter(t)
			tc.setupMocks(deleterMock)

			handler := delete.New(slog.New(slog.NewTextHandler(io.Discard, nil)), deleterMock)

			req, err := http.NewRequest(http.MethodDelete, "/endpoints/"+tc.alias, nil)
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("alias", tc.alias)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)
		})
	}
}
