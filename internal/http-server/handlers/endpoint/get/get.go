package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"url-toolkit/internal/domain/endpoint"
	resp "url-toolkit/internal/lib/api/response"
	"url-toolkit/internal/lib/urlview"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Response struct {
	resp.Response
	Endpoint *urlview.Endpoint `json:"endpoint,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v3
type EndpointResolver interface {
	Resolve(ctx context.Context, alias string) (endpoint.Endpoint, error)
}

func New(log *slog.Logger, resolver EndpointResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.endpoint.get.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		alias := chi.URLParam(r, "alias")
		if alias == "" {
			log.Error("alias parameter is missing")
			err := resp.RenderJSON(w, http.StatusBadRequest, resp.Error("alias parameter is required"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		e, err := resolver.Resolve(r.Context(), alias)
		if errors.Is(err, endpoint.ErrEndpointNotFound) {
			log.Info("endpoint not found", slog.String("alias", alias))
			err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("not found"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}
		if err != nil {
			log.Error("failed to resolve endpoint", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		view := urlview.FromEndpoint(e)

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response: resp.OK(),
			Endpoint: &view,
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
