package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"url-toolkit/internal/domain/endpoint"
	resp "url-toolkit/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v3
type EndpointDeleter interface {
	Delete(ctx context.Context, alias string) error
}

func New(log *slog.Logger, deleter EndpointDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.endpoint.delete.New"

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

		log = log.With(slog.String("alias", alias))

		err := deleter.Delete(r.Context(), alias)
		if err != nil {
			if errors.Is(err, endpoint.ErrEndpointNotFound) {
				log.Info("endpoint not found")
				err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("not found"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}

			log.Error("failed to delete endpoint", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("endpoint deleted successfully")

		err = resp.RenderJSON(w, http.StatusOK, resp.OK())
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
