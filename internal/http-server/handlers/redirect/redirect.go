package redirect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"url-toolkit/internal/domain/endpoint"
	domain "url-toolkit/internal/domain/url"
	resp "url-toolkit/internal/lib/api/response"
	"url-toolkit/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v3
type RedirectResolver interface {
	RedirectTarget(ctx context.Context, alias string) (domain.Validated, error)
}

func New(log *slog.Logger, resolver RedirectResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.redirect.New"

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

		target, err := resolver.RedirectTarget(r.Context(), alias)
		if errors.Is(err, endpoint.ErrEndpointNotFound) {
			log.Info("alias not found", slog.String("alias", alias))
			err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("alias not found"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}
		if errors.Is(err, endpoint.ErrNotRedirectable) {
			log.Warn("blocked redirect to non-http(s) endpoint", slog.String("alias", alias))
			err = resp.RenderJSON(w, http.StatusNotFound, resp.Error("unable to redirect"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}
		if err != nil {
			log.Error("failed to get redirect target", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		location := target.ASCII()

		http.Redirect(w, r, location, http.StatusFound)
		log.Info("redirected", slog.String("alias", alias), slog.String("location", location))

		metrics.RedirectsTotal.Inc()
	}
}
