package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domain "url-toolkit/internal/domain/url"
	resp "url-toolkit/internal/lib/api/response"
	"url-toolkit/internal/lib/api/urlvalidator"
	"url-toolkit/internal/lib/metrics"
	"url-toolkit/internal/lib/urlview"

	"github.com/go-chi/chi/v5/middleware"
)

type Request struct {
	URL    string   `json:"url" validate:"required"`
	Kind   string   `json:"kind,omitempty" validate:"omitempty,url_kind"`
	Params []string `json:"params,omitempty" validate:"omitempty,dive,required"`
}

type Response struct {
	resp.Response
	URL *urlview.View `json:"url,omitempty"`
}

// New validates a URL without storing it and returns its components.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.inspect.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error("failed to decode request body", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error("invalid request body"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		if err = urlvalidator.Validator().Struct(req); err != nil {
			log.Info("invalid request", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.ValidationError(err))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		kind := domain.KindHTTP
		if req.Kind != "" {
			kind, _ = domain.ParseKind(req.Kind)
		}

		u, err := domain.New(kind, req.URL)
		if err != nil {
			log.Info("url rejected", slog.String("reason", domain.Reason(err)))
			metrics.ValidationFailuresTotal.WithLabelValues(domain.Reason(err)).Inc()
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.InvalidURL(err))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		view, err := urlview.WithParams(u, req.Params)
		if err != nil {
			log.Info("invalid query parameter name", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error("invalid query parameter name"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response: resp.OK(),
			URL:      &view,
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
