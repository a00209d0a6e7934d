package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"url-toolkit/internal/domain/endpoint"
	domain "url-toolkit/internal/domain/url"
	resp "url-toolkit/internal/lib/api/response"
	"url-toolkit/internal/lib/api/urlvalidator"
	"url-toolkit/internal/lib/metrics"

	"github.com/go-chi/chi/v5/middleware"
)

type Request struct {
	URL   string `json:"url" validate:"required"`
	Kind  string `json:"kind,omitempty" validate:"omitempty,url_kind"`
	Alias string `json:"alias,omitempty" validate:"omitempty,max=64,excludesall=/?#%"`
}

type Response struct {
	resp.Response
	Alias string `json:"alias,omitempty"`
	Kind  string `json:"kind,omitempty"`
	URL   string `json:"url,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v3
type EndpointRegistrar interface {
	Register(ctx context.Context, kind domain.Kind, rawURL, alias string) (endpoint.Endpoint, error)
}

func New(log *slog.Logger, registrar EndpointRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.endpoint.save.New"

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

		log.Info("request decoded", slog.Any("req", req))

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
			// already checked by the url_kind tag
			kind, _ = domain.ParseKind(req.Kind)
		}

		e, err := registrar.Register(r.Context(), kind, req.URL, req.Alias)
		if err != nil {
			if domain.IsValidation(err) {
				metrics.ValidationFailuresTotal.WithLabelValues(domain.Reason(err)).Inc()
				err = resp.RenderJSON(w, http.StatusBadRequest, resp.InvalidURL(err))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}
			if errors.Is(err, endpoint.ErrAliasExists) {
				log.Info("alias already exists", slog.String("alias", req.Alias))
				err = resp.RenderJSON(w, http.StatusConflict, resp.Error("alias already exists"))
				if err != nil {
					log.Error("failed to render JSON response", slog.String("error", err.Error()))
				}
				return
			}

			log.Error("failed to register endpoint", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("failed to save endpoint"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("endpoint saved", slog.String("alias", e.Alias), slog.String("url", e.URL.Value()))

		metrics.EndpointsRegisteredTotal.WithLabelValues(e.Kind.String()).Inc()

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response: resp.OK(),
			Alias:    e.Alias,
			Kind:     e.Kind.String(),
			URL:      e.URL.Value(),
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
