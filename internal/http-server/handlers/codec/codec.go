package codec

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domain "url-toolkit/internal/domain/url"
	resp "url-toolkit/internal/lib/api/response"
	"url-toolkit/internal/lib/api/urlvalidator"
	"url-toolkit/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	OpEncodeURI          = "encode-uri"
	OpEncodeURIComponent = "encode-uri-component"
	OpDecodeURI          = "decode-uri"
	OpDecodeURIComponent = "decode-uri-component"
)

type Request struct {
	Input  *string `json:"input" validate:"required"`
	Strict bool    `json:"strict,omitempty"`
}

type Response struct {
	resp.Response
	Output string `json:"output"`
}

type transform func(s string, strict bool) (string, error)

var operations = map[string]transform{
	OpEncodeURI: func(s string, _ bool) (string, error) {
		return domain.EncodeURI(s), nil
	},
	OpEncodeURIComponent: func(s string, _ bool) (string, error) {
		return domain.EncodeURIComponent(s), nil
	},
	OpDecodeURI: func(s string, _ bool) (string, error) {
		return domain.DecodeURI(s), nil
	},
	OpDecodeURIComponent: func(s string, strict bool) (string, error) {
		if strict {
			return domain.DecodeURIComponentStrict(s)
		}
		return domain.DecodeURIComponent(s), nil
	},
}

// New serves the percent-encoding operation named by the {op} route parameter.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.codec.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		name := chi.URLParam(r, "op")
		fn, ok := operations[name]
		if !ok {
			log.Info("unknown codec operation", slog.String("operation", name))
			err := resp.RenderJSON(w, http.StatusNotFound, resp.Error("unknown operation"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

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
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.ValidationError(err))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		out, err := fn(*req.Input, req.Strict)
		if err != nil {
			log.Info("strict decoding failed", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusBadRequest, resp.Error(err.Error()))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		metrics.CodecOperationsTotal.WithLabelValues(name).Inc()

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response: resp.OK(),
			Output:   out,
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
