package list

import (
	"context"
	"log/slog"
	"net/http"

	"url-toolkit/internal/domain/endpoint"
	resp "url-toolkit/internal/lib/api/response"
	"url-toolkit/internal/lib/urlview"

	"github.com/go-chi/chi/v5/middleware"
)

type Response struct {
	resp.Response
	Endpoints []urlview.Endpoint `json:"endpoints"`
}

//go:generate go run github.com/vektra/mockery/v3
type EndpointLister interface {
	List(ctx context.Context) ([]endpoint.Endpoint, error)
}

func New(log *slog.Logger, lister EndpointLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.endpoint.list.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		endpoints, err := lister.List(r.Context())
		if err != nil {
			log.Error("failed to list endpoints", slog.String("error", err.Error()))
			err = resp.RenderJSON(w, http.StatusInternalServerError, resp.Error("internal error"))
			if err != nil {
				log.Error("failed to render JSON response", slog.String("error", err.Error()))
			}
			return
		}

		err = resp.RenderJSON(w, http.StatusOK, Response{
			Response:  resp.OK(),
			Endpoints: urlview.FromEndpoints(endpoints),
		})
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
