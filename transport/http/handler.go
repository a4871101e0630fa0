package http

import (
	"log/slog"
	"net/http"

	"github.com/gigmarket/gigchat/auth"
	"github.com/gigmarket/gigchat/service"
	"github.com/matryer/way"
)

type handler struct {
	svc    *service.Service
	tokens *auth.TokenCodec
	logger *slog.Logger
}

// New returns the JSON API under /api. Every API route requires a bearer
// token. metrics, when not nil, is served at /metrics.
func New(svc *service.Service, tokens *auth.TokenCodec, logger *slog.Logger, metrics http.Handler) http.Handler {
	h := &handler{
		svc:    svc,
		tokens: tokens,
		logger: logger,
	}

	api := way.NewRouter()
	api.HandleFunc("POST", "/events/:event_id/messages", h.messageSent)
	api.HandleFunc("GET", "/events/:event_id/participants", h.roster)
	api.HandleFunc("POST", "/events/:event_id/read", h.markEventRead)
	api.HandleFunc("GET", "/notifications", h.notifications)
	api.HandleFunc("POST", "/notifications/:notification_id/read", h.readNotification)

	r := way.NewRouter()
	r.Handle("*", "/api...", http.StripPrefix("/api", h.withAuth(api)))
	if metrics != nil {
		r.Handle("GET", "/metrics", metrics)
	}

	return r
}
