package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/ideamatcher-backend/internal/config"
	"github.com/heartmarshall/ideamatcher-backend/internal/transport/middleware"
	"github.com/heartmarshall/ideamatcher-backend/internal/transport/rest"
	"github.com/heartmarshall/ideamatcher-backend/internal/transport/ws"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health        *rest.HealthHandler
	Profiles      *rest.ProfileHandler
	Relationships *rest.RelationshipHandler
	Follows       *rest.FollowHandler
	Notifications *rest.NotificationHandler
	Conversations *rest.ConversationHandler
	Subscribe     *ws.Handler
}

// NewRouter registers every route and wraps the API in the middleware chain.
// Health and metrics endpoints bypass auth and rate limiting.
func NewRouter(cfg *config.Config, h Handlers, validator TokenValidator, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	api := http.NewServeMux()

	notifyLimit := passthrough
	if cfg.RateLimit.Enabled {
		notifyLimit = limiter.LimitNamed("notify", cfg.RateLimit.NotifyPerMin)
	}
	api.Handle("POST /api/send-notification", notifyLimit(http.HandlerFunc(h.Notifications.Send)))

	api.HandleFunc("PUT /api/profile", h.Profiles.Upsert)
	api.HandleFunc("GET /api/profiles/{id}", h.Profiles.Get)
	api.HandleFunc("GET /api/profiles/by-handle/{handle}", h.Profiles.GetByHandle)

	api.HandleFunc("GET /api/relationships/{target}", h.Relationships.State)
	api.HandleFunc("POST /api/relationships/{target}/transition", h.Relationships.Transition)
	api.HandleFunc("GET /api/connections", h.Relationships.ListConnections)

	api.HandleFunc("GET /api/follows/{target}", h.Follows.Status)
	api.HandleFunc("POST /api/follows/{target}", h.Follows.Follow)
	api.HandleFunc("DELETE /api/follows/{target}", h.Follows.Unfollow)
	api.HandleFunc("GET /api/followers/{id}", h.Follows.Followers)
	api.HandleFunc("GET /api/following/{id}", h.Follows.Following)

	api.HandleFunc("POST /api/devices/tokens", h.Notifications.RegisterToken)
	api.HandleFunc("DELETE /api/devices/tokens/{token}", h.Notifications.UnregisterToken)
	api.HandleFunc("GET /api/notifications", h.Notifications.Recent)

	api.HandleFunc("GET /api/conversations", h.Conversations.List)
	api.HandleFunc("POST /api/conversations/{id}/messages", h.Conversations.Send)
	api.HandleFunc("GET /api/conversations/{id}/messages", h.Conversations.Messages)
	api.HandleFunc("GET /api/conversations/{id}/export", h.Conversations.Export)
	api.HandleFunc("POST /api/conversations/{id}/open", h.Conversations.Open)
	api.HandleFunc("POST /api/conversations/with/{peer}/messages", h.Conversations.SendTo)

	api.Handle("GET /api/subscribe", h.Subscribe)

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
		middleware.Logger(logger),
	}
	if cfg.RateLimit.Enabled {
		chain = append(chain, limiter.Limit(cfg.RateLimit.RequestsPerMin))
	}

	var apiHandler http.Handler = middleware.Chain(chain...)(api)
	apiHandler = otelhttp.NewHandler(apiHandler, "ideamatcher-api",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return !strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
		}),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle("GET /metrics", promhttp.Handler())
	root.Handle("/api/", apiHandler)

	return root
}

func passthrough(next http.Handler) http.Handler { return next }
