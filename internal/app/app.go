package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/nats-io/nats.go"

	natsbus "github.com/heartmarshall/ideamatcher-backend/internal/adapter/nats"
	"github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres/audit"
	connectionrepo "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres/connection"
	conversationrepo "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres/conversation"
	devicetokenrepo "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres/devicetoken"
	followerrepo "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres/follower"
	profilerepo "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/ideamatcher-backend/internal/adapter/provider/fcm"
	"github.com/heartmarshall/ideamatcher-backend/internal/adapter/provider/logpush"
	redisstore "github.com/heartmarshall/ideamatcher-backend/internal/adapter/redis"
	"github.com/heartmarshall/ideamatcher-backend/internal/auth"
	"github.com/heartmarshall/ideamatcher-backend/internal/config"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/conversation"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/follow"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/notification"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/profile"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/relationship"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/stream"
	"github.com/heartmarshall/ideamatcher-backend/internal/transport/middleware"
	"github.com/heartmarshall/ideamatcher-backend/internal/transport/rest"
	"github.com/heartmarshall/ideamatcher-backend/internal/transport/ws"
)

// TokenValidator resolves bearer tokens into identities.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, string, error)
}

type pushProvider interface {
	Send(ctx context.Context, tokens []string, n domain.Notification) ([]domain.TokenOutcome, error)
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, NATS and Redis, builds the services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracer, err := initTracer(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("tracer shutdown", slog.String("error", err.Error()))
		}
	}()

	// --- Infrastructure ---

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("database connected", slog.Int("max_conns", int(cfg.Database.MaxConns)))

	txm := postgres.NewTxManager(pool, postgres.WithRetry(cfg.Ledger), postgres.WithLogger(logger))

	nc, err := natsbus.Connect(cfg.NATS, logger)
	if err != nil {
		return err
	}
	defer nc.Drain() //nolint:errcheck

	rdb, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close() //nolint:errcheck

	push, err := newPushProvider(ctx, cfg.Push, logger)
	if err != nil {
		return err
	}

	// --- Repositories ---

	profiles := profilerepo.New(pool)
	connections := connectionrepo.New(pool)
	followers := followerrepo.New(pool)
	conversations := conversationrepo.New(pool)
	audits := auditrepo.New(pool)
	tokens := devicetokenrepo.New(pool)

	publisher := natsbus.NewPublisher(nc, cfg.NATS.SubjectPrefix, logger)
	subscriber := natsbus.NewSubscriber(nc, cfg.NATS.SubjectPrefix, logger)
	inbox := redisstore.NewInbox(rdb, cfg.Notifications.InboxSize, cfg.Notifications.InboxTTL)

	// --- Services ---

	notificationSvc := notification.NewService(logger, tokens, profiles, push, inbox, publisher, cfg.Notifications)
	profileSvc := profile.NewService(logger, profiles, audits, txm)
	relationshipSvc := relationship.NewService(logger, profiles, connections, notificationSvc, publisher, audits, txm)
	followSvc := follow.NewService(logger, followers, profiles, notificationSvc, publisher, audits, txm)
	conversationSvc := conversation.NewService(logger, conversations, profiles, notificationSvc, publisher, txm, cfg.Messaging)
	streamSvc := stream.NewService(logger, subscriber, relationshipSvc, profileSvc, conversationSvc, stream.DefaultBuffer)

	// --- Transport ---

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	health := rest.NewHealthHandler(pool, BuildVersion()).
		WithComponent("nats", rest.PingFunc(func(context.Context) error {
			if s := nc.Status(); s != nats.CONNECTED {
				return fmt.Errorf("nats status %s", s)
			}
			return nil
		})).
		WithComponent("redis", rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))

	router := NewRouter(cfg, Handlers{
		Health:        health,
		Profiles:      rest.NewProfileHandler(profileSvc, logger),
		Relationships: rest.NewRelationshipHandler(relationshipSvc, logger),
		Follows:       rest.NewFollowHandler(followSvc, logger),
		Notifications: rest.NewNotificationHandler(notificationSvc, logger),
		Conversations: rest.NewConversationHandler(conversationSvc, logger),
		Subscribe:     ws.NewHandler(streamSvc, splitOrigins(cfg.CORS.AllowedOrigins), logger),
	}, jwtManager, limiter, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newPushProvider(ctx context.Context, cfg config.PushConfig, logger *slog.Logger) (pushProvider, error) {
	switch cfg.PushProvider() {
	case "fcm":
		p, err := fcm.NewProvider(ctx, cfg.ProjectID, logger)
		if err != nil {
			return nil, fmt.Errorf("init fcm provider: %w", err)
		}
		return p, nil
	case "log", "":
		return logpush.NewProvider(logger), nil
	default:
		return nil, fmt.Errorf("unknown push provider %q", cfg.Provider)
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
