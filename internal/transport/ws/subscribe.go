// Package ws serves the event-driven read path over WebSocket.
package ws

import (
	"context"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/stream"
	"github.com/heartmarshall/ideamatcher-backend/pkg/ctxutil"
)

type subscriber interface {
	Subscribe(ctx context.Context, viewer domain.Identity, filter stream.Filter) iter.Seq2[stream.Snapshot, error]
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Handler upgrades GET /api/subscribe and writes one JSON frame per
// snapshot until either side goes away.
type Handler struct {
	svc      subscriber
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a Handler. allowedOrigins is the CORS origin list;
// "*" or an empty list accepts any origin.
func NewHandler(svc subscriber, allowedOrigins []string, logger *slog.Logger) *Handler {
	return &Handler{
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		log: logger.With("handler", "subscribe"),
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

// parseFilter reads ?kinds=relationship,message.
func parseFilter(r *http.Request) stream.Filter {
	var f stream.Filter
	for _, k := range strings.Split(r.URL.Query().Get("kinds"), ",") {
		if k = strings.TrimSpace(strings.ToLower(k)); k != "" {
			f.Kinds = append(f.Kinds, domain.EventKind(k))
		}
	}
	return f
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.DebugContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go h.readPump(conn, cancel)
	go h.pingPump(ctx, conn)

	h.log.InfoContext(ctx, "subscriber connected", slog.String("viewer", viewer.String()))

	for snap, err := range h.svc.Subscribe(ctx, viewer, parseFilter(r)) {
		conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
		if err := conn.WriteJSON(toFrame(snap, err)); err != nil {
			h.log.DebugContext(ctx, "write frame", slog.String("error", err.Error()))
			break
		}
	}

	conn.WriteControl(websocket.CloseMessage, //nolint:errcheck
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	h.log.InfoContext(ctx, "subscriber disconnected", slog.String("viewer", viewer.String()))
}

// readPump discards client frames and cancels the subscription when the
// connection closes or stops answering pings.
func (h *Handler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) pingPump(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
