// Package conversation implements the pairwise conversation and message
// store using PostgreSQL.
package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new conversation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type conversationRow struct {
	ID            string     `db:"id"`
	LastMessage   string     `db:"last_message"`
	LastMessageAt *time.Time `db:"last_message_at"`
	LastSenderID  *string    `db:"last_sender_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

type memberRow struct {
	MemberID    string `db:"member_id"`
	UnreadCount int    `db:"unread_count"`
}

type messageRow struct {
	ID             uuid.UUID `db:"id"`
	Seq            int64     `db:"seq"`
	ConversationID string    `db:"conversation_id"`
	SenderID       string    `db:"sender_id"`
	Content        string    `db:"content"`
	Type           string    `db:"type"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r messageRow) toDomain() domain.Message {
	return domain.Message{
		ID:             r.ID,
		Seq:            r.Seq,
		ConversationID: r.ConversationID,
		SenderID:       domain.Identity(r.SenderID),
		Content:        r.Content,
		Type:           domain.MessageType(r.Type),
		CreatedAt:      r.CreatedAt,
	}
}

type summaryRow struct {
	ID            string     `db:"id"`
	Peer          string     `db:"peer_id"`
	LastMessage   string     `db:"last_message"`
	LastMessageAt *time.Time `db:"last_message_at"`
	LastSenderID  *string    `db:"last_sender_id"`
	UnreadCount   int        `db:"unread_count"`
}

var messageColumns = []string{"id", "seq", "conversation_id", "sender_id", "content", "type", "created_at"}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Ensure creates the conversation and both member rows if they do not exist.
// Existing rows are merged, never overwritten.
func (r *Repo) Ensure(ctx context.Context, id string, a, b domain.Identity) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("conversations").
		Columns("id").
		Values(id).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build conversation insert: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "conversation", id)
	}

	query, args, err = postgres.Builder().
		Insert("conversation_members").
		Columns("conversation_id", "member_id").
		Values(id, string(a)).
		Values(id, string(b)).
		Suffix("ON CONFLICT (conversation_id, member_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build members insert: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "conversation", id)
	}
	return nil
}

// InsertMessage stores m and returns it with the storage sequence assigned.
func (r *Repo) InsertMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	query, args, err := postgres.Builder().
		Insert("messages").
		Columns("id", "conversation_id", "sender_id", "content", "type", "created_at").
		Values(m.ID, m.ConversationID, string(m.SenderID), m.Content, string(m.Type), m.CreatedAt).
		Suffix("RETURNING seq").
		ToSql()
	if err != nil {
		return domain.Message{}, fmt.Errorf("build message insert: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&m.Seq); err != nil {
		return domain.Message{}, postgres.MapError(err, "message", m.ID)
	}
	return m, nil
}

// RecordSend updates the conversation summary for a message just inserted:
// last message fields, the sender's unread count reset to zero and every
// other member's unread count incremented by one. The last message fields
// only move forward in time, so a send that commits after a newer one
// leaves the newer summary in place.
func (r *Repo) RecordSend(ctx context.Context, m domain.Message) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	newer := func(col string, v any) squirrel.Sqlizer {
		return squirrel.Expr(
			"CASE WHEN last_message_at IS NULL OR last_message_at <= ? THEN ? ELSE "+col+" END",
			m.CreatedAt, v)
	}
	query, args, err := postgres.Builder().
		Update("conversations").
		Set("last_message", newer("last_message", m.Content)).
		Set("last_message_at", newer("last_message_at", m.CreatedAt)).
		Set("last_sender_id", newer("last_sender_id", string(m.SenderID))).
		Where(squirrel.Eq{"id": m.ConversationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build conversation update: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "conversation", m.ConversationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("conversation %s: %w", m.ConversationID, domain.ErrNotFound)
	}

	query, args, err = postgres.Builder().
		Update("conversation_members").
		Set("unread_count", squirrel.Expr(
			"CASE WHEN member_id = ? THEN 0 ELSE unread_count + 1 END", string(m.SenderID))).
		Where(squirrel.Eq{"conversation_id": m.ConversationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build unread update: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "conversation", m.ConversationID)
	}
	return nil
}

// ResetUnread sets member's unread count to zero when it is not already zero
// and reports whether a row changed.
func (r *Repo) ResetUnread(ctx context.Context, id string, member domain.Identity) (bool, error) {
	query, args, err := postgres.Builder().
		Update("conversation_members").
		Set("unread_count", 0).
		Where(squirrel.Eq{"conversation_id": id, "member_id": string(member)}).
		Where(squirrel.NotEq{"unread_count": 0}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build unread reset: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "conversation", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the conversation with its members and unread counts.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("id", "last_message", "last_message_at", "last_sender_id", "created_at").
		From("conversations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build conversation query: %w", err)
	}

	var row conversationRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "conversation", id)
	}

	query, args, err = postgres.Builder().
		Select("member_id", "unread_count").
		From("conversation_members").
		Where(squirrel.Eq{"conversation_id": id}).
		OrderBy("member_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build members query: %w", err)
	}

	var members []memberRow
	if err := pgxscan.Select(ctx, q, &members, query, args...); err != nil {
		return nil, postgres.MapError(err, "conversation", id)
	}

	c := &domain.Conversation{
		ID:            row.ID,
		LastMessage:   row.LastMessage,
		LastMessageAt: row.LastMessageAt,
		UnreadCount:   make(map[domain.Identity]int, len(members)),
		CreatedAt:     row.CreatedAt,
	}
	if row.LastSenderID != nil {
		s := domain.Identity(*row.LastSenderID)
		c.LastSenderID = &s
	}
	for i, m := range members {
		if i < len(c.Members) {
			c.Members[i] = domain.Identity(m.MemberID)
		}
		c.UnreadCount[domain.Identity(m.MemberID)] = m.UnreadCount
	}
	return c, nil
}

// ListMessages returns up to limit messages older than before (or the newest
// ones when before is nil), newest first.
func (r *Repo) ListMessages(ctx context.Context, id string, before *domain.MessageCursor, limit int) ([]domain.Message, error) {
	q := postgres.Builder().
		Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"conversation_id": id}).
		OrderBy("created_at DESC", "seq DESC")
	if before != nil {
		q = q.Where(squirrel.Expr("(created_at, seq) < (?, ?)", before.CreatedAt, before.Seq))
	}
	query, args, err := postgres.Paginate(q, limit, 0).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build messages query: %w", err)
	}

	var rows []messageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "conversation", id)
	}

	out := make([]domain.Message, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ListForMember returns member's conversations, most recent activity first.
func (r *Repo) ListForMember(ctx context.Context, member domain.Identity, limit, offset int) ([]domain.ConversationSummary, error) {
	q := postgres.Builder().
		Select(
			"c.id", "peer.member_id AS peer_id", "c.last_message",
			"c.last_message_at", "c.last_sender_id", "me.unread_count",
		).
		From("conversation_members me").
		Join("conversations c ON c.id = me.conversation_id").
		Join("conversation_members peer ON peer.conversation_id = me.conversation_id AND peer.member_id <> me.member_id").
		Where(squirrel.Eq{"me.member_id": string(member)}).
		OrderBy("c.last_message_at DESC NULLS LAST", "c.id")
	query, args, err := postgres.Paginate(q, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build conversation list: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "conversation", member)
	}

	out := make([]domain.ConversationSummary, len(rows))
	for i, rw := range rows {
		s := domain.ConversationSummary{
			ID:            rw.ID,
			Peer:          domain.Identity(rw.Peer),
			LastMessage:   rw.LastMessage,
			LastMessageAt: rw.LastMessageAt,
			UnreadCount:   rw.UnreadCount,
		}
		if rw.LastSenderID != nil {
			id := domain.Identity(*rw.LastSenderID)
			s.LastSenderID = &id
		}
		out[i] = s
	}
	return out, nil
}
