// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for ledger audit records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var columns = []string{"id", "actor_id", "entity_type", "target_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	ActorID    string    `db:"actor_id"`
	EntityType string    `db:"entity_type"`
	TargetID   *string   `db:"target_id"`
	Action     string    `db:"action"`
	Changes    []byte    `db:"changes"`
	CreatedAt  time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}
	if record.Changes == nil {
		changesJSON = []byte("{}")
	}

	var target *string
	if record.TargetID != nil {
		s := string(*record.TargetID)
		target = &s
	}

	query, args, err := postgres.Builder().
		Insert("audit_log").
		Columns(columns...).
		Values(record.ID, string(record.ActorID), string(record.EntityType), target,
			string(record.Action), changesJSON, record.CreatedAt).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return record, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the ledger services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByTarget returns the change history touching target for one entity type,
// ordered by created_at DESC, limited to `limit` records.
func (r *Repo) GetByTarget(ctx context.Context, entityType domain.EntityType, target domain.Identity, limit int) ([]domain.AuditRecord, error) {
	q := postgres.Builder().
		Select(columns...).
		From("audit_log").
		Where(squirrel.Eq{"entity_type": string(entityType), "target_id": string(target)}).
		OrderBy("created_at DESC")
	return r.list(ctx, postgres.Paginate(q, limit, 0), target)
}

// GetByActor returns audit records created by actor, ordered by created_at
// DESC with pagination.
func (r *Repo) GetByActor(ctx context.Context, actor domain.Identity, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.Builder().
		Select(columns...).
		From("audit_log").
		Where(squirrel.Eq{"actor_id": string(actor)}).
		OrderBy("created_at DESC")
	return r.list(ctx, postgres.Paginate(q, limit, offset), actor)
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder, key domain.Identity) ([]domain.AuditRecord, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "audit_record", key)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		rec, err := toDomainAuditRecord(rw)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainAuditRecord(rw row) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         rw.ID,
		ActorID:    domain.Identity(rw.ActorID),
		EntityType: domain.EntityType(rw.EntityType),
		Action:     domain.AuditAction(rw.Action),
		CreatedAt:  rw.CreatedAt,
	}

	if rw.TargetID != nil {
		id := domain.Identity(*rw.TargetID)
		record.TargetID = &id
	}

	// changes: JSONB -> map[string]any
	if len(rw.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(rw.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rw.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}
