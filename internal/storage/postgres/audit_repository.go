package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mealdesk/admin-gateway/internal/audit"
)

// AuditRepository implements the audit.Repository interface using PostgreSQL
type AuditRepository struct {
	db *pgxpool.Pool
}

var _ audit.Repository = (*AuditRepository)(nil)

// Get retrieves multiple audit entries, newest first
func (repo *AuditRepository) Get(ctx context.Context, offset, limit uint64) ([]*audit.Entry, uint64, error) {
	query := squirrel.Select(
		"entry_id",
		"actor_id",
		"resource",
		"action",
		"target_id",
		"succeeded",
		"message",
		"created_at",
	).From("audit_entries").OrderBy("created_at DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	} else {
		query = query.Limit(10)
	}
	sql, vals, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var n uint64
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM audit_entries").Scan(&n); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return []*audit.Entry{}, 0, nil
	}

	rows, err := repo.db.Query(ctx, sql, vals...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*audit.Entry{}, n, nil
		}
		return nil, 0, err
	}

	entries := []*audit.Entry{}
	for rows.Next() {
		obj := new(audit.Entry)
		err = rows.Scan(
			&obj.ID,
			&obj.ActorID,
			&obj.Resource,
			&obj.Action,
			&obj.TargetID,
			&obj.Succeeded,
			&obj.Message,
			&obj.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, n, nil
}

// GetByID retrieves an audit entry by its ID
func (repo *AuditRepository) GetByID(ctx context.Context, id uuid.UUID) (*audit.Entry, error) {
	row := repo.db.QueryRow(
		ctx,
		"SELECT entry_id, actor_id, resource, action, target_id, succeeded, message, created_at FROM audit_entries WHERE entry_id = $1",
		id,
	)

	obj := new(audit.Entry)
	err := row.Scan(
		&obj.ID,
		&obj.ActorID,
		&obj.Resource,
		&obj.Action,
		&obj.TargetID,
		&obj.Succeeded,
		&obj.Message,
		&obj.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Record persists a new audit entry
func (repo *AuditRepository) Record(ctx context.Context, create *audit.Create) (*audit.Entry, error) {
	entry := &audit.Entry{
		ID:        uuid.New(),
		ActorID:   create.ActorID,
		Resource:  create.Resource,
		Action:    create.Action,
		TargetID:  create.TargetID,
		Succeeded: create.Succeeded,
		Message:   create.Message,
		CreatedAt: time.Now().Unix(),
	}

	_, err := repo.db.Exec(
		ctx,
		"INSERT INTO audit_entries VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		entry.ID,
		entry.ActorID,
		entry.Resource,
		entry.Action,
		entry.TargetID,
		entry.Succeeded,
		entry.Message,
		entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
