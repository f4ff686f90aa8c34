package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lexdraft/internal/domain"
	"lexdraft/internal/port"
)

type draftRow struct {
	ID           uuid.UUID       `db:"id"`
	Title        string          `db:"title"`
	DocumentType string          `db:"document_type"`
	Language     string          `db:"language"`
	Payload      json.RawMessage `db:"payload"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type draftRepo struct {
	db *sqlx.DB
}

// NewDraftRepo creates a new PostgreSQL-backed DraftRepository.
func NewDraftRepo(db *sqlx.DB) port.DraftRepository {
	return &draftRepo{db: db}
}

func (r *draftRepo) Create(ctx context.Context, d *domain.Draft) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("draftRepo.Create: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO drafts (id, title, document_type, language, payload, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Title, d.DocumentType, string(d.Language), payload, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("draftRepo.Create: %w", err)
	}
	return nil
}

func (r *draftRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	var row draftRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM drafts WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("draftRepo.GetByID: %w", err)
	}

	var d domain.Draft
	if err := json.Unmarshal(row.Payload, &d); err != nil {
		return nil, fmt.Errorf("draftRepo.GetByID: decoding payload: %w", err)
	}
	d.ID = row.ID
	d.CreatedAt = row.CreatedAt
	d.UpdatedAt = row.UpdatedAt
	return &d, nil
}

func (r *draftRepo) Update(ctx context.Context, d *domain.Draft) error {
	d.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("draftRepo.Update: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE drafts SET title = $1, document_type = $2, language = $3, payload = $4, updated_at = $5
		 WHERE id = $6`,
		d.Title, d.DocumentType, string(d.Language), payload, d.UpdatedAt, d.ID)
	if err != nil {
		return fmt.Errorf("draftRepo.Update: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("draftRepo.Update rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

func (r *draftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM drafts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("draftRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("draftRepo.Delete rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}
