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

// extractionRow is the table layout; the full record lives in payload.
type extractionRow struct {
	ID                     uuid.UUID       `db:"id"`
	FileName               string          `db:"file_name"`
	FileSize               int64           `db:"file_size"`
	ContentType            string          `db:"content_type"`
	ObjectKey              string          `db:"object_key"`
	DocumentType           string          `db:"document_type"`
	DocumentTypeConfidence float64         `db:"document_type_confidence"`
	Language               string          `db:"language"`
	SourceModel            string          `db:"source_model"`
	Payload                json.RawMessage `db:"payload"`
	CreatedAt              time.Time       `db:"created_at"`
}

func (row *extractionRow) toDomain() (*domain.ExtractionRecord, error) {
	var rec domain.ExtractionRecord
	if err := json.Unmarshal(row.Payload, &rec); err != nil {
		return nil, err
	}
	rec.ID = row.ID
	rec.FileName = row.FileName
	rec.FileSize = row.FileSize
	rec.ContentType = row.ContentType
	rec.ObjectKey = row.ObjectKey
	rec.DocumentType = row.DocumentType
	rec.DocumentTypeConfidence = row.DocumentTypeConfidence
	rec.Language = domain.Language(row.Language)
	rec.SourceModel = row.SourceModel
	rec.CreatedAt = row.CreatedAt
	rec.Normalize()
	return &rec, nil
}

type extractionRepo struct {
	db *sqlx.DB
}

// NewExtractionRepo creates a new PostgreSQL-backed ExtractionRepository.
func NewExtractionRepo(db *sqlx.DB) port.ExtractionRepository {
	return &extractionRepo{db: db}
}

func (r *extractionRepo) Create(ctx context.Context, rec *domain.ExtractionRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now().UTC()
	rec.Normalize()

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("extractionRepo.Create: %w", err)
	}

	query := `INSERT INTO extraction_records (
		id, file_name, file_size, content_type, object_key,
		document_type, document_type_confidence, language, source_model,
		payload, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.FileName, rec.FileSize, rec.ContentType, rec.ObjectKey,
		rec.DocumentType, rec.DocumentTypeConfidence, string(rec.Language), rec.SourceModel,
		payload, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("extractionRepo.Create: %w", err)
	}
	return nil
}

func (r *extractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRecord, error) {
	var row extractionRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM extraction_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExtractionNotFound
		}
		return nil, fmt.Errorf("extractionRepo.GetByID: %w", err)
	}
	rec, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("extractionRepo.GetByID: decoding payload: %w", err)
	}
	return rec, nil
}

func (r *extractionRepo) List(ctx context.Context, offset, limit int) ([]domain.ExtractionRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM extraction_records"); err != nil {
		return nil, 0, fmt.Errorf("extractionRepo.List count: %w", err)
	}

	var rows []extractionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM extraction_records ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("extractionRepo.List: %w", err)
	}

	records := make([]domain.ExtractionRecord, 0, len(rows))
	for i := range rows {
		rec, err := rows[i].toDomain()
		if err != nil {
			return nil, 0, fmt.Errorf("extractionRepo.List: decoding %s: %w", rows[i].ID, err)
		}
		records = append(records, *rec)
	}
	return records, total, nil
}

func (r *extractionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM extraction_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("extractionRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("extractionRepo.Delete rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrExtractionNotFound
	}
	return nil
}
