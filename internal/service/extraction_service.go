package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexdraft/internal/config"
	"lexdraft/internal/domain"
	"lexdraft/internal/extractor"
	"lexdraft/internal/logging"
	"lexdraft/internal/port"
)

// ExtractInput is the DTO for document upload requests.
type ExtractInput struct {
	File             multipart.File
	Header           *multipart.FileHeader
	DocumentTypeHint string
	Language         domain.Language
}

// ExtractionService defines the extraction contract.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.ExtractionRecord, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reextract(ctx context.Context, id uuid.UUID) (*domain.ExtractionRecord, error)
	SourceURL(ctx context.Context, id uuid.UUID) (string, error)
}

type extractionService struct {
	repo    port.ExtractionRepository
	storage port.ObjectStorage
	source  port.ExtractionSource
	cfg     *config.S3Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	repo port.ExtractionRepository,
	storage port.ObjectStorage,
	source port.ExtractionSource,
	cfg *config.S3Config,
	logger *zap.Logger,
) ExtractionService {
	return &extractionService{
		repo:    repo,
		storage: storage,
		source:  source,
		cfg:     cfg,
		logger:  logging.OrNop(logger),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// rawDocument is an uploaded document on its way to an extraction source.
type rawDocument struct {
	data        []byte
	fileName    string
	contentType string
	hint        string
	lang        domain.Language
}

func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionRecord, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte detection; the extension alone is not trusted.
	detected := http.DetectContentType(data[:min(len(data), 512)])
	if _, ok := domain.AllowedContentTypes[detected]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	return s.process(ctx, rawDocument{
		data:        data,
		fileName:    input.Header.Filename,
		contentType: detected,
		hint:        strings.TrimSpace(input.DocumentTypeHint),
		lang:        domain.ParseLanguage(string(input.Language)),
	})
}

// process stores the raw bytes, runs the extraction source and persists the
// resulting record. The stored object is removed again when a later step fails.
func (s *extractionService) process(ctx context.Context, doc rawDocument) (*domain.ExtractionRecord, error) {
	id := uuid.New()
	now := s.now()
	key := ObjectKey(id, doc.fileName, now)

	s.logger.Info("extracting document",
		zap.String("extraction_id", id.String()),
		zap.String("file_name", doc.fileName),
		zap.String("content_type", doc.contentType),
		zap.Int("size", len(doc.data)),
		zap.String("language", string(doc.lang)),
	)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(doc.data),
		ContentType: doc.contentType,
		Size:        int64(len(doc.data)),
	})
	if err != nil {
		s.logger.Error("storing raw document failed", zap.String("key", key), zap.Error(err))
		return nil, domain.ErrUploadFailed
	}

	out, err := s.source.Extract(ctx, port.ExtractInput{
		FileBytes:        doc.data,
		ContentType:      doc.contentType,
		FileName:         doc.fileName,
		DocumentTypeHint: doc.hint,
		Language:         doc.lang,
	})
	if err != nil {
		s.discardObject(ctx, key)
		var rlErr *extractor.RateLimitError
		if errors.As(err, &rlErr) {
			s.logger.Warn("extraction rate limited",
				zap.String("provider", rlErr.Provider),
				zap.Duration("retry_after", rlErr.RetryAfter))
			return nil, fmt.Errorf("%w: %w", domain.ErrExtractionBusy, err)
		}
		s.logger.Error("extraction failed", zap.String("extraction_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}
	if out == nil || out.Record == nil {
		s.discardObject(ctx, key)
		return nil, domain.ErrInvalidExtraction
	}

	record := out.Record
	record.ID = id
	record.FileName = doc.fileName
	record.FileSize = int64(len(doc.data))
	record.ContentType = doc.contentType
	record.ObjectKey = key
	record.Language = doc.lang
	if out.ModelUsed != "" {
		record.SourceModel = out.ModelUsed
	}
	record.CreatedAt = now
	record.Normalize()

	if err := s.repo.Create(ctx, record); err != nil {
		s.discardObject(ctx, key)
		return nil, fmt.Errorf("extractionService.Extract: %w", err)
	}

	s.logger.Info("document extracted",
		zap.String("extraction_id", id.String()),
		zap.String("document_type", record.DocumentType),
		zap.String("model", record.SourceModel),
		zap.Int("parties", len(record.Parties)),
		zap.Int("clauses", len(record.Clauses)),
	)
	return record, nil
}

func (s *extractionService) discardObject(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, s.cfg.Bucket, key); err != nil {
		s.logger.Warn("removing raw document failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *extractionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *extractionService) List(ctx context.Context, offset, limit int) ([]domain.ExtractionRecord, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *extractionService) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if record.ObjectKey != "" {
		s.discardObject(ctx, record.ObjectKey)
	}
	return nil
}

// Reextract runs the stored raw document through the extraction source again.
// The previous record is kept; the result is a new record with its own copy
// of the raw document.
func (s *extractionService) Reextract(ctx context.Context, id uuid.UUID) (*domain.ExtractionRecord, error) {
	prev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prev.ObjectKey == "" {
		return nil, domain.ErrSourceUnavailable
	}

	data, err := s.storage.Download(ctx, s.cfg.Bucket, prev.ObjectKey)
	if err != nil {
		s.logger.Warn("loading raw document failed",
			zap.String("extraction_id", id.String()), zap.String("key", prev.ObjectKey), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	contentType := prev.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(data[:min(len(data), 512)])
	}

	return s.process(ctx, rawDocument{
		data:        data,
		fileName:    prev.FileName,
		contentType: contentType,
		hint:        prev.DocumentType,
		lang:        prev.Language,
	})
}

func (s *extractionService) SourceURL(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if record.ObjectKey == "" {
		return "", domain.ErrSourceUnavailable
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, record.ObjectKey, s.cfg.PresignExpiry)
}
