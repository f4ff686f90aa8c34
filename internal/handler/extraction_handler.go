package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexdraft/internal/domain"
	"lexdraft/internal/export"
	"lexdraft/internal/middleware"
	"lexdraft/internal/service"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// ExtractionHandler handles document upload, extraction and export endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// Upload handles POST /api/v1/extractions
// @Summary Upload and extract a legal document
// @Description Upload a document (PDF, JPG, PNG) and extract parties, financials, dates and clauses
// @Tags extractions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to extract (PDF, JPG, or PNG)"
// @Param document_type formData string false "Document type hint" example(lease)
// @Param language formData string false "Preferred output language (en or ar)"
// @Success 201 {object} Response{data=domain.ExtractionRecord} "Extraction record"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 429 {object} ErrorResponseBody "Extraction providers rate limited"
// @Failure 502 {object} ErrorResponseBody "Extraction failed"
// @Router /extractions [post]
func (h *ExtractionHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.ExtractInput{
		File:             file,
		Header:           header,
		DocumentTypeHint: c.PostForm("document_type"),
		Language:         domain.ParseLanguage(c.PostForm("language")),
	}

	record, err := h.extractionService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// List handles GET /api/v1/extractions
// @Summary List extraction records
// @Description List extraction records, newest first, with pagination
// @Tags extractions
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ExtractionRecord,meta=PagMeta} "List of extraction records"
// @Router /extractions [get]
func (h *ExtractionHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	records, total, err := h.extractionService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/extractions/:id
// @Summary Get an extraction record
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Success 200 {object} Response{data=domain.ExtractionRecord} "Extraction record"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Extraction not found"
// @Router /extractions/{id} [get]
func (h *ExtractionHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id", "extraction")
	if !ok {
		return
	}

	record, err := h.extractionService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Delete handles DELETE /api/v1/extractions/:id
// @Summary Delete an extraction record
// @Description Delete an extraction record and its stored source document
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Success 200 {object} Response "Extraction deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Extraction not found"
// @Router /extractions/{id} [delete]
func (h *ExtractionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "extraction")
	if !ok {
		return
	}

	if err := h.extractionService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "extraction deleted"})
}

// Reextract handles POST /api/v1/extractions/:id/reextract
// @Summary Re-extract a stored document
// @Description Run extraction again on the stored source document; produces a new record
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Success 201 {object} Response{data=domain.ExtractionRecord} "New extraction record"
// @Failure 404 {object} ErrorResponseBody "Extraction not found"
// @Failure 410 {object} ErrorResponseBody "Source document no longer available"
// @Failure 429 {object} ErrorResponseBody "Extraction providers rate limited"
// @Router /extractions/{id}/reextract [post]
func (h *ExtractionHandler) Reextract(c *gin.Context) {
	id, ok := parseID(c, "id", "extraction")
	if !ok {
		return
	}

	record, err := h.extractionService.Reextract(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// Source handles GET /api/v1/extractions/:id/source
// @Summary Get a download URL for the source document
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Success 200 {object} Response{data=SourceURLResponse} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "Extraction not found"
// @Failure 410 {object} ErrorResponseBody "Source document no longer available"
// @Router /extractions/{id}/source [get]
func (h *ExtractionHandler) Source(c *gin.Context) {
	id, ok := parseID(c, "id", "extraction")
	if !ok {
		return
	}

	url, err := h.extractionService.SourceURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, SourceURLResponse{URL: url})
}

// Export handles GET /api/v1/extractions/:id/export
// @Summary Export an extraction record
// @Description Download the record as an Excel workbook (one sheet per view) or the clause table as CSV
// @Tags extractions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param id path string true "Extraction ID"
// @Param format query string false "xlsx or csv" default(xlsx)
// @Param language query string false "Label language (en or ar); defaults to Accept-Language"
// @Success 200 {file} file "Export file"
// @Failure 400 {object} ErrorResponseBody "Invalid ID or format"
// @Failure 404 {object} ErrorResponseBody "Extraction not found"
// @Router /extractions/{id}/export [get]
func (h *ExtractionHandler) Export(c *gin.Context) {
	id, ok := parseID(c, "id", "extraction")
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
		return
	}

	record, err := h.extractionService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	lang := requestLanguage(c, record.Language)

	var buf bytes.Buffer
	contentType := contentTypeXLSX
	if format == "csv" {
		contentType = contentTypeCSV
		err = export.WriteCSV(&buf, record, lang)
	} else {
		err = export.WriteXLSX(&buf, record, lang)
	}
	if err != nil {
		middleware.LoggerFrom(c).Error("export failed",
			zap.String("extraction_id", id.String()),
			zap.String("format", format),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to build export file")
		return
	}

	filename := export.BuildFilename(record.FileName, format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
