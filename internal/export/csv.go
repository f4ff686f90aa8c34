// Package export renders extraction records as spreadsheet downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lexdraft/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var clauseColumns = []domain.Text{
	{En: "Clause ID", Ar: "رقم البند"},
	{En: "Type", Ar: "النوع"},
	{En: "Title", Ar: "العنوان"},
	{En: "Content", Ar: "النص"},
	{En: "Importance", Ar: "الأهمية"},
	{En: "Confidence", Ar: "الثقة"},
}

// Writer wraps csv.Writer for exporting the clause table of a record.
type Writer struct {
	csv  *csv.Writer
	lang domain.Language
}

// NewWriter creates a Writer that writes CSV to w with headers and labels in lang.
func NewWriter(w io.Writer, lang domain.Language) *Writer {
	return &Writer{csv: csv.NewWriter(w), lang: lang}
}

// WriteHeader writes the clause header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(localizeAll(clauseColumns, w.lang))
}

// WriteClauses writes one row per clause in record order.
func (w *Writer) WriteClauses(clauses []domain.ExtractedClause) error {
	for i := range clauses {
		if err := w.csv.Write(clauseToRow(&clauses[i], w.lang)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, the header and every clause of record.
func WriteCSV(out io.Writer, record *domain.ExtractionRecord, lang domain.Language) error {
	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	w := NewWriter(out, lang)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	if record != nil {
		if err := w.WriteClauses(record.Clauses); err != nil {
			return fmt.Errorf("export.WriteCSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

func clauseToRow(c *domain.ExtractedClause, lang domain.Language) []string {
	return []string{
		c.ID,
		domain.StyleOf(c.Type).Label.In(lang),
		domain.Localize(c.Title, c.TitleAr, lang),
		c.Content,
		string(c.Importance),
		formatPercent(c.Confidence),
	}
}

func localizeAll(texts []domain.Text, lang domain.Language) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = t.In(lang)
	}
	return out
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 0, 64) + "%"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns the download name of an export:
// {sanitized source name without extension}_{YYYY-MM-DD}.{ext}.
func BuildFilename(sourceName, ext string, now time.Time) string {
	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	sanitized := SanitizeFilename(base)
	if sanitized == "" {
		sanitized = "extraction"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), ext)
}
