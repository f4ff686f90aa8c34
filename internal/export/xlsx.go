package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"lexdraft/internal/domain"
)

// Sheet names, in workbook order.
const (
	SheetSummary    = "Summary"
	SheetParties    = "Parties"
	SheetFinancials = "Financials"
	SheetDates      = "Dates"
	SheetClauses    = "Clauses"
	SheetWarnings   = "Warnings"
)

var (
	colField = domain.Text{En: "Field", Ar: "الحقل"}
	colValue = domain.Text{En: "Value", Ar: "القيمة"}

	partyColumns = []domain.Text{
		{En: "Name", Ar: "الاسم"},
		{En: "Type", Ar: "النوع"},
		{En: "Role", Ar: "الصفة"},
		{En: "ID Number", Ar: "رقم الهوية"},
		{En: "Nationality", Ar: "الجنسية"},
		{En: "Phone", Ar: "الهاتف"},
		{En: "Email", Ar: "البريد الإلكتروني"},
	}
	amountColumns = []domain.Text{
		{En: "Description", Ar: "الوصف"},
		{En: "Amount", Ar: "المبلغ"},
		{En: "Currency", Ar: "العملة"},
		{En: "Type", Ar: "النوع"},
		{En: "Frequency", Ar: "التكرار"},
	}
	warningColumns = []domain.Text{
		{En: "Kind", Ar: "النوع"},
		{En: "Message", Ar: "الرسالة"},
	}

	labelDocumentType = domain.Text{En: "Document Type", Ar: "نوع المستند"}
	labelConfidence   = domain.Text{En: "Confidence", Ar: "الثقة"}
	labelSummary      = domain.Text{En: "Summary", Ar: "الملخص"}
	labelJurisdiction = domain.Text{En: "Jurisdiction", Ar: "الاختصاص"}
	labelPaymentTerms = domain.Text{En: "Payment Terms", Ar: "شروط الدفع"}
	labelWarning      = domain.Text{En: "Warning", Ar: "تحذير"}
	labelNote         = domain.Text{En: "Note", Ar: "ملاحظة"}
)

// sheetWriter appends rows to one worksheet.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (s *sheetWriter) write(values ...any) {
	s.row++
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, s.row)
		_ = s.f.SetCellValue(s.sheet, cell, v)
	}
}

func (s *sheetWriter) header(cols []domain.Text, lang domain.Language) {
	values := make([]any, len(cols))
	for i, c := range cols {
		values[i] = c.In(lang)
	}
	s.write(values...)
}

// WriteXLSX writes record as a workbook with one sheet per review view.
// Labels follow lang and Arabic workbooks are laid out right to left.
func WriteXLSX(w io.Writer, record *domain.ExtractionRecord, lang domain.Language) error {
	if record == nil {
		record = &domain.ExtractionRecord{}
	}
	lang = domain.ParseLanguage(string(lang))

	f := excelize.NewFile()
	defer f.Close()

	sheets := []string{SheetSummary, SheetParties, SheetFinancials, SheetDates, SheetClauses, SheetWarnings}
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	for _, name := range sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
	}
	if lang == domain.LanguageArabic {
		rtl := true
		for _, name := range sheets {
			_ = f.SetSheetView(name, 0, &excelize.ViewOptions{RightToLeft: &rtl})
		}
	}

	writeSummary(f, record, lang)
	writeParties(f, record, lang)
	writeFinancials(f, record, lang)
	writeDates(f, record, lang)
	writeClauses(f, record, lang)
	writeWarnings(f, record, lang)

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, r *domain.ExtractionRecord, lang domain.Language) {
	s := &sheetWriter{f: f, sheet: SheetSummary}
	s.header([]domain.Text{colField, colValue}, lang)
	s.write(labelDocumentType.In(lang), r.DocumentType)
	s.write(labelConfidence.In(lang), formatPercent(r.DocumentTypeConfidence))
	s.write(labelSummary.In(lang), domain.Localize(r.Summary, r.SummaryAr, lang))
	if r.Jurisdiction != "" {
		s.write(labelJurisdiction.In(lang), r.Jurisdiction)
	}
	for _, kt := range r.KeyTerms {
		s.write(kt.Term, kt.Value)
	}
	_ = f.SetColWidth(SheetSummary, "A", "A", 28)
	_ = f.SetColWidth(SheetSummary, "B", "B", 80)
}

func writeParties(f *excelize.File, r *domain.ExtractionRecord, lang domain.Language) {
	s := &sheetWriter{f: f, sheet: SheetParties}
	s.header(partyColumns, lang)
	for _, p := range r.Parties {
		s.write(
			domain.Localize(p.Name, p.NameAr, lang),
			domain.PartyTypeStyleOf(p.Type).Label.In(lang),
			domain.RoleLabel(p.Role, lang),
			p.IDNumber,
			p.Nationality,
			p.Phone,
			p.Email,
		)
	}
	_ = f.SetColWidth(SheetParties, "A", "A", 32)
	_ = f.SetColWidth(SheetParties, "B", "F", 16)
	_ = f.SetColWidth(SheetParties, "G", "G", 28)
}

func writeFinancials(f *excelize.File, r *domain.ExtractionRecord, lang domain.Language) {
	s := &sheetWriter{f: f, sheet: SheetFinancials}
	s.header(amountColumns, lang)
	for _, a := range r.Financials.Amounts {
		s.write(a.Description, a.Value, r.Financials.Currency, a.Type, a.Frequency)
	}
	if r.Financials.PaymentTerms != "" {
		s.row++
		s.write(labelPaymentTerms.In(lang), r.Financials.PaymentTerms)
	}
	_ = f.SetColWidth(SheetFinancials, "A", "A", 40)
	_ = f.SetColWidth(SheetFinancials, "B", "E", 14)
}

func writeDates(f *excelize.File, r *domain.ExtractionRecord, lang domain.Language) {
	s := &sheetWriter{f: f, sheet: SheetDates}
	s.header([]domain.Text{colField, colValue}, lang)
	d := r.Dates
	known := []struct {
		label domain.Text
		value string
	}{
		{domain.LabelEffectiveDate, d.EffectiveDate},
		{domain.LabelStartDate, d.StartDate},
		{domain.LabelEndDate, d.EndDate},
		{domain.LabelSignatureDate, d.SignatureDate},
		{domain.LabelNoticePeriod, d.NoticePeriod},
	}
	for _, k := range known {
		if k.value != "" {
			s.write(k.label.In(lang), k.value)
		}
	}
	for _, c := range d.CustomDates {
		s.write(c.Label, c.Date)
	}
	_ = f.SetColWidth(SheetDates, "A", "B", 24)
}

func writeClauses(f *excelize.File, r *domain.ExtractionRecord, lang domain.Language) {
	s := &sheetWriter{f: f, sheet: SheetClauses}
	s.header(clauseColumns, lang)
	for i := range r.Clauses {
		row := clauseToRow(&r.Clauses[i], lang)
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		s.write(values...)
	}
	_ = f.SetColWidth(SheetClauses, "A", "B", 16)
	_ = f.SetColWidth(SheetClauses, "C", "C", 32)
	_ = f.SetColWidth(SheetClauses, "D", "D", 90)
	_ = f.SetColWidth(SheetClauses, "E", "F", 12)
}

func writeWarnings(f *excelize.File, r *domain.ExtractionRecord, lang domain.Language) {
	s := &sheetWriter{f: f, sheet: SheetWarnings}
	s.header(warningColumns, lang)
	for _, w := range r.Warnings {
		s.write(labelWarning.In(lang), w)
	}
	for _, n := range r.Notes {
		s.write(labelNote.In(lang), n)
	}
	_ = f.SetColWidth(SheetWarnings, "A", "A", 14)
	_ = f.SetColWidth(SheetWarnings, "B", "B", 90)
}
