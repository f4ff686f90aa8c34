package extractor

import (
	"strings"

	"lexdraft/internal/domain"
)

// BuildLegalExtractionPrompt returns the extraction prompt for legal documents.
// hint is an optional document type suggested by the uploader.
func BuildLegalExtractionPrompt(hint string, lang domain.Language) string {
	var b strings.Builder
	b.WriteString(`You are a legal document extraction assistant. Analyze the provided document`)
	if hint = strings.TrimSpace(hint); hint != "" {
		b.WriteString(` (the uploader believes it is a "` + hint + `")`)
	}
	b.WriteString(` and extract its content into the JSON structure below.

IMPORTANT INSTRUCTIONS:
- The document may be written in English, Arabic, or both. Keep text in its original language.
- When a name, title or summary exists in both languages, put the English form in the plain field and the Arabic form in the matching "Ar" field. Leave the "Ar" field empty otherwise.
- Extract EVERY clause in document order. Give each clause a stable id ("clause-1", "clause-2", ...).
- Clause "type" must be one of: preamble, recital, definition, obligation, right, termination, confidentiality, indemnity, liability, dispute, governing_law, signature, witness, schedule, other.
- Clause "importance" must be one of: critical, high, medium, low.
- Party "type" must be "individual" or "company".
- Keep dates exactly as written in the document. Do not invent dates.
- Confidence values are floats between 0.0 and 1.0.
- Record anything ambiguous, missing or suspicious in "warnings".

Return ONLY valid JSON with no markdown formatting, no code fences and no explanation.

{
  "documentType": "",
  "documentTypeConfidence": 0,
  "summary": "",
  "summaryAr": "",
  "jurisdiction": "",
  "keyTerms": [{"term": "", "value": ""}],
  "parties": [
    {"name": "", "nameAr": "", "type": "individual", "role": "", "idNumber": "", "nationality": "", "phone": "", "email": ""}
  ],
  "financials": {
    "currency": "",
    "amounts": [{"value": 0, "description": "", "type": "", "frequency": ""}],
    "paymentTerms": ""
  },
  "dates": {
    "effectiveDate": "", "startDate": "", "endDate": "", "signatureDate": "", "noticePeriod": "",
    "customDates": [{"label": "", "date": ""}]
  },
  "clauses": [
    {"id": "clause-1", "title": "", "titleAr": "", "type": "other", "content": "", "importance": "medium", "confidence": 0}
  ],
  "warnings": [],
  "notes": []
}

Use empty strings, empty arrays and 0 for anything not present in the document.`)
	if lang == domain.LanguageArabic {
		b.WriteString("\nWrite \"warnings\" and \"notes\" in Arabic.")
	}
	return b.String()
}
