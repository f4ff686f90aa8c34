package extractor_test

const sampleRecordJSON = `{
  "documentType": "lease",
  "documentTypeConfidence": 1.4,
  "summary": "Residential lease",
  "summaryAr": "عقد إيجار سكني",
  "keyTerms": [{"term": "Rent", "value": "5000"}, {"term": "Rent", "value": "5500"}],
  "parties": [
    {"name": "Ahmed Ali", "nameAr": "أحمد علي", "type": "Individual", "role": "landlord"},
    {"name": "Acme LLC", "type": "partnership", "role": "tenant"}
  ],
  "financials": {"currency": "SAR", "amounts": [{"value": 5000, "description": "Monthly rent", "type": "rent", "frequency": "monthly"}]},
  "dates": {"startDate": "2024-01-01", "endDate": "2024-12-31"},
  "clauses": [
    {"id": "c-term", "title": "Termination", "type": "termination", "content": "Either party may terminate.", "importance": "CRITICAL", "confidence": 0.8},
    {"title": "Misc", "type": "boilerplate", "content": "Other terms.", "confidence": -0.2}
  ],
  "warnings": ["Missing witness signature"]
}`
