package domain

// ClauseType is the closed category set for extracted clauses.
type ClauseType string

const (
	ClausePreamble        ClauseType = "preamble"
	ClauseRecital         ClauseType = "recital"
	ClauseDefinition      ClauseType = "definition"
	ClauseObligation      ClauseType = "obligation"
	ClauseRight           ClauseType = "right"
	ClauseTermination     ClauseType = "termination"
	ClauseConfidentiality ClauseType = "confidentiality"
	ClauseIndemnity       ClauseType = "indemnity"
	ClauseLiability       ClauseType = "liability"
	ClauseDispute         ClauseType = "dispute"
	ClauseGoverningLaw    ClauseType = "governing_law"
	ClauseSignature       ClauseType = "signature"
	ClauseWitness         ClauseType = "witness"
	ClauseSchedule        ClauseType = "schedule"
	ClauseOther           ClauseType = "other"
)

// ClauseStyle is the fixed display label and color of a clause type.
type ClauseStyle struct {
	Type  ClauseType
	Label Text
	Color string
}

var clauseStyles = map[ClauseType]ClauseStyle{
	ClausePreamble:        {ClausePreamble, Text{"Preamble", "الديباجة"}, "slate"},
	ClauseRecital:         {ClauseRecital, Text{"Recital", "التمهيد"}, "gray"},
	ClauseDefinition:      {ClauseDefinition, Text{"Definition", "التعريفات"}, "sky"},
	ClauseObligation:      {ClauseObligation, Text{"Obligation", "الالتزامات"}, "blue"},
	ClauseRight:           {ClauseRight, Text{"Right", "الحقوق"}, "green"},
	ClauseTermination:     {ClauseTermination, Text{"Termination", "الإنهاء"}, "red"},
	ClauseConfidentiality: {ClauseConfidentiality, Text{"Confidentiality", "السرية"}, "purple"},
	ClauseIndemnity:       {ClauseIndemnity, Text{"Indemnity", "التعويض"}, "orange"},
	ClauseLiability:       {ClauseLiability, Text{"Liability", "المسؤولية"}, "amber"},
	ClauseDispute:         {ClauseDispute, Text{"Dispute Resolution", "تسوية النزاعات"}, "rose"},
	ClauseGoverningLaw:    {ClauseGoverningLaw, Text{"Governing Law", "القانون الحاكم"}, "indigo"},
	ClauseSignature:       {ClauseSignature, Text{"Signature", "التوقيع"}, "emerald"},
	ClauseWitness:         {ClauseWitness, Text{"Witness", "الشهود"}, "teal"},
	ClauseSchedule:        {ClauseSchedule, Text{"Schedule", "الملاحق"}, "cyan"},
	ClauseOther:           {ClauseOther, Text{"Other", "أخرى"}, "neutral"},
}

// NormalizeClauseType maps unknown clause types to ClauseOther.
func NormalizeClauseType(t ClauseType) ClauseType {
	if _, ok := clauseStyles[t]; ok {
		return t
	}
	return ClauseOther
}

// StyleOf returns the display style for t, falling back to the "other" style.
func StyleOf(t ClauseType) ClauseStyle {
	return clauseStyles[NormalizeClauseType(t)]
}
