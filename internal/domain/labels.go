package domain

import (
	"strings"
	"unicode"
)

// PartyTypeStyle is the icon and label shown for a party type.
type PartyTypeStyle struct {
	Icon  string
	Label Text
}

var partyTypeStyles = map[PartyType]PartyTypeStyle{
	PartyTypeIndividual: {Icon: "user", Label: Text{"Individual", "فرد"}},
	PartyTypeCompany:    {Icon: "building", Label: Text{"Company", "شركة"}},
}

// PartyTypeStyleOf returns the style of t. Unknown types render as individuals.
func PartyTypeStyleOf(t PartyType) PartyTypeStyle {
	if s, ok := partyTypeStyles[t]; ok {
		return s
	}
	return partyTypeStyles[PartyTypeIndividual]
}

var roleLabels = map[string]Text{
	"first_party":  {"First Party", "الطرف الأول"},
	"second_party": {"Second Party", "الطرف الثاني"},
	"third_party":  {"Third Party", "الطرف الثالث"},
	"landlord":     {"Landlord", "المؤجر"},
	"tenant":       {"Tenant", "المستأجر"},
	"lessor":       {"Lessor", "المؤجر"},
	"lessee":       {"Lessee", "المستأجر"},
	"buyer":        {"Buyer", "المشتري"},
	"seller":       {"Seller", "البائع"},
	"employer":     {"Employer", "صاحب العمل"},
	"employee":     {"Employee", "الموظف"},
	"client":       {"Client", "العميل"},
	"contractor":   {"Contractor", "المقاول"},
	"guarantor":    {"Guarantor", "الكفيل"},
	"witness":      {"Witness", "الشاهد"},
	"agent":        {"Agent", "الوكيل"},
	"principal":    {"Principal", "الموكل"},
}

// RoleLabel returns the label for a coded or free-form role.
// Unknown roles are humanized ("service_provider" -> "Service Provider").
func RoleLabel(role string, lang Language) string {
	key := strings.ToLower(strings.TrimSpace(role))
	if t, ok := roleLabels[key]; ok {
		return t.In(lang)
	}
	return humanize(role)
}

func humanize(s string) string {
	s = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(s))
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Labels of the well-known date fields.
var (
	LabelEffectiveDate = Text{"Effective Date", "تاريخ السريان"}
	LabelStartDate     = Text{"Start Date", "تاريخ البدء"}
	LabelEndDate       = Text{"End Date", "تاريخ الانتهاء"}
	LabelSignatureDate = Text{"Signature Date", "تاريخ التوقيع"}
	LabelNoticePeriod  = Text{"Notice Period", "فترة الإشعار"}
)

// EmptyStateMessage is the neutral message shown by a view without data.
var EmptyStateMessage = Text{"No data found", "لم يتم العثور على بيانات"}

var viewTitles = map[ReviewView]Text{
	ViewSummary:    {"Summary", "الملخص"},
	ViewParties:    {"Parties", "الأطراف"},
	ViewFinancials: {"Financials", "البيانات المالية"},
	ViewDates:      {"Dates", "التواريخ"},
	ViewClauses:    {"Clauses", "البنود"},
	ViewWarnings:   {"Warnings", "التحذيرات"},
}

// ViewTitle returns the tab title of v.
func ViewTitle(v ReviewView, lang Language) string {
	return viewTitles[v].In(lang)
}
