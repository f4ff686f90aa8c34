package port

import "lexdraft/internal/domain"

// DraftConsumer receives items applied from a review session.
// Calls are fire-and-forget: the caller neither waits for nor observes the outcome,
// and the same item may be delivered any number of times in any order.
type DraftConsumer interface {
	UseParty(party domain.ExtractedParty, role domain.PartyRole)
	UseClause(clause domain.ExtractedClause)
	UseAmount(value float64, description string)
	UseDates(dates domain.DateRange)
}

// Clipboard receives copied clause text.
type Clipboard interface {
	WriteText(text string) error
}
