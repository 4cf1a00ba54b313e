package models

// MemberBalance is one group member's computed position.
type MemberBalance struct {
	ContactID string
	Name      string

	// Net is owed minus paid, rounded to 2 decimals.
	// Positive = this contact owes money; negative = they are owed.
	Net float64
}

// SettlementSuggestion is a proposed transfer that moves both parties toward
// a zero net balance. Suggestions are ephemeral: they are recomputed on every
// read and only ever persisted by an explicit RecordSettlement call.
type SettlementSuggestion struct {
	FromContactID string
	FromName      string
	// FromUserID is the debtor contact's linked user, if any. Carried so the
	// caller can authorize a follow-up RecordSettlement without a re-fetch.
	FromUserID string

	ToContactID string
	ToName      string
	ToUserID    string

	Amount float64
}
