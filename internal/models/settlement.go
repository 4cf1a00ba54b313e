package models

// Settlement represents a payment between two group contacts to clear debt.
//
// It is stored as its own entity rather than a flagged expense, so the
// balance calculator can apply it directly: the payer's net drops by Amount,
// the payee's net rises by Amount.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromContactID is the debtor settling up.
	FromContactID string

	// ToContactID is the creditor being paid.
	ToContactID string

	// Amount is the payment amount, rounded to 2 decimals, always positive.
	Amount float64

	// CreatedBy is the user ID who recorded this settlement. Must be linked
	// to either the debtor or the creditor contact.
	CreatedBy string

	// Note is an optional description.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
