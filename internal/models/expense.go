package models

// Expense represents a shared cost attributed to a group.
//
// Expenses are immutable once written: they are created via an equal or
// custom split and only ever removed by group deletion.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group the expense belongs to.
	GroupID string

	// CreatedBy is the user ID of the member who logged (and paid) the
	// expense. The balance calculator matches it against each member
	// contact's LinkedUserID to credit the payer.
	CreatedBy string

	// Description is the human-readable label (e.g. "Dinner").
	Description string

	// Amount is the total cost, rounded to 2 decimals. It always equals the
	// sum of the expense's split shares.
	Amount float64

	// Category is optional (e.g. "Food", "Travel").
	Category string

	// CreatedAt is the Unix timestamp when the expense was logged.
	CreatedAt int64

	// Splits are the per-contact shares. Populated on reads that need them.
	Splits []Split
}

// Split is one contact's share of an expense. Shares are always >= 0 and sum
// to the expense amount.
type Split struct {
	ExpenseID string
	ContactID string
	Share     float64
}

// ShareInput names a contact's share when creating a custom-split expense.
type ShareInput struct {
	ContactID string
	Share     float64
}

// CategoryTotal is an aggregate of a group's spending in one category.
type CategoryTotal struct {
	Category string
	Total    float64
}
