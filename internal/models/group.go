package models

// Group represents a named set of contacts that share expenses.
//
// Group names are unique per owner (case-sensitive, exact match). Deleting a
// group cascades to its member links, expenses, splits, and settlements.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// OwnerID is the user who created the group.
	OwnerID string

	// Name is the display name of the group (e.g. "Roommates", "Ski Trip").
	Name string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// GroupMember links a contact into a group. At most one link exists per
// (group, contact) pair.
type GroupMember struct {
	GroupID   string
	ContactID string
}
