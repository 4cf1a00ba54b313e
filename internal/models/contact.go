package models

// Contact represents a person in one user's address book.
//
// A contact may or may not correspond to a registered user. When it does,
// LinkedUserID holds that user's ID; this is what lets the balance code match
// an expense's creator to a group member without any string heuristics.
type Contact struct {
	// ID is the unique identifier for the contact (UUID format).
	ID string

	// OwnerID is the user whose address book this contact lives in.
	OwnerID string

	// Name is the display name of the contact.
	Name string

	// Email is optional.
	Email string

	// Phone is optional.
	Phone string

	// LinkedUserID is the registered user this contact corresponds to,
	// or empty if the contact is not a platform user.
	// At most one contact per owner may link to a given user.
	LinkedUserID string

	// CreatedAt is the Unix timestamp when the contact was created.
	CreatedAt int64
}
