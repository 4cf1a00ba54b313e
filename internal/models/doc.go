// Package models defines the core domain models for splitledger.
//
// # Entities
//
//   - User: a registered account; the identity everything else hangs off
//   - Contact: a person in one user's address book, optionally linked to a User
//   - Group: a named set of contacts that share expenses
//   - Expense + Split: an ordinary shared cost and its per-contact shares
//   - Settlement: a recorded payment between two contacts that clears debt
//
// # Derived values
//
// MemberBalance and SettlementSuggestion are computed from stored state on
// every read and are never persisted. Balances recompute from scratch rather
// than maintaining an incremental cache; the ledger is small enough that
// correctness wins over speed here.
//
// # Design principles
//
//  1. Relationships use ID strings, not pointers, to avoid circular references
//  2. Settlements are their own entity, not flagged expenses, so the balance
//     code never has to special-case sign conventions on splits
//  3. Contacts carry an explicit LinkedUserID; no identity-string parsing
package models
