// Package calculator computes group balances and settlement suggestions.
//
// Everything here is a pure function of its inputs: the service layer fetches
// the group's contacts, expenses, and settlements, and the calculator turns
// them into derived values without touching storage.
package calculator

import (
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/money"
)

// ComputeBalances aggregates a group's expenses, splits, and settlements into
// a net balance per member.
//
// Algorithm:
//   - Each split share adds to that contact's owed total.
//   - Each expense credits its payer (the member whose LinkedUserID matches
//     the expense creator) with the full amount toward their paid total.
//   - Each settlement moves Amount from the debtor's net to the creditor's.
//   - net = owed - paid. Positive means the member owes money.
//
// Splits for contacts that have since left the group keep accumulating under
// that contact's ID; they simply aren't reported until the contact is a
// member again. Members with no activity report a zero net. The result is
// ordered like the members slice, so repeated calls over unchanged state are
// identical.
func ComputeBalances(members []models.Contact, expenses []models.Expense, settlements []models.Settlement) []models.MemberBalance {
	owed := make(map[string]float64, len(members))
	paid := make(map[string]float64, len(members))

	// Map each member's linked user to their contact for payer matching.
	contactByUser := make(map[string]string, len(members))
	for _, m := range members {
		owed[m.ID] = 0
		paid[m.ID] = 0
		if m.LinkedUserID != "" {
			contactByUser[m.LinkedUserID] = m.ID
		}
	}

	for _, e := range expenses {
		for _, s := range e.Splits {
			owed[s.ContactID] += s.Share
		}
		if payer, ok := contactByUser[e.CreatedBy]; ok {
			paid[payer] += e.Amount
		}
	}

	// A settlement is the debtor paying the creditor directly: the debtor's
	// net drops, the creditor's rises back toward zero.
	net := make(map[string]float64, len(members))
	for id := range owed {
		net[id] = owed[id] - paid[id]
	}
	for _, s := range settlements {
		net[s.FromContactID] -= s.Amount
		net[s.ToContactID] += s.Amount
	}

	balances := make([]models.MemberBalance, 0, len(members))
	for _, m := range members {
		balances = append(balances, models.MemberBalance{
			ContactID: m.ID,
			Name:      m.Name,
			Net:       money.Round(net[m.ID]),
		})
	}
	return balances
}
