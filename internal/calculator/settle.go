package calculator

import (
	"sort"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/money"
)

// party is one side of the debtor/creditor matching, tracked by positive
// remaining magnitude regardless of sign.
type party struct {
	contactID string
	name      string
	userID    string
	remaining float64
}

// SuggestSettlements reduces the members' net balances to a short list of
// transfers that would bring everyone to (approximately) zero.
//
// Greedy matching: partition members into debtors (net > 0) and creditors
// (net < 0, held as positive magnitude), sort both descending by magnitude,
// then repeatedly pair the largest remaining debtor with the largest
// remaining creditor for min(debt, credit). Largest-first isn't provably
// minimal in transfer count, but it's deterministic and close in practice.
// Sorting is stable so ties keep the balances' original order.
//
// Balances within money.Epsilon of zero are treated as settled and skipped,
// and no transfer smaller than Epsilon is ever suggested.
func SuggestSettlements(members []models.Contact, balances []models.MemberBalance) []models.SettlementSuggestion {
	userByContact := make(map[string]string, len(members))
	for _, m := range members {
		userByContact[m.ID] = m.LinkedUserID
	}

	var debtors, creditors []party
	for _, b := range balances {
		net := money.Round(b.Net)
		p := party{
			contactID: b.ContactID,
			name:      b.Name,
			userID:    userByContact[b.ContactID],
		}
		switch {
		case net > money.Epsilon:
			p.remaining = net
			debtors = append(debtors, p)
		case net < -money.Epsilon:
			p.remaining = -net
			creditors = append(creditors, p)
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].remaining > debtors[j].remaining
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].remaining > creditors[j].remaining
	})

	var suggestions []models.SettlementSuggestion
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]

		amount := d.remaining
		if c.remaining < amount {
			amount = c.remaining
		}
		amount = money.Round(amount)
		if amount < money.Epsilon {
			break
		}

		suggestions = append(suggestions, models.SettlementSuggestion{
			FromContactID: d.contactID,
			FromName:      d.name,
			FromUserID:    d.userID,
			ToContactID:   c.contactID,
			ToName:        c.name,
			ToUserID:      c.userID,
			Amount:        amount,
		})

		d.remaining -= amount
		c.remaining -= amount
		if d.remaining <= money.Epsilon {
			i++
		}
		if c.remaining <= money.Epsilon {
			j++
		}
	}

	return suggestions
}
