package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/splitledger/splitledger/internal/calculator"
	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/money"
	"github.com/splitledger/splitledger/internal/storage"
)

// SettlementService exposes the balance and settlement engine: computing who
// owes whom, reducing that to suggested transfers, and recording agreed
// payments back into the ledger.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a SettlementService with the given storage
// backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// fetchLedger loads everything the calculator needs for a group in one
// place. Each call reads a consistent snapshot; balances are recomputed from
// scratch on every request rather than cached.
func (s *SettlementService) fetchLedger(ctx context.Context, groupID string) ([]models.Contact, []models.Expense, []models.Settlement, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}

	memberPtrs, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	members := make([]models.Contact, len(memberPtrs))
	for i, m := range memberPtrs {
		members[i] = *m
	}

	expensePtrs, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	expenses := make([]models.Expense, len(expensePtrs))
	for i, e := range expensePtrs {
		expenses[i] = *e
	}

	settlementPtrs, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	settlements := make([]models.Settlement, len(settlementPtrs))
	for i, st := range settlementPtrs {
		settlements[i] = *st
	}

	return members, expenses, settlements, nil
}

// ComputeBalances returns every member's net balance for the group.
// Positive net means the member owes money.
func (s *SettlementService) ComputeBalances(ctx context.Context, groupID string) ([]models.MemberBalance, error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, ErrUnauthenticated
	}

	members, expenses, settlements, err := s.fetchLedger(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return calculator.ComputeBalances(members, expenses, settlements), nil
}

// SuggestSettlements returns the transfers that would settle the group,
// fewest first by the greedy largest-first matching.
func (s *SettlementService) SuggestSettlements(ctx context.Context, groupID string) ([]models.SettlementSuggestion, error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, ErrUnauthenticated
	}

	members, expenses, settlements, err := s.fetchLedger(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances := calculator.ComputeBalances(members, expenses, settlements)
	return calculator.SuggestSettlements(members, balances), nil
}

// RecordSettlement writes an agreed transfer into the ledger. The caller
// must be linked to either the debtor or the creditor contact. The write is
// atomic; on any validation failure nothing is stored.
//
// Recording the same settlement twice creates two independent ledger
// entries. There is deliberately no deduplication; callers that need
// stronger guarantees must not retry blindly.
func (s *SettlementService) RecordSettlement(ctx context.Context, groupID, fromContactID, toContactID string, amount float64, note string) (*models.Settlement, error) {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if fromContactID == toContactID {
		return nil, fmt.Errorf("%w: a contact cannot settle with themselves", ErrInvalidInput)
	}

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}

	from, err := s.store.GetContact(ctx, fromContactID)
	if err != nil {
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, fromContactID)
	}
	to, err := s.store.GetContact(ctx, toContactID)
	if err != nil {
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, toContactID)
	}

	if from.LinkedUserID != callerID && to.LinkedUserID != callerID {
		return nil, fmt.Errorf("%w: only a party to the settlement can record it", ErrUnauthorized)
	}

	rounded := money.Round(amount)
	if note == "" {
		note = fmt.Sprintf("%s paid %s %.2f", from.Name, to.Name, rounded)
	}

	settlement := &models.Settlement{
		GroupID:       groupID,
		FromContactID: fromContactID,
		ToContactID:   toContactID,
		Amount:        rounded,
		CreatedBy:     callerID,
		Note:          note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("settlement recorded", "settlement_id", settlement.ID,
		"group_id", groupID, "from", fromContactID, "to", toContactID, "amount", rounded)
	return settlement, nil
}
