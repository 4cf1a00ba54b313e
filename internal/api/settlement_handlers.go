package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/splitledger/internal/models"
)

type recordSettlementRequest struct {
	FromContactID string  `json:"from_contact_id" validate:"required"`
	ToContactID   string  `json:"to_contact_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	Note          string  `json:"note" validate:"omitempty,max=256"`
}

type balanceResponse struct {
	ContactID string  `json:"contact_id"`
	Name      string  `json:"name"`
	Net       float64 `json:"net"`
}

type suggestionResponse struct {
	FromContactID string  `json:"from_contact_id"`
	FromName      string  `json:"from_name"`
	FromUserID    string  `json:"from_user_id,omitempty"`
	ToContactID   string  `json:"to_contact_id"`
	ToName        string  `json:"to_name"`
	ToUserID      string  `json:"to_user_id,omitempty"`
	Amount        float64 `json:"amount"`
}

type settlementResponse struct {
	ID            string  `json:"id"`
	GroupID       string  `json:"group_id"`
	FromContactID string  `json:"from_contact_id"`
	ToContactID   string  `json:"to_contact_id"`
	Amount        float64 `json:"amount"`
	Note          string  `json:"note,omitempty"`
	CreatedBy     string  `json:"created_by"`
	CreatedAt     int64   `json:"created_at"`
}

func toSettlementResponse(s *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:            s.ID,
		GroupID:       s.GroupID,
		FromContactID: s.FromContactID,
		ToContactID:   s.ToContactID,
		Amount:        s.Amount,
		Note:          s.Note,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
	}
}

func (a *API) handleBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := a.settlements.ComputeBalances(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]balanceResponse, len(balances))
	for i, b := range balances {
		out[i] = balanceResponse{ContactID: b.ContactID, Name: b.Name, Net: b.Net}
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) handleSuggestSettlements(w http.ResponseWriter, r *http.Request) {
	suggestions, err := a.settlements.SuggestSettlements(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]suggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = suggestionResponse{
			FromContactID: s.FromContactID,
			FromName:      s.FromName,
			FromUserID:    s.FromUserID,
			ToContactID:   s.ToContactID,
			ToName:        s.ToName,
			ToUserID:      s.ToUserID,
			Amount:        s.Amount,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) handleRecordSettlement(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	var req recordSettlementRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	settlement, err := a.settlements.RecordSettlement(r.Context(), groupID,
		req.FromContactID, req.ToContactID, req.Amount, req.Note)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toSettlementResponse(settlement))
}
