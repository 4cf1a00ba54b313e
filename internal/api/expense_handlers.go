package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/service"
)

type shareInput struct {
	ContactID string  `json:"contact_id" validate:"required"`
	Share     float64 `json:"share" validate:"gte=0"`
}

// createExpenseRequest covers both split modes; "equal" uses Total, "custom"
// uses Shares.
type createExpenseRequest struct {
	Mode        string       `json:"mode" validate:"required,oneof=equal custom"`
	Description string       `json:"description" validate:"required"`
	Total       float64      `json:"total"`
	Shares      []shareInput `json:"shares" validate:"dive"`
	Category    string       `json:"category" validate:"omitempty,max=64"`
}

type splitResponse struct {
	ContactID string  `json:"contact_id"`
	Share     float64 `json:"share"`
}

type expenseResponse struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"group_id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   int64           `json:"created_at"`
	Splits      []splitResponse `json:"splits"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	resp := expenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
	for _, s := range e.Splits {
		resp.Splits = append(resp.Splits, splitResponse{ContactID: s.ContactID, Share: s.Share})
	}
	return resp
}

func (a *API) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	var req createExpenseRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	var (
		expense *models.Expense
		err     error
	)
	switch req.Mode {
	case "equal":
		expense, err = a.expenses.CreateEqualSplitExpense(r.Context(), groupID, req.Description, req.Total, req.Category)
	case "custom":
		shares := make([]models.ShareInput, len(req.Shares))
		for i, sh := range req.Shares {
			shares[i] = models.ShareInput{ContactID: sh.ContactID, Share: sh.Share}
		}
		expense, err = a.expenses.CreateCustomSplitExpense(r.Context(), groupID, req.Description, shares, req.Category)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (a *API) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	var (
		expenses []*models.Expense
		err      error
	)
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, convErr := strconv.Atoi(limitParam)
		if convErr != nil || limit <= 0 {
			respondServiceError(w, service.ErrInvalidInput)
			return
		}
		expenses, err = a.expenses.RecentExpenses(r.Context(), groupID, limit)
	} else {
		expenses, err = a.expenses.ListExpenses(r.Context(), groupID)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	respondJSON(w, http.StatusOK, out)
}

type categoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

func (a *API) handleCategoryTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := a.expenses.CategoryTotals(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]categoryTotalResponse, len(totals))
	for i, t := range totals {
		out[i] = categoryTotalResponse{Category: t.Category, Total: t.Total}
	}
	respondJSON(w, http.StatusOK, out)
}
