package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/splitledger/internal/models"
)

type createContactRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=128"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	LinkedUserID string `json:"linked_user_id"`
}

type contactResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LinkedUserID string `json:"linked_user_id,omitempty"`
	CreatedAt    int64  `json:"created_at"`
}

func toContactResponse(c *models.Contact) contactResponse {
	return contactResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		LinkedUserID: c.LinkedUserID,
		CreatedAt:    c.CreatedAt,
	}
}

func (a *API) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := a.contacts.CreateContact(r.Context(), req.Name, req.Email, req.Phone, req.LinkedUserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toContactResponse(contact))
}

func (a *API) handleGetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := a.contacts.GetContact(r.Context(), chi.URLParam(r, "contactID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toContactResponse(contact))
}

func (a *API) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := a.contacts.ListContacts(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]contactResponse, len(contacts))
	for i, c := range contacts {
		out[i] = toContactResponse(c)
	}
	respondJSON(w, http.StatusOK, out)
}
