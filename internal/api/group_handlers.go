package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/splitledger/internal/models"
)

type createGroupRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=128"`
	ContactIDs []string `json:"contact_ids" validate:"required,min=1,dive,required"`
}

type addMemberRequest struct {
	ContactID string `json:"contact_id" validate:"required"`
}

type groupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OwnerID     string `json:"owner_id"`
	CreatedAt   int64  `json:"created_at"`
	MemberCount int    `json:"member_count,omitempty"`
}

type groupDetailResponse struct {
	groupResponse
	Members []contactResponse `json:"members"`
}

func toGroupResponse(g *models.Group) groupResponse {
	return groupResponse{
		ID:        g.ID,
		Name:      g.Name,
		OwnerID:   g.OwnerID,
		CreatedAt: g.CreatedAt,
	}
}

func (a *API) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	group, err := a.groups.CreateGroup(r.Context(), req.Name, req.ContactIDs)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toGroupResponse(group))
}

func (a *API) handleListGroups(w http.ResponseWriter, r *http.Request) {
	summaries, err := a.groups.ListGroups(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]groupResponse, len(summaries))
	for i, s := range summaries {
		out[i] = toGroupResponse(s.Group)
		out[i].MemberCount = s.MemberCount
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *API) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, members, err := a.groups.GetGroup(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := groupDetailResponse{groupResponse: toGroupResponse(group)}
	resp.MemberCount = len(members)
	resp.Members = make([]contactResponse, len(members))
	for i, m := range members {
		resp.Members[i] = toContactResponse(m)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (a *API) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := a.groups.DeleteGroup(r.Context(), chi.URLParam(r, "groupID")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	if err := a.groups.AddMember(r.Context(), chi.URLParam(r, "groupID"), req.ContactID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	contactID := chi.URLParam(r, "contactID")

	if err := a.groups.RemoveMember(r.Context(), groupID, contactID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
