package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// GroupService manages groups and their membership.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// GroupSummary is a group plus its member count, for listings.
type GroupSummary struct {
	Group       *models.Group
	MemberCount int
}

// CreateGroup creates a group owned by the caller and links the initial
// contacts as members. Names are trimmed and must be unique per owner;
// a duplicate yields ErrConflict so the UI can render it inline.
func (s *GroupService) CreateGroup(ctx context.Context, name string, initialContactIDs []string) (*models.Group, error) {
	ownerID := middleware.GetUserID(ctx)
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}
	if len(initialContactIDs) == 0 {
		return nil, fmt.Errorf("%w: select at least one contact for the group", ErrInvalidInput)
	}

	existing, err := s.store.GetGroupByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: you already have a group named %q", ErrConflict, name)
	}

	contacts, err := s.store.GetContactsByIDs(ctx, initialContactIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range initialContactIDs {
		if _, ok := contacts[id]; !ok {
			return nil, fmt.Errorf("%w: contact %s", ErrNotFound, id)
		}
	}

	group := &models.Group{OwnerID: ownerID, Name: name}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	// Dedupe by linked user so the same person added under two contact
	// records only joins once.
	seen := make(map[string]bool, len(initialContactIDs))
	for _, id := range initialContactIDs {
		key := contacts[id].LinkedUserID
		if key == "" {
			key = id
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := s.store.AddGroupMember(ctx, group.ID, id); err != nil {
			return nil, err
		}
	}

	slog.Info("group created", "group_id", group.ID, "owner_id", ownerID, "members", len(seen))
	return group, nil
}

// GetGroup retrieves a group the caller can see, with its members.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, []*models.Contact, error) {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return nil, nil, ErrUnauthenticated
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}

	members, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	if !s.canSee(callerID, group, members) {
		return nil, nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}

	return group, members, nil
}

// canSee reports whether the caller owns the group or is linked to one of
// its member contacts.
func (s *GroupService) canSee(callerID string, group *models.Group, members []*models.Contact) bool {
	if group.OwnerID == callerID {
		return true
	}
	for _, m := range members {
		if m.LinkedUserID == callerID {
			return true
		}
	}
	return false
}

// ListGroups retrieves every group visible to the caller: groups they own
// plus groups where one of their linked contacts is a member. Newest first.
func (s *GroupService) ListGroups(ctx context.Context) ([]GroupSummary, error) {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	owned, err := s.store.ListGroupsByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}

	visible := make(map[string]*models.Group, len(owned))
	for _, g := range owned {
		visible[g.ID] = g
	}

	myContacts, err := s.store.ListContactsByLinkedUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	for _, c := range myContacts {
		groupIDs, err := s.store.ListGroupIDsByContact(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		for _, gid := range groupIDs {
			if _, ok := visible[gid]; ok {
				continue
			}
			g, err := s.store.GetGroup(ctx, gid)
			if err != nil {
				return nil, err
			}
			visible[gid] = g
		}
	}

	summaries := make([]GroupSummary, 0, len(visible))
	for _, g := range visible {
		members, err := s.store.ListGroupMembers(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, GroupSummary{Group: g, MemberCount: len(members)})
	}

	// Newest first; ID breaks creation-time ties deterministically.
	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i].Group, summaries[j].Group
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt > b.CreatedAt
		}
		return a.ID < b.ID
	})

	return summaries, nil
}

// AddMember links a contact into a group. Adding an existing member is a
// no-op.
func (s *GroupService) AddMember(ctx context.Context, groupID, contactID string) error {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return ErrUnauthenticated
	}

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	if _, err := s.store.GetContact(ctx, contactID); err != nil {
		return fmt.Errorf("%w: contact %s", ErrNotFound, contactID)
	}

	return s.store.AddGroupMember(ctx, groupID, contactID)
}

// RemoveMember unlinks a contact from a group. Historical splits for the
// contact survive removal.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, contactID string) error {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return ErrUnauthenticated
	}

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}

	return s.store.RemoveGroupMember(ctx, groupID, contactID)
}

// DeleteGroup removes a group and everything under it. Owner only.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID string) error {
	callerID := middleware.GetUserID(ctx)
	if callerID == "" {
		return ErrUnauthenticated
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	if group.OwnerID != callerID {
		return fmt.Errorf("%w: only the owner can delete a group", ErrUnauthorized)
	}

	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", groupID, "error", err)
		return err
	}

	slog.Info("group deleted", "group_id", groupID, "owner_id", callerID)
	return nil
}
