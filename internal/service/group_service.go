package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// GroupService manages groups and their member lists.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// Create creates a new group owned by the given user. The owner becomes the
// first member.
func (s *GroupService) Create(ctx context.Context, name, owner string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	owner = strings.TrimSpace(owner)
	if name == "" || owner == "" {
		return nil, fmt.Errorf("%w: group name and username required", ErrValidation)
	}

	if _, err := s.store.GetUser(ctx, owner); err != nil {
		return nil, err
	}

	group := &models.Group{Name: name, Owner: owner, Members: []string{owner}}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "owner", owner)
	return group, nil
}

// ListForUser retrieves every group the user belongs to.
func (s *GroupService) ListForUser(ctx context.Context, username string) ([]*models.Group, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return nil, err
	}
	return s.store.ListGroupsByUser(ctx, username)
}

// AddMember adds an existing user to a group.
func (s *GroupService) AddMember(ctx context.Context, groupID, username string) error {
	username = strings.TrimSpace(username)
	if groupID == "" || username == "" {
		return fmt.Errorf("%w: group id and member name required", ErrValidation)
	}

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return err
	}
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return err
	}
	if err := s.store.AddGroupMember(ctx, groupID, username); err != nil {
		return err
	}

	slog.Info("Member added", "group_id", groupID, "username", username)
	return nil
}
