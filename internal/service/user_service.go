package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// UserService manages user records. Users carry no credentials; they exist so
// membership and payer references can be validated.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Create registers a new user.
func (s *UserService) Create(ctx context.Context, username, displayName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}

	user := &models.User{Username: username, DisplayName: strings.TrimSpace(displayName)}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("User created", "username", user.Username)
	return user, nil
}
