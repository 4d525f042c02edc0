// File: internal/user/service.go
package user

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Service defines the user operations exposed over HTTP.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
}

// ServiceImplementation implements Service on top of a Repository.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("UserService"),
	}
}

// CreateUser stores a new user built from req.
func (s *ServiceImplementation) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	u := req.ToUser()
	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("Failed to create user in repository", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}
	s.logger.Info("User created", zap.String("userID", u.ID.Hex()))
	return u, nil
}

// ListUsers returns every stored user.
func (s *ServiceImplementation) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// UpdateUser overwrites the fields present in req on the user with the given id.
func (s *ServiceImplementation) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	u, err := s.repo.FindByIDAndUpdate(ctx, id, req.Changes())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Info("Update of unknown user", zap.String("userID", id))
		} else {
			s.logger.Error("Failed to update user", zap.Error(err), zap.String("userID", id))
		}
		return nil, err
	}
	return u, nil
}
