package services

import (
	"context"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// ListUsers implements domain.UserService
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindAll(ctx)
}

// ListActiveUsers implements domain.UserService
func (s *UserServiceImpl) ListActiveUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.E(domain.KindNotFound, "there is no active users yet")
	}
	return users, nil
}

// UpdateProfile implements domain.UserService. Only name and email are
// mutable here; password, role and activation state have their own routes.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, name, email string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate implements domain.UserService. The record stays in storage; it
// just stops showing up in active listings.
func (s *UserServiceImpl) Deactivate(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	user.IsActive = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ActiveRatio implements domain.UserService
func (s *UserServiceImpl) ActiveRatio(ctx context.Context) (*domain.ActiveRatio, error) {
	return s.userRepo.ActiveRatio(ctx)
}

// Performance implements domain.UserService
func (s *UserServiceImpl) Performance(ctx context.Context) ([]domain.UserPerformance, error) {
	return s.userRepo.Performance(ctx)
}
