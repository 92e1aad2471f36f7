package mocks

import (
	"context"
	"time"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) error
	FindByEmailFunc          func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc             func(ctx context.Context, id uint) (*domain.User, error)
	FindByResetTokenHashFunc func(ctx context.Context, hash string, now time.Time) (*domain.User, error)
	UpdateFunc               func(ctx context.Context, user *domain.User) error
	ConsumeResetTokenFunc    func(ctx context.Context, user *domain.User, resetTokenHash string) error
	DeleteByIDFunc           func(ctx context.Context, id uint) error
	FindAllFunc              func(ctx context.Context) ([]domain.User, error)
	FindActiveFunc           func(ctx context.Context) ([]domain.User, error)
	ActiveRatioFunc          func(ctx context.Context) (*domain.ActiveRatio, error)
	PerformanceFunc          func(ctx context.Context) ([]domain.UserPerformance, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*domain.User, error) {
	if m.FindByResetTokenHashFunc != nil {
		return m.FindByResetTokenHashFunc(ctx, hash, now)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) ConsumeResetToken(ctx context.Context, user *domain.User, resetTokenHash string) error {
	if m.ConsumeResetTokenFunc != nil {
		return m.ConsumeResetTokenFunc(ctx, user, resetTokenHash)
	}
	return nil
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) FindActive(ctx context.Context) ([]domain.User, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) ActiveRatio(ctx context.Context) (*domain.ActiveRatio, error) {
	if m.ActiveRatioFunc != nil {
		return m.ActiveRatioFunc(ctx)
	}
	return &domain.ActiveRatio{}, nil
}

func (m *MockUserRepository) Performance(ctx context.Context) ([]domain.UserPerformance, error) {
	if m.PerformanceFunc != nil {
		return m.PerformanceFunc(ctx)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
