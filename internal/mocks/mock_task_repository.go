package mocks

import (
	"context"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// MockTaskRepository implements domain.TaskRepository interface for testing
type MockTaskRepository struct {
	CreateFunc        func(ctx context.Context, task *domain.Task) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Task, error)
	FindAllByUserFunc func(ctx context.Context, userID uint, q domain.TaskQuery) ([]domain.Task, error)
	UpdateFunc        func(ctx context.Context, task *domain.Task) error
	DeleteByIDFunc    func(ctx context.Context, id uint, userID uint) error
	DeleteByUserFunc  func(ctx context.Context, userID uint) error
	StatsByUserFunc   func(ctx context.Context, userID uint) (*domain.TaskStats, error)
}

// NewMockTaskRepository creates a new MockTaskRepository with default behaviors
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskRepository) FindAllByUser(ctx context.Context, userID uint, q domain.TaskQuery) ([]domain.Task, error) {
	if m.FindAllByUserFunc != nil {
		return m.FindAllByUserFunc(ctx, userID, q)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) DeleteByID(ctx context.Context, id uint, userID uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id, userID)
	}
	return nil
}

func (m *MockTaskRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	return nil
}

func (m *MockTaskRepository) StatsByUser(ctx context.Context, userID uint) (*domain.TaskStats, error) {
	if m.StatsByUserFunc != nil {
		return m.StatsByUserFunc(ctx, userID)
	}
	return &domain.TaskStats{}, nil
}

// Compile-time interface compliance verification
var _ domain.TaskRepository = (*MockTaskRepository)(nil)
