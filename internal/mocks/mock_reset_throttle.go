package mocks

import (
	"context"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// MockResetThrottle implements domain.ResetThrottle interface for testing
type MockResetThrottle struct {
	CanSendFunc  func(ctx context.Context, email string) (bool, int64, error)
	MarkSentFunc func(ctx context.Context, email string) error
}

// NewMockResetThrottle creates a new MockResetThrottle with default behaviors
func NewMockResetThrottle() *MockResetThrottle {
	return &MockResetThrottle{}
}

// CanSend allows sending by default
func (m *MockResetThrottle) CanSend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanSendFunc != nil {
		return m.CanSendFunc(ctx, email)
	}
	return true, 0, nil
}

// MarkSent succeeds by default
func (m *MockResetThrottle) MarkSent(ctx context.Context, email string) error {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, email)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ResetThrottle = (*MockResetThrottle)(nil)
