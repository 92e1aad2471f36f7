package mocks

import (
	"time"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// MockResetTokenService implements domain.ResetTokenService interface for testing
type MockResetTokenService struct {
	GenerateFunc  func() (string, string, time.Time)
	HashTokenFunc func(plaintext string) string
}

// NewMockResetTokenService creates a new MockResetTokenService with default behaviors
func NewMockResetTokenService() *MockResetTokenService {
	return &MockResetTokenService{}
}

// Generate returns a fixed secret with a 10 minute expiry
func (m *MockResetTokenService) Generate() (string, string, time.Time) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "secret", "hash_secret", time.Now().Add(10 * time.Minute)
}

// HashToken mirrors the default Generate hashing scheme
func (m *MockResetTokenService) HashToken(plaintext string) string {
	if m.HashTokenFunc != nil {
		return m.HashTokenFunc(plaintext)
	}
	return "hash_" + plaintext
}

// Compile-time interface compliance verification
var _ domain.ResetTokenService = (*MockResetTokenService)(nil)
