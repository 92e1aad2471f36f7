package mocks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate produces a deterministic fake token of the form "token_<id>_<iat>"
func (m *MockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	return fmt.Sprintf("token_%d_%d", userID, time.Now().Unix()), nil
}

// Validate parses tokens produced by the default Generate
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	parts := strings.Split(token, "_")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, domain.ErrTokenMalformed
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}
	iat, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}
	return &domain.TokenClaims{UserID: uint(id), IssuedAt: iat}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
