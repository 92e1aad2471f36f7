package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// ResetTokenServiceImpl implements domain.ResetTokenService
type ResetTokenServiceImpl struct {
	ttl time.Duration
}

// NewResetTokenService creates a reset-secret generator with the given
// validity window.
func NewResetTokenService(ttl time.Duration) domain.ResetTokenService {
	return &ResetTokenServiceImpl{ttl: ttl}
}

// Generate implements domain.ResetTokenService. The plaintext secret carries
// 32 bytes of entropy and is returned only for out-of-band delivery; callers
// persist the hash and expiry, never the plaintext.
func (s *ResetTokenServiceImpl) Generate() (string, string, time.Time) {
	raw := make([]byte, 32)
	rand.Read(raw)

	plaintext := hex.EncodeToString(raw)
	return plaintext, s.HashToken(plaintext), time.Now().Add(s.ttl)
}

// HashToken returns the at-rest representation of a reset secret. A fast
// unsalted digest is fine here: the input is already high entropy and
// single use, so there is nothing to brute force offline.
func (s *ResetTokenServiceImpl) HashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
