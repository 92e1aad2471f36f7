package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByResetTokenHash only returns users whose reset token expires after now.
	FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*User, error)
	// Update persists the full user record, including password and reset
	// fields, as a single write.
	Update(ctx context.Context, user *User) error
	// ConsumeResetToken writes the new password hash, change timestamp and
	// cleared reset fields in one conditional update guarded by the stored
	// reset hash, so two concurrent reset attempts cannot both succeed.
	ConsumeResetToken(ctx context.Context, user *User, resetTokenHash string) error
	DeleteByID(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]User, error)
	FindActive(ctx context.Context) ([]User, error)
	ActiveRatio(ctx context.Context) (*ActiveRatio, error)
	Performance(ctx context.Context) ([]UserPerformance, error)
}

// TaskRepository defines task data access operations
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	FindAllByUser(ctx context.Context, userID uint, q TaskQuery) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	DeleteByID(ctx context.Context, id uint, userID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
	StatsByUser(ctx context.Context, userID uint) (*TaskStats, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations. Verification is stateless:
// signature and expiry only, no storage lookup.
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// ResetTokenService defines reset secret operations. The plaintext is returned
// once for out-of-band delivery; only its hash is ever persisted.
type ResetTokenService interface {
	Generate() (plaintext string, hash string, expiresAt time.Time)
	HashToken(plaintext string) string
}

// NotificationService delivers out-of-band messages. Delivery is fallible and
// callers must react to failure.
type NotificationService interface {
	SendEmail(to, subject, message string) error
}

// ResetThrottle limits how often a reset secret may be requested per email.
type ResetThrottle interface {
	CanSend(ctx context.Context, email string) (bool, int64, error)
	MarkSent(ctx context.Context, email string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email, resetURLBase string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) (*AuthResult, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) (*AuthResult, error)
	ChangeRole(ctx context.Context, userID uint, role string) (*User, error)
	DeleteUser(ctx context.Context, userID uint) error
}

// UserService defines account profile operations
type UserService interface {
	ListUsers(ctx context.Context) ([]User, error)
	ListActiveUsers(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, userID uint, name, email string) (*User, error)
	Deactivate(ctx context.Context, userID uint) (*User, error)
	ActiveRatio(ctx context.Context) (*ActiveRatio, error)
	Performance(ctx context.Context) ([]UserPerformance, error)
}

// TaskService defines task business logic, always scoped to the owner.
type TaskService interface {
	List(ctx context.Context, userID uint, q TaskQuery) ([]Task, error)
	Get(ctx context.Context, userID, taskID uint) (*Task, error)
	Create(ctx context.Context, userID uint, task *Task) error
	Update(ctx context.Context, userID, taskID uint, patch TaskPatch) (*Task, error)
	Delete(ctx context.Context, userID, taskID uint) error
	Complete(ctx context.Context, userID, taskID uint) (*Task, error)
	Stats(ctx context.Context, userID uint) (*TaskStats, error)
}

// TaskPatch carries the mutable task fields for partial updates.
type TaskPatch struct {
	Title       *string
	Description *string
	IsCompleted *bool
	Priority    *string
}
