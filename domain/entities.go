package domain

import "time"

// Role values a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Task priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// User represents a user account as consumed by the auth subsystem.
// PasswordHash and the reset fields never leave the process boundary.
type User struct {
	ID                  uint       `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	PasswordChangedAt   *time.Time `json:"-"`
	ResetTokenHash      string     `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	Role                string     `json:"role"`
	IsActive            bool       `json:"isActive"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"-"`
}

// PasswordChangedAfter reports whether the password was changed after a token
// with the given issue time (unix seconds) was minted. Accounts that never
// changed their password always return false.
func (u *User) PasswordChangedAfter(tokenIssuedAt int64) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return tokenIssuedAt <= u.PasswordChangedAt.Unix()
}

// HasResetToken reports whether an outstanding reset secret exists.
func (u *User) HasResetToken() bool {
	return u.ResetTokenHash != "" && u.ResetTokenExpiresAt != nil
}

// ClearResetToken drops the stored reset secret. The hash and expiry move
// together: both set or both absent.
func (u *User) ClearResetToken() {
	u.ResetTokenHash = ""
	u.ResetTokenExpiresAt = nil
}

// StampPasswordChange records the password-change time one second in the past
// so tokens issued in the same instant as the change still invalidate.
func (u *User) StampPasswordChange(now time.Time) {
	t := now.Add(-time.Second)
	u.PasswordChangedAt = &t
}

// Task represents a to-do item owned by a single user.
type Task struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	Priority    string    `json:"priority"`
	UserID      uint      `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// TokenClaims represents the verified content of a session token.
type TokenClaims struct {
	UserID    uint
	IssuedAt  int64
	ExpiresAt int64
}

// TaskQuery carries list filtering, sorting, projection and pagination options.
type TaskQuery struct {
	Title       string
	Description string
	IsCompleted *bool
	Priority    string
	Sort        string
	Select      string
	Page        int
	Limit       int
}

// TaskStats aggregates a single user's task counts.
type TaskStats struct {
	TotalTasks     int64   `json:"totalTasks"`
	CompletedTasks int64   `json:"completedTasks"`
	PendingTasks   int64   `json:"pendingTasks"`
	Completion     float64 `json:"completion"`
}

// ActiveRatio aggregates activated vs deactivated account counts.
type ActiveRatio struct {
	ActivatedUsers          int64   `json:"activatedUsers"`
	DeactivatedUsers        int64   `json:"deActivatedUsers"`
	PercentOfActivatedUsers float64 `json:"percentOfActivatedUsers"`
}

// UserPerformance reports per-user task completion counts.
type UserPerformance struct {
	UserID         uint   `json:"userId"`
	Name           string `json:"name"`
	TotalTasks     int64  `json:"totalTasks"`
	CompletedTasks int64  `json:"completedTasks"`
}
