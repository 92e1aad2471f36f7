package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                  uint       `gorm:"primaryKey"`
	Name                string     `gorm:"size:64"`
	Email               string     `gorm:"uniqueIndex;size:255"`
	PasswordHash        string     `gorm:"column:password"`
	PasswordChangedAt   *time.Time `gorm:"index"`
	ResetTokenHash      string     `gorm:"index;size:64"`
	ResetTokenExpiresAt *time.Time
	Role                string `gorm:"index;size:16"`
	IsActive            bool   `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByResetTokenHash implements domain.UserRepository. Expired grants are
// filtered in the query itself so callers cannot tell "unknown hash" from
// "expired hash".
func (r *UserRepositoryImpl) FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*domain.User, error) {
	return r.findOne(ctx, "reset_token_hash = ? AND reset_token_expires_at > ?", hash, now)
}

// Update implements domain.UserRepository. Save writes the whole row in one
// statement, so the password hash and the reset fields always land together.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// ConsumeResetToken implements domain.UserRepository. The update is guarded by
// the stored reset hash; a concurrent consume that already cleared it makes
// this one affect zero rows and fail.
func (r *UserRepositoryImpl) ConsumeResetToken(ctx context.Context, user *domain.User, resetTokenHash string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND reset_token_hash = ?", user.ID, resetTokenHash).
		Updates(map[string]interface{}{
			"password":               user.PasswordHash,
			"password_changed_at":    user.PasswordChangedAt,
			"reset_token_hash":       "",
			"reset_token_expires_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrResetTokenInvalid
	}
	return nil
}

// DeleteByID implements domain.UserRepository
func (r *UserRepositoryImpl) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBUser{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindAll implements domain.UserRepository
func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, r.db.WithContext(ctx))
}

// FindActive implements domain.UserRepository. Deactivated accounts stay in
// storage but are excluded here.
func (r *UserRepositoryImpl) FindActive(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, r.db.WithContext(ctx).Where("is_active = ?", true))
}

// ActiveRatio implements domain.UserRepository
func (r *UserRepositoryImpl) ActiveRatio(ctx context.Context) (*domain.ActiveRatio, error) {
	var ratio domain.ActiveRatio
	err := r.db.WithContext(ctx).Model(&DBUser{}).
		Select("COUNT(*) FILTER (WHERE is_active) AS activated_users, COUNT(*) FILTER (WHERE NOT is_active) AS deactivated_users").
		Scan(&ratio).Error
	if err != nil {
		return nil, err
	}

	divisor := ratio.DeactivatedUsers
	if divisor == 0 {
		divisor = 1
	}
	ratio.PercentOfActivatedUsers = float64(ratio.ActivatedUsers) / float64(divisor) * 100
	return &ratio, nil
}

// Performance implements domain.UserRepository
func (r *UserRepositoryImpl) Performance(ctx context.Context) ([]domain.UserPerformance, error) {
	var rows []domain.UserPerformance
	err := r.db.WithContext(ctx).Model(&DBUser{}).
		Select("users.id AS user_id, users.name, COUNT(tasks.id) AS total_tasks, COUNT(tasks.id) FILTER (WHERE tasks.is_completed) AS completed_tasks").
		Joins("LEFT JOIN tasks ON tasks.user_id = users.id").
		Group("users.id, users.name").
		Order("users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, args...).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

func (r *UserRepositoryImpl) findMany(ctx context.Context, tx *gorm.DB) ([]domain.User, error) {
	var dbUsers []DBUser
	if err := tx.Order("id").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// isUniqueViolation detects duplicate-key failures without binding to a single
// driver's error type.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                  user.ID,
		Name:                user.Name,
		Email:               user.Email,
		PasswordHash:        user.PasswordHash,
		PasswordChangedAt:   user.PasswordChangedAt,
		ResetTokenHash:      user.ResetTokenHash,
		ResetTokenExpiresAt: user.ResetTokenExpiresAt,
		Role:                user.Role,
		IsActive:            user.IsActive,
		CreatedAt:           user.CreatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                  dbUser.ID,
		Name:                dbUser.Name,
		Email:               dbUser.Email,
		PasswordHash:        dbUser.PasswordHash,
		PasswordChangedAt:   dbUser.PasswordChangedAt,
		ResetTokenHash:      dbUser.ResetTokenHash,
		ResetTokenExpiresAt: dbUser.ResetTokenExpiresAt,
		Role:                dbUser.Role,
		IsActive:            dbUser.IsActive,
		CreatedAt:           dbUser.CreatedAt,
		UpdatedAt:           dbUser.UpdatedAt,
	}
}
