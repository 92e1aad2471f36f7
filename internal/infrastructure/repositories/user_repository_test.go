package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBTask{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func seedUser(t *testing.T, repo domain.UserRepository, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         "medan",
		Email:        email,
		PasswordHash: "$2a$04$fakehash",
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, repo, "medan@example.com")
	if user.ID == 0 {
		t.Fatal("expected Create to backfill the ID")
	}

	byEmail, err := repo.FindByEmail(ctx, "medan@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("expected ID %d, got %d", user.ID, byEmail.ID)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Email != "medan@example.com" {
		t.Errorf("expected email medan@example.com, got %s", byID.Email)
	}

	if _, err := repo.FindByID(ctx, 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for missing ID, got %v", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	seedUser(t, repo, "medan@example.com")

	err := repo.Create(context.Background(), &domain.User{
		Name:         "other",
		Email:        "medan@example.com",
		PasswordHash: "$2a$04$otherhash",
		Role:         domain.RoleUser,
		IsActive:     true,
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_UpdateToTakenEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, repo, "medan@example.com")
	other := seedUser(t, repo, "other@example.com")

	other.Email = "medan@example.com"
	err := repo.Update(ctx, other)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
	if domain.KindOf(err) != domain.KindConflict {
		t.Errorf("expected conflict kind, got %v", domain.KindOf(err))
	}

	stored, findErr := repo.FindByID(ctx, other.ID)
	if findErr != nil {
		t.Fatalf("FindByID failed: %v", findErr)
	}
	if stored.Email != "other@example.com" {
		t.Errorf("expected email unchanged after refused update, got %s", stored.Email)
	}
}

func TestUserRepository_FindByResetTokenHash(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	user := seedUser(t, repo, "medan@example.com")
	expires := now.Add(10 * time.Minute)
	user.ResetTokenHash = "stored-hash"
	user.ResetTokenExpiresAt = &expires
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByResetTokenHash(ctx, "stored-hash", now)
	if err != nil {
		t.Fatalf("expected live grant to be found, got %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected ID %d, got %d", user.ID, found.ID)
	}

	if _, err := repo.FindByResetTokenHash(ctx, "wrong-hash", now); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown hash, got %v", err)
	}

	// eleven minutes later the same hash no longer matches
	late := now.Add(11 * time.Minute)
	if _, err := repo.FindByResetTokenHash(ctx, "stored-hash", late); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected expired grant to be invisible, got %v", err)
	}
}

func TestUserRepository_ConsumeResetToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, repo, "medan@example.com")
	expires := time.Now().Add(10 * time.Minute)
	user.ResetTokenHash = "stored-hash"
	user.ResetTokenExpiresAt = &expires
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	user.PasswordHash = "$2a$04$newhash"
	user.StampPasswordChange(time.Now())

	if err := repo.ConsumeResetToken(ctx, user, "stored-hash"); err != nil {
		t.Fatalf("first consume failed: %v", err)
	}

	stored, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.PasswordHash != "$2a$04$newhash" {
		t.Errorf("expected new hash to be persisted, got %s", stored.PasswordHash)
	}
	if stored.HasResetToken() {
		t.Error("expected reset fields to be cleared after consume")
	}
	if stored.PasswordChangedAt == nil {
		t.Error("expected password change time to be persisted")
	}

	// second consume races against the cleared hash and loses
	if err := repo.ConsumeResetToken(ctx, user, "stored-hash"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("expected ErrResetTokenInvalid on reuse, got %v", err)
	}
}

func TestUserRepository_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, repo, "medan@example.com")

	if err := repo.DeleteByID(ctx, user.ID); err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected deleted user to be gone, got %v", err)
	}
	if err := repo.DeleteByID(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for second delete, got %v", err)
	}
}

func TestUserRepository_FindActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	active := seedUser(t, repo, "active@example.com")
	inactive := seedUser(t, repo, "inactive@example.com")
	inactive.IsActive = false
	if err := repo.Update(ctx, inactive); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}

	got, err := repo.FindActive(ctx)
	if err != nil {
		t.Fatalf("FindActive failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != active.ID {
		t.Errorf("expected only the active user, got %+v", got)
	}
}

func TestUserRepository_ActiveRatio(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		seedUser(t, repo, email)
	}
	u := seedUser(t, repo, "d@example.com")
	u.IsActive = false
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	ratio, err := repo.ActiveRatio(ctx)
	if err != nil {
		t.Fatalf("ActiveRatio failed: %v", err)
	}
	if ratio.ActivatedUsers != 3 {
		t.Errorf("expected 3 activated users, got %d", ratio.ActivatedUsers)
	}
	if ratio.DeactivatedUsers != 1 {
		t.Errorf("expected 1 deactivated user, got %d", ratio.DeactivatedUsers)
	}
	if ratio.PercentOfActivatedUsers != 300 {
		t.Errorf("expected ratio 300, got %f", ratio.PercentOfActivatedUsers)
	}
}

func TestUserRepository_Performance(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	taskRepo := NewTaskRepository(db)
	ctx := context.Background()

	busy := seedUser(t, userRepo, "busy@example.com")
	idle := seedUser(t, userRepo, "idle@example.com")

	for i, done := range []bool{true, true, false} {
		task := &domain.Task{
			Title:       "chore",
			Priority:    domain.PriorityMedium,
			IsCompleted: done,
			UserID:      busy.ID,
		}
		if err := taskRepo.Create(ctx, task); err != nil {
			t.Fatalf("failed to seed task %d: %v", i, err)
		}
	}

	rows, err := userRepo.Performance(ctx)
	if err != nil {
		t.Fatalf("Performance failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].UserID != busy.ID || rows[0].TotalTasks != 3 || rows[0].CompletedTasks != 2 {
		t.Errorf("unexpected busy row: %+v", rows[0])
	}
	if rows[1].UserID != idle.ID || rows[1].TotalTasks != 0 {
		t.Errorf("unexpected idle row: %+v", rows[1])
	}
}
