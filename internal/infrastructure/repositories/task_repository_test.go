package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

func seedTasks(t *testing.T, repo domain.TaskRepository, userID uint) []domain.Task {
	t.Helper()

	seeds := []domain.Task{
		{Title: "buy milk", Description: "from the corner shop", Priority: domain.PriorityLow, UserID: userID},
		{Title: "write report", Description: "quarterly numbers", Priority: domain.PriorityHigh, IsCompleted: true, UserID: userID},
		{Title: "call mom", Description: "sunday evening", Priority: domain.PriorityMedium, UserID: userID},
		{Title: "buy flowers", Description: "for the office", Priority: domain.PriorityLow, IsCompleted: true, UserID: userID},
	}
	for i := range seeds {
		if err := repo.Create(context.Background(), &seeds[i]); err != nil {
			t.Fatalf("failed to seed task %d: %v", i, err)
		}
	}
	return seeds
}

func TestTaskRepository_FindAllByUser_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedTasks(t, repo, 1)
	// another user's task must never leak into user 1's listing
	other := domain.Task{Title: "buy rope", Priority: domain.PriorityLow, UserID: 2}
	if err := repo.Create(ctx, &other); err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	completed := true
	tests := []struct {
		name      string
		query     domain.TaskQuery
		wantCount int
	}{
		{"no filter", domain.TaskQuery{}, 4},
		{"title substring", domain.TaskQuery{Title: "buy"}, 2},
		{"description substring", domain.TaskQuery{Description: "office"}, 1},
		{"priority", domain.TaskQuery{Priority: domain.PriorityLow}, 2},
		{"completed", domain.TaskQuery{IsCompleted: &completed}, 2},
		{"combined", domain.TaskQuery{Title: "buy", IsCompleted: &completed}, 1},
		{"no match", domain.TaskQuery{Title: "nothing"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindAllByUser(ctx, 1, tt.query)
			if err != nil {
				t.Fatalf("FindAllByUser failed: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("expected %d tasks, got %d", tt.wantCount, len(got))
			}
			for _, task := range got {
				if task.UserID != 1 {
					t.Errorf("task %d belongs to user %d, leaked into user 1's list", task.ID, task.UserID)
				}
			}
		})
	}
}

func TestTaskRepository_FindAllByUser_Sort(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedTasks(t, repo, 1)

	got, err := repo.FindAllByUser(ctx, 1, domain.TaskQuery{Sort: "-title"})
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Title < got[i].Title {
			t.Errorf("titles not descending: %q before %q", got[i-1].Title, got[i].Title)
		}
	}

	// unknown sort fields are ignored, not interpolated
	if _, err := repo.FindAllByUser(ctx, 1, domain.TaskQuery{Sort: "noSuchField;DROP"}); err != nil {
		t.Errorf("expected unknown sort field to be ignored, got %v", err)
	}
}

func TestTaskRepository_FindAllByUser_SelectAndPaginate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedTasks(t, repo, 1)

	got, err := repo.FindAllByUser(ctx, 1, domain.TaskQuery{Select: "title"})
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	for _, task := range got {
		if task.Title == "" {
			t.Error("selected column title came back empty")
		}
		if task.Description != "" {
			t.Errorf("unselected column description came back: %q", task.Description)
		}
		if task.ID == 0 || task.UserID == 0 {
			t.Error("id and user_id must always be selected")
		}
	}

	page1, err := repo.FindAllByUser(ctx, 1, domain.TaskQuery{Page: 1, Limit: 3})
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	page2, err := repo.FindAllByUser(ctx, 1, domain.TaskQuery{Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if len(page1) != 3 || len(page2) != 1 {
		t.Errorf("expected pages of 3 and 1, got %d and %d", len(page1), len(page2))
	}

	// page without limit falls back to the default page size of 5
	defaulted, err := repo.FindAllByUser(ctx, 1, domain.TaskQuery{Page: 1})
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if len(defaulted) != 4 {
		t.Errorf("expected all 4 tasks within the default page, got %d", len(defaulted))
	}
}

func TestTaskRepository_UpdateScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := domain.Task{Title: "buy milk", Priority: domain.PriorityLow, UserID: 1}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	task.Title = "buy oat milk"
	task.IsCompleted = true
	if err := repo.Update(ctx, &task); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, err := repo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Title != "buy oat milk" || !stored.IsCompleted {
		t.Errorf("update not persisted: %+v", stored)
	}

	// a different user writing the same task ID must affect nothing
	foreign := *stored
	foreign.UserID = 2
	foreign.Title = "hijacked"
	if err := repo.Update(ctx, &foreign); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign update, got %v", err)
	}

	stored, err = repo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Title != "buy oat milk" {
		t.Errorf("foreign update leaked through: %+v", stored)
	}
}

func TestTaskRepository_DeleteScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := domain.Task{Title: "buy milk", Priority: domain.PriorityLow, UserID: 1}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.DeleteByID(ctx, task.ID, 2); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign delete, got %v", err)
	}
	if err := repo.DeleteByID(ctx, task.ID, 1); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected deleted task to be gone, got %v", err)
	}
}

func TestTaskRepository_DeleteByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedTasks(t, repo, 1)
	keep := domain.Task{Title: "keep me", Priority: domain.PriorityMedium, UserID: 2}
	if err := repo.Create(ctx, &keep); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.DeleteByUser(ctx, 1); err != nil {
		t.Fatalf("DeleteByUser failed: %v", err)
	}

	gone, err := repo.FindAllByUser(ctx, 1, domain.TaskQuery{})
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("expected user 1's tasks removed, got %d", len(gone))
	}

	kept, err := repo.FindAllByUser(ctx, 2, domain.TaskQuery{})
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("expected user 2's task to survive, got %d", len(kept))
	}
}

func TestTaskRepository_StatsByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedTasks(t, repo, 1)

	stats, err := repo.StatsByUser(ctx, 1)
	if err != nil {
		t.Fatalf("StatsByUser failed: %v", err)
	}
	if stats.TotalTasks != 4 || stats.CompletedTasks != 2 || stats.PendingTasks != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Completion != 50 {
		t.Errorf("expected 50%% completion, got %f", stats.Completion)
	}

	empty, err := repo.StatsByUser(ctx, 99)
	if err != nil {
		t.Fatalf("StatsByUser failed: %v", err)
	}
	if empty.TotalTasks != 0 || empty.Completion != 0 {
		t.Errorf("expected zeroed stats for user with no tasks, got %+v", empty)
	}
}
