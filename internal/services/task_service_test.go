package services

import (
	"context"
	"errors"
	"testing"

	"github.com/MohamedMedan1/Tasque-Api/domain"
	"github.com/MohamedMedan1/Tasque-Api/internal/mocks"
)

func ownedTask() *domain.Task {
	return &domain.Task{
		ID:       5,
		Title:    "write report",
		Priority: domain.PriorityMedium,
		UserID:   1,
	}
}

func TestTaskService_Get(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		setupMocks    func(repo *mocks.MockTaskRepository)
		expectedError error
	}{
		{
			name:   "owner sees the task",
			userID: 1,
			setupMocks: func(repo *mocks.MockTaskRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Task, error) {
					return ownedTask(), nil
				}
			},
		},
		{
			name:   "other users are refused",
			userID: 2,
			setupMocks: func(repo *mocks.MockTaskRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Task, error) {
					return ownedTask(), nil
				}
			},
			expectedError: domain.ErrNotTaskOwner,
		},
		{
			name:          "missing task",
			userID:        1,
			expectedError: domain.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockTaskRepository()
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			task, err := NewTaskService(repo).Get(context.Background(), tt.userID, 5)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("error = %v, want %v", err, tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.ID != 5 {
				t.Errorf("task ID = %d, want 5", task.ID)
			}
		})
	}
}

func TestTaskService_Create(t *testing.T) {
	repo := mocks.NewMockTaskRepository()
	var created *domain.Task
	repo.CreateFunc = func(ctx context.Context, task *domain.Task) error {
		created = task
		return nil
	}

	task := &domain.Task{Title: "Write REPORT", Description: "By Friday"}
	if err := NewTaskService(repo).Create(context.Background(), 1, task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Title != "write report" {
		t.Errorf("title = %q, want lowercased", created.Title)
	}
	if created.Description != "by friday" {
		t.Errorf("description = %q, want lowercased", created.Description)
	}
	if created.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want default medium", created.Priority)
	}
	if created.UserID != 1 {
		t.Errorf("owner = %d, want 1", created.UserID)
	}
}

func TestTaskService_UpdateNotOwnerLooksLikeMissing(t *testing.T) {
	repo := mocks.NewMockTaskRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Task, error) {
		return ownedTask(), nil
	}

	title := "new title"
	_, err := NewTaskService(repo).Update(context.Background(), 2, 5, domain.TaskPatch{Title: &title})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskService_Complete(t *testing.T) {
	repo := mocks.NewMockTaskRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Task, error) {
		return ownedTask(), nil
	}
	var updated *domain.Task
	repo.UpdateFunc = func(ctx context.Context, task *domain.Task) error {
		updated = task
		return nil
	}

	task, err := NewTaskService(repo).Complete(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !task.IsCompleted || !updated.IsCompleted {
		t.Error("complete must set IsCompleted")
	}
}
