package services

import (
	"context"
	"strings"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// TaskServiceImpl implements domain.TaskService
type TaskServiceImpl struct {
	taskRepo domain.TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo domain.TaskRepository) domain.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

// List implements domain.TaskService
func (s *TaskServiceImpl) List(ctx context.Context, userID uint, q domain.TaskQuery) ([]domain.Task, error) {
	return s.taskRepo.FindAllByUser(ctx, userID, q)
}

// Get implements domain.TaskService. A task owned by somebody else is
// reported as forbidden, not hidden, matching the list/detail split of the
// public API.
func (s *TaskServiceImpl) Get(ctx context.Context, userID, taskID uint) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrNotTaskOwner
	}
	return task, nil
}

// Create implements domain.TaskService. Title and description are stored
// lowercased.
func (s *TaskServiceImpl) Create(ctx context.Context, userID uint, task *domain.Task) error {
	task.UserID = userID
	task.Title = strings.ToLower(task.Title)
	task.Description = strings.ToLower(task.Description)
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	return s.taskRepo.Create(ctx, task)
}

// Update implements domain.TaskService
func (s *TaskServiceImpl) Update(ctx context.Context, userID, taskID uint, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = strings.ToLower(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.ToLower(*patch.Description)
	}
	if patch.IsCompleted != nil {
		task.IsCompleted = *patch.IsCompleted
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete implements domain.TaskService
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, taskID uint) error {
	return s.taskRepo.DeleteByID(ctx, taskID, userID)
}

// Complete implements domain.TaskService
func (s *TaskServiceImpl) Complete(ctx context.Context, userID, taskID uint) (*domain.Task, error) {
	completed := true
	return s.Update(ctx, userID, taskID, domain.TaskPatch{IsCompleted: &completed})
}

// Stats implements domain.TaskService
func (s *TaskServiceImpl) Stats(ctx context.Context, userID uint) (*domain.TaskStats, error) {
	return s.taskRepo.StatsByUser(ctx, userID)
}
