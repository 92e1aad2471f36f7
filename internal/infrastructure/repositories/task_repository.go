package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// TaskRepositoryImpl implements domain.TaskRepository using GORM
type TaskRepositoryImpl struct {
	db *gorm.DB
}

// DBTask represents the database model for Task (with GORM tags)
type DBTask struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:64;index"`
	Description string `gorm:"size:255"`
	IsCompleted bool   `gorm:"index"`
	Priority    string `gorm:"index;size:16"`
	UserID      uint   `gorm:"index"`
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBTask) TableName() string {
	return "tasks"
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

// Create implements domain.TaskRepository
func (r *TaskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	dbTask := r.domainToDB(task)
	if err := r.db.WithContext(ctx).Create(dbTask).Error; err != nil {
		return err
	}
	task.ID = dbTask.ID
	task.CreatedAt = dbTask.CreatedAt
	return nil
}

// FindByID implements domain.TaskRepository. Ownership is not checked here;
// the service layer decides between not-found and not-owner.
func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	var dbTask DBTask
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbTask).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbTask), nil
}

// FindAllByUser implements domain.TaskRepository
func (r *TaskRepositoryImpl) FindAllByUser(ctx context.Context, userID uint, q domain.TaskQuery) ([]domain.Task, error) {
	tx := r.db.WithContext(ctx).Model(&DBTask{}).Where("user_id = ?", userID)
	tx = applyTaskQuery(tx, q)

	var dbTasks []DBTask
	if err := tx.Find(&dbTasks).Error; err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(dbTasks))
	for i := range dbTasks {
		tasks = append(tasks, *r.dbToDomain(&dbTasks[i]))
	}
	return tasks, nil
}

// Update implements domain.TaskRepository. The write stays scoped to the
// owning user.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	res := r.db.WithContext(ctx).Model(&DBTask{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"is_completed": task.IsCompleted,
			"priority":     task.Priority,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteByID implements domain.TaskRepository
func (r *TaskRepositoryImpl) DeleteByID(ctx context.Context, id uint, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBTask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteByUser implements domain.TaskRepository. Used when a user account is
// removed so no orphaned tasks survive.
func (r *TaskRepositoryImpl) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBTask{}).Error
}

// StatsByUser implements domain.TaskRepository
func (r *TaskRepositoryImpl) StatsByUser(ctx context.Context, userID uint) (*domain.TaskStats, error) {
	var stats domain.TaskStats
	err := r.db.WithContext(ctx).Model(&DBTask{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS total_tasks, COUNT(*) FILTER (WHERE is_completed) AS completed_tasks, COUNT(*) FILTER (WHERE NOT is_completed) AS pending_tasks").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.TotalTasks > 0 {
		stats.Completion = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return &stats, nil
}

// domainToDB converts domain task to database task
func (r *TaskRepositoryImpl) domainToDB(task *domain.Task) *DBTask {
	return &DBTask{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		Priority:    task.Priority,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
	}
}

// dbToDomain converts database task to domain task
func (r *TaskRepositoryImpl) dbToDomain(dbTask *DBTask) *domain.Task {
	return &domain.Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		IsCompleted: dbTask.IsCompleted,
		Priority:    dbTask.Priority,
		UserID:      dbTask.UserID,
		CreatedAt:   dbTask.CreatedAt,
	}
}
