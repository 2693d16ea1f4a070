package repository

import (
	"github.com/taskstack/user-task-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByIDScoped finds a task filtered by both owner and task id
func (r *GormTaskRepository) FindByIDScoped(userID, taskID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByID finds a task by task id alone, ignoring ownership
func (r *GormTaskRepository) FindByID(taskID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByUser returns every task owned by the user
func (r *GormTaskRepository) ListByUser(userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ReplaceByID overwrites all business columns of the record keyed by
// task id only. A remarks value left empty in the replacement becomes
// empty in storage.
func (r *GormTaskRepository) ReplaceByID(taskID string, task *models.Task) (int64, error) {
	res := r.db.Model(&models.Task{}).Where("id = ?", taskID).Updates(map[string]interface{}{
		"user_id":     task.UserID,
		"title":       task.Title,
		"description": task.Description,
		"priority":    task.Priority,
		"time":        task.Time,
		"remarks":     task.Remarks,
		"status":      task.Status,
	})
	return res.RowsAffected, res.Error
}

// DeleteByIDScoped removes a task filtered by both owner and task id
func (r *GormTaskRepository) DeleteByIDScoped(userID, taskID string) (int64, error) {
	res := r.db.Where("user_id = ? AND id = ?", userID, taskID).Delete(&models.Task{})
	return res.RowsAffected, res.Error
}

// Save persists an in-memory mutation of a previously loaded task
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}
