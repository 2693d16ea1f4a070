package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskstack/user-task-api/internal/models"
	"github.com/taskstack/user-task-api/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrTaskNotFound is returned when no task matches the lookup.
	ErrTaskNotFound = errors.New("task not found")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents the fields accepted when creating a task.
// Remarks is always unset on create; it is only settable afterwards.
type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Priority    string
	Time        time.Time
	Status      string
}

// CreateTask creates a task owned by the given user.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Time:        input.Time,
		Status:      input.Status,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask retrieves a task filtered by both owner and task id. A task
// id belonging to a different user is reported as not found.
func (s *TaskService) GetTask(userID, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDScoped(userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasks returns every task owned by the user. Both list endpoints
// share this method.
func (s *TaskService) ListTasks(userID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskInput holds the full replacement record for an update.
// Remarks left empty is written as empty: the update is an overwrite.
type UpdateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Priority    string
	Time        time.Time
	Remarks     string
	Status      string
}

// UpdateTask overwrites the whole task record. The lookup is keyed by
// task id alone; the caller-supplied owner id is written into the
// record but does not constrain which task is replaced.
func (s *TaskService) UpdateTask(taskID string, input UpdateTaskInput) error {
	task := &models.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Time:        input.Time,
		Remarks:     input.Remarks,
		Status:      input.Status,
	}

	rows, err := s.taskRepo.ReplaceByID(taskID, task)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes a task filtered by both owner and task id.
func (s *TaskService) DeleteTask(userID, taskID string) error {
	rows, err := s.taskRepo.DeleteByIDScoped(userID, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// GiveRemarks sets the remarks field of a task. The task is loaded by
// task id alone, so the owner id plays no part in the lookup.
func (s *TaskService) GiveRemarks(userID, taskID, remarks string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	task.Remarks = remarks
	if err := s.taskRepo.Save(task); err != nil {
		return fmt.Errorf("failed to save remarks: %w", err)
	}
	return nil
}
