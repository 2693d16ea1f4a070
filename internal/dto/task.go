package dto

import (
	"time"

	"github.com/taskstack/user-task-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	TaskID      string    `json:"task_id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Time        time.Time `json:"time"`
	Remarks     string    `json:"remarks"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		TaskID:      task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Time:        task.Time,
		Remarks:     task.Remarks,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models to TaskDTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
