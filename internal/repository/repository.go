package repository

import (
	"github.com/taskstack/user-task-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user; the store assigns the id and created_at
	Create(user *models.User) error

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByID finds a user by ID with the password column omitted
	FindByID(id string) (*models.User, error)

	// ListAll returns every user with the password column omitted
	ListAll() ([]models.User, error)

	// ReplaceByID overwrites the whole record; fields left zero in the
	// replacement are written as zero values, never merged. Returns the
	// number of rows matched.
	ReplaceByID(id string, user *models.User) (int64, error)

	// DeleteByID removes a user and returns the removed record
	DeleteByID(id string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// FindByIDScoped finds a task filtered by both owner and task id;
	// a task id valid for a different user is not returned
	FindByIDScoped(userID, taskID string) (*models.Task, error)

	// FindByID finds a task by task id alone, ignoring ownership.
	// Only the remarks flow uses this lookup.
	FindByID(taskID string) (*models.Task, error)

	// ListByUser returns every task owned by the user
	ListByUser(userID string) ([]models.Task, error)

	// ReplaceByID overwrites the whole record keyed by task id only,
	// not scoped to the owner. Returns the number of rows matched.
	ReplaceByID(taskID string, task *models.Task) (int64, error)

	// DeleteByIDScoped removes a task filtered by both owner and task id.
	// Returns the number of rows removed.
	DeleteByIDScoped(userID, taskID string) (int64, error)

	// Save persists an in-memory mutation of a previously loaded task
	Save(task *models.Task) error
}
