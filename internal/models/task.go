package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task belongs to exactly one user via UserID. The column is plain text,
// not a foreign key; ownership is enforced by the scoped repository lookups.
type Task struct {
	ID          string    `gorm:"primarykey;type:varchar(36)" json:"task_id"`
	UserID      string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	Priority    string    `gorm:"type:varchar(255);not null" json:"priority"`
	Time        time.Time `json:"time"`
	Remarks     string    `gorm:"type:varchar(255)" json:"remarks"`
	Status      string    `gorm:"type:varchar(255);not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
