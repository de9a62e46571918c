package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task status constants
const (
	StatusTodo       = "todo"
	StatusInProgress = "inprogress"
	StatusInReview   = "inreview"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// TaskStatuses lists the board columns in display order.
var TaskStatuses = []string{StatusTodo, StatusInProgress, StatusInReview, StatusDone, StatusCancelled}

// Date format constants
const (
	DateTimeFormat      = "2006-01-02 15:04:05"
	DateTimeShortFormat = "2006-01-02 15:04"
)

// ValidTaskStatus reports whether status is a known board column.
func ValidTaskStatus(status string) bool {
	for _, s := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Project groups tasks on a single board.
type Project struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	GitRepo   string    `gorm:"size:500" json:"git_repo,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate hook to generate ID if not set
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Task represents a card on the board.
type Task struct {
	ID          uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:text;not null;index" json:"project_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Status      string    `gorm:"size:20;default:todo;index" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// BeforeCreate hook to generate ID if not set
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsDone returns true once the task reached a terminal column.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone || t.Status == StatusCancelled
}
