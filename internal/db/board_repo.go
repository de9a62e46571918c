package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

// ErrNotFound is returned when a project or task does not exist.
var ErrNotFound = errors.New("not found")

// BoardRepo owns projects and tasks.
type BoardRepo struct {
	db *gorm.DB
}

// NewBoardRepo creates a repository over the given database handle.
func NewBoardRepo(database *gorm.DB) *BoardRepo {
	return &BoardRepo{db: database}
}

// ListProjects returns all projects, newest first.
func (r *BoardRepo) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject creates a new project.
func (r *BoardRepo) CreateProject(name, gitRepo string) (*models.Project, error) {
	project := models.Project{Name: name, GitRepo: gitRepo}
	if err := r.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// GetProject loads a project by id.
func (r *BoardRepo) GetProject(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return &project, nil
}

// ListTasks returns a project's tasks in board order.
func (r *BoardRepo) ListTasks(projectID uuid.UUID) ([]models.Task, error) {
	if _, err := r.GetProject(projectID); err != nil {
		return nil, err
	}
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).
		Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task in the todo column of a project.
func (r *BoardRepo) CreateTask(projectID uuid.UUID, title, description string) (*models.Task, error) {
	if _, err := r.GetProject(projectID); err != nil {
		return nil, err
	}
	task := models.Task{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      models.StatusTodo,
	}
	if err := r.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// MoveTask moves a task to another column.
func (r *BoardRepo) MoveTask(taskID uuid.UUID, status string) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	task.Status = status
	if err := r.db.Save(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}
	return &task, nil
}
