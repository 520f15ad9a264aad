package story

import (
	"github.com/google/uuid"
)

// TaskParams configures NewTask.
type TaskParams struct {
	Title       string
	Description string
	Priority    int
	Status      string
	Assignees   []string
}

// Task is an engineering or verification reminder, usually attached to a UserStory.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    int
	Status      string

	assignees []string
}

// NewTask creates a task with a fresh id.
func NewTask(params TaskParams) *Task {
	t := &Task{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Priority:    params.Priority,
		Status:      params.Status,
	}

	t.AddAssignee(params.Assignees...)

	return t
}

// AddAssignee adds team member names, ignoring duplicates.
func (t *Task) AddAssignee(names ...string) {
	for _, name := range names {
		if !contains(t.assignees, name) {
			t.assignees = append(t.assignees, name)
		}
	}
}

// Assignees returns the assigned team members in insertion order.
func (t *Task) Assignees() []string {
	return append([]string(nil), t.assignees...)
}

// AddTo attaches the task to every given story.
func (t *Task) AddTo(stories ...*UserStory) {
	for _, s := range stories {
		if s != nil {
			s.AddTask(t)
		}
	}
}

// TaskOutput is the serialisable form of a Task.
type TaskOutput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Status      string   `json:"status,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
}

// Output returns the serialisable form.
func (t *Task) Output() TaskOutput {
	return TaskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		Assignees:   t.Assignees(),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
