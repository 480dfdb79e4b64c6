// Package seed generates a synthetic work-management workspace: one or
// more organizations with users, teams, projects, tasks, and the
// surrounding collaboration records, all drawn from an explicit random
// source so a fixed seed reproduces the same dataset.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/SyedTasneemKousar/asana/internal/timegen"
)

// Organization is the workspace root every other record hangs off.
type Organization struct {
	ID        uuid.UUID
	Name      string
	Domain    string
	CreatedAt time.Time
}

// User is a workspace member. PhotoURL is always nil for generated users.
type User struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Email          string
	PhotoURL       *string
	CreatedAt      time.Time
	IsActive       bool
}

// Team groups users inside an organization.
type Team struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Description    *string
	CreatedAt      time.Time
}

// Membership roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Membership links a user to a team.
type Membership struct {
	ID       uuid.UUID
	TeamID   uuid.UUID
	UserID   uuid.UUID
	Role     string
	JoinedAt time.Time
}

// Project is a container of sections and tasks. Type drives name
// templates, section layout, custom fields, and the completion rate; it
// is generation metadata and is not persisted.
type Project struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	TeamID         *uuid.UUID
	Name           string
	Description    *string
	Color          string
	IsPublic       bool
	Archived       bool
	CreatedAt      time.Time
	ModifiedAt     time.Time

	Type string
}

// Section is a board column within a project.
type Section struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Position  int
	CreatedAt time.Time
}

// Task is a unit of work. Subtasks are tasks with ParentTaskID set; they
// inherit the parent's project and section. A task is completed exactly
// when CompletedAt is non-nil.
type Task struct {
	ID                   uuid.UUID
	ProjectID            uuid.UUID
	SectionID            *uuid.UUID
	Name                 string
	Description          *string
	AssigneeID           *uuid.UUID
	DueDate              *timegen.Date
	CompletedAt          *time.Time
	CreatedAt            time.Time
	ModifiedAt           time.Time
	ParentTaskID         *uuid.UUID
	NumSubtasks          int
	NumCompletedSubtasks int
}

// Completed reports whether the task has a completion timestamp.
func (t *Task) Completed() bool { return t.CompletedAt != nil }

// Comment is a user remark on a task.
type Comment struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	UserID    uuid.UUID
	Text      string
	CreatedAt time.Time
}

// Tag is an organization-level label.
type Tag struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Color          string
	CreatedAt      time.Time
}

// TaskTag associates a tag with a task.
type TaskTag struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	TagID     uuid.UUID
	CreatedAt time.Time
}

// FieldDef declares a custom field on a project. EnumOptions is non-nil
// only for enum fields.
type FieldDef struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Type        string
	EnumOptions []string
	CreatedAt   time.Time
}

// FieldValue holds one task's value for a custom field.
type FieldValue struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	FieldID   uuid.UUID
	Content   FieldContent
	CreatedAt time.Time
}
