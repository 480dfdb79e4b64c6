package seed

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence surface the seeder writes through. The
// postgres implementation lives in internal/store; tests substitute an
// in-memory fake.
type Store interface {
	InsertOrganizations(ctx context.Context, orgs []Organization) error
	InsertUsers(ctx context.Context, users []User) error
	InsertTeams(ctx context.Context, teams []Team) error
	InsertMemberships(ctx context.Context, memberships []Membership) error
	InsertProjects(ctx context.Context, projects []Project) error
	InsertSections(ctx context.Context, sections []Section) error
	InsertTasks(ctx context.Context, tasks []Task) error
	InsertComments(ctx context.Context, comments []Comment) error
	InsertTags(ctx context.Context, tags []Tag) error
	InsertTaskTags(ctx context.Context, taskTags []TaskTag) error
	InsertFieldDefs(ctx context.Context, defs []FieldDef) error
	InsertFieldValues(ctx context.Context, values []FieldValue) error

	// FirstOrganization returns the earliest existing organization, or
	// nil when the table is empty.
	FirstOrganization(ctx context.Context) (*Organization, error)

	// ExistingEmails returns every email already present, so reruns keep
	// the unique constraint intact.
	ExistingEmails(ctx context.Context) ([]string, error)

	// UpdateSubtaskCounts sets the denormalized subtask counters on a
	// parent task.
	UpdateSubtaskCounts(ctx context.Context, taskID uuid.UUID, total, completed int) error
}
