package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SyedTasneemKousar/asana/internal/seed"
	"github.com/SyedTasneemKousar/asana/internal/timegen"
)

// PG implements seed.Store on a PostgreSQL connection. Batch inserts go
// through the COPY protocol.
type PG struct {
	conn *pgx.Conn
}

// Connect opens a connection using a keyword/value connection string.
func Connect(ctx context.Context, connStr string) (*PG, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return &PG{conn: conn}, nil
}

// Close releases the connection.
func (p *PG) Close(ctx context.Context) error {
	return p.conn.Close(ctx)
}

// Ping verifies the connection is alive.
func (p *PG) Ping(ctx context.Context) error {
	return p.conn.Ping(ctx)
}

// EnsureSchema creates every table and index, in FK dependency order.
func (p *PG) EnsureSchema(ctx context.Context) error {
	for _, tmpl := range CreationOrder(Tables()) {
		for _, stmt := range GenerateDDL(tmpl) {
			if _, err := p.conn.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply DDL for %s: %w", tmpl.Name, err)
			}
		}
	}
	return nil
}

// Truncate empties every table, children first.
func (p *PG) Truncate(ctx context.Context) error {
	ordered := CreationOrder(Tables())
	for i := len(ordered) - 1; i >= 0; i-- {
		stmt := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", pgIdentifier(ordered[i].Name))
		if _, err := p.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("truncate %s: %w", ordered[i].Name, err)
		}
	}
	return nil
}

func (p *PG) copyInto(ctx context.Context, table string, cols []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := p.conn.CopyFrom(ctx, pgx.Identifier{table}, cols, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", table, err)
	}
	return nil
}

func (p *PG) InsertOrganizations(ctx context.Context, orgs []seed.Organization) error {
	cols := []string{"organization_id", "name", "domain", "created_at", "is_organization"}
	rows := make([][]any, len(orgs))
	for i, o := range orgs {
		rows[i] = []any{o.ID, o.Name, o.Domain, o.CreatedAt, true}
	}
	return p.copyInto(ctx, "organizations", cols, rows)
}

func (p *PG) InsertUsers(ctx context.Context, users []seed.User) error {
	cols := []string{"user_id", "organization_id", "name", "email", "photo_url", "created_at", "is_active"}
	rows := make([][]any, len(users))
	for i, u := range users {
		rows[i] = []any{u.ID, u.OrganizationID, u.Name, u.Email, u.PhotoURL, u.CreatedAt, u.IsActive}
	}
	return p.copyInto(ctx, "users", cols, rows)
}

func (p *PG) InsertTeams(ctx context.Context, teams []seed.Team) error {
	cols := []string{"team_id", "organization_id", "name", "description", "created_at"}
	rows := make([][]any, len(teams))
	for i, t := range teams {
		rows[i] = []any{t.ID, t.OrganizationID, t.Name, t.Description, t.CreatedAt}
	}
	return p.copyInto(ctx, "teams", cols, rows)
}

func (p *PG) InsertMemberships(ctx context.Context, memberships []seed.Membership) error {
	cols := []string{"membership_id", "team_id", "user_id", "role", "joined_at"}
	rows := make([][]any, len(memberships))
	for i, m := range memberships {
		rows[i] = []any{m.ID, m.TeamID, m.UserID, m.Role, m.JoinedAt}
	}
	return p.copyInto(ctx, "team_memberships", cols, rows)
}

func (p *PG) InsertProjects(ctx context.Context, projects []seed.Project) error {
	cols := []string{"project_id", "organization_id", "team_id", "name", "description",
		"color", "is_public", "archived", "created_at", "modified_at"}
	rows := make([][]any, len(projects))
	for i, pr := range projects {
		rows[i] = []any{pr.ID, pr.OrganizationID, pr.TeamID, pr.Name, pr.Description,
			pr.Color, pr.IsPublic, pr.Archived, pr.CreatedAt, pr.ModifiedAt}
	}
	return p.copyInto(ctx, "projects", cols, rows)
}

func (p *PG) InsertSections(ctx context.Context, sections []seed.Section) error {
	cols := []string{"section_id", "project_id", "name", "position", "created_at"}
	rows := make([][]any, len(sections))
	for i, s := range sections {
		rows[i] = []any{s.ID, s.ProjectID, s.Name, s.Position, s.CreatedAt}
	}
	return p.copyInto(ctx, "sections", cols, rows)
}

func (p *PG) InsertTasks(ctx context.Context, tasks []seed.Task) error {
	cols := []string{"task_id", "project_id", "section_id", "name", "description",
		"assignee_id", "due_date", "due_on", "completed", "completed_at",
		"created_at", "modified_at", "parent_task_id", "num_subtasks", "num_completed_subtasks"}
	rows := make([][]any, len(tasks))
	for i, t := range tasks {
		due := dateValue(t.DueDate)
		rows[i] = []any{t.ID, t.ProjectID, t.SectionID, t.Name, t.Description,
			t.AssigneeID, due, due, t.Completed(), t.CompletedAt,
			t.CreatedAt, t.ModifiedAt, t.ParentTaskID, t.NumSubtasks, t.NumCompletedSubtasks}
	}
	return p.copyInto(ctx, "tasks", cols, rows)
}

func (p *PG) InsertComments(ctx context.Context, comments []seed.Comment) error {
	cols := []string{"comment_id", "task_id", "user_id", "text", "created_at"}
	rows := make([][]any, len(comments))
	for i, c := range comments {
		rows[i] = []any{c.ID, c.TaskID, c.UserID, c.Text, c.CreatedAt}
	}
	return p.copyInto(ctx, "comments", cols, rows)
}

func (p *PG) InsertTags(ctx context.Context, tags []seed.Tag) error {
	cols := []string{"tag_id", "organization_id", "name", "color", "created_at"}
	rows := make([][]any, len(tags))
	for i, t := range tags {
		rows[i] = []any{t.ID, t.OrganizationID, t.Name, t.Color, t.CreatedAt}
	}
	return p.copyInto(ctx, "tags", cols, rows)
}

func (p *PG) InsertTaskTags(ctx context.Context, taskTags []seed.TaskTag) error {
	cols := []string{"association_id", "task_id", "tag_id", "created_at"}
	rows := make([][]any, len(taskTags))
	for i, tt := range taskTags {
		rows[i] = []any{tt.ID, tt.TaskID, tt.TagID, tt.CreatedAt}
	}
	return p.copyInto(ctx, "task_tags", cols, rows)
}

func (p *PG) InsertFieldDefs(ctx context.Context, defs []seed.FieldDef) error {
	cols := []string{"field_id", "project_id", "name", "type", "enum_options", "created_at"}
	rows := make([][]any, len(defs))
	for i, d := range defs {
		var options any
		if d.EnumOptions != nil {
			b, err := json.Marshal(d.EnumOptions)
			if err != nil {
				return fmt.Errorf("marshal enum options for %s: %w", d.Name, err)
			}
			options = string(b)
		}
		rows[i] = []any{d.ID, d.ProjectID, d.Name, d.Type, options, d.CreatedAt}
	}
	return p.copyInto(ctx, "custom_field_definitions", cols, rows)
}

func (p *PG) InsertFieldValues(ctx context.Context, values []seed.FieldValue) error {
	cols := []string{"value_id", "task_id", "field_id", "text_value", "number_value",
		"enum_value", "date_value", "created_at"}
	rows := make([][]any, len(values))
	for i, v := range values {
		text, number, enum, date := v.Content.Columns()
		rows[i] = []any{v.ID, v.TaskID, v.FieldID, text, number, enum, dateValue(date), v.CreatedAt}
	}
	return p.copyInto(ctx, "custom_field_values", cols, rows)
}

func (p *PG) FirstOrganization(ctx context.Context) (*seed.Organization, error) {
	var o seed.Organization
	err := p.conn.QueryRow(ctx,
		"SELECT organization_id, name, domain, created_at FROM organizations ORDER BY created_at LIMIT 1",
	).Scan(&o.ID, &o.Name, &o.Domain, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query first organization: %w", err)
	}
	return &o, nil
}

func (p *PG) ExistingEmails(ctx context.Context) ([]string, error) {
	rows, err := p.conn.Query(ctx, "SELECT email FROM users")
	if err != nil {
		return nil, fmt.Errorf("query existing emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (p *PG) UpdateSubtaskCounts(ctx context.Context, taskID uuid.UUID, total, completed int) error {
	_, err := p.conn.Exec(ctx,
		"UPDATE tasks SET num_subtasks = $1, num_completed_subtasks = $2 WHERE task_id = $3",
		total, completed, taskID,
	)
	if err != nil {
		return fmt.Errorf("update subtask counts for %s: %w", taskID, err)
	}
	return nil
}

// CountRows returns the row count for a known table. Unknown names are
// rejected rather than interpolated.
func (p *PG) CountRows(ctx context.Context, table string) (int64, error) {
	known := false
	for _, t := range Tables() {
		if t.Name == table {
			known = true
			break
		}
	}
	if !known {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int64
	err := p.conn.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", pgIdentifier(table))).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// dateValue converts an optional civil date to the driver representation
// for a DATE column.
func dateValue(d *timegen.Date) any {
	if d == nil {
		return nil
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
