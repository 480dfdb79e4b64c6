// Package store persists generated workspace data to PostgreSQL and
// owns the schema DDL.
package store

import (
	"fmt"
	"strings"
)

// TableTemplate defines a table's schema for DDL generation.
type TableTemplate struct {
	Name        string
	Columns     []ColumnDef
	Indexes     []IndexDef
	ForeignKeys []FKDef
}

// ColumnDef defines a single column.
type ColumnDef struct {
	Name     string
	Type     string
	Nullable bool
	Default  string
	Unique   bool
}

// IndexDef defines an index.
type IndexDef struct {
	Name    string
	Columns []string
	Unique  bool
}

// FKDef defines a foreign key reference.
type FKDef struct {
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  string
}

// Tables returns the workspace schema in declaration order. Use
// CreationOrder for the FK-safe ordering.
func Tables() []TableTemplate {
	return []TableTemplate{
		{
			Name: "organizations",
			Columns: []ColumnDef{
				{Name: "organization_id", Type: "UUID PRIMARY KEY"},
				{Name: "name", Type: "VARCHAR(255)", Unique: true},
				{Name: "domain", Type: "VARCHAR(255)"},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
				{Name: "is_organization", Type: "BOOLEAN", Default: "true"},
			},
			Indexes: []IndexDef{
				{Name: "idx_organizations_name", Columns: []string{"name"}, Unique: true},
			},
		},
		{
			Name: "users",
			Columns: []ColumnDef{
				{Name: "user_id", Type: "UUID PRIMARY KEY"},
				{Name: "organization_id", Type: "UUID"},
				{Name: "name", Type: "VARCHAR(255)"},
				{Name: "email", Type: "VARCHAR(255)", Unique: true},
				{Name: "photo_url", Type: "VARCHAR(500)", Nullable: true},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
				{Name: "is_active", Type: "BOOLEAN", Default: "true"},
			},
			ForeignKeys: []FKDef{
				{Column: "organization_id", RefTable: "organizations", RefColumn: "organization_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_users_email", Columns: []string{"email"}, Unique: true},
				{Name: "idx_users_organization_id", Columns: []string{"organization_id"}},
			},
		},
		{
			Name: "teams",
			Columns: []ColumnDef{
				{Name: "team_id", Type: "UUID PRIMARY KEY"},
				{Name: "organization_id", Type: "UUID"},
				{Name: "name", Type: "VARCHAR(255)"},
				{Name: "description", Type: "TEXT", Nullable: true},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "organization_id", RefTable: "organizations", RefColumn: "organization_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_teams_organization_id", Columns: []string{"organization_id"}},
			},
		},
		{
			Name: "team_memberships",
			Columns: []ColumnDef{
				{Name: "membership_id", Type: "UUID PRIMARY KEY"},
				{Name: "team_id", Type: "UUID"},
				{Name: "user_id", Type: "UUID"},
				{Name: "role", Type: "VARCHAR(20)", Default: "'member'"},
				{Name: "joined_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "team_id", RefTable: "teams", RefColumn: "team_id", OnDelete: "CASCADE"},
				{Column: "user_id", RefTable: "users", RefColumn: "user_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_team_memberships_team_user", Columns: []string{"team_id", "user_id"}, Unique: true},
			},
		},
		{
			Name: "projects",
			Columns: []ColumnDef{
				{Name: "project_id", Type: "UUID PRIMARY KEY"},
				{Name: "organization_id", Type: "UUID"},
				{Name: "team_id", Type: "UUID", Nullable: true},
				{Name: "name", Type: "VARCHAR(500)"},
				{Name: "description", Type: "TEXT", Nullable: true},
				{Name: "color", Type: "VARCHAR(20)", Nullable: true},
				{Name: "is_public", Type: "BOOLEAN", Default: "false"},
				{Name: "archived", Type: "BOOLEAN", Default: "false"},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
				{Name: "modified_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "organization_id", RefTable: "organizations", RefColumn: "organization_id", OnDelete: "CASCADE"},
				{Column: "team_id", RefTable: "teams", RefColumn: "team_id", OnDelete: "SET NULL"},
			},
			Indexes: []IndexDef{
				{Name: "idx_projects_organization_id", Columns: []string{"organization_id"}},
				{Name: "idx_projects_team_id", Columns: []string{"team_id"}},
			},
		},
		{
			Name: "sections",
			Columns: []ColumnDef{
				{Name: "section_id", Type: "UUID PRIMARY KEY"},
				{Name: "project_id", Type: "UUID"},
				{Name: "name", Type: "VARCHAR(255)"},
				{Name: "position", Type: "INTEGER", Default: "0"},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "project_id", RefTable: "projects", RefColumn: "project_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_sections_project_id", Columns: []string{"project_id"}},
			},
		},
		{
			Name: "tasks",
			Columns: []ColumnDef{
				{Name: "task_id", Type: "UUID PRIMARY KEY"},
				{Name: "project_id", Type: "UUID"},
				{Name: "section_id", Type: "UUID", Nullable: true},
				{Name: "name", Type: "VARCHAR(500)"},
				{Name: "description", Type: "TEXT", Nullable: true},
				{Name: "assignee_id", Type: "UUID", Nullable: true},
				{Name: "due_date", Type: "DATE", Nullable: true},
				{Name: "due_on", Type: "DATE", Nullable: true},
				{Name: "completed", Type: "BOOLEAN", Default: "false"},
				{Name: "completed_at", Type: "TIMESTAMPTZ", Nullable: true},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
				{Name: "modified_at", Type: "TIMESTAMPTZ"},
				{Name: "parent_task_id", Type: "UUID", Nullable: true},
				{Name: "num_subtasks", Type: "INTEGER", Default: "0"},
				{Name: "num_completed_subtasks", Type: "INTEGER", Default: "0"},
			},
			ForeignKeys: []FKDef{
				{Column: "project_id", RefTable: "projects", RefColumn: "project_id", OnDelete: "CASCADE"},
				{Column: "section_id", RefTable: "sections", RefColumn: "section_id", OnDelete: "SET NULL"},
				{Column: "assignee_id", RefTable: "users", RefColumn: "user_id", OnDelete: "SET NULL"},
				{Column: "parent_task_id", RefTable: "tasks", RefColumn: "task_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_tasks_project_id", Columns: []string{"project_id"}},
				{Name: "idx_tasks_section_id", Columns: []string{"section_id"}},
				{Name: "idx_tasks_assignee_id", Columns: []string{"assignee_id"}},
				{Name: "idx_tasks_parent_task_id", Columns: []string{"parent_task_id"}},
				{Name: "idx_tasks_completed", Columns: []string{"completed"}},
				{Name: "idx_tasks_due_date", Columns: []string{"due_date"}},
			},
		},
		{
			Name: "comments",
			Columns: []ColumnDef{
				{Name: "comment_id", Type: "UUID PRIMARY KEY"},
				{Name: "task_id", Type: "UUID"},
				{Name: "user_id", Type: "UUID"},
				{Name: "text", Type: "TEXT"},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "task_id", RefTable: "tasks", RefColumn: "task_id", OnDelete: "CASCADE"},
				{Column: "user_id", RefTable: "users", RefColumn: "user_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_comments_task_id", Columns: []string{"task_id"}},
				{Name: "idx_comments_user_id", Columns: []string{"user_id"}},
			},
		},
		{
			Name: "tags",
			Columns: []ColumnDef{
				{Name: "tag_id", Type: "UUID PRIMARY KEY"},
				{Name: "organization_id", Type: "UUID"},
				{Name: "name", Type: "VARCHAR(100)"},
				{Name: "color", Type: "VARCHAR(20)", Nullable: true},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "organization_id", RefTable: "organizations", RefColumn: "organization_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_tags_organization_name", Columns: []string{"organization_id", "name"}, Unique: true},
			},
		},
		{
			Name: "task_tags",
			Columns: []ColumnDef{
				{Name: "association_id", Type: "UUID PRIMARY KEY"},
				{Name: "task_id", Type: "UUID"},
				{Name: "tag_id", Type: "UUID"},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "task_id", RefTable: "tasks", RefColumn: "task_id", OnDelete: "CASCADE"},
				{Column: "tag_id", RefTable: "tags", RefColumn: "tag_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_task_tags_task_tag", Columns: []string{"task_id", "tag_id"}, Unique: true},
			},
		},
		{
			Name: "custom_field_definitions",
			Columns: []ColumnDef{
				{Name: "field_id", Type: "UUID PRIMARY KEY"},
				{Name: "project_id", Type: "UUID"},
				{Name: "name", Type: "VARCHAR(255)"},
				{Name: "type", Type: "VARCHAR(20)"},
				{Name: "enum_options", Type: "JSONB", Nullable: true},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "project_id", RefTable: "projects", RefColumn: "project_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_custom_field_definitions_project_id", Columns: []string{"project_id"}},
			},
		},
		{
			Name: "custom_field_values",
			Columns: []ColumnDef{
				{Name: "value_id", Type: "UUID PRIMARY KEY"},
				{Name: "task_id", Type: "UUID"},
				{Name: "field_id", Type: "UUID"},
				{Name: "text_value", Type: "TEXT", Nullable: true},
				{Name: "number_value", Type: "INTEGER", Nullable: true},
				{Name: "enum_value", Type: "VARCHAR(255)", Nullable: true},
				{Name: "date_value", Type: "DATE", Nullable: true},
				{Name: "created_at", Type: "TIMESTAMPTZ"},
			},
			ForeignKeys: []FKDef{
				{Column: "task_id", RefTable: "tasks", RefColumn: "task_id", OnDelete: "CASCADE"},
				{Column: "field_id", RefTable: "custom_field_definitions", RefColumn: "field_id", OnDelete: "CASCADE"},
			},
			Indexes: []IndexDef{
				{Name: "idx_custom_field_values_task_field", Columns: []string{"task_id", "field_id"}, Unique: true},
			},
		},
	}
}

// CreationOrder returns tables sorted so every table appears after the
// tables it references, using Kahn's algorithm. Self-references are
// ignored.
func CreationOrder(tables []TableTemplate) []TableTemplate {
	nameSet := make(map[string]bool, len(tables))
	byName := make(map[string]TableTemplate, len(tables))
	for _, t := range tables {
		nameSet[t.Name] = true
		byName[t.Name] = t
	}

	inDegree := make(map[string]int, len(tables))
	dependents := make(map[string][]string)
	for _, t := range tables {
		if _, ok := inDegree[t.Name]; !ok {
			inDegree[t.Name] = 0
		}
		for _, fk := range t.ForeignKeys {
			if nameSet[fk.RefTable] && fk.RefTable != t.Name {
				inDegree[t.Name]++
				dependents[fk.RefTable] = append(dependents[fk.RefTable], t.Name)
			}
		}
	}

	// Seed the queue in declaration order so the sort is deterministic.
	var queue []string
	for _, t := range tables {
		if inDegree[t.Name] == 0 {
			queue = append(queue, t.Name)
		}
	}

	var sorted []TableTemplate
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		sorted = append(sorted, byName[name])
		for _, child := range dependents[name] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	// A cycle would leave tables behind; append them so DDL still runs.
	if len(sorted) < len(tables) {
		present := make(map[string]bool, len(sorted))
		for _, t := range sorted {
			present[t.Name] = true
		}
		for _, t := range tables {
			if !present[t.Name] {
				sorted = append(sorted, t)
			}
		}
	}

	return sorted
}

// GenerateDDL produces the CREATE TABLE and CREATE INDEX statements for a
// template.
func GenerateDDL(tmpl TableTemplate) []string {
	var stmts []string

	var cols []string
	for _, c := range tmpl.Columns {
		col := fmt.Sprintf("  %s %s", pgIdentifier(c.Name), c.Type)
		if c.Unique && !strings.Contains(strings.ToUpper(c.Type), "PRIMARY KEY") {
			col += " UNIQUE"
		}
		if !c.Nullable && !strings.Contains(strings.ToUpper(c.Type), "PRIMARY KEY") {
			col += " NOT NULL"
		}
		if c.Default != "" {
			col += " DEFAULT " + c.Default
		}
		cols = append(cols, col)
	}

	for _, fk := range tmpl.ForeignKeys {
		onDelete := "RESTRICT"
		if fk.OnDelete != "" {
			onDelete = fk.OnDelete
		}
		constraint := fmt.Sprintf("  CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE %s",
			pgIdentifier(fmt.Sprintf("fk_%s_%s", tmpl.Name, fk.Column)),
			pgIdentifier(fk.Column),
			pgIdentifier(fk.RefTable),
			pgIdentifier(fk.RefColumn),
			onDelete,
		)
		cols = append(cols, constraint)
	}

	createTable := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)",
		pgIdentifier(tmpl.Name),
		strings.Join(cols, ",\n"),
	)
	stmts = append(stmts, createTable)

	for _, idx := range tmpl.Indexes {
		var quotedCols []string
		for _, c := range idx.Columns {
			quotedCols = append(quotedCols, pgIdentifier(c))
		}
		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		stmt := fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s (%s)",
			unique,
			pgIdentifier(idx.Name),
			pgIdentifier(tmpl.Name),
			strings.Join(quotedCols, ", "),
		)
		stmts = append(stmts, stmt)
	}

	return stmts
}

// pgIdentifier quotes a PostgreSQL identifier.
func pgIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
