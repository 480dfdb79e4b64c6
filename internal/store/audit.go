package store

import (
	"context"
	"fmt"
)

// Violation is one failed consistency check, with the number of rows
// breaking it.
type Violation struct {
	Check string
	Count int64
}

var auditChecks = []struct {
	name  string
	query string
}{
	{
		name: "task completed at or before creation",
		query: `SELECT COUNT(*) FROM tasks
			WHERE completed_at IS NOT NULL AND completed_at <= created_at`,
	},
	{
		name: "task due before creation date",
		query: `SELECT COUNT(*) FROM tasks
			WHERE due_date IS NOT NULL AND due_date < created_at::date`,
	},
	{
		name: "completed flag out of sync with completed_at",
		query: `SELECT COUNT(*) FROM tasks
			WHERE completed <> (completed_at IS NOT NULL)`,
	},
	{
		name: "subtask counters drifted from children",
		query: `SELECT COUNT(*) FROM tasks p
			WHERE p.parent_task_id IS NULL
			  AND p.num_subtasks <> (SELECT COUNT(*) FROM tasks c WHERE c.parent_task_id = p.task_id)`,
	},
	{
		name: "comment precedes its task",
		query: `SELECT COUNT(*) FROM comments c
			JOIN tasks t ON t.task_id = c.task_id
			WHERE c.created_at < t.created_at`,
	},
	{
		name: "duplicate user emails",
		query: `SELECT COUNT(*) FROM (
			SELECT email FROM users GROUP BY email HAVING COUNT(*) > 1
		) d`,
	},
	{
		name: "duplicate organization names",
		query: `SELECT COUNT(*) FROM (
			SELECT name FROM organizations GROUP BY name HAVING COUNT(*) > 1
		) d`,
	},
	{
		name: "enum value outside declared options",
		query: `SELECT COUNT(*) FROM custom_field_values v
			JOIN custom_field_definitions f ON f.field_id = v.field_id
			WHERE v.enum_value IS NOT NULL
			  AND NOT f.enum_options @> to_jsonb(v.enum_value)`,
	},
}

// Audit runs every consistency check and returns the ones that found
// offending rows.
func (p *PG) Audit(ctx context.Context) ([]Violation, error) {
	var violations []Violation
	for _, c := range auditChecks {
		var n int64
		if err := p.conn.QueryRow(ctx, c.query).Scan(&n); err != nil {
			return nil, fmt.Errorf("run check %q: %w", c.name, err)
		}
		if n > 0 {
			violations = append(violations, Violation{Check: c.name, Count: n})
		}
	}
	return violations, nil
}
