package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SyedTasneemKousar/asana/internal/config"
	"github.com/SyedTasneemKousar/asana/internal/timegen"
)

// generateProjectContent fills one project: sections, custom field
// definitions, tasks with subtasks, comments, tag assignments, and
// custom field values. Any persistence error aborts only this project.
func (sd *Seeder) generateProjectContent(ctx context.Context, p Project, users []User, members map[uuid.UUID][]uuid.UUID, tags []Tag, sum *Summary) error {
	sections, err := sd.generateSections(ctx, p, sum)
	if err != nil {
		return fmt.Errorf("sections: %w", err)
	}
	defs, err := sd.generateFieldDefs(ctx, p, sum)
	if err != nil {
		return fmt.Errorf("field definitions: %w", err)
	}

	// Assignees and comment authors come from the owning team, or the
	// whole workspace for organization-level projects.
	pool := sd.assigneePool(p, users, members)

	tasks, err := sd.generateTasks(ctx, p, sections, pool, sum)
	if err != nil {
		return fmt.Errorf("tasks: %w", err)
	}

	for i := range tasks {
		t := &tasks[i]
		if err := sd.generateSubtasks(ctx, t, sum); err != nil {
			sd.log.WithError(err).WithField("task", t.Name).Warn("skipping subtasks")
		}
		if err := sd.generateComments(ctx, t, pool, sum); err != nil {
			sd.log.WithError(err).WithField("task", t.Name).Warn("skipping comments")
		}
		if err := sd.assignTags(ctx, t, tags, sum); err != nil {
			sd.log.WithError(err).WithField("task", t.Name).Warn("skipping tag assignment")
		}
		if err := sd.assignFieldValues(ctx, t, defs, sum); err != nil {
			sd.log.WithError(err).WithField("task", t.Name).Warn("skipping custom field values")
		}
	}

	sd.log.WithFields(logrus.Fields{"project": p.Name, "tasks": len(tasks)}).Info("generated project content")
	return nil
}

func (sd *Seeder) assigneePool(p Project, users []User, members map[uuid.UUID][]uuid.UUID) []User {
	if p.TeamID != nil {
		if ids := members[*p.TeamID]; len(ids) > 0 {
			byID := make(map[uuid.UUID]User, len(users))
			for _, u := range users {
				byID[u.ID] = u
			}
			pool := make([]User, 0, len(ids))
			for _, id := range ids {
				if u, ok := byID[id]; ok {
					pool = append(pool, u)
				}
			}
			if len(pool) > 0 {
				return pool
			}
		}
	}
	return users
}

func (sd *Seeder) generateSections(ctx context.Context, p Project, sum *Summary) ([]Section, error) {
	names, ok := config.SectionTemplates[p.Type]
	if !ok {
		names = config.DefaultSections
	}
	w := timegen.Window{Start: p.CreatedAt, End: sd.window.End}
	sections := make([]Section, 0, len(names))
	for pos, name := range names {
		sections = append(sections, Section{
			ID:        uuid.New(),
			ProjectID: p.ID,
			Name:      name,
			Position:  pos,
			CreatedAt: sd.creationTime(w),
		})
	}
	if err := sd.store.InsertSections(ctx, sections); err != nil {
		return nil, err
	}
	sum.Sections += len(sections)
	return sections, nil
}

func (sd *Seeder) generateFieldDefs(ctx context.Context, p Project, sum *Summary) ([]FieldDef, error) {
	kinds := config.CustomFieldKinds[p.Type]
	if len(kinds) == 0 {
		return nil, nil
	}
	w := timegen.Window{Start: p.CreatedAt, End: sd.window.End}
	defs := make([]FieldDef, 0, len(kinds))
	for _, kind := range kinds {
		options := config.FieldOptions[kind]
		fieldType := FieldTypeEnum
		if options == nil {
			fieldType = FieldTypeText
		}
		defs = append(defs, FieldDef{
			ID:          uuid.New(),
			ProjectID:   p.ID,
			Name:        titleCase(kind),
			Type:        fieldType,
			EnumOptions: options,
			CreatedAt:   sd.creationTime(w),
		})
	}
	if err := sd.store.InsertFieldDefs(ctx, defs); err != nil {
		return nil, err
	}
	sum.FieldDefs += len(defs)
	return defs, nil
}

func titleCase(kind string) string {
	words := strings.Split(strings.ReplaceAll(kind, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func (sd *Seeder) generateTasks(ctx context.Context, p Project, sections []Section, pool []User, sum *Summary) ([]Task, error) {
	g := sd.cfg.Generation
	count := sd.s.IntRange(g.TasksPerProjectMin, g.TasksPerProjectMax)
	rate := config.CompletionRate(p.Type)
	w := timegen.Window{Start: p.CreatedAt, End: sd.window.End}

	tasks := make([]Task, 0, count)
	for i := 0; i < count; i++ {
		name := sd.names.TaskName(p.Type)

		var sectionID *uuid.UUID
		if len(sections) > 0 {
			id := sections[sd.s.IntRange(0, len(sections)-1)].ID
			sectionID = &id
		}
		var assigneeID *uuid.UUID
		if len(pool) > 0 && !sd.s.Chance(g.UnassignedTaskRate) {
			id := pool[sd.s.IntRange(0, len(pool)-1)].ID
			assigneeID = &id
		}

		createdAt := sd.creationTime(w)
		due := timegen.DueDate(sd.s, createdAt)
		completedAt := timegen.CompletionTime(sd.s, createdAt, due, rate)

		tasks = append(tasks, Task{
			ID:          uuid.New(),
			ProjectID:   p.ID,
			SectionID:   sectionID,
			Name:        name,
			Description: sd.names.TaskDescription(name, p.Type),
			AssigneeID:  assigneeID,
			DueDate:     due,
			CompletedAt: completedAt,
			CreatedAt:   createdAt,
			ModifiedAt:  sd.modifiedTime(createdAt, completedAt),
		})
	}
	if err := sd.store.InsertTasks(ctx, tasks); err != nil {
		return nil, err
	}
	sum.Tasks += len(tasks)
	return tasks, nil
}

// generateSubtasks attaches children to a parent task and refreshes the
// parent's denormalized counters. Subtasks inherit the parent's project,
// section, and assignee.
func (sd *Seeder) generateSubtasks(ctx context.Context, parent *Task, sum *Summary) error {
	if !sd.s.Chance(sd.cfg.Generation.SubtaskRate) {
		return nil
	}
	count := sd.s.IntRange(1, 5)
	w := timegen.Window{Start: parent.CreatedAt, End: sd.window.End}

	subtasks := make([]Task, 0, count)
	completed := 0
	for i := 0; i < count; i++ {
		name := sd.names.SubtaskName()
		var desc *string
		if sd.s.Chance(0.50) {
			d := "Subtask: " + name
			desc = &d
		}

		createdAt := sd.creationTime(w)
		due := sd.subtaskDueDate(parent, createdAt)
		completedAt := sd.subtaskCompletion(parent, createdAt, due)
		if completedAt != nil {
			completed++
		}

		subtasks = append(subtasks, Task{
			ID:           uuid.New(),
			ProjectID:    parent.ProjectID,
			SectionID:    parent.SectionID,
			Name:         name,
			Description:  desc,
			AssigneeID:   parent.AssigneeID,
			DueDate:      due,
			CompletedAt:  completedAt,
			CreatedAt:    createdAt,
			ModifiedAt:   sd.modifiedTime(createdAt, completedAt),
			ParentTaskID: &parent.ID,
		})
	}

	if err := sd.store.InsertTasks(ctx, subtasks); err != nil {
		return err
	}
	if err := sd.store.UpdateSubtaskCounts(ctx, parent.ID, count, completed); err != nil {
		return err
	}
	parent.NumSubtasks = count
	parent.NumCompletedSubtasks = completed
	sum.Subtasks += len(subtasks)
	return nil
}

// subtaskDueDate lands shortly before the parent's due date, never before
// the subtask's own creation date. Without a parent due date it falls
// back to the regular due distribution.
func (sd *Seeder) subtaskDueDate(parent *Task, createdAt time.Time) *timegen.Date {
	if parent.DueDate == nil {
		return timegen.DueDate(sd.s, createdAt)
	}
	d := parent.DueDate.AddDays(-sd.s.IntRange(0, 7))
	if floor := timegen.DateOf(createdAt); d.Before(floor) {
		d = floor
	}
	return &d
}

// subtaskCompletion completes subtasks at a higher rate when the parent
// is completed, and then no later than the parent's completion.
func (sd *Seeder) subtaskCompletion(parent *Task, createdAt time.Time, due *timegen.Date) *time.Time {
	rate := 0.70
	if parent.Completed() {
		rate = 0.90
	}
	if parent.CompletedAt != nil && parent.CompletedAt.After(createdAt) {
		if !sd.s.Chance(rate) {
			return nil
		}
		t := sd.creationTime(timegen.Window{Start: createdAt, End: *parent.CompletedAt})
		if !t.After(createdAt) {
			// The window draw clamps to its start when the parent
			// completed shortly after the subtask was created; land
			// strictly inside the window instead.
			t = createdAt.Add(time.Duration(sd.s.Float64() * float64(parent.CompletedAt.Sub(createdAt))))
			if !t.After(createdAt) {
				t = *parent.CompletedAt
			}
		}
		return &t
	}
	return timegen.CompletionTime(sd.s, createdAt, due, rate)
}

func (sd *Seeder) generateComments(ctx context.Context, t *Task, pool []User, sum *Summary) error {
	if !sd.s.Chance(sd.cfg.Generation.CommentRate) || len(pool) == 0 {
		return nil
	}

	end := sd.window.End
	if t.CompletedAt != nil {
		end = *t.CompletedAt
	}
	// Only users who exist before the comment window closes can author in it.
	authors := make([]User, 0, len(pool))
	for _, u := range pool {
		if u.CreatedAt.Before(end) {
			authors = append(authors, u)
		}
	}
	if len(authors) == 0 {
		return nil
	}
	count := sd.s.IntRange(1, 5)

	comments := make([]Comment, 0, count)
	for i := 0; i < count; i++ {
		author := authors[sd.s.IntRange(0, len(authors)-1)]
		start := t.CreatedAt
		if author.CreatedAt.After(start) {
			start = author.CreatedAt
		}
		// Only the final comment on a completed task reads as a wrap-up.
		last := t.Completed() && i == count-1
		comments = append(comments, Comment{
			ID:        uuid.New(),
			TaskID:    t.ID,
			UserID:    author.ID,
			Text:      sd.names.CommentText(t.Name, last),
			CreatedAt: sd.creationTime(timegen.Window{Start: start, End: end}),
		})
	}
	if err := sd.store.InsertComments(ctx, comments); err != nil {
		return err
	}
	sum.Comments += len(comments)
	return nil
}

func (sd *Seeder) assignTags(ctx context.Context, t *Task, tags []Tag, sum *Summary) error {
	if len(tags) == 0 || !sd.s.Chance(sd.cfg.Generation.TagAssignmentRate) {
		return nil
	}
	count := sd.s.IntRange(0, 3)
	if count == 0 {
		return nil
	}
	w := timegen.Window{Start: t.CreatedAt, End: sd.window.End}

	taskTags := make([]TaskTag, 0, count)
	for _, idx := range sd.s.Indices(len(tags), count) {
		taskTags = append(taskTags, TaskTag{
			ID:        uuid.New(),
			TaskID:    t.ID,
			TagID:     tags[idx].ID,
			CreatedAt: sd.creationTime(w),
		})
	}
	if err := sd.store.InsertTaskTags(ctx, taskTags); err != nil {
		return err
	}
	sum.TaskTags += len(taskTags)
	return nil
}

func (sd *Seeder) assignFieldValues(ctx context.Context, t *Task, defs []FieldDef, sum *Summary) error {
	if len(defs) == 0 || !sd.s.Chance(sd.cfg.Generation.CustomFieldValueRate) {
		return nil
	}
	w := timegen.Window{Start: t.CreatedAt, End: sd.window.End}

	values := make([]FieldValue, 0, len(defs))
	for _, def := range defs {
		content, err := sd.fieldContent(def)
		if err != nil {
			return err
		}
		values = append(values, FieldValue{
			ID:        uuid.New(),
			TaskID:    t.ID,
			FieldID:   def.ID,
			Content:   content,
			CreatedAt: sd.creationTime(w),
		})
	}
	if err := sd.store.InsertFieldValues(ctx, values); err != nil {
		return err
	}
	sum.FieldValues += len(values)
	return nil
}

func (sd *Seeder) fieldContent(def FieldDef) (FieldContent, error) {
	switch def.Type {
	case FieldTypeEnum:
		return NewEnumContent(sd.s.Pick(def.EnumOptions), def.EnumOptions)
	case FieldTypeNumber:
		return NumberContent(sd.s.IntRange(1, 100)), nil
	case FieldTypeDate:
		return DateContent(timegen.DateOf(sd.creationTime(sd.window))), nil
	default:
		return TextContent("Value for " + def.Name), nil
	}
}
