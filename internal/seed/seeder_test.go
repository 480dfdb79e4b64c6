package seed

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyedTasneemKousar/asana/internal/config"
	"github.com/SyedTasneemKousar/asana/internal/dist"
	"github.com/SyedTasneemKousar/asana/internal/names"
)

// memStore is an in-memory Store capturing everything the seeder writes.
// failures maps a method name to an error returned on the nth call
// (1-based) of that method.
type memStore struct {
	orgs        []Organization
	users       []User
	teams       []Team
	memberships []Membership
	projects    []Project
	sections    []Section
	tasks       []Task
	comments    []Comment
	tags        []Tag
	taskTags    []TaskTag
	fieldDefs   []FieldDef
	fieldValues []FieldValue

	existing       *Organization
	existingEmails []string

	countUpdates map[uuid.UUID][2]int

	failOn   map[string]int
	callSeen map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		countUpdates: make(map[uuid.UUID][2]int),
		failOn:       make(map[string]int),
		callSeen:     make(map[string]int),
	}
}

func (m *memStore) fail(method string) error {
	m.callSeen[method]++
	if n, ok := m.failOn[method]; ok && m.callSeen[method] == n {
		return errors.New(method + " failed")
	}
	return nil
}

func (m *memStore) InsertOrganizations(_ context.Context, orgs []Organization) error {
	if err := m.fail("InsertOrganizations"); err != nil {
		return err
	}
	m.orgs = append(m.orgs, orgs...)
	return nil
}

func (m *memStore) InsertUsers(_ context.Context, users []User) error {
	if err := m.fail("InsertUsers"); err != nil {
		return err
	}
	m.users = append(m.users, users...)
	return nil
}

func (m *memStore) InsertTeams(_ context.Context, teams []Team) error {
	if err := m.fail("InsertTeams"); err != nil {
		return err
	}
	m.teams = append(m.teams, teams...)
	return nil
}

func (m *memStore) InsertMemberships(_ context.Context, memberships []Membership) error {
	if err := m.fail("InsertMemberships"); err != nil {
		return err
	}
	m.memberships = append(m.memberships, memberships...)
	return nil
}

func (m *memStore) InsertProjects(_ context.Context, projects []Project) error {
	if err := m.fail("InsertProjects"); err != nil {
		return err
	}
	m.projects = append(m.projects, projects...)
	return nil
}

func (m *memStore) InsertSections(_ context.Context, sections []Section) error {
	if err := m.fail("InsertSections"); err != nil {
		return err
	}
	m.sections = append(m.sections, sections...)
	return nil
}

func (m *memStore) InsertTasks(_ context.Context, tasks []Task) error {
	if err := m.fail("InsertTasks"); err != nil {
		return err
	}
	m.tasks = append(m.tasks, tasks...)
	return nil
}

func (m *memStore) InsertComments(_ context.Context, comments []Comment) error {
	if err := m.fail("InsertComments"); err != nil {
		return err
	}
	m.comments = append(m.comments, comments...)
	return nil
}

func (m *memStore) InsertTags(_ context.Context, tags []Tag) error {
	if err := m.fail("InsertTags"); err != nil {
		return err
	}
	m.tags = append(m.tags, tags...)
	return nil
}

func (m *memStore) InsertTaskTags(_ context.Context, taskTags []TaskTag) error {
	if err := m.fail("InsertTaskTags"); err != nil {
		return err
	}
	m.taskTags = append(m.taskTags, taskTags...)
	return nil
}

func (m *memStore) InsertFieldDefs(_ context.Context, defs []FieldDef) error {
	if err := m.fail("InsertFieldDefs"); err != nil {
		return err
	}
	m.fieldDefs = append(m.fieldDefs, defs...)
	return nil
}

func (m *memStore) InsertFieldValues(_ context.Context, values []FieldValue) error {
	if err := m.fail("InsertFieldValues"); err != nil {
		return err
	}
	m.fieldValues = append(m.fieldValues, values...)
	return nil
}

func (m *memStore) FirstOrganization(context.Context) (*Organization, error) {
	if err := m.fail("FirstOrganization"); err != nil {
		return nil, err
	}
	return m.existing, nil
}

func (m *memStore) ExistingEmails(context.Context) ([]string, error) {
	return m.existingEmails, nil
}

func (m *memStore) UpdateSubtaskCounts(_ context.Context, taskID uuid.UUID, total, completed int) error {
	if err := m.fail("UpdateSubtaskCounts"); err != nil {
		return err
	}
	m.countUpdates[taskID] = [2]int{total, completed}
	return nil
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		Generation: config.GenerationOptions{
			Organizations:        1,
			TeamsMin:             2,
			TeamsMax:             2,
			UsersMin:             12,
			UsersMax:             12,
			ProjectsMin:          4,
			ProjectsMax:          4,
			TasksPerProjectMin:   5,
			TasksPerProjectMax:   5,
			DateRangeMonths:      6,
			UnassignedTaskRate:   0.15,
			SubtaskRate:          0.30,
			CommentRate:          0.40,
			TagAssignmentRate:    0.30,
			CustomFieldValueRate: 0.70,
			TeamSizeMean:         8,
			TeamSizeStd:          4,
			TeamSizeMin:          3,
			TeamSizeMax:          10,
		},
	}
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newSeeder(cfg *config.Configuration, store Store, rngSeed int64) *Seeder {
	s := dist.New(rngSeed)
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	return New(cfg, store, s, names.New(s, nil), quietLog(), now)
}

func TestRunBuildsConsistentWorkspace(t *testing.T) {
	st := newMemStore()
	sd := newSeeder(testConfig(), st, 42)

	sum, err := sd.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, st.orgs, 1)
	assert.Equal(t, 1, sum.Organizations)
	org := st.orgs[0]

	assert.Equal(t, 12, sum.Users)
	require.Len(t, st.users, 12)
	emails := make(map[string]bool)
	for _, u := range st.users {
		assert.Equal(t, org.ID, u.OrganizationID)
		assert.False(t, u.CreatedAt.Before(org.CreatedAt), "user created before organization")
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true
	}

	assert.Equal(t, 2, sum.Teams)
	teamsByID := make(map[uuid.UUID]Team)
	for _, tm := range st.teams {
		assert.False(t, tm.CreatedAt.Before(org.CreatedAt), "team created before organization")
		teamsByID[tm.ID] = tm
	}
	usersByID := make(map[uuid.UUID]User)
	for _, u := range st.users {
		usersByID[u.ID] = u
	}
	for _, mb := range st.memberships {
		tm, ok := teamsByID[mb.TeamID]
		require.True(t, ok, "membership references unknown team")
		u, ok := usersByID[mb.UserID]
		require.True(t, ok, "membership references unknown user")
		assert.False(t, mb.JoinedAt.Before(tm.CreatedAt), "user joined before the team existed")
		assert.False(t, mb.JoinedAt.Before(u.CreatedAt), "user joined before their own creation")
	}

	require.Len(t, st.projects, 4)
	assert.Zero(t, sum.SkippedProjects)
	projects := make(map[uuid.UUID]Project)
	for _, p := range st.projects {
		assert.Equal(t, org.ID, p.OrganizationID)
		assert.False(t, p.CreatedAt.Before(org.CreatedAt), "project created before organization")
		projects[p.ID] = p
	}

	sectionsByID := make(map[uuid.UUID]Section)
	for _, s := range st.sections {
		_, ok := projects[s.ProjectID]
		assert.True(t, ok, "section references unknown project")
		sectionsByID[s.ID] = s
	}

	tasksByID := make(map[uuid.UUID]Task)
	for _, task := range st.tasks {
		tasksByID[task.ID] = task
	}
	for _, task := range st.tasks {
		p, ok := projects[task.ProjectID]
		require.True(t, ok, "task references unknown project")

		if task.ParentTaskID == nil {
			assert.False(t, task.CreatedAt.Before(p.CreatedAt),
				"task created before its project")
		} else {
			parent, ok := tasksByID[*task.ParentTaskID]
			require.True(t, ok, "subtask references unknown parent")
			assert.False(t, task.CreatedAt.Before(parent.CreatedAt),
				"subtask created before its parent")
			assert.Equal(t, parent.ProjectID, task.ProjectID)
		}
		if task.SectionID != nil {
			sec, ok := sectionsByID[*task.SectionID]
			require.True(t, ok, "task references unknown section")
			assert.Equal(t, task.ProjectID, sec.ProjectID)
		}
		if task.CompletedAt != nil {
			assert.True(t, task.CompletedAt.After(task.CreatedAt),
				"completion not after creation")
		}
		if task.DueDate != nil {
			assert.False(t, task.DueDate.Time(time.UTC).Before(
				time.Date(task.CreatedAt.Year(), task.CreatedAt.Month(), task.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)),
				"due date before creation date")
		}
		assert.False(t, task.ModifiedAt.Before(task.CreatedAt))
	}

	// Parent counters match the children actually written.
	children := make(map[uuid.UUID][]Task)
	for _, task := range st.tasks {
		if task.ParentTaskID != nil {
			children[*task.ParentTaskID] = append(children[*task.ParentTaskID], task)
		}
	}
	for parentID, kids := range children {
		counts, ok := st.countUpdates[parentID]
		require.True(t, ok, "no counter update for parent with children")
		assert.Equal(t, len(kids), counts[0])
		done := 0
		for _, k := range kids {
			if k.Completed() {
				done++
			}
		}
		assert.Equal(t, done, counts[1])
	}
	assert.Equal(t, sum.Subtasks, lenAll(children))

	for _, c := range st.comments {
		task, ok := tasksByID[c.TaskID]
		require.True(t, ok, "comment references unknown task")
		assert.False(t, c.CreatedAt.Before(task.CreatedAt), "comment precedes its task")
		author, ok := usersByID[c.UserID]
		require.True(t, ok, "comment by unknown user")
		assert.False(t, c.CreatedAt.Before(author.CreatedAt), "comment precedes its author")
	}

	tagIDs := make(map[uuid.UUID]bool)
	for _, tag := range st.tags {
		assert.Equal(t, org.ID, tag.OrganizationID)
		assert.False(t, tag.CreatedAt.Before(org.CreatedAt), "tag created before organization")
		tagIDs[tag.ID] = true
	}
	perTask := make(map[uuid.UUID]map[uuid.UUID]bool)
	for _, tt := range st.taskTags {
		assert.True(t, tagIDs[tt.TagID], "assignment references unknown tag")
		_, ok := tasksByID[tt.TaskID]
		assert.True(t, ok, "assignment references unknown task")
		if perTask[tt.TaskID] == nil {
			perTask[tt.TaskID] = make(map[uuid.UUID]bool)
		}
		assert.False(t, perTask[tt.TaskID][tt.TagID], "tag assigned twice to one task")
		perTask[tt.TaskID][tt.TagID] = true
	}
	for _, tags := range perTask {
		assert.LessOrEqual(t, len(tags), 3)
	}

	defsByID := make(map[uuid.UUID]FieldDef)
	for _, d := range st.fieldDefs {
		defsByID[d.ID] = d
	}
	for _, v := range st.fieldValues {
		def, ok := defsByID[v.FieldID]
		require.True(t, ok, "value references unknown field")
		if def.Type == FieldTypeEnum {
			enum, isEnum := v.Content.(EnumContent)
			require.True(t, isEnum)
			assert.Contains(t, def.EnumOptions, enum.Option())
		}
	}
}

func lenAll(m map[uuid.UUID][]Task) int {
	n := 0
	for _, v := range m {
		n += len(v)
	}
	return n
}

func TestRunReusesExistingOrganization(t *testing.T) {
	st := newMemStore()
	st.existing = &Organization{
		ID:        uuid.New(),
		Name:      "Acme Corporation",
		Domain:    "acmeoration.com",
		CreatedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
	}
	sd := newSeeder(testConfig(), st, 7)

	sum, err := sd.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, sum.Organizations)
	assert.Empty(t, st.orgs)
	for _, u := range st.users {
		assert.Equal(t, st.existing.ID, u.OrganizationID)
	}
}

func TestRunKeepsExistingEmailsUnique(t *testing.T) {
	// First run produces a set of emails; a second run with the same
	// seed would draw the same addresses unless the store's existing
	// emails are respected.
	first := newMemStore()
	_, err := newSeeder(testConfig(), first, 7).Run(context.Background())
	require.NoError(t, err)

	second := newMemStore()
	second.existing = &first.orgs[0]
	taken := make(map[string]bool, len(first.users))
	for _, u := range first.users {
		second.existingEmails = append(second.existingEmails, u.Email)
		taken[u.Email] = true
	}

	_, err = newSeeder(testConfig(), second, 7).Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, second.users)
	for _, u := range second.users {
		assert.False(t, taken[u.Email], "reused existing email %s", u.Email)
	}
}

func TestRunFailsWhenOrganizationInsertFails(t *testing.T) {
	st := newMemStore()
	st.failOn["InsertOrganizations"] = 1
	sd := newSeeder(testConfig(), st, 1)

	_, err := sd.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "organization")
}

func TestRunFailsWhenOrganizationLookupFails(t *testing.T) {
	st := newMemStore()
	st.failOn["FirstOrganization"] = 1
	sd := newSeeder(testConfig(), st, 1)

	_, err := sd.Run(context.Background())
	require.Error(t, err)
}

func TestProjectFailureIsIsolated(t *testing.T) {
	st := newMemStore()
	// Sections are the first write of per-project content; failing the
	// second call poisons exactly one project.
	st.failOn["InsertSections"] = 2
	sd := newSeeder(testConfig(), st, 42)

	sum, err := sd.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.SkippedProjects)
	assert.Equal(t, 4, sum.Projects)

	// The other three projects still received tasks.
	withTasks := make(map[uuid.UUID]bool)
	for _, task := range st.tasks {
		withTasks[task.ProjectID] = true
	}
	assert.Len(t, withTasks, 3)
}

func TestOrgChildrenNeverPrecedeOrganization(t *testing.T) {
	for rngSeed := int64(1); rngSeed <= 20; rngSeed++ {
		st := newMemStore()
		_, err := newSeeder(testConfig(), st, rngSeed).Run(context.Background())
		require.NoError(t, err)

		org := st.orgs[0]
		for _, u := range st.users {
			require.False(t, u.CreatedAt.Before(org.CreatedAt),
				"seed %d: user %s created before organization", rngSeed, u.Email)
		}
		for _, tm := range st.teams {
			require.False(t, tm.CreatedAt.Before(org.CreatedAt),
				"seed %d: team %s created before organization", rngSeed, tm.Name)
		}
		for _, tag := range st.tags {
			require.False(t, tag.CreatedAt.Before(org.CreatedAt),
				"seed %d: tag %s created before organization", rngSeed, tag.Name)
		}
		for _, p := range st.projects {
			require.False(t, p.CreatedAt.Before(org.CreatedAt),
				"seed %d: project %s created before organization", rngSeed, p.Name)
		}
	}
}

func TestSubtaskCompletionStrictlyAfterCreation(t *testing.T) {
	sd := newSeeder(testConfig(), newMemStore(), 42)

	// A parent completed shortly after the subtask's creation leaves
	// almost no room for the draw; the result must still land strictly
	// between the two instants.
	createdAt := time.Date(2024, time.June, 28, 13, 28, 41, 0, time.UTC)
	parentDone := createdAt.Add(30 * time.Minute)
	parent := &Task{CreatedAt: createdAt.Add(-2 * time.Hour), CompletedAt: &parentDone}

	completed := 0
	for i := 0; i < 2000; i++ {
		got := sd.subtaskCompletion(parent, createdAt, nil)
		if got == nil {
			continue
		}
		completed++
		require.True(t, got.After(createdAt),
			"completed_at %v not strictly after created_at %v", got, createdAt)
		require.False(t, got.After(parentDone),
			"completed_at %v after parent completion %v", got, parentDone)
	}
	assert.Greater(t, completed, 1500)
}

func TestUserFailureIsFatal(t *testing.T) {
	st := newMemStore()
	st.failOn["InsertUsers"] = 1
	sd := newSeeder(testConfig(), st, 1)

	_, err := sd.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
}
