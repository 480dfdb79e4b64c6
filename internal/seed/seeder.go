package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SyedTasneemKousar/asana/internal/config"
	"github.com/SyedTasneemKousar/asana/internal/dist"
	"github.com/SyedTasneemKousar/asana/internal/names"
	"github.com/SyedTasneemKousar/asana/internal/timegen"
)

// Seeder runs the generation pipeline against a Store. All randomness
// flows through a single Sampler so a fixed seed reproduces the run.
type Seeder struct {
	cfg    *config.Configuration
	store  Store
	s      *dist.Sampler
	names  *names.Generator
	log    *logrus.Logger
	window timegen.Window
}

// New builds a Seeder generating activity over the trailing
// DATE_RANGE_MONTHS months ending at now.
func New(cfg *config.Configuration, store Store, s *dist.Sampler, ng *names.Generator, log *logrus.Logger, now time.Time) *Seeder {
	return &Seeder{
		cfg:   cfg,
		store: store,
		s:     s,
		names: ng,
		log:   log,
		window: timegen.Window{
			Start: now.AddDate(0, -cfg.Generation.DateRangeMonths, 0),
			End:   now,
		},
	}
}

// Summary counts the records written by a run.
type Summary struct {
	Organizations   int
	Users           int
	Teams           int
	Memberships     int
	Projects        int
	Sections        int
	Tasks           int
	Subtasks        int
	Comments        int
	Tags            int
	TaskTags        int
	FieldDefs       int
	FieldValues     int
	SkippedProjects int
}

// Run executes the full pipeline in dependency order: organization,
// users, teams, tags, projects, then per-project content. A failure
// inside one project skips that project and continues; a missing
// organization aborts the run.
func (sd *Seeder) Run(ctx context.Context) (*Summary, error) {
	sum := &Summary{}

	org, err := sd.ensureOrganization(ctx, sum)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, fmt.Errorf("no organization available, cannot continue")
	}

	users, err := sd.generateUsers(ctx, org, sum)
	if err != nil {
		return nil, fmt.Errorf("generate users: %w", err)
	}

	teams, members, err := sd.generateTeams(ctx, org, users, sum)
	if err != nil {
		return nil, fmt.Errorf("generate teams: %w", err)
	}

	tags, err := sd.generateTags(ctx, org, sum)
	if err != nil {
		return nil, fmt.Errorf("generate tags: %w", err)
	}

	projects, err := sd.generateProjects(ctx, org, teams, sum)
	if err != nil {
		return nil, fmt.Errorf("generate projects: %w", err)
	}

	for _, p := range projects {
		if err := sd.generateProjectContent(ctx, p, users, members, tags, sum); err != nil {
			sd.log.WithError(err).WithField("project", p.Name).Error("skipping project")
			sum.SkippedProjects++
		}
	}

	return sum, nil
}

// ensureOrganization reuses the earliest existing organization, or
// generates fresh ones when the table is empty.
func (sd *Seeder) ensureOrganization(ctx context.Context, sum *Summary) (*Organization, error) {
	existing, err := sd.store.FirstOrganization(ctx)
	if err != nil {
		return nil, fmt.Errorf("look up organizations: %w", err)
	}
	if existing != nil {
		sd.log.WithField("name", existing.Name).Info("reusing existing organization")
		return existing, nil
	}

	pool := NewStringPool()
	orgs := make([]Organization, 0, sd.cfg.Generation.Organizations)
	for i := 0; i < sd.cfg.Generation.Organizations; i++ {
		n := i
		name := pool.Unique(20,
			func() string { return sd.names.Company() },
			func() string { return fmt.Sprintf("Organization %d", n+1) },
		)
		orgs = append(orgs, Organization{
			ID:        uuid.New(),
			Name:      name,
			Domain:    sd.names.Domain(name),
			CreatedAt: sd.creationTime(sd.window),
		})
	}
	if err := sd.store.InsertOrganizations(ctx, orgs); err != nil {
		return nil, fmt.Errorf("insert organizations: %w", err)
	}
	sum.Organizations = len(orgs)
	sd.log.WithField("count", len(orgs)).Info("generated organizations")
	return &orgs[0], nil
}

func (sd *Seeder) generateUsers(ctx context.Context, org *Organization, sum *Summary) ([]User, error) {
	count := sd.s.IntRange(sd.cfg.Generation.UsersMin, sd.cfg.Generation.UsersMax)

	taken, err := sd.store.ExistingEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing emails: %w", err)
	}
	emails := NewStringPool(taken...)

	w := sd.orgWindow(org)
	users := make([]User, 0, count)
	for i := 0; i < count; i++ {
		first, last := sd.names.Person()
		email := emails.Unique(10,
			func() string { return sd.names.Email(first, last, org.Domain) },
			func() string { return sd.names.SuffixedEmail(first, last, org.Domain) },
		)
		users = append(users, User{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			Name:           first + " " + last,
			Email:          email,
			CreatedAt:      timegen.CreationTime(sd.s, w, true, timegen.BusinessHours),
			IsActive:       !sd.s.Chance(0.05),
		})
	}
	if err := sd.store.InsertUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("insert users: %w", err)
	}
	sum.Users = len(users)
	sd.log.WithField("count", len(users)).Info("generated users")
	return users, nil
}

// generateTeams creates teams and memberships. It returns the teams and
// a map from team ID to member user IDs for assignee selection later.
func (sd *Seeder) generateTeams(ctx context.Context, org *Organization, users []User, sum *Summary) ([]Team, map[uuid.UUID][]uuid.UUID, error) {
	g := sd.cfg.Generation
	count := sd.s.IntRange(g.TeamsMin, g.TeamsMax)

	picked := sd.s.SampleWithout(names.TeamNames, count)
	teams := make([]Team, 0, count)
	memberships := make([]Membership, 0, count*int(g.TeamSizeMean))
	members := make(map[uuid.UUID][]uuid.UUID, count)
	w := sd.orgWindow(org)

	for i := 0; i < count; i++ {
		var name string
		if i < len(picked) {
			name = picked[i]
		} else {
			name = fmt.Sprintf("Team %d", i+1)
		}
		var desc *string
		if sd.s.Chance(0.30) {
			d := "Team responsible for " + strings.ToLower(name)
			desc = &d
		}
		t := Team{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			Name:           name,
			Description:    desc,
			CreatedAt:      sd.creationTime(w),
		}
		teams = append(teams, t)

		size := sd.s.TeamSize(g.TeamSizeMean, g.TeamSizeStd, g.TeamSizeMin, g.TeamSizeMax)
		for _, idx := range sd.s.Indices(len(users), size) {
			role := RoleMember
			if sd.s.Chance(0.10) {
				role = RoleAdmin
			}
			// A user can only join once both the team and the user exist.
			joinedFrom := t.CreatedAt
			if users[idx].CreatedAt.After(joinedFrom) {
				joinedFrom = users[idx].CreatedAt
			}
			memberWindow := timegen.Window{Start: joinedFrom, End: sd.window.End}
			memberships = append(memberships, Membership{
				ID:       uuid.New(),
				TeamID:   t.ID,
				UserID:   users[idx].ID,
				Role:     role,
				JoinedAt: sd.creationTime(memberWindow),
			})
			members[t.ID] = append(members[t.ID], users[idx].ID)
		}
	}

	if err := sd.store.InsertTeams(ctx, teams); err != nil {
		return nil, nil, fmt.Errorf("insert teams: %w", err)
	}
	if err := sd.store.InsertMemberships(ctx, memberships); err != nil {
		return nil, nil, fmt.Errorf("insert memberships: %w", err)
	}
	sum.Teams = len(teams)
	sum.Memberships = len(memberships)
	sd.log.WithFields(logrus.Fields{"teams": len(teams), "memberships": len(memberships)}).Info("generated teams")
	return teams, members, nil
}

func (sd *Seeder) generateTags(ctx context.Context, org *Organization, sum *Summary) ([]Tag, error) {
	selected := sd.s.SampleWithout(names.TagNames, len(names.TagNames))
	tags := make([]Tag, 0, len(selected))
	w := sd.orgWindow(org)
	for _, name := range selected {
		tags = append(tags, Tag{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			Name:           name,
			Color:          sd.s.Pick(names.TagColors),
			CreatedAt:      sd.creationTime(w),
		})
	}
	if err := sd.store.InsertTags(ctx, tags); err != nil {
		return nil, fmt.Errorf("insert tags: %w", err)
	}
	sum.Tags = len(tags)
	sd.log.WithField("count", len(tags)).Info("generated tags")
	return tags, nil
}

func (sd *Seeder) generateProjects(ctx context.Context, org *Organization, teams []Team, sum *Summary) ([]Project, error) {
	g := sd.cfg.Generation
	count := sd.s.IntRange(g.ProjectsMin, g.ProjectsMax)

	counters := make(map[string]int)
	projects := make([]Project, 0, count)
	w := sd.orgWindow(org)
	for i := 0; i < count; i++ {
		pt := sd.s.WeightedChoice(config.ProjectTypeWeights)
		counters[pt]++

		var teamID *uuid.UUID
		if len(teams) > 0 && sd.s.Chance(0.80) {
			id := teams[sd.s.IntRange(0, len(teams)-1)].ID
			teamID = &id
		}
		var desc *string
		if sd.s.Chance(0.60) {
			d := sd.names.ProjectDescription(pt)
			desc = &d
		}

		createdAt := sd.creationTime(w)
		p := Project{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			TeamID:         teamID,
			Name:           sd.names.ProjectName(pt, counters[pt]),
			Description:    desc,
			Color:          sd.s.Pick(names.ProjectColors),
			IsPublic:       sd.s.Chance(0.10),
			Archived:       sd.s.Chance(0.05),
			CreatedAt:      createdAt,
			ModifiedAt:     sd.modifiedTime(createdAt, nil),
			Type:           pt,
		}
		projects = append(projects, p)
	}
	if err := sd.store.InsertProjects(ctx, projects); err != nil {
		return nil, fmt.Errorf("insert projects: %w", err)
	}
	sum.Projects = len(projects)
	sd.log.WithField("count", len(projects)).Info("generated projects")
	return projects, nil
}

// orgWindow floors the generation window at the organization's own
// creation so no child record predates it. A reused organization older
// than the window leaves the window untouched.
func (sd *Seeder) orgWindow(org *Organization) timegen.Window {
	w := sd.window
	if org.CreatedAt.After(w.Start) {
		w.Start = org.CreatedAt
	}
	if w.Start.After(w.End) {
		w.End = w.Start
	}
	return w
}

// creationTime draws a weekday-biased timestamp inside w with uniform
// hours.
func (sd *Seeder) creationTime(w timegen.Window) time.Time {
	return timegen.CreationTime(sd.s, w, true, timegen.UniformHours)
}

// modifiedTime draws a timestamp after createdAt, bounded by completedAt
// when set and the window end otherwise.
func (sd *Seeder) modifiedTime(createdAt time.Time, completedAt *time.Time) time.Time {
	return timegen.ModifiedTime(sd.s, createdAt, completedAt, sd.window)
}
