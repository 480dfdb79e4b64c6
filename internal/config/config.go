// Package config loads generation settings from the environment with
// sensible defaults, plus the fixed distribution tables (completion rates,
// project-type weights, section templates) drawn from work-management
// research.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/SyedTasneemKousar/asana/internal/dist"
)

// DatabaseOptions describes the PostgreSQL target.
type DatabaseOptions struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"asana_simulation"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// ConnectionString renders the options in keyword/value form for pgx.
func (d DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Name, d.Password, d.SSLMode,
	)
}

// GenerationOptions controls dataset size and the overlay rates.
type GenerationOptions struct {
	Organizations      int `env:"NUM_ORGANIZATIONS" envDefault:"1"`
	TeamsMin           int `env:"NUM_TEAMS_MIN" envDefault:"3"`
	TeamsMax           int `env:"NUM_TEAMS_MAX" envDefault:"5"`
	UsersMin           int `env:"NUM_USERS_MIN" envDefault:"50"`
	UsersMax           int `env:"NUM_USERS_MAX" envDefault:"100"`
	ProjectsMin        int `env:"NUM_PROJECTS_MIN" envDefault:"5"`
	ProjectsMax        int `env:"NUM_PROJECTS_MAX" envDefault:"10"`
	TasksPerProjectMin int `env:"TASKS_PER_PROJECT_MIN" envDefault:"5"`
	TasksPerProjectMax int `env:"TASKS_PER_PROJECT_MAX" envDefault:"10"`
	DateRangeMonths    int `env:"DATE_RANGE_MONTHS" envDefault:"6"`

	// Seed fixes the random stream; 0 seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`

	UnassignedTaskRate   float64 `env:"UNASSIGNED_TASK_RATE" envDefault:"0.15"`
	SubtaskRate          float64 `env:"SUBTASK_RATE" envDefault:"0.30"`
	CommentRate          float64 `env:"COMMENT_RATE" envDefault:"0.40"`
	TagAssignmentRate    float64 `env:"TAG_ASSIGNMENT_RATE" envDefault:"0.30"`
	CustomFieldValueRate float64 `env:"CUSTOM_FIELD_VALUE_RATE" envDefault:"0.70"`

	TeamSizeMean float64 `env:"TEAM_SIZE_MEAN" envDefault:"8"`
	TeamSizeStd  float64 `env:"TEAM_SIZE_STD" envDefault:"4"`
	TeamSizeMin  int     `env:"TEAM_SIZE_MIN" envDefault:"3"`
	TeamSizeMax  int     `env:"TEAM_SIZE_MAX" envDefault:"25"`
}

// Configuration is the full application configuration.
type Configuration struct {
	Database   DatabaseOptions
	Generation GenerationOptions
}

// LoadEnv loads whichever of the given env files exist. Missing files are
// not an error.
func LoadEnv(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load reads .env files, parses the environment, and validates the result.
func Load() (*Configuration, error) {
	if err := LoadEnv(".env", ".env.local"); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}
	c := &Configuration{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects inverted ranges and out-of-bounds rates.
func (c *Configuration) Validate() error {
	g := c.Generation
	ranges := []struct {
		name   string
		lo, hi int
	}{
		{"teams", g.TeamsMin, g.TeamsMax},
		{"users", g.UsersMin, g.UsersMax},
		{"projects", g.ProjectsMin, g.ProjectsMax},
		{"tasks-per-project", g.TasksPerProjectMin, g.TasksPerProjectMax},
		{"team-size", g.TeamSizeMin, g.TeamSizeMax},
	}
	for _, r := range ranges {
		if r.lo < 1 {
			return fmt.Errorf("%s minimum must be at least 1, got %d", r.name, r.lo)
		}
		if r.lo > r.hi {
			return fmt.Errorf("%s range inverted: min %d > max %d", r.name, r.lo, r.hi)
		}
	}
	rates := map[string]float64{
		"UNASSIGNED_TASK_RATE":    g.UnassignedTaskRate,
		"SUBTASK_RATE":            g.SubtaskRate,
		"COMMENT_RATE":            g.CommentRate,
		"TAG_ASSIGNMENT_RATE":     g.TagAssignmentRate,
		"CUSTOM_FIELD_VALUE_RATE": g.CustomFieldValueRate,
	}
	for name, rate := range rates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s must be within [0,1], got %g", name, rate)
		}
	}
	if g.Organizations < 1 {
		return fmt.Errorf("NUM_ORGANIZATIONS must be at least 1, got %d", g.Organizations)
	}
	if g.DateRangeMonths < 1 {
		return fmt.Errorf("DATE_RANGE_MONTHS must be at least 1, got %d", g.DateRangeMonths)
	}
	return nil
}

// Project types and their prevalence across a realistic workspace.
const (
	ProjectEngineeringSprint = "engineering_sprint"
	ProjectBugTracking       = "bug_tracking"
	ProjectMarketingCampaign = "marketing_campaign"
	ProjectProductRoadmap    = "product_roadmap"
	ProjectOperations        = "operations"
	ProjectDesign            = "design"
)

// ProjectTypeWeights is the categorical distribution of project types.
var ProjectTypeWeights = []dist.Weighted{
	{Value: ProjectEngineeringSprint, Weight: 0.30},
	{Value: ProjectBugTracking, Weight: 0.15},
	{Value: ProjectMarketingCampaign, Weight: 0.20},
	{Value: ProjectProductRoadmap, Weight: 0.15},
	{Value: ProjectOperations, Weight: 0.10},
	{Value: ProjectDesign, Weight: 0.10},
}

var completionRates = map[string]float64{
	ProjectEngineeringSprint: 0.75,
	ProjectBugTracking:       0.65,
	ProjectMarketingCampaign: 0.70,
	ProjectProductRoadmap:    0.60,
	ProjectOperations:        0.65,
	ProjectDesign:            0.70,
}

// CompletionRate returns the task completion probability for a project
// type. Unknown types fall back to 0.65.
func CompletionRate(projectType string) float64 {
	if r, ok := completionRates[projectType]; ok {
		return r
	}
	return 0.65
}

// SectionTemplates lists the board columns created for each project type.
var SectionTemplates = map[string][]string{
	ProjectEngineeringSprint: {"Backlog", "To Do", "In Progress", "Code Review", "Testing", "Done"},
	ProjectBugTracking:       {"New", "Triaged", "In Progress", "Testing", "Resolved", "Closed"},
	ProjectMarketingCampaign: {"Planning", "Content Creation", "Design", "Review", "Published", "Completed"},
	ProjectProductRoadmap:    {"Discovery", "Design", "Development", "Testing", "Launch", "Post-Launch"},
	ProjectOperations:        {"Requested", "In Progress", "Blocked", "Completed"},
	ProjectDesign:            {"Brief", "Research", "Design", "Review", "Handoff", "Complete"},
}

// DefaultSections is used for project types without a template.
var DefaultSections = []string{"To Do", "In Progress", "Done"}

// FieldOptions maps a custom field kind to its enum options.
var FieldOptions = map[string][]string{
	"priority":        {"Low", "Medium", "High", "Critical"},
	"effort":          {"Small", "Medium", "Large", "Extra Large"},
	"sprint":          {"Sprint 1", "Sprint 2", "Sprint 3", "Sprint 4"},
	"severity":        {"Low", "Medium", "High", "Critical"},
	"reproducibility": {"Always", "Sometimes", "Rarely", "Once"},
	"channel":         {"Email", "Social Media", "Blog", "Website", "Paid Ads"},
	"status":          {"Draft", "In Review", "Approved", "Published"},
	"category":        {"Infrastructure", "Process", "Policy", "Tooling"},
}

// CustomFieldKinds lists the custom fields defined on each project type.
var CustomFieldKinds = map[string][]string{
	ProjectEngineeringSprint: {"priority", "effort", "sprint"},
	ProjectBugTracking:       {"severity", "priority", "reproducibility"},
	ProjectMarketingCampaign: {"channel", "priority", "status"},
	ProjectProductRoadmap:    {"priority", "effort", "status"},
	ProjectOperations:        {"priority", "category"},
	ProjectDesign:            {"priority", "status"},
}
