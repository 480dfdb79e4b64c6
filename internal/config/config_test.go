package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Configuration {
	return &Configuration{
		Generation: GenerationOptions{
			Organizations:      1,
			TeamsMin:           3,
			TeamsMax:           5,
			UsersMin:           50,
			UsersMax:           100,
			ProjectsMin:        5,
			ProjectsMax:        10,
			TasksPerProjectMin: 5,
			TasksPerProjectMax: 10,
			DateRangeMonths:    6,
			SubtaskRate:        0.30,
			CommentRate:        0.40,
			TeamSizeMin:        3,
			TeamSizeMax:        25,
		},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	c := validConfig()
	c.Generation.UsersMin = 100
	c.Generation.UsersMax = 50

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
	assert.Contains(t, err.Error(), "inverted")
}

func TestValidateRejectsZeroMinimum(t *testing.T) {
	c := validConfig()
	c.Generation.TasksPerProjectMin = 0

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tasks-per-project")
}

func TestValidateRejectsOutOfBoundsRate(t *testing.T) {
	c := validConfig()
	c.Generation.CommentRate = 1.4

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMMENT_RATE")

	c = validConfig()
	c.Generation.SubtaskRate = -0.1
	require.Error(t, c.Validate())
}

func TestValidateRejectsZeroOrganizations(t *testing.T) {
	c := validConfig()
	c.Generation.Organizations = 0
	require.Error(t, c.Validate())

	c = validConfig()
	c.Generation.DateRangeMonths = 0
	require.Error(t, c.Validate())
}

func TestConnectionString(t *testing.T) {
	d := DatabaseOptions{
		Host:     "db.internal",
		Port:     5433,
		User:     "seeder",
		Password: "hunter2",
		Name:     "asana_simulation",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=seeder dbname=asana_simulation password=hunter2 sslmode=require",
		d.ConnectionString())
}

func TestCompletionRateFallsBack(t *testing.T) {
	assert.Equal(t, 0.75, CompletionRate(ProjectEngineeringSprint))
	assert.Equal(t, 0.60, CompletionRate(ProjectProductRoadmap))
	assert.Equal(t, 0.65, CompletionRate("unknown_type"))
}

func TestProjectTypeWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, w := range ProjectTypeWeights {
		total += w.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestEveryFieldKindHasOptionsOrIsFreeform(t *testing.T) {
	for projectType, kinds := range CustomFieldKinds {
		assert.NotEmpty(t, kinds, projectType)
		for _, kind := range kinds {
			options, ok := FieldOptions[kind]
			if ok {
				assert.GreaterOrEqual(t, len(options), 2, kind)
			}
		}
	}
}

func TestSectionTemplatesCoverEveryProjectType(t *testing.T) {
	for _, w := range ProjectTypeWeights {
		sections, ok := SectionTemplates[w.Value]
		assert.True(t, ok, "no sections for %s", w.Value)
		assert.NotEmpty(t, sections)
	}
	assert.NotEmpty(t, DefaultSections)
}
