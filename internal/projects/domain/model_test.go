package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghulkannan/portfolio-api/internal/validation"
)

func validProject() *Project {
	return &Project{
		Title:        "Portfolio",
		Description:  "Personal site",
		Technologies: []string{"Go", "Postgres"},
		GithubURL:    "https://github.com/raghulkannan/portfolio",
	}
}

func TestProjectValidate(t *testing.T) {
	assert.NoError(t, validProject().Validate())
}

func TestProjectValidate_MissingFields(t *testing.T) {
	p := &Project{}
	err := p.Validate()
	require.Error(t, err)

	var fields validation.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "githubUrl")
	assert.Contains(t, fields, "technologies")
}

func TestProjectValidate_BlankTitle(t *testing.T) {
	p := validProject()
	p.Title = "   "

	var fields validation.FieldErrors
	require.ErrorAs(t, p.Validate(), &fields)
	assert.Len(t, fields, 1)
	assert.Contains(t, fields, "title")
}

func TestProjectValidate_BlankTechnologyEntry(t *testing.T) {
	p := validProject()
	p.Technologies = []string{"Go", " "}

	var fields validation.FieldErrors
	require.ErrorAs(t, p.Validate(), &fields)
	assert.Contains(t, fields, "technologies")
}

func TestUpdateValidate(t *testing.T) {
	title := "New title"
	empty := ""
	noTechs := []string{}

	t.Run("absent fields pass", func(t *testing.T) {
		assert.NoError(t, (&Update{}).Validate())
	})

	t.Run("present valid field passes", func(t *testing.T) {
		assert.NoError(t, (&Update{Title: &title}).Validate())
	})

	t.Run("blanking a required field fails", func(t *testing.T) {
		var fields validation.FieldErrors
		require.ErrorAs(t, (&Update{Title: &empty}).Validate(), &fields)
		assert.Contains(t, fields, "title")
	})

	t.Run("emptying technologies fails", func(t *testing.T) {
		var fields validation.FieldErrors
		require.ErrorAs(t, (&Update{Technologies: &noTechs}).Validate(), &fields)
		assert.Contains(t, fields, "technologies")
	})
}
