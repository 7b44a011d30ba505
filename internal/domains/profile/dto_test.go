package profile

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRequestRequiresStatusAndSkills(t *testing.T) {
	err := UpsertProfileRequest{}.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "skills")
}

func TestUpsertRequestRejectsEmptyRequiredFields(t *testing.T) {
	empty := ""
	skills := "go"
	err := UpsertProfileRequest{Status: &empty, Skills: &skills}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "status")
	assert.NotContains(t, errs, "skills")
}

func TestUpsertRequestRejectsBadWebsite(t *testing.T) {
	status := "dev"
	skills := "go"
	website := "not a url"
	err := UpsertProfileRequest{Status: &status, Skills: &skills, Website: &website}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "website")
}

func TestExperienceRequestValidation(t *testing.T) {
	err := ExperienceRequest{}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "company")
	assert.Contains(t, errs, "from")
	assert.NotContains(t, errs, "location")

	err = ExperienceRequest{Title: "Dev", Company: "Acme", From: "2020-01-01"}.Validate()
	assert.NoError(t, err)
}

func TestEducationRequestValidation(t *testing.T) {
	err := EducationRequest{}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "school")
	assert.Contains(t, errs, "degree")
	assert.Contains(t, errs, "fieldofstudy")
	assert.Contains(t, errs, "from")
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitSkills("a, b ,c"))
	assert.Equal(t, []string{"go"}, SplitSkills("go"))
	assert.Empty(t, SplitSkills("  ,  , "))
}
