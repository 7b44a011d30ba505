package profile

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpsertProfileRequest is a sparse update: pointer fields distinguish
// "not sent" (nil, field keeps its stored value) from "sent empty"
// (clears the field). Skills arrives as one comma-delimited string.
type UpsertProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

func (r UpsertProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("Status is required"),
		),
		validation.Field(&r.Skills,
			validation.Required.Error("Skills is required"),
		),
		validation.Field(&r.Website,
			is.URL.Error("Website must be a valid URL"),
		),
		validation.Field(&r.Youtube, is.URL.Error("Youtube must be a valid URL")),
		validation.Field(&r.Twitter, is.URL.Error("Twitter must be a valid URL")),
		validation.Field(&r.Facebook, is.URL.Error("Facebook must be a valid URL")),
		validation.Field(&r.Linkedin, is.URL.Error("Linkedin must be a valid URL")),
		validation.Field(&r.Instagram, is.URL.Error("Instagram must be a valid URL")),
	)
}

// SplitSkills normalizes the comma-delimited skills input.
// "a, b ,c" becomes ["a","b","c"]; empty segments are dropped.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ExperienceRequest adds one employment entry
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (r ExperienceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Company, validation.Required.Error("Company is required")),
		validation.Field(&r.From, validation.Required.Error("From date is required")),
	)
}

// EducationRequest adds one education entry
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (r EducationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.School, validation.Required.Error("School is required")),
		validation.Field(&r.Degree, validation.Required.Error("Degree is required")),
		validation.Field(&r.FieldOfStudy, validation.Required.Error("Fieldofstudy is required")),
		validation.Field(&r.From, validation.Required.Error("From date is required")),
	)
}
