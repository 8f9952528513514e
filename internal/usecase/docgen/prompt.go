// Package docgen builds the prompts sent to the LLM provider. Building is
// pure: the same application, profile and request fields always produce the
// same prompt text.
package docgen

import (
	_ "embed"
	"strings"
	"text/template"

	"jobtrail/internal/domain/application"
	"jobtrail/internal/domain/document"
	"jobtrail/internal/domain/user"
)

const SystemPrompt = "You are an expert career coach and professional writer who creates compelling, personalized job application documents."

const DefaultTone = "professional"

const notSpecified = "Not specified"

//go:embed prompts/cover_letter.md
var coverLetterRaw string

//go:embed prompts/cold_message.md
var coldMessageRaw string

// Parsed once at package init; reused on every Build call.
var (
	coverLetterTemplate = template.Must(template.New("cover_letter").Parse(coverLetterRaw))
	coldMessageTemplate = template.Must(template.New("cold_message").Parse(coldMessageRaw))
)

type promptData struct {
	Company     string
	Position    string
	Location    string
	SalaryRange string

	Name  string
	Email string

	HasProfile bool
	Experience string
	Skills     string
	Education  string

	JobDescription string
	Tone           string
}

// Build renders the prompt for the given document type. The profile is
// optional; its fields are included only when present.
func Build(docType string, app application.Application, usr user.User, profile *user.Profile, jobDescription, tone string) (string, error) {
	tmpl, err := templateFor(docType)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(tone) == "" {
		tone = DefaultTone
	}

	data := promptData{
		Company:        app.Company,
		Position:       app.Position,
		Location:       orNotSpecified(app.Location),
		SalaryRange:    orNotSpecified(app.SalaryRange),
		Name:           usr.Name,
		Email:          usr.Email,
		JobDescription: strings.TrimSpace(jobDescription),
		Tone:           tone,
	}

	if profile != nil {
		data.HasProfile = true
		data.Experience = orNotSpecified(profile.Experience)
		data.Skills = strings.Join(profile.Skills, ", ")
		data.Education = orNotSpecified(profile.Education)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func templateFor(docType string) (*template.Template, error) {
	switch docType {
	case document.TypeCoverLetter:
		return coverLetterTemplate, nil
	case document.TypeColdMessage:
		return coldMessageTemplate, nil
	default:
		return nil, document.ErrInvalidType
	}
}

func orNotSpecified(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return notSpecified
	}
	return *s
}
