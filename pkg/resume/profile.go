package resume

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Profile is the structured representation of one parsed resume plus the
// qualitative analysis produced by the agent.
type Profile struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Phone   *string `json:"phone"`
	Bio     string  `json:"bio" validate:"required"`
	Address *string `json:"address"`

	// Top-level links and SocialLinks are filled independently; they are never reconciled.
	LinkedIn    *string     `json:"linkedin"`
	GitHub      *string     `json:"github"`
	Website     *string     `json:"website"`
	SocialLinks SocialLinks `json:"social_links"`

	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []string     `json:"skills"`

	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	ResumeScore     *int     `json:"resume_score" validate:"omitempty,min=0,max=100"`
	ATSFriendly     *bool    `json:"ats_friendly"`
	ATSIssues       []string `json:"ats_issues"`
	MissingSkills   []string `json:"missing_skills"`
	Highlights      []string `json:"highlights"`
	SuggestedRoles  []string `json:"suggested_roles"`
}

type SocialLinks struct {
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Twitter  *string `json:"twitter"`
}

// Education and Experience keys are enforced by the JSON schema; empty strings are valid values.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Years       string `json:"years"`
}

type Experience struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project is a reusable entity; the profile does not carry a project list yet.
type Project struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks required fields and the score range.
func (p *Profile) Validate() error {
	return structError(validate.Struct(p))
}

func (p *Project) Validate() error {
	return structError(validate.Struct(p))
}

// fillEmptyLists replaces nil slices so absent lists render as [] rather than null.
func (p *Profile) fillEmptyLists() {
	for _, s := range []*[]string{
		&p.Skills, &p.Strengths, &p.Weaknesses, &p.Recommendations,
		&p.ATSIssues, &p.MissingSkills, &p.Highlights, &p.SuggestedRoles,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
}

func structError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &SchemaValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Namespace(), Reason: fe.Tag()})
	}
	return out
}
