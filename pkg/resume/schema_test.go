package resume

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProfile() map[string]any {
	return map[string]any{
		"name":  "John Doe",
		"email": "john@example.com",
		"bio":   "Software engineer with eight years of backend experience.",
		"education": []any{
			map[string]any{"degree": "BS Software Engineering", "institution": "GCUF", "years": "2019 – 2023"},
		},
		"experience": []any{
			map[string]any{"job_title": "Engineer", "company": "Netixsol", "duration": "Aug 2024 - July 2025", "description": "APIs"},
		},
		"skills":       []any{"Go", "PostgreSQL"},
		"resume_score": float64(82),
		"ats_friendly": true,
	}
}

func TestProfileFromMap_Valid(t *testing.T) {
	m := baseProfile()
	m["linkedin"] = "https://linkedin.com/in/johndoe"
	m["website"] = "johndoe.dev"

	p, err := ProfileFromMap(m)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", p.Name)
	require.NotNil(t, p.LinkedIn)
	assert.Equal(t, "https://linkedin.com/in/johndoe", *p.LinkedIn)
	assert.Nil(t, p.Website)
	assert.Nil(t, p.GitHub)
	require.NotNil(t, p.ResumeScore)
	assert.Equal(t, 82, *p.ResumeScore)
	require.NotNil(t, p.ATSFriendly)
	assert.True(t, *p.ATSFriendly)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, p.Skills)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "2019 – 2023", p.Education[0].Years)
	assert.Equal(t, []string{}, p.Strengths)
	assert.Equal(t, SocialLinks{}, p.SocialLinks)
}

func TestProfileFromMap_DoesNotMutateInput(t *testing.T) {
	m := baseProfile()
	m["phone"] = "N/A"

	_, err := ProfileFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, "N/A", m["phone"])
	_, has := m["social_links"]
	assert.False(t, has)
}

func TestProfileFromMap_URLFieldsSentinels(t *testing.T) {
	sentinels := []any{"", "null", "None", "N/A", "nan", []any{}, map[string]any{}}
	for _, field := range []string{"linkedin", "github", "website"} {
		for _, s := range sentinels {
			t.Run(fmt.Sprintf("%s=%v", field, s), func(t *testing.T) {
				m := baseProfile()
				m[field] = s
				m["social_links"] = map[string]any{"linkedin": s, "github": s, "twitter": s}

				p, err := ProfileFromMap(m)
				require.NoError(t, err)

				b, err := json.Marshal(p)
				require.NoError(t, err)
				var out map[string]any
				require.NoError(t, json.Unmarshal(b, &out))
				assert.Nil(t, out[field])
				assert.Equal(t, map[string]any{"linkedin": nil, "github": nil, "twitter": nil}, out["social_links"])
			})
		}
	}
}

func TestProfileFromMap_URLPattern(t *testing.T) {
	tests := []struct {
		in   string
		want *string
	}{
		{"www.x.com", nil},
		{"ftp://x.com", nil},
		{"x.com/https://", nil},
		{"https://x.com", ptr("https://x.com")},
		{"http://x.com", ptr("http://x.com")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := baseProfile()
			m["github"] = tt.in
			m["social_links"] = map[string]any{"twitter": tt.in}

			p, err := ProfileFromMap(m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.GitHub)
			assert.Equal(t, tt.want, p.SocialLinks.Twitter)
		})
	}
}

func TestProfileFromMap_ResumeScoreRange(t *testing.T) {
	for _, score := range []int{-50, -1, 101, 150, 1000} {
		t.Run(fmt.Sprintf("reject %d", score), func(t *testing.T) {
			m := baseProfile()
			m["resume_score"] = float64(score)

			_, err := ProfileFromMap(m)
			var verr *SchemaValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "resume_score", verr.Fields[0].Field)
		})
	}
	for _, score := range []int{0, 1, 50, 99, 100} {
		t.Run(fmt.Sprintf("accept %d", score), func(t *testing.T) {
			m := baseProfile()
			m["resume_score"] = float64(score)

			p, err := ProfileFromMap(m)
			require.NoError(t, err)
			require.NotNil(t, p.ResumeScore)
			assert.Equal(t, score, *p.ResumeScore)
		})
	}
}

func TestProfileFromMap_ResumeScoreMustBeInteger(t *testing.T) {
	m := baseProfile()
	m["resume_score"] = 72.5

	_, err := ProfileFromMap(m)
	var verr *SchemaValidationError
	require.ErrorAs(t, err, &verr)
}

func TestProfileFromMap_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
		field  string
	}{
		{"missing name", func(m map[string]any) { delete(m, "name") }, "name"},
		{"sentinel email", func(m map[string]any) { m["email"] = "N/A" }, "email"},
		{"blank bio", func(m map[string]any) { m["bio"] = "  " }, "bio"},
		{"education without years", func(m map[string]any) {
			m["education"] = []any{map[string]any{"degree": "BS", "institution": "MIT"}}
		}, "education.0.years"},
		{"experience with null company", func(m map[string]any) {
			m["experience"] = []any{map[string]any{"job_title": "Dev", "company": nil, "duration": "2y", "description": "x"}}
		}, "experience.0.company"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseProfile()
			tt.mutate(m)

			_, err := ProfileFromMap(m)
			var verr *SchemaValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestProfileFromMap_SocialLinksMustBeObject(t *testing.T) {
	m := baseProfile()
	m["social_links"] = "https://github.com/jane"

	_, err := ProfileFromMap(m)
	var verr *SchemaValidationError
	require.ErrorAs(t, err, &verr)
}

func TestProfileFromMap_EmptySectionsRenderAsLists(t *testing.T) {
	m := baseProfile()
	m["education"] = []any{}
	delete(m, "experience")
	m["skills"] = nil

	p, err := ProfileFromMap(m)
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"education":[]`)
	assert.Contains(t, string(b), `"experience":[]`)
	assert.Contains(t, string(b), `"skills":[]`)
	assert.Contains(t, string(b), `"phone":null`)
}

func TestDecodeProfile(t *testing.T) {
	raw, err := json.Marshal(baseProfile())
	require.NoError(t, err)

	p, err := DecodeProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", p.Email)

	_, err = DecodeProfile([]byte(`not json`))
	var verr *SchemaValidationError
	require.ErrorAs(t, err, &verr)

	_, err = DecodeProfile([]byte(`["a"]`))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "(root)", verr.Fields[0].Field)
}

func TestProjectValidate(t *testing.T) {
	ok := Project{Title: "Parser", Description: "Resume parser", Technologies: []string{"Go"}}
	assert.NoError(t, ok.Validate())

	var verr *SchemaValidationError
	require.ErrorAs(t, (&Project{Title: "Parser"}).Validate(), &verr)
	assert.Equal(t, "Project.description", verr.Fields[0].Field)
}

func TestProfileFromMap_EmptyNestedStringsAccepted(t *testing.T) {
	m := baseProfile()
	m["experience"] = []any{map[string]any{"job_title": "Dev", "company": "Acme", "duration": "2y", "description": ""}}
	m["education"] = []any{map[string]any{"degree": "BS", "institution": "MIT", "years": ""}}

	p, err := ProfileFromMap(m)
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "", p.Experience[0].Description)
	assert.Equal(t, "Acme", p.Experience[0].Company)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "", p.Education[0].Years)
}

func ptr(s string) *string { return &s }
