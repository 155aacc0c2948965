package resume

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var schemaJSON []byte

var profileSchema = mustCompileSchema(schemaJSON)

func mustCompileSchema(b []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("compile profile schema: %v", err))
	}
	return s
}

// DecodeProfile turns raw model output into a validated Profile.
func DecodeProfile(raw []byte) (Profile, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Profile{}, &SchemaValidationError{Fields: []FieldError{{Field: "(root)", Reason: "invalid JSON: " + err.Error()}}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Profile{}, &SchemaValidationError{Fields: []FieldError{{Field: "(root)", Reason: "expected a JSON object"}}}
	}
	return ProfileFromMap(m)
}

// ProfileFromMap builds a Profile from an already decoded mapping. Sentinel
// values are coerced to null and invalid URLs dropped before anything is
// validated; missing required fields and an out-of-range score fail.
func ProfileFromMap(m map[string]any) (Profile, error) {
	doc := make(map[string]any, len(m))
	for k, v := range m {
		doc[k] = v
	}
	normalizeFields(doc)

	res, err := profileSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Profile{}, fmt.Errorf("validate profile: %w", err)
	}
	if !res.Valid() {
		return Profile{}, schemaErrors(res.Errors())
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return Profile{}, fmt.Errorf("encode profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	p.fillEmptyLists()
	return p, nil
}

func schemaErrors(errs []gojsonschema.ResultError) *SchemaValidationError {
	out := &SchemaValidationError{}
	for _, re := range errs {
		path := strings.TrimPrefix(re.Context().String(), "(root)")
		path = strings.TrimPrefix(path, ".")
		if prop, ok := re.Details()["property"].(string); ok && re.Type() == "required" {
			if path != "" {
				path += "."
			}
			path += prop
		}
		if path == "" {
			path = "(root)"
		}
		out.Fields = append(out.Fields, FieldError{Field: path, Reason: re.Description()})
	}
	return out
}
