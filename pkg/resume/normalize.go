package resume

import (
	"regexp"
	"strings"
)

var reHTTPURL = regexp.MustCompile(`^https?://`)

var nullTokens = map[string]struct{}{
	"null": {},
	"none": {},
	"n/a":  {},
	"nan":  {},
}

// URL-typed top-level fields.
var urlFields = []string{"linkedin", "github", "website"}

var socialLinkFields = []string{"linkedin", "github", "twitter"}

// IsNullLike reports whether v is a sentinel for "no data": nil, a blank
// string, one of null/none/n/a/nan in any case, or an empty list/object.
// Numbers and booleans are never null-like.
func IsNullLike(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return true
		}
		_, ok := nullTokens[strings.ToLower(s)]
		return ok
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// CleanURL returns the trimmed URL when v is a string starting with http:// or
// https:// and not null-like; otherwise nil. Invalid URLs are dropped, not rejected.
func CleanURL(v any) any {
	if IsNullLike(v) {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if !reHTTPURL.MatchString(s) {
		return nil
	}
	return s
}

// normalizeFields applies sentinel coercion to every top-level field, the URL
// rule to link fields and the per-key rule to social_links. It mutates m.
func normalizeFields(m map[string]any) {
	for k, v := range m {
		if IsNullLike(v) {
			m[k] = nil
		}
	}
	for _, k := range urlFields {
		if _, ok := m[k]; ok {
			m[k] = CleanURL(m[k])
		}
	}
	m["social_links"] = normalizeSocialLinks(m["social_links"])
}

func normalizeSocialLinks(v any) any {
	if IsNullLike(v) {
		return map[string]any{}
	}
	links, ok := v.(map[string]any)
	if !ok {
		// left for schema validation to reject
		return v
	}
	out := make(map[string]any, len(links))
	for k, val := range links {
		out[k] = val
	}
	for _, k := range socialLinkFields {
		if _, ok := out[k]; ok {
			out[k] = CleanURL(out[k])
		}
	}
	return out
}
