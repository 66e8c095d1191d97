package resume

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/talenthq/talent-hub/internal/types"
)

// Normalize maps recovered LLM JSON onto the fixed ParsedResumeData
// shape. Nested "name"/"links"/"sections" keys are preferred; flat
// legacy keys (firstName, yearsExperience, bio at top level) are the
// fallback. Missing or mistyped fields become safe defaults. Normalize
// never fails: an empty object yields a fully defaulted struct.
func Normalize(raw []byte) types.ParsedResumeData {
	out := types.EmptyParsedResume()

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return out
	}

	if name, ok := m["name"].(map[string]any); ok {
		out.FirstName = getString(name, "first")
		out.LastName = getString(name, "last")
	}
	if out.FirstName == "" {
		out.FirstName = getString(m, "firstName", "first_name")
	}
	if out.LastName == "" {
		out.LastName = getString(m, "lastName", "last_name")
	}

	out.Email = getString(m, "email")
	out.Phone = getString(m, "phone")
	out.Links = normalizeLinks(m)
	out.YearsExperience = getInt(m, "experience_years", "yearsExperience", "years_experience")
	out.Skills = getStringSlice(m, "skills")

	if sections, ok := m["sections"].(map[string]any); ok {
		out.Bio = getString(sections, "bio", "summary")
		out.Experience = getStringSlice(sections, "experience")
		out.Education = getStringSlice(sections, "education")
		out.Certifications = getStringSlice(sections, "certifications")
	}
	if out.Bio == "" {
		out.Bio = getString(m, "bio", "summary")
	}
	if len(out.Experience) == 0 {
		out.Experience = getStringSlice(m, "experience")
	}
	if len(out.Education) == 0 {
		out.Education = getStringSlice(m, "education")
	}
	if len(out.Certifications) == 0 {
		out.Certifications = getStringSlice(m, "certifications")
	}

	return out
}

// linkOrder fixes the output order for the well-known link keys; any
// other keys follow alphabetically.
var linkOrder = []string{"linkedin", "github", "portfolio", "website"}

// normalizeLinks accepts links as an object of named URLs, an array of
// URL strings, or flat legacy keys at the top level.
func normalizeLinks(m map[string]any) []string {
	switch v := m["links"].(type) {
	case map[string]any:
		return linkValues(v)
	case []any:
		return stringValues(v)
	}

	flat := map[string]any{}
	for _, key := range linkOrder {
		if s := getString(m, key); s != "" {
			flat[key] = s
		}
	}
	return linkValues(flat)
}

func linkValues(m map[string]any) []string {
	links := make([]string, 0, len(m))
	seen := make(map[string]bool)
	for _, key := range linkOrder {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			links = append(links, strings.TrimSpace(s))
			seen[key] = true
		}
	}
	rest := make([]string, 0, len(m))
	for key := range m {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			links = append(links, strings.TrimSpace(s))
		}
	}
	return links
}

// getString returns the first non-empty string value among keys.
func getString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// getInt reads the first present key as an integer, tolerating JSON
// numbers and numeric strings. Negative values clamp to zero.
func getInt(m map[string]any, keys ...string) int {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			if v < 0 {
				return 0
			}
			return int(v)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
				return n
			}
		}
	}
	return 0
}

// getStringSlice reads the first present key as a list of strings.
// Array elements that are objects are flattened to one line each;
// a single string splits on commas.
func getStringSlice(m map[string]any, keys ...string) []string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case []any:
			if vals := stringValues(v); len(vals) > 0 {
				return vals
			}
		case string:
			var vals []string
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					vals = append(vals, part)
				}
			}
			if len(vals) > 0 {
				return vals
			}
		}
	}
	return []string{}
}

// stringValues flattens a JSON array to strings. Object entries (e.g.
// an experience item with role/company/dates) are joined into one line.
func stringValues(arr []any) []string {
	vals := make([]string, 0, len(arr))
	for _, item := range arr {
		switch v := item.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				vals = append(vals, s)
			}
		case map[string]any:
			if s := flattenEntry(v); s != "" {
				vals = append(vals, s)
			}
		}
	}
	return vals
}

// entryOrder is the field precedence when flattening an object entry.
var entryOrder = []string{"title", "role", "position", "degree", "name", "company", "institution", "issuer", "dates", "period", "year"}

func flattenEntry(m map[string]any) string {
	var parts []string
	seen := make(map[string]bool)
	for _, key := range entryOrder {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
			seen[key] = true
		}
	}
	if len(parts) == 0 {
		// Unknown shape: keep whatever scalar values exist, sorted by key.
		keys := make([]string, 0, len(m))
		for key := range m {
			if !seen[key] {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			switch v := m[key].(type) {
			case string:
				if s := strings.TrimSpace(v); s != "" {
					parts = append(parts, s)
				}
			case float64:
				parts = append(parts, fmt.Sprintf("%g", v))
			}
		}
	}
	return strings.Join(parts, ", ")
}
