// Package jsonrepair recovers JSON values from free-form LLM responses.
//
// Models wrap JSON in markdown fences, prepend prose, or emit slightly
// malformed output even when instructed not to. Recovery runs a fixed
// list of independent passes; the first pass whose output parses as the
// wanted shape wins. Every pass is a pure function and testable alone.
package jsonrepair

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Pass attempts one recovery strategy. It returns a candidate string
// and whether the strategy applied at all; the candidate still has to
// survive a parse + shape check before it is accepted.
type Pass func(text string) (string, bool)

// Object recovers a single JSON object from text. The returned bytes
// are guaranteed to unmarshal into a map.
func Object(text string) ([]byte, error) {
	passes := []Pass{stripFence, braceWindow}
	for _, pass := range passes {
		candidate, ok := pass(text)
		if !ok {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(candidate), &m); err == nil {
			return []byte(candidate), nil
		}
	}
	return nil, newParseError(text)
}

// Array recovers a non-empty JSON array from text. Beyond the shared
// passes it tries several array-specific heuristics, ending with a
// regex repair of unquoted keys and trailing commas.
func Array(text string) ([]byte, error) {
	passes := []Pass{
		stripFence,
		bracketWindow,
		jsonPrefixedArray,
		fencedArrayAnywhere,
		anyBracketSpan,
		stitchObjectFragments,
		regexRepair,
	}
	for _, pass := range passes {
		candidate, ok := pass(text)
		if !ok {
			continue
		}
		var arr []any
		if err := json.Unmarshal([]byte(candidate), &arr); err == nil && len(arr) > 0 {
			return []byte(candidate), nil
		}
	}
	return nil, newParseError(text)
}

// stripFence removes a leading markdown code fence (with optional
// language tag) and the trailing fence. Text without a fence passes
// through trimmed, so already-valid JSON is accepted by this first
// pass unchanged.
func stripFence(text string) (string, bool) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text, text != ""
}

// braceWindow trims to the substring between the first '{' and the
// last '}'.
func braceWindow(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// bracketWindow trims to the substring between the first '[' and the
// last ']'.
func bracketWindow(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

var jsonPrefixRe = regexp.MustCompile(`(?i)json:?\s*(\[[\s\S]*\])`)

// jsonPrefixedArray finds an array introduced by a "json:" label in
// the surrounding prose.
func jsonPrefixedArray(text string) (string, bool) {
	m := jsonPrefixRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

var fencedArrayRe = regexp.MustCompile("```(?:json)?\\s*(\\[[\\s\\S]*?\\])\\s*```")

// fencedArrayAnywhere finds a fenced array that is not at the start of
// the text, where stripFence does not reach it.
func fencedArrayAnywhere(text string) (string, bool) {
	m := fencedArrayRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

var bracketSpanRe = regexp.MustCompile(`\[[\s\S]*?\]`)

// anyBracketSpan tries each bracket-delimited span in order, shortest
// first per position. Unlike bracketWindow it can skip an early
// unrelated '[' (e.g. a markdown link) that poisons the greedy window.
func anyBracketSpan(text string) (string, bool) {
	spans := bracketSpanRe.FindAllString(text, -1)
	for _, span := range spans {
		var arr []any
		if err := json.Unmarshal([]byte(span), &arr); err == nil && len(arr) > 0 {
			return span, true
		}
	}
	return "", false
}

var (
	objectFragmentRe = regexp.MustCompile(`\{[^{}]*\}`)
	fragmentKeys     = []string{`"id"`, `"title"`, `"provider"`, `"url"`}
)

// stitchObjectFragments collects standalone JSON object fragments that
// look like recommendation entries and joins them into a synthetic
// array. Best-effort: unrelated fragments carrying a marker key are
// accepted too.
func stitchObjectFragments(text string) (string, bool) {
	var parts []string
	for _, frag := range objectFragmentRe.FindAllString(text, -1) {
		for _, key := range fragmentKeys {
			if strings.Contains(frag, key) {
				parts = append(parts, frag)
				break
			}
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return "[" + strings.Join(parts, ",") + "]", true
}

var (
	unquotedKeyRe   = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	unquotedValueRe = regexp.MustCompile(`:\s*([A-Za-z_][A-Za-z0-9_ .\-/]*[A-Za-z0-9_])\s*([,}\]])`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	jsonLiteralRe   = regexp.MustCompile(`^(true|false|null)$`)
)

// regexRepair is the last resort: quote unquoted keys and bare string
// values inside the widest bracket window, then drop trailing commas.
func regexRepair(text string) (string, bool) {
	window, ok := bracketWindow(text)
	if !ok {
		return "", false
	}
	repaired := unquotedKeyRe.ReplaceAllString(window, `$1"$2":`)
	repaired = unquotedValueRe.ReplaceAllStringFunc(repaired, func(m string) string {
		sub := unquotedValueRe.FindStringSubmatch(m)
		if jsonLiteralRe.MatchString(sub[1]) {
			return m
		}
		return `: "` + sub[1] + `"` + sub[2]
	})
	repaired = trailingCommaRe.ReplaceAllString(repaired, `$1`)
	return repaired, true
}
