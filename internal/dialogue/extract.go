package dialogue

import (
	"encoding/json"
	"strings"
)

type decompositionOutput struct {
	Introduction string   `json:"introduction"`
	Subtopics    []string `json:"subtopics"`
}

// ExtractDecomposition parses a model response into a Decomposition. Models
// sometimes wrap JSON in markdown code fences or surround it with prose, so
// the contract is: strip code fences, locate the outermost balanced JSON
// object, parse it. On any failure the raw text becomes the introduction
// with no subtopics, which the caller treats as a decomposition miss.
func ExtractDecomposition(topic string, raw []byte) *Decomposition {
	text := strings.TrimSpace(string(raw))

	candidate := stripCodeFences(text)
	if obj, ok := outermostObject(candidate); ok {
		var out decompositionOutput
		if err := json.Unmarshal([]byte(obj), &out); err == nil && out.Introduction != "" {
			return &Decomposition{
				Topic:        topic,
				Introduction: strings.TrimSpace(out.Introduction),
				Subtopics:    cleanTitles(out.Subtopics),
			}
		}
	}

	return &Decomposition{Topic: topic, Introduction: text}
}

// stripCodeFences removes a surrounding markdown code fence, with or
// without a language tag. Text without a fence passes through unchanged.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		trimmed = trimmed[nl+1:]
	}
	if end := strings.LastIndex(trimmed, "```"); end >= 0 {
		trimmed = trimmed[:end]
	}
	return strings.TrimSpace(trimmed)
}

// outermostObject returns the first balanced top-level JSON object in text.
// Brace depth is tracked outside of string literals so braces inside values
// do not confuse the scan.
func outermostObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

func cleanTitles(titles []string) []string {
	var out []string
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
