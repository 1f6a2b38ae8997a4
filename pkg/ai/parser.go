package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// StructuredParser extracts a schema-conformant object from raw model text.
// The model is only prompted to follow the schema; this parser is the
// authoritative validation boundary.
type StructuredParser struct {
	Schema OutputSchema
}

// Parse returns the field values keyed by schema field name. The raw text may
// wrap the JSON object in surrounding prose or a code fence. Every required
// field must be present and non-empty or the whole parse fails; extra fields
// are ignored.
func (p StructuredParser) Parse(raw string) (map[string]string, error) {
	candidate := extractJSON(raw)
	if candidate == "" {
		return nil, &ParseError{Message: "model response contains no JSON object"}
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &decoded); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return nil, &ParseError{Message: "model response is not valid JSON: " + err.Error()}
		}
		if err := json.Unmarshal([]byte(repaired), &decoded); err != nil {
			return nil, &ParseError{Message: "model response is not valid JSON: " + err.Error()}
		}
	}

	fields := make(map[string]string, len(p.Schema.Fields))
	for _, spec := range p.Schema.Fields {
		value, ok := stringValue(decoded[spec.Name])
		if !ok || strings.TrimSpace(value) == "" {
			if spec.Required {
				return nil, &ParseError{Message: fmt.Sprintf("model response is missing required field %q", spec.Name)}
			}
			continue
		}
		fields[spec.Name] = strings.TrimSpace(value)
	}
	return fields, nil
}

// PlainTextParser returns trimmed free-text advice.
type PlainTextParser struct{}

// Parse strips leading/trailing whitespace and wrapping quote characters.
// An empty result after trimming is a parse failure.
func (PlainTextParser) Parse(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	for len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
			text = strings.TrimSpace(text[1 : len(text)-1])
			continue
		}
		break
	}
	if text == "" {
		return "", &ParseError{Message: "model returned no content"}
	}
	return text, nil
}

// extractJSON locates the JSON object inside raw model text. A fenced block
// takes precedence; otherwise the first '{' through the last '}' is used.
func extractJSON(raw string) string {
	if body, ok := fencedBlock(raw); ok {
		raw = body
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

func fencedBlock(raw string) (string, bool) {
	open := strings.Index(raw, "```")
	if open == -1 {
		return "", false
	}
	body := raw[open+3:]
	// Drop an optional language tag such as "json" on the fence line.
	if newline := strings.Index(body, "\n"); newline != -1 {
		body = body[newline+1:]
	}
	closing := strings.Index(body, "```")
	if closing == -1 {
		return "", false
	}
	return body[:closing], true
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64, bool:
		return fmt.Sprintf("%v", v), true
	case nil:
		return "", false
	default:
		return "", false
	}
}
