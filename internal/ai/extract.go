package ai

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"tripplanner/internal/types"
)

// Sanitize removes markdown code fences and any prose around the outermost JSON object.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// drop the fence's language tag, e.g. ```json
		if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "json")
		}
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))

	if obj, ok := outermostObject(s); ok {
		return obj
	}
	return s
}

// outermostObject returns the first balanced {...} in s, ignoring braces inside strings.
func outermostObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// Extract parses sanitized model output. It fails with types.ErrParseFailure when the text is
// not JSON or carries no days.
func Extract(sanitized string) (*DraftItinerary, error) {
	if sanitized == "" {
		return nil, errors.Wrap(types.ErrParseFailure, "empty model output")
	}
	var draft DraftItinerary
	if err := json.Unmarshal([]byte(sanitized), &draft); err != nil {
		return nil, errors.Wrapf(types.ErrParseFailure, "unmarshal: %v", err)
	}
	if len(draft.Days) == 0 {
		return nil, errors.Wrap(types.ErrParseFailure, "missing days")
	}
	return &draft, nil
}
