// File: services/intelligence/extract.go
package ai

import (
	"encoding/json"
	"fmt"
	"regexp"

	"remindly/models"
	"remindly/utils"

	"go.uber.org/zap"
)

// Model replies rarely arrive as clean JSON: they tend to be wrapped in
// markdown fences or chatty prose. These patterns carve out the first JSON
// array or object, preferring a fenced block when one starts the match.
// Matching is non-greedy and not nesting-aware, so a literal ] or } inside
// a string value truncates the carve early; existing clients depend on this
// exact carving.
var (
	arrayPattern  = regexp.MustCompile("```(?:json)?\\s*(\\[[\\s\\S]*?\\])\\s*```|(\\[[\\s\\S]*?\\])")
	objectPattern = regexp.MustCompile("```(?:json)?\\s*(\\{[\\s\\S]*?\\})\\s*```|(\\{[\\s\\S]*?\\})")
)

// NoJSONError reports model output with no JSON payload to carve.
type NoJSONError struct {
	Raw string
}

func (e *NoJSONError) Error() string {
	return "no JSON found in LLM response"
}

// ParseError reports a carved payload that did not survive decoding.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON from LLM response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Extraction is the structured form of one model reply. Exactly one field
// is set: Drafts when the reply carried a JSON array, Single when it carried
// a lone object. Callers shape their responses differently for the two.
type Extraction struct {
	Drafts []models.ReminderDraft
	Single *models.ReminderDraft
}

// Extract carves the first JSON payload out of raw model output.
//
// Arrays are tried first. An array carve that does not decode as a non-empty
// list of reminder objects is abandoned in favor of the object attempt, not
// reported. Returns *NoJSONError when neither pattern matches and
// *ParseError when the object carve is not valid JSON.
func Extract(content string) (*Extraction, error) {
	if carved, ok := carve(arrayPattern, content); ok {
		var drafts []models.ReminderDraft
		err := json.Unmarshal([]byte(carved), &drafts)
		if err == nil && len(drafts) > 0 {
			return &Extraction{Drafts: drafts}, nil
		}
		utils.GetLogger().Debug("array carve unusable, trying object",
			zap.Error(err), zap.Int("elements", len(drafts)))
	}

	carved, ok := carve(objectPattern, content)
	if !ok {
		return nil, &NoJSONError{Raw: content}
	}
	var draft models.ReminderDraft
	if err := json.Unmarshal([]byte(carved), &draft); err != nil {
		return nil, &ParseError{Raw: content, Err: err}
	}
	return &Extraction{Single: &draft}, nil
}

// carve returns the first JSON candidate in content: the fenced capture when
// the match was a code block, the bare capture otherwise. A matched group is
// never empty since the smallest possible carve is "[]" or "{}".
func carve(pattern *regexp.Regexp, content string) (string, bool) {
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}
