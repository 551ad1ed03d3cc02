package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Result is the outcome of validating a single value.
type Result struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

// RealTimeResult is a Result with an as-you-type hint.
type RealTimeResult struct {
	IsValid    bool   `json:"is_valid"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func pass() Result { return Result{IsValid: true} }

func fail(msg string) Result { return Result{IsValid: false, Error: msg} }

func unknownRule(name RuleName) string {
	return fmt.Sprintf("Unknown validation rule: %s", name)
}

// Normalize trims the value and upper-cases it for rules that accept
// lowercase input (PAN, GST, IFSC).
func Normalize(value string, rule Rule) string {
	v := strings.TrimSpace(value)
	if rule.Uppercase {
		v = strings.ToUpper(v)
	}
	return v
}

// NormalizeValue normalizes value using the named rule; unknown rules only trim.
func (e *Engine) NormalizeValue(value string, name RuleName) string {
	rule, ok := e.catalog.GetRule(name)
	if !ok {
		return strings.TrimSpace(value)
	}
	return Normalize(value, rule)
}

// ValidateField checks value against the named rule.
func (e *Engine) ValidateField(value string, name RuleName, required bool) Result {
	rule, ok := e.catalog.GetRule(name)
	if !ok {
		return fail(unknownRule(name))
	}
	return validateAgainst(value, rule, required)
}

func validateAgainst(value string, rule Rule, required bool) Result {
	if strings.TrimSpace(value) == "" {
		if required {
			return fail(rule.Messages.Required)
		}
		return pass()
	}

	v := Normalize(value, rule)
	n := utf8.RuneCountInString(v)

	// Exact length is checked before the pattern for a clearer message.
	if rule.Length > 0 && n != rule.Length {
		return fail(rule.Messages.Invalid)
	}
	if rule.MinLength > 0 && n < rule.MinLength {
		return fail(fmt.Sprintf("%s must be at least %d characters", rule.Name, rule.MinLength))
	}
	if rule.MaxLength > 0 && n > rule.MaxLength {
		return fail(fmt.Sprintf("%s cannot exceed %d characters", rule.Name, rule.MaxLength))
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(v) {
		return fail(rule.Messages.Invalid)
	}
	return pass()
}

// ValidateRealTime is ValidateField for live feedback: it adds a format
// suggestion on every non-passing state and reports partial length progress.
func (e *Engine) ValidateRealTime(value string, name RuleName, required bool) RealTimeResult {
	rule, ok := e.catalog.GetRule(name)
	if !ok {
		return RealTimeResult{Error: unknownRule(name)}
	}
	suggestion := "Format: " + rule.Format

	if strings.TrimSpace(value) == "" {
		if required {
			return RealTimeResult{Error: rule.Messages.Required, Suggestion: suggestion}
		}
		return RealTimeResult{IsValid: true, Suggestion: suggestion}
	}

	v := Normalize(value, rule)
	n := utf8.RuneCountInString(v)

	switch {
	case rule.Length > 0 && n != rule.Length:
		return RealTimeResult{
			Error:      fmt.Sprintf("%s must be %d characters (%d/%d)", rule.Name, rule.Length, n, rule.Length),
			Suggestion: suggestion,
		}
	case rule.MinLength > 0 && n < rule.MinLength:
		return RealTimeResult{
			Error:      fmt.Sprintf("%s must be at least %d characters (%d/%d)", rule.Name, rule.MinLength, n, rule.MinLength),
			Suggestion: suggestion,
		}
	case rule.MaxLength > 0 && n > rule.MaxLength:
		return RealTimeResult{
			Error:      fmt.Sprintf("%s cannot exceed %d characters (%d/%d)", rule.Name, rule.MaxLength, n, rule.MaxLength),
			Suggestion: suggestion,
		}
	case rule.Pattern != nil && !rule.Pattern.MatchString(v):
		return RealTimeResult{Error: rule.Messages.Invalid, Suggestion: suggestion}
	}
	return RealTimeResult{IsValid: true}
}
