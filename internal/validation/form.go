package validation

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
)

// FormData is a flat form record keyed by field name. Values are strings,
// booleans, *FileRef attachments, or nil.
type FormData map[string]any

// FileRef marks a field that holds an uploaded document.
type FileRef struct {
	AttachmentID string `json:"attachment_id"`
	FileName     string `json:"file_name"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
}

// ErrorType classifies a form error.
type ErrorType string

const (
	ErrorTypeRequired ErrorType = "required"
	ErrorTypeFormat   ErrorType = "format"
	ErrorTypeCustom   ErrorType = "custom"
)

// FieldError is one entry of a form's ordered error list.
type FieldError struct {
	Field       string    `json:"field"`
	DisplayName string    `json:"display_name"`
	Error       string    `json:"error"`
	Type        ErrorType `json:"type"`
	Priority    int       `json:"priority"`
}

// FormSummary counts errors by type.
type FormSummary struct {
	TotalErrors         int `json:"total_errors"`
	RequiredFieldErrors int `json:"required_field_errors"`
	FormatErrors        int `json:"format_errors"`
	CustomErrors        int `json:"custom_errors"`
}

// FormResult is the outcome of validating a whole form.
type FormResult struct {
	IsValid           bool              `json:"is_valid"`
	Errors            map[string]string `json:"errors"`
	ErrorList         []FieldError      `json:"error_list"`
	FirstInvalidField string            `json:"first_invalid_field,omitempty"`
	Summary           FormSummary       `json:"summary"`
}

// IsEmpty reports whether a form value counts as missing.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case bool:
		return !t
	case *FileRef:
		return t == nil || (t.AttachmentID == "" && t.FileName == "")
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// StringValue renders a form value as the string the rules match against.
func StringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case *FileRef:
		if t == nil {
			return ""
		}
		return t.FileName
	}
	return fmt.Sprint(v)
}

// ValidateCompleteForm runs the required, format and custom passes over data
// and returns every failure ordered by the module's field priority.
//
// Custom validations registered on the module run before extra. A field that
// already failed an earlier pass is not checked again. The returned error is
// non-nil only for programmer errors: a mapping to an unknown rule or a
// custom rule that panicked.
func (e *Engine) ValidateCompleteForm(data FormData, module Module, extra ...CustomValidation) (*FormResult, error) {
	spec := e.modules[module]
	if spec == nil {
		log.Printf("validation.Engine: no tables for module %q, running custom validations only", module)
	}

	errs := make(map[string]string)
	var list []FieldError
	add := func(field, msg string, typ ErrorType) {
		errs[field] = msg
		list = append(list, FieldError{
			Field:       field,
			DisplayName: spec.DisplayName(field),
			Error:       msg,
			Type:        typ,
			Priority:    spec.Priority(field),
		})
	}

	if spec != nil {
		for _, field := range spec.RequiredFields {
			if IsEmpty(data[field]) {
				add(field, requiredMessage(e.catalog, spec, field), ErrorTypeRequired)
			}
		}

		for _, fr := range spec.FieldRules {
			if _, failed := errs[fr.Field]; failed {
				continue
			}
			value := data[fr.Field]
			if IsEmpty(value) {
				continue
			}
			rule, ok := e.catalog.GetRule(fr.Rule)
			if !ok {
				return nil, fmt.Errorf("field %s: %w: %s", fr.Field, ErrUnknownRule, fr.Rule)
			}
			res := validateAgainst(StringValue(value), rule, spec.IsRequired(fr.Field))
			if !res.IsValid {
				add(fr.Field, res.Error, ErrorTypeFormat)
			}
		}
	}

	var customs []CustomValidation
	if spec != nil {
		customs = append(customs, spec.CustomRules...)
	}
	customs = append(customs, extra...)
	for _, cv := range customs {
		if _, failed := errs[cv.Field]; failed {
			continue
		}
		res, err := evaluateCustom(cv, data)
		if err != nil {
			return nil, err
		}
		if !res.IsValid {
			add(cv.Field, res.Error, ErrorTypeCustom)
		}
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].Priority < list[j].Priority })

	result := &FormResult{
		IsValid:   len(list) == 0,
		Errors:    errs,
		ErrorList: list,
	}
	if len(list) > 0 {
		result.FirstInvalidField = list[0].Field
	}
	for _, fe := range list {
		result.Summary.TotalErrors++
		switch fe.Type {
		case ErrorTypeRequired:
			result.Summary.RequiredFieldErrors++
		case ErrorTypeFormat:
			result.Summary.FormatErrors++
		case ErrorTypeCustom:
			result.Summary.CustomErrors++
		}
	}
	return result, nil
}

func evaluateCustom(cv CustomValidation, data FormData) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("field %s: %w: %v", cv.Field, ErrCustomRuleFailed, r)
		}
	}()
	if cv.Rule == nil {
		return Result{}, fmt.Errorf("field %s: %w: nil rule", cv.Field, ErrCustomRuleFailed)
	}
	return cv.Rule.Evaluate(data[cv.Field], data), nil
}

// requiredMessage prefers the mapped rule's required message and falls back
// to "<Display Name> is required".
func requiredMessage(catalog *Catalog, spec *ModuleSpec, field string) string {
	if name, ok := spec.RuleFor(field); ok {
		if rule, ok := catalog.GetRule(name); ok && rule.Messages.Required != "" {
			return rule.Messages.Required
		}
	}
	return spec.DisplayName(field) + " is required"
}
