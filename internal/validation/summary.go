package validation

import "fmt"

// SummarySection groups the errors of one type.
type SummarySection struct {
	Type   ErrorType    `json:"type"`
	Title  string       `json:"title"`
	Errors []FieldError `json:"errors"`
}

// ErrorSummary is the presentation form of an error list.
type ErrorSummary struct {
	Title      string           `json:"title"`
	Subtitle   string           `json:"subtitle"`
	Sections   []SummarySection `json:"sections"`
	FirstField string           `json:"first_field,omitempty"`
	TotalCount int              `json:"total_count"`
}

var sectionOrder = []struct {
	typ   ErrorType
	title string
}{
	{ErrorTypeRequired, "Required Fields Missing"},
	{ErrorTypeFormat, "Format Errors"},
	{ErrorTypeCustom, "Validation Errors"},
}

// GenerateErrorSummary groups errors into required, format and custom
// sections, omitting empty ones.
func GenerateErrorSummary(errs []FieldError) ErrorSummary {
	summary := ErrorSummary{
		Sections:   []SummarySection{},
		TotalCount: len(errs),
	}
	if len(errs) == 0 {
		return summary
	}

	noun := "Errors"
	if len(errs) == 1 {
		noun = "Error"
	}
	summary.Title = fmt.Sprintf("%d Validation %s Found", len(errs), noun)
	summary.Subtitle = "Please correct the following before submitting"
	summary.FirstField = errs[0].Field

	for _, s := range sectionOrder {
		var group []FieldError
		for _, fe := range errs {
			if fe.Type == s.typ {
				group = append(group, fe)
			}
		}
		if len(group) > 0 {
			summary.Sections = append(summary.Sections, SummarySection{Type: s.typ, Title: s.title, Errors: group})
		}
	}
	return summary
}
