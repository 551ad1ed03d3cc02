package validation

import (
	"fmt"
)

// CustomRule is a cross-field or business rule evaluated against the whole
// record after the required and format passes.
type CustomRule interface {
	Evaluate(value any, record FormData) Result
}

// CustomRuleFunc adapts a function to CustomRule.
type CustomRuleFunc func(value any, record FormData) Result

// Evaluate calls f.
func (f CustomRuleFunc) Evaluate(value any, record FormData) Result {
	return f(value, record)
}

// CustomValidation attaches a CustomRule to the field that receives its error.
type CustomValidation struct {
	Field string
	Rule  CustomRule
}

// DateSequenceRule fails when the expiry date precedes the start date.
// Equal dates pass, and so does any pair where either date is missing or
// unparseable.
type DateSequenceRule struct {
	StartField  string
	ExpiryField string
	StartLabel  string
	ExpiryLabel string
}

// Evaluate implements CustomRule. value is the expiry field's value.
func (r DateSequenceRule) Evaluate(value any, record FormData) Result {
	expiry := StringValue(value)
	start := StringValue(record[r.StartField])
	if expiry == "" || start == "" {
		return pass()
	}
	startDate, err := ParseDate(start)
	if err != nil {
		return pass()
	}
	expiryDate, err := ParseDate(expiry)
	if err != nil {
		return pass()
	}
	if expiryDate.Before(startDate) {
		return fail(fmt.Sprintf("%s cannot be before %s", r.expiryLabel(), r.startLabel()))
	}
	return pass()
}

func (r DateSequenceRule) startLabel() string {
	if r.StartLabel != "" {
		return r.StartLabel
	}
	return Humanize(r.StartField)
}

func (r DateSequenceRule) expiryLabel() string {
	if r.ExpiryLabel != "" {
		return r.ExpiryLabel
	}
	return Humanize(r.ExpiryField)
}

// DateSequence builds the custom validation for a (start, expiry) pair.
func DateSequence(startField, expiryField, startLabel, expiryLabel string) CustomValidation {
	return CustomValidation{
		Field: expiryField,
		Rule: DateSequenceRule{
			StartField:  startField,
			ExpiryField: expiryField,
			StartLabel:  startLabel,
			ExpiryLabel: expiryLabel,
		},
	}
}

// CheckDateSequence runs a date sequence check on record outside a form
// validation pass.
func CheckDateSequence(record FormData, startField, expiryField string) Result {
	rule := DateSequenceRule{StartField: startField, ExpiryField: expiryField}
	return rule.Evaluate(record[expiryField], record)
}
