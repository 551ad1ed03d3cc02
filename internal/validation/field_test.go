package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/validation"
)

func TestGetRule(t *testing.T) {
	c := validation.DefaultCatalog()

	rule, ok := c.GetRule(validation.RulePAN)
	require.True(t, ok)
	assert.Equal(t, "PAN Number", rule.Name)
	assert.Equal(t, 10, rule.Length)
	assert.Equal(t, "ABCDE1234F", rule.Format)

	_, ok = c.GetRule("NOPE")
	assert.False(t, ok)
}

func TestCatalog_Rules_SortedAndComplete(t *testing.T) {
	rules := validation.DefaultCatalog().Rules()
	require.Len(t, rules, 16)
	for i := 1; i < len(rules); i++ {
		assert.Less(t, string(rules[i-1].Key), string(rules[i].Key))
	}
	for _, r := range rules {
		assert.NotEmpty(t, r.Messages.Required, r.Key)
		assert.NotEmpty(t, r.Messages.Invalid, r.Key)
		assert.NotEmpty(t, r.Format, r.Key)
		assert.NotNil(t, r.Pattern, r.Key)
	}
}

func TestCatalog_FormatExamplesPass(t *testing.T) {
	e := validation.NewDefaultEngine()
	for _, r := range e.Catalog().Rules() {
		res := e.ValidateField(r.Format, r.Key, true)
		assert.True(t, res.IsValid, "format example of %s should validate: %s", r.Key, res.Error)
	}
}

func TestValidateField_EmptyInput(t *testing.T) {
	e := validation.NewDefaultEngine()

	for _, v := range []string{"", "   ", "\t\n"} {
		res := e.ValidateField(v, validation.RuleMobile, false)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Error)

		res = e.ValidateField(v, validation.RuleMobile, true)
		assert.False(t, res.IsValid)
		assert.Equal(t, "Mobile Number is required", res.Error)
	}
}

func TestValidateField_UnknownRule(t *testing.T) {
	e := validation.NewDefaultEngine()
	res := e.ValidateField("anything", "PASSPORT", false)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Unknown validation rule: PASSPORT", res.Error)
}

func TestValidateField_ExactLengthRejectedRegardlessOfContent(t *testing.T) {
	e := validation.NewDefaultEngine()
	for _, r := range e.Catalog().Rules() {
		if r.Length == 0 {
			continue
		}
		for _, n := range []int{r.Length - 1, r.Length + 1} {
			v := strings.Repeat("9", n)
			res := e.ValidateField(v, r.Key, false)
			assert.False(t, res.IsValid, "%s with length %d", r.Key, n)
			assert.Equal(t, r.Messages.Invalid, res.Error)
		}
	}
}

func TestValidateField_PAN(t *testing.T) {
	e := validation.NewDefaultEngine()

	t.Run("valid", func(t *testing.T) {
		assert.True(t, e.ValidateField("ABCDE1234F", validation.RulePAN, true).IsValid)
	})
	t.Run("lowercase_accepted", func(t *testing.T) {
		upper := e.ValidateField("ABCDE1234F", validation.RulePAN, true)
		lower := e.ValidateField("abcde1234f", validation.RulePAN, true)
		assert.Equal(t, upper, lower)
		assert.Equal(t, "ABCDE1234F", e.NormalizeValue(" abcde1234f ", validation.RulePAN))
	})
	t.Run("right_length_wrong_shape", func(t *testing.T) {
		res := e.ValidateField("12345ABCDE", validation.RulePAN, true)
		assert.False(t, res.IsValid)
		assert.Equal(t, "Invalid PAN Number format", res.Error)
	})
	t.Run("surrounding_whitespace_trimmed", func(t *testing.T) {
		assert.True(t, e.ValidateField("  ABCDE1234F ", validation.RulePAN, true).IsValid)
	})
}

func TestValidateField_GST(t *testing.T) {
	e := validation.NewDefaultEngine()
	assert.True(t, e.ValidateField("22ABCDE1234F1Z5", validation.RuleGST, true).IsValid)
	assert.True(t, e.ValidateField("22abcde1234f1z5", validation.RuleGST, true).IsValid)
	// 14th character must be Z
	assert.False(t, e.ValidateField("22ABCDE1234F1X5", validation.RuleGST, true).IsValid)
	// 13th character cannot be 0
	assert.False(t, e.ValidateField("22ABCDE1234F0Z5", validation.RuleGST, true).IsValid)
}

func TestValidateField_IFSC(t *testing.T) {
	e := validation.NewDefaultEngine()
	assert.True(t, e.ValidateField("SBIN0001234", validation.RuleIFSC, true).IsValid)
	assert.True(t, e.ValidateField("sbin0001234", validation.RuleIFSC, true).IsValid)
	assert.False(t, e.ValidateField("SBIN1001234", validation.RuleIFSC, true).IsValid)
}

func TestValidateField_Mobile(t *testing.T) {
	e := validation.NewDefaultEngine()
	tests := []struct {
		value string
		valid bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false},
		{"98765x3210", false},
		{"12345", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, e.ValidateField(tt.value, validation.RuleMobile, true).IsValid, tt.value)
	}
}

func TestValidateField_Email(t *testing.T) {
	e := validation.NewDefaultEngine()
	assert.True(t, e.ValidateField("ops@transport.in", validation.RuleEmail, true).IsValid)
	assert.False(t, e.ValidateField("ops @transport.in", validation.RuleEmail, true).IsValid)
	assert.False(t, e.ValidateField("ops@transport", validation.RuleEmail, true).IsValid)
	assert.False(t, e.ValidateField("ops@@transport.in", validation.RuleEmail, true).IsValid)
}

func TestValidateField_LengthRange(t *testing.T) {
	e := validation.NewDefaultEngine()

	res := e.ValidateField("1234", validation.RuleAccountNumber, true)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Account Number must be at least 9 characters", res.Error)

	res = e.ValidateField(strings.Repeat("1", 19), validation.RuleAccountNumber, true)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Account Number cannot exceed 18 characters", res.Error)

	res = e.ValidateField("12345678A", validation.RuleAccountNumber, true)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Account Number must contain only digits (9-18)", res.Error)

	assert.True(t, e.ValidateField("123456789", validation.RuleAccountNumber, true).IsValid)

	res = e.ValidateField("A", validation.RuleBankName, true)
	assert.Equal(t, "Bank Name must be at least 2 characters", res.Error)
}

func TestValidateField_Vehicle(t *testing.T) {
	e := validation.NewDefaultEngine()
	assert.True(t, e.ValidateField("MH12AB1234", validation.RuleVehicleNumber, true).IsValid)
	assert.True(t, e.ValidateField("DL1C1234", validation.RuleVehicleNumber, true).IsValid)
	assert.False(t, e.ValidateField("MH123AB1234", validation.RuleVehicleNumber, true).IsValid)

	assert.True(t, e.ValidateField("MA3FJEB1S00123456", validation.RuleChassisNumber, true).IsValid)
	assert.False(t, e.ValidateField("MA3FJEB1S0012345-", validation.RuleChassisNumber, true).IsValid)

	assert.Equal(t, "Vehicle Code must be at least 8 characters",
		e.ValidateField("VEH1", validation.RuleVehicleCode, true).Error)
	assert.Equal(t, "Engine Number cannot exceed 20 characters",
		e.ValidateField(strings.Repeat("A", 21), validation.RuleEngineNumber, true).Error)
}

func TestValidateRealTime(t *testing.T) {
	e := validation.NewDefaultEngine()

	t.Run("partial_exact_length", func(t *testing.T) {
		res := e.ValidateRealTime("ABCDE1", validation.RulePAN, true)
		assert.False(t, res.IsValid)
		assert.Equal(t, "PAN Number must be 10 characters (6/10)", res.Error)
		assert.Equal(t, "Format: ABCDE1234F", res.Suggestion)
	})

	t.Run("length_uses_trimmed_value", func(t *testing.T) {
		res := e.ValidateRealTime("  98765 ", validation.RuleMobile, false)
		assert.Equal(t, "Mobile Number must be 10 characters (5/10)", res.Error)
	})

	t.Run("partial_min_length", func(t *testing.T) {
		res := e.ValidateRealTime("1234", validation.RuleAccountNumber, false)
		assert.Equal(t, "Account Number must be at least 9 characters (4/9)", res.Error)
		assert.Equal(t, "Format: 123456789012", res.Suggestion)
	})

	t.Run("over_max_length", func(t *testing.T) {
		res := e.ValidateRealTime(strings.Repeat("1", 20), validation.RuleAccountNumber, false)
		assert.Equal(t, "Account Number cannot exceed 18 characters (20/18)", res.Error)
	})

	t.Run("pattern_mismatch", func(t *testing.T) {
		res := e.ValidateRealTime("1234567890", validation.RulePAN, false)
		assert.False(t, res.IsValid)
		assert.Equal(t, "Invalid PAN Number format", res.Error)
		assert.Equal(t, "Format: ABCDE1234F", res.Suggestion)
	})

	t.Run("empty_required", func(t *testing.T) {
		res := e.ValidateRealTime("", validation.RuleIFSC, true)
		assert.False(t, res.IsValid)
		assert.Equal(t, "IFSC Code is required", res.Error)
		assert.Equal(t, "Format: SBIN0001234", res.Suggestion)
	})

	t.Run("empty_optional", func(t *testing.T) {
		res := e.ValidateRealTime("", validation.RuleIFSC, false)
		assert.True(t, res.IsValid)
		assert.Equal(t, "Format: SBIN0001234", res.Suggestion)
	})

	t.Run("complete", func(t *testing.T) {
		res := e.ValidateRealTime("sbin0001234", validation.RuleIFSC, true)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Error)
		assert.Empty(t, res.Suggestion)
	})

	t.Run("unknown_rule", func(t *testing.T) {
		res := e.ValidateRealTime("x", "NOPE", false)
		assert.False(t, res.IsValid)
		assert.Equal(t, "Unknown validation rule: NOPE", res.Error)
	})
}
