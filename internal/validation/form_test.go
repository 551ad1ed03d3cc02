package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/validation"
)

func validVendor() validation.FormData {
	return validation.FormData{
		"vendor_name":      "Sharma Logistics",
		"vendor_mobile_no": "9876543210",
		"vendor_address":   "12 MG Road, Pune",
		"vendor_pan_no":    "ABCDE1234F",
		"vendor_gst_no":    "27ABCDE1234F1Z5",
		"ifsc_code":        "HDFC0001234",
		"account_number":   "123456789012",
	}
}

func validCustomer() validation.FormData {
	return validation.FormData{
		"CustomerName":     "Acme Freight",
		"CustomerMobileNo": "9123456789",
		"CustomerAddress":  "Plot 4, MIDC, Nashik",
	}
}

func TestValidateCompleteForm_ValidVendor(t *testing.T) {
	e := validation.NewDefaultEngine()

	res, err := e.ValidateCompleteForm(validVendor(), validation.ModuleVendor)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.ErrorList)
	assert.Empty(t, res.FirstInvalidField)
	assert.Equal(t, validation.FormSummary{}, res.Summary)
}

func TestValidateCompleteForm_LowercaseIdentifiersPass(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validVendor()
	data["vendor_pan_no"] = "abcde1234f"
	data["vendor_gst_no"] = "27abcde1234f1z5"
	data["ifsc_code"] = "hdfc0001234"

	res, err := e.ValidateCompleteForm(data, validation.ModuleVendor)
	require.NoError(t, err)
	assert.True(t, res.IsValid, res.Errors)
}

func TestValidateCompleteForm_VendorMixedErrors(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validation.FormData{
		"vendor_name":      "",
		"vendor_mobile_no": "12345",
		"vendor_address":   "Somewhere",
		"vendor_pan_no":    "ABCDE1234F",
		"ifsc_code":        "BADIFSC",
	}

	res, err := e.ValidateCompleteForm(data, validation.ModuleVendor)
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	require.Len(t, res.ErrorList, 3)

	assert.Equal(t, "vendor_name", res.ErrorList[0].Field)
	assert.Equal(t, validation.ErrorTypeRequired, res.ErrorList[0].Type)
	assert.Equal(t, "Vendor Name is required", res.ErrorList[0].Error)
	assert.Equal(t, "Vendor Name", res.ErrorList[0].DisplayName)
	assert.Equal(t, 0, res.ErrorList[0].Priority)

	assert.Equal(t, "vendor_mobile_no", res.ErrorList[1].Field)
	assert.Equal(t, validation.ErrorTypeFormat, res.ErrorList[1].Type)
	assert.Equal(t, "Mobile Number must be 10 digits starting with 6, 7, 8 or 9", res.ErrorList[1].Error)

	assert.Equal(t, "ifsc_code", res.ErrorList[2].Field)
	assert.Equal(t, validation.ErrorTypeFormat, res.ErrorList[2].Type)
	assert.Equal(t, "Invalid IFSC Code format", res.ErrorList[2].Error)

	assert.Equal(t, "vendor_name", res.FirstInvalidField)
	assert.Equal(t, validation.FormSummary{TotalErrors: 3, RequiredFieldErrors: 1, FormatErrors: 2}, res.Summary)
	assert.Len(t, res.Errors, 3)
	assert.Equal(t, "Invalid IFSC Code format", res.Errors["ifsc_code"])
}

func TestValidateCompleteForm_RequiredUsesRuleMessage(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validVendor()
	delete(data, "vendor_pan_no")

	res, err := e.ValidateCompleteForm(data, validation.ModuleVendor)
	require.NoError(t, err)
	require.Len(t, res.ErrorList, 1)
	assert.Equal(t, "PAN Number is required", res.ErrorList[0].Error)
}

func TestValidateCompleteForm_OneErrorPerField(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validation.FormData{
		"DriverName":        "Ravi",
		"DriverMobileNo":    "9876543210",
		"DriverAadhaarNo":   "123456789012",
		"LicenceNo":         "MH1220110012345",
		"LicenceIssueDate":  "2024-01-01",
		"LicenceExpiryDate": "   ",
	}

	res, err := e.ValidateCompleteForm(data, validation.ModuleDriver)
	require.NoError(t, err)
	require.Len(t, res.ErrorList, 1)
	assert.Equal(t, "LicenceExpiryDate", res.ErrorList[0].Field)
	assert.Equal(t, validation.ErrorTypeRequired, res.ErrorList[0].Type)
	assert.Equal(t, "Licence Expiry Date is required", res.ErrorList[0].Error)
}

func TestValidateCompleteForm_OptionalEmptyFieldSkipsFormat(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validVendor()
	data["vendor_email"] = ""
	data["vendor_alternate_no"] = nil

	res, err := e.ValidateCompleteForm(data, validation.ModuleVendor)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestValidateCompleteForm_NonStringValues(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validVendor()
	data["vendor_mobile_no"] = float64(9876543210)
	data["account_number"] = float64(12345)

	res, err := e.ValidateCompleteForm(data, validation.ModuleVendor)
	require.NoError(t, err)
	require.Len(t, res.ErrorList, 1)
	assert.Equal(t, "account_number", res.ErrorList[0].Field)
	assert.Equal(t, "Account Number must be at least 9 characters", res.ErrorList[0].Error)
}

func TestValidateCompleteForm_PriorityOrdering(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validCustomer()
	data["IFSCCode"] = "XXXX"
	delete(data, "CustomerName")

	extraA := validation.CustomValidation{
		Field: "Zeta",
		Rule: validation.CustomRuleFunc(func(any, validation.FormData) validation.Result {
			return validation.Result{Error: "zeta failed"}
		}),
	}
	extraB := validation.CustomValidation{
		Field: "Alpha",
		Rule: validation.CustomRuleFunc(func(any, validation.FormData) validation.Result {
			return validation.Result{Error: "alpha failed"}
		}),
	}

	res, err := e.ValidateCompleteForm(data, validation.ModuleCustomer, extraA, extraB)
	require.NoError(t, err)
	require.Len(t, res.ErrorList, 4)

	fields := make([]string, 0, len(res.ErrorList))
	for _, fe := range res.ErrorList {
		fields = append(fields, fe.Field)
	}
	// unordered fields keep discovery order after every ordered one
	assert.Equal(t, []string{"CustomerName", "IFSCCode", "Zeta", "Alpha"}, fields)
	assert.Equal(t, validation.UnorderedPriority, res.ErrorList[2].Priority)
	assert.Equal(t, validation.UnorderedPriority, res.ErrorList[3].Priority)
	assert.Equal(t, "CustomerName", res.FirstInvalidField)
	assert.Equal(t, 2, res.Summary.CustomErrors)
}

func TestValidateCompleteForm_AgreementDates(t *testing.T) {
	e := validation.NewDefaultEngine()

	t.Run("expiry_before_start", func(t *testing.T) {
		data := validCustomer()
		data["AgreementDate"] = "2024-12-31"
		data["AgreementExpiryDate"] = "2024-01-01"

		res, err := e.ValidateCompleteForm(data, validation.ModuleCustomer)
		require.NoError(t, err)
		require.Len(t, res.ErrorList, 1)
		assert.Equal(t, "AgreementExpiryDate", res.ErrorList[0].Field)
		assert.Equal(t, validation.ErrorTypeCustom, res.ErrorList[0].Type)
		assert.Equal(t, "Agreement Expiry Date cannot be before Agreement Date", res.ErrorList[0].Error)
		assert.Equal(t, 1, res.Summary.CustomErrors)
	})

	t.Run("same_day", func(t *testing.T) {
		data := validCustomer()
		data["AgreementDate"] = "2024-06-01"
		data["AgreementExpiryDate"] = "01-06-2024"

		res, err := e.ValidateCompleteForm(data, validation.ModuleCustomer)
		require.NoError(t, err)
		assert.True(t, res.IsValid)
	})

	t.Run("missing_start", func(t *testing.T) {
		data := validCustomer()
		data["BGExpiryDate"] = "2020-01-01"

		res, err := e.ValidateCompleteForm(data, validation.ModuleCustomer)
		require.NoError(t, err)
		assert.True(t, res.IsValid)
	})
}

func TestValidateCompleteForm_CustomSkipsFailedField(t *testing.T) {
	e := validation.NewDefaultEngine()
	called := false
	cv := validation.CustomValidation{
		Field: "CustomerMobileNo",
		Rule: validation.CustomRuleFunc(func(any, validation.FormData) validation.Result {
			called = true
			return validation.Result{Error: "should not appear"}
		}),
	}
	data := validCustomer()
	data["CustomerMobileNo"] = "123"

	res, err := e.ValidateCompleteForm(data, validation.ModuleCustomer, cv)
	require.NoError(t, err)
	assert.False(t, called)
	require.Len(t, res.ErrorList, 1)
	assert.Equal(t, validation.ErrorTypeFormat, res.ErrorList[0].Type)
}

func TestValidateCompleteForm_CustomReceivesRecord(t *testing.T) {
	e := validation.NewDefaultEngine()
	cv := validation.CustomValidation{
		Field: "CustomerAlternateNo",
		Rule: validation.CustomRuleFunc(func(v any, rec validation.FormData) validation.Result {
			if v == rec["CustomerMobileNo"] {
				return validation.Result{Error: "Alternate Number must differ from Mobile Number"}
			}
			return validation.Result{IsValid: true}
		}),
	}
	data := validCustomer()
	data["CustomerAlternateNo"] = data["CustomerMobileNo"]

	res, err := e.ValidateCompleteForm(data, validation.ModuleCustomer, cv)
	require.NoError(t, err)
	assert.Equal(t, "Alternate Number must differ from Mobile Number", res.Errors["CustomerAlternateNo"])
}

func TestValidateCompleteForm_CustomPanicIsError(t *testing.T) {
	e := validation.NewDefaultEngine()
	cv := validation.CustomValidation{
		Field: "CustomerName",
		Rule: validation.CustomRuleFunc(func(any, validation.FormData) validation.Result {
			panic("boom")
		}),
	}

	res, err := e.ValidateCompleteForm(validCustomer(), validation.ModuleCustomer, cv)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrCustomRuleFailed))
	assert.Contains(t, err.Error(), "boom")
}

func TestValidateCompleteForm_NilCustomRule(t *testing.T) {
	e := validation.NewDefaultEngine()
	_, err := e.ValidateCompleteForm(validCustomer(), validation.ModuleCustomer,
		validation.CustomValidation{Field: "CustomerName"})
	assert.ErrorIs(t, err, validation.ErrCustomRuleFailed)
}

func TestValidateCompleteForm_UnknownModuleRunsCustomOnly(t *testing.T) {
	e := validation.NewDefaultEngine()

	res, err := e.ValidateCompleteForm(validation.FormData{"anything": ""}, validation.Module("trip"))
	require.NoError(t, err)
	assert.True(t, res.IsValid)

	cv := validation.CustomValidation{
		Field: "trip_no",
		Rule: validation.CustomRuleFunc(func(v any, _ validation.FormData) validation.Result {
			if validation.IsEmpty(v) {
				return validation.Result{Error: "Trip No is required"}
			}
			return validation.Result{IsValid: true}
		}),
	}
	res, err = e.ValidateCompleteForm(validation.FormData{}, validation.Module("trip"), cv)
	require.NoError(t, err)
	require.Len(t, res.ErrorList, 1)
	assert.Equal(t, "Trip No", res.ErrorList[0].DisplayName)
	assert.Equal(t, validation.UnorderedPriority, res.ErrorList[0].Priority)
}

func TestValidateCompleteForm_VehicleSnakeCase(t *testing.T) {
	e := validation.NewDefaultEngine()
	data := validation.FormData{
		"vehicle_code":   "VEH00001",
		"vehicle_number": "mh12ab1234",
		"vehicle_type":   "Truck",
		"engine_number":  "K12MN1234567",
		"chassis_number": "MA3FJEB1S00123456",
	}

	res, err := e.ValidateCompleteForm(data, validation.ModuleVehicle)
	require.NoError(t, err)
	require.Len(t, res.ErrorList, 1)
	assert.Equal(t, "vehicle_number", res.ErrorList[0].Field)
}

func TestValidateCompleteForm_FileRefSatisfiesRequired(t *testing.T) {
	spec := &validation.ModuleSpec{
		Module:         "doc",
		RequiredFields: []string{"LicenceDocument"},
	}
	e, err := validation.NewEngine(validation.DefaultCatalog(), map[validation.Module]*validation.ModuleSpec{"doc": spec})
	require.NoError(t, err)

	res, err := e.ValidateCompleteForm(validation.FormData{"LicenceDocument": &validation.FileRef{}}, "doc")
	require.NoError(t, err)
	assert.Equal(t, "Licence Document is required", res.Errors["LicenceDocument"])

	res, err = e.ValidateCompleteForm(validation.FormData{
		"LicenceDocument": &validation.FileRef{AttachmentID: "a1", FileName: "dl.pdf"},
	}, "doc")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestNewEngine_RejectsUnknownRuleMapping(t *testing.T) {
	spec := &validation.ModuleSpec{
		Module:     "bad",
		FieldRules: []validation.FieldRule{{Field: "passport", Rule: "PASSPORT"}},
	}
	_, err := validation.NewEngine(validation.DefaultCatalog(), map[validation.Module]*validation.ModuleSpec{"bad": spec})
	assert.ErrorIs(t, err, validation.ErrUnknownRule)
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty_string", "", true},
		{"whitespace", "  \t", true},
		{"text", "x", false},
		{"false", false, true},
		{"true", true, false},
		{"nil_fileref", (*validation.FileRef)(nil), true},
		{"blank_fileref", &validation.FileRef{}, true},
		{"fileref", &validation.FileRef{FileName: "a.pdf"}, false},
		{"empty_map", map[string]any{}, true},
		{"zero_number", float64(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsEmpty(tt.value))
		})
	}
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "9876543210", validation.StringValue(float64(9876543210)))
	assert.Equal(t, "42", validation.StringValue(42))
	assert.Equal(t, "", validation.StringValue(nil))
	assert.Equal(t, "", validation.StringValue(false))
	assert.Equal(t, "a.pdf", validation.StringValue(&validation.FileRef{FileName: "a.pdf"}))
}
