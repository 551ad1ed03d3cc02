package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// Module identifies a master-data form.
type Module string

const (
	ModuleVendor   Module = "vendor"
	ModuleCustomer Module = "customer"
	ModuleDriver   Module = "driver"
	ModuleEmployee Module = "employee"
	ModuleVehicle  Module = "vehicle"
)

// Modules lists every known module in a stable order.
var Modules = []Module{ModuleVendor, ModuleCustomer, ModuleDriver, ModuleEmployee, ModuleVehicle}

// ParseModule converts a string into a known Module.
func ParseModule(s string) (Module, error) {
	m := Module(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modules {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModule, s)
}

// FieldRule binds a form field to a catalog rule.
type FieldRule struct {
	Field string   `json:"field"`
	Rule  RuleName `json:"rule"`
}

// ModuleSpec is the static validation table of one module.
type ModuleSpec struct {
	Module         Module             `json:"module"`
	RequiredFields []string           `json:"required_fields"`
	FieldRules     []FieldRule        `json:"field_rules"`
	PriorityOrder  []string           `json:"priority_order"`
	DisplayNames   map[string]string  `json:"display_names"`
	CustomRules    []CustomValidation `json:"-"`
	// DisplayField names the field shown as a record's title.
	DisplayField string `json:"display_field"`
	// CodeField names the field holding a generated unique code, if any.
	CodeField string `json:"code_field,omitempty"`
}

// IsRequired reports whether field is in the required list.
func (s *ModuleSpec) IsRequired(field string) bool {
	if s == nil {
		return false
	}
	for _, f := range s.RequiredFields {
		if f == field {
			return true
		}
	}
	return false
}

// RuleFor returns the rule mapped to field.
func (s *ModuleSpec) RuleFor(field string) (RuleName, bool) {
	if s == nil {
		return "", false
	}
	for _, fr := range s.FieldRules {
		if fr.Field == field {
			return fr.Rule, true
		}
	}
	return "", false
}

// Priority returns the position of field in the priority order, or
// UnorderedPriority if it is absent.
func (s *ModuleSpec) Priority(field string) int {
	if s != nil {
		for i, f := range s.PriorityOrder {
			if f == field {
				return i
			}
		}
	}
	return UnorderedPriority
}

// DisplayName returns the label of field.
func (s *ModuleSpec) DisplayName(field string) string {
	if s != nil {
		if name, ok := s.DisplayNames[field]; ok {
			return name
		}
	}
	return Humanize(field)
}

// Fields returns every field the module knows about, in priority order,
// followed by required or mapped fields missing from that order.
func (s *ModuleSpec) Fields() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, f := range s.PriorityOrder {
		add(f)
	}
	for _, f := range s.RequiredFields {
		add(f)
	}
	for _, fr := range s.FieldRules {
		add(fr.Field)
	}
	return out
}

// UnorderedPriority sorts fields missing from a priority order last.
const UnorderedPriority = 999

// Humanize turns vendor_mobile_no or DriverMobileNo into a title-cased label.
func Humanize(field string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(field)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && len(cur) > 0:
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

// DefaultModules returns the built-in module tables.
func DefaultModules() map[Module]*ModuleSpec {
	return map[Module]*ModuleSpec{
		ModuleVendor:   vendorSpec(),
		ModuleCustomer: customerSpec(),
		ModuleDriver:   driverSpec(),
		ModuleEmployee: employeeSpec(),
		ModuleVehicle:  vehicleSpec(),
	}
}

func vendorSpec() *ModuleSpec {
	return &ModuleSpec{
		Module:       ModuleVendor,
		DisplayField: "vendor_name",
		RequiredFields: []string{
			"vendor_name", "vendor_mobile_no", "vendor_address", "vendor_pan_no",
		},
		FieldRules: []FieldRule{
			{Field: "vendor_mobile_no", Rule: RuleMobile},
			{Field: "vendor_alternate_no", Rule: RuleMobile},
			{Field: "vendor_email", Rule: RuleEmail},
			{Field: "vendor_pincode", Rule: RulePincode},
			{Field: "vendor_aadhaar_no", Rule: RuleAadhaar},
			{Field: "vendor_pan_no", Rule: RulePAN},
			{Field: "vendor_gst_no", Rule: RuleGST},
			{Field: "bank_name", Rule: RuleBankName},
			{Field: "branch_name", Rule: RuleBranchName},
			{Field: "account_holder_name", Rule: RuleAccountHolderName},
			{Field: "account_number", Rule: RuleAccountNumber},
			{Field: "ifsc_code", Rule: RuleIFSC},
		},
		PriorityOrder: []string{
			"vendor_name", "vendor_mobile_no", "vendor_alternate_no", "vendor_email",
			"vendor_address", "vendor_pincode", "vendor_city", "vendor_state",
			"vendor_aadhaar_no", "vendor_pan_no", "vendor_gst_no",
			"bank_name", "branch_name", "account_holder_name", "account_number", "ifsc_code",
		},
		DisplayNames: map[string]string{
			"vendor_name":         "Vendor Name",
			"vendor_mobile_no":    "Mobile Number",
			"vendor_alternate_no": "Alternate Number",
			"vendor_email":        "Email",
			"vendor_address":      "Address",
			"vendor_pincode":      "PIN Code",
			"vendor_city":         "City",
			"vendor_state":        "State",
			"vendor_aadhaar_no":   "Aadhaar Number",
			"vendor_pan_no":       "PAN Number",
			"vendor_gst_no":       "GST Number",
			"bank_name":           "Bank Name",
			"branch_name":         "Branch Name",
			"account_holder_name": "Account Holder Name",
			"account_number":      "Account Number",
			"ifsc_code":           "IFSC Code",
		},
	}
}

func customerSpec() *ModuleSpec {
	return &ModuleSpec{
		Module:       ModuleCustomer,
		DisplayField: "CustomerName",
		CodeField:    "CustomerCode",
		RequiredFields: []string{
			"CustomerName", "CustomerMobileNo", "CustomerAddress",
		},
		FieldRules: []FieldRule{
			{Field: "CustomerMobileNo", Rule: RuleMobile},
			{Field: "CustomerAlternateNo", Rule: RuleMobile},
			{Field: "CustomerEmail", Rule: RuleEmail},
			{Field: "CustomerPinCode", Rule: RulePincode},
			{Field: "CustomerPAN", Rule: RulePAN},
			{Field: "CustomerGST", Rule: RuleGST},
			{Field: "BankName", Rule: RuleBankName},
			{Field: "BranchName", Rule: RuleBranchName},
			{Field: "AccountHolderName", Rule: RuleAccountHolderName},
			{Field: "AccountNumber", Rule: RuleAccountNumber},
			{Field: "IFSCCode", Rule: RuleIFSC},
		},
		PriorityOrder: []string{
			"CustomerName", "CustomerCode", "CustomerMobileNo", "CustomerAlternateNo", "CustomerEmail",
			"CustomerAddress", "CustomerPinCode", "CustomerCity", "CustomerState",
			"CustomerPAN", "CustomerGST",
			"AgreementDate", "AgreementExpiryDate", "BGDate", "BGExpiryDate", "PODate", "POExpiryDate",
			"BankName", "BranchName", "AccountHolderName", "AccountNumber", "IFSCCode",
		},
		DisplayNames: map[string]string{
			"CustomerName":        "Customer Name",
			"CustomerCode":        "Customer Code",
			"CustomerMobileNo":    "Mobile Number",
			"CustomerAlternateNo": "Alternate Number",
			"CustomerEmail":       "Email",
			"CustomerAddress":     "Address",
			"CustomerPinCode":     "PIN Code",
			"CustomerCity":        "City",
			"CustomerState":       "State",
			"CustomerPAN":         "PAN Number",
			"CustomerGST":         "GST Number",
			"AgreementDate":       "Agreement Date",
			"AgreementExpiryDate": "Agreement Expiry Date",
			"BGDate":              "Bank Guarantee Date",
			"BGExpiryDate":        "Bank Guarantee Expiry Date",
			"PODate":              "PO Date",
			"POExpiryDate":        "PO Expiry Date",
			"BankName":            "Bank Name",
			"BranchName":          "Branch Name",
			"AccountHolderName":   "Account Holder Name",
			"AccountNumber":       "Account Number",
			"IFSCCode":            "IFSC Code",
		},
		CustomRules: []CustomValidation{
			DateSequence("AgreementDate", "AgreementExpiryDate", "Agreement Date", "Agreement Expiry Date"),
			DateSequence("BGDate", "BGExpiryDate", "Bank Guarantee Date", "Bank Guarantee Expiry Date"),
			DateSequence("PODate", "POExpiryDate", "PO Date", "PO Expiry Date"),
		},
	}
}

func driverSpec() *ModuleSpec {
	return &ModuleSpec{
		Module:       ModuleDriver,
		DisplayField: "DriverName",
		RequiredFields: []string{
			"DriverName", "DriverMobileNo", "DriverAadhaarNo",
			"LicenceNo", "LicenceIssueDate", "LicenceExpiryDate",
		},
		FieldRules: []FieldRule{
			{Field: "DriverMobileNo", Rule: RuleMobile},
			{Field: "DriverAlternateNo", Rule: RuleMobile},
			{Field: "DriverEmail", Rule: RuleEmail},
			{Field: "DriverPinCode", Rule: RulePincode},
			{Field: "DriverAadhaarNo", Rule: RuleAadhaar},
			{Field: "DriverPANNo", Rule: RulePAN},
			{Field: "BankName", Rule: RuleBankName},
			{Field: "BranchName", Rule: RuleBranchName},
			{Field: "AccountHolderName", Rule: RuleAccountHolderName},
			{Field: "AccountNumber", Rule: RuleAccountNumber},
			{Field: "IFSCCode", Rule: RuleIFSC},
		},
		PriorityOrder: []string{
			"DriverName", "DriverMobileNo", "DriverAlternateNo", "DriverEmail",
			"DriverAddress", "DriverPinCode", "DriverCity", "DriverState",
			"DriverAadhaarNo", "DriverPANNo",
			"LicenceNo", "LicenceIssueDate", "LicenceExpiryDate", "LicenceDocument",
			"BankName", "BranchName", "AccountHolderName", "AccountNumber", "IFSCCode",
		},
		DisplayNames: map[string]string{
			"DriverName":        "Driver Name",
			"DriverMobileNo":    "Mobile Number",
			"DriverAlternateNo": "Alternate Number",
			"DriverEmail":       "Email",
			"DriverAddress":     "Address",
			"DriverPinCode":     "PIN Code",
			"DriverCity":        "City",
			"DriverState":       "State",
			"DriverAadhaarNo":   "Aadhaar Number",
			"DriverPANNo":       "PAN Number",
			"LicenceNo":         "Licence Number",
			"LicenceIssueDate":  "Licence Issue Date",
			"LicenceExpiryDate": "Licence Expiry Date",
			"LicenceDocument":   "Licence Document",
			"BankName":          "Bank Name",
			"BranchName":        "Branch Name",
			"AccountHolderName": "Account Holder Name",
			"AccountNumber":     "Account Number",
			"IFSCCode":          "IFSC Code",
		},
		CustomRules: []CustomValidation{
			DateSequence("LicenceIssueDate", "LicenceExpiryDate", "Licence Issue Date", "Licence Expiry Date"),
		},
	}
}

func employeeSpec() *ModuleSpec {
	return &ModuleSpec{
		Module:       ModuleEmployee,
		DisplayField: "EmployeeName",
		RequiredFields: []string{
			"EmployeeName", "EmployeeMobileNo", "Designation", "DateOfJoining",
		},
		FieldRules: []FieldRule{
			{Field: "EmployeeMobileNo", Rule: RuleMobile},
			{Field: "EmployeeAlternateNo", Rule: RuleMobile},
			{Field: "EmployeeEmail", Rule: RuleEmail},
			{Field: "EmployeePinCode", Rule: RulePincode},
			{Field: "EmployeeAadhaarNo", Rule: RuleAadhaar},
			{Field: "EmployeePANNo", Rule: RulePAN},
			{Field: "BankName", Rule: RuleBankName},
			{Field: "BranchName", Rule: RuleBranchName},
			{Field: "AccountHolderName", Rule: RuleAccountHolderName},
			{Field: "AccountNumber", Rule: RuleAccountNumber},
			{Field: "IFSCCode", Rule: RuleIFSC},
		},
		PriorityOrder: []string{
			"EmployeeName", "EmployeeMobileNo", "EmployeeAlternateNo", "EmployeeEmail",
			"EmployeeAddress", "EmployeePinCode", "Designation", "DateOfBirth", "DateOfJoining",
			"EmployeeAadhaarNo", "EmployeePANNo",
			"BankName", "BranchName", "AccountHolderName", "AccountNumber", "IFSCCode",
		},
		DisplayNames: map[string]string{
			"EmployeeName":        "Employee Name",
			"EmployeeMobileNo":    "Mobile Number",
			"EmployeeAlternateNo": "Alternate Number",
			"EmployeeEmail":       "Email",
			"EmployeeAddress":     "Address",
			"EmployeePinCode":     "PIN Code",
			"Designation":         "Designation",
			"DateOfBirth":         "Date of Birth",
			"DateOfJoining":       "Date of Joining",
			"EmployeeAadhaarNo":   "Aadhaar Number",
			"EmployeePANNo":       "PAN Number",
			"BankName":            "Bank Name",
			"BranchName":          "Branch Name",
			"AccountHolderName":   "Account Holder Name",
			"AccountNumber":       "Account Number",
			"IFSCCode":            "IFSC Code",
		},
		CustomRules: []CustomValidation{
			DateSequence("DateOfBirth", "DateOfJoining", "Date of Birth", "Date of Joining"),
		},
	}
}

func vehicleSpec() *ModuleSpec {
	return &ModuleSpec{
		Module:       ModuleVehicle,
		DisplayField: "vehicle_number",
		CodeField:    "vehicle_code",
		RequiredFields: []string{
			"vehicle_code", "vehicle_number", "vehicle_type", "engine_number", "chassis_number",
		},
		FieldRules: []FieldRule{
			{Field: "vehicle_code", Rule: RuleVehicleCode},
			{Field: "vehicle_number", Rule: RuleVehicleNumber},
			{Field: "engine_number", Rule: RuleEngineNumber},
			{Field: "chassis_number", Rule: RuleChassisNumber},
			{Field: "owner_mobile_no", Rule: RuleMobile},
		},
		PriorityOrder: []string{
			"vehicle_code", "vehicle_number", "vehicle_type", "make", "model",
			"engine_number", "chassis_number", "owner_name", "owner_mobile_no",
			"registration_date", "insurance_date", "insurance_expiry_date",
		},
		DisplayNames: map[string]string{
			"vehicle_code":          "Vehicle Code",
			"vehicle_number":        "Vehicle Number",
			"vehicle_type":          "Vehicle Type",
			"make":                  "Make",
			"model":                 "Model",
			"engine_number":         "Engine Number",
			"chassis_number":        "Chassis Number",
			"owner_name":            "Owner Name",
			"owner_mobile_no":       "Owner Mobile Number",
			"registration_date":     "Registration Date",
			"insurance_date":        "Insurance Date",
			"insurance_expiry_date": "Insurance Expiry Date",
		},
		CustomRules: []CustomValidation{
			DateSequence("insurance_date", "insurance_expiry_date", "Insurance Date", "Insurance Expiry Date"),
		},
	}
}
