package validation

import (
	"regexp"
	"sort"
)

// RuleName is the catalog key of a validation rule.
type RuleName string

const (
	RuleAadhaar           RuleName = "AADHAAR"
	RulePAN               RuleName = "PAN"
	RuleGST               RuleName = "GST"
	RuleMobile            RuleName = "MOBILE"
	RuleEmail             RuleName = "EMAIL"
	RuleAccountNumber     RuleName = "ACCOUNT_NUMBER"
	RuleIFSC              RuleName = "IFSC_CODE"
	RuleBankName          RuleName = "BANK_NAME"
	RuleBranchName        RuleName = "BRANCH_NAME"
	RuleAccountHolderName RuleName = "ACCOUNT_HOLDER_NAME"
	RuleVehicleNumber     RuleName = "VEHICLE_NUMBER"
	RuleChassisNumber     RuleName = "CHASSIS_NUMBER"
	RuleEngineNumber      RuleName = "ENGINE_NUMBER"
	RuleVehicleCode       RuleName = "VEHICLE_CODE"
	RuleDateDDMMYYYY      RuleName = "DATE_DDMMYYYY"
	RulePincode           RuleName = "PINCODE"
)

// RuleType classifies the character set a rule accepts. It is informational;
// the pattern is the only thing enforced.
type RuleType string

const (
	RuleTypeNumeric      RuleType = "numeric"
	RuleTypeAlphanumeric RuleType = "alphanumeric"
	RuleTypeAlphabetic   RuleType = "alphabetic"
	RuleTypeEmail        RuleType = "email"
	RuleTypeDate         RuleType = "date"
)

// ErrorMessages holds the canned messages of a rule.
type ErrorMessages struct {
	Required string `json:"required"`
	Invalid  string `json:"invalid"`
	Format   string `json:"format"`
}

// Rule is a statically defined field validation rule.
type Rule struct {
	Key       RuleName       `json:"key"`
	Name      string         `json:"name"`
	Pattern   *regexp.Regexp `json:"-"`
	Length    int            `json:"length,omitempty"`
	MinLength int            `json:"min_length,omitempty"`
	MaxLength int            `json:"max_length,omitempty"`
	Type      RuleType       `json:"type"`
	Format    string         `json:"format"`
	Messages  ErrorMessages  `json:"error_messages"`
	// Uppercase normalizes input before matching so lowercase entry is accepted.
	Uppercase bool `json:"uppercase"`
}

// PatternString returns the source of the rule's pattern.
func (r Rule) PatternString() string {
	if r.Pattern == nil {
		return ""
	}
	return r.Pattern.String()
}

// Catalog is an immutable lookup table of rules keyed by name.
type Catalog struct {
	rules map[RuleName]Rule
}

// NewCatalog builds a catalog from the given rules. Later duplicates win.
func NewCatalog(rules ...Rule) *Catalog {
	c := &Catalog{rules: make(map[RuleName]Rule, len(rules))}
	for _, r := range rules {
		c.rules[r.Key] = r
	}
	return c
}

// GetRule looks a rule up by its exact key.
func (c *Catalog) GetRule(name RuleName) (Rule, bool) {
	r, ok := c.rules[name]
	return r, ok
}

// Rules returns every rule sorted by key.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// DefaultCatalog returns the built-in rule set.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinRules()...)
}

func builtinRules() []Rule {
	return []Rule{
		{
			Key: RuleAadhaar, Name: "Aadhaar Number",
			Pattern: regexp.MustCompile(`^\d{12}$`), Length: 12,
			Type: RuleTypeNumeric, Format: "123456789012",
			Messages: ErrorMessages{
				Required: "Aadhaar Number is required",
				Invalid:  "Aadhaar Number must be exactly 12 digits",
				Format:   "Aadhaar Number should contain 12 digits (e.g., 123456789012)",
			},
		},
		{
			Key: RulePAN, Name: "PAN Number",
			Pattern: regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`), Length: 10,
			Type: RuleTypeAlphanumeric, Format: "ABCDE1234F", Uppercase: true,
			Messages: ErrorMessages{
				Required: "PAN Number is required",
				Invalid:  "Invalid PAN Number format",
				Format:   "PAN should be 5 letters, 4 digits and 1 letter (e.g., ABCDE1234F)",
			},
		},
		{
			Key: RuleGST, Name: "GST Number",
			Pattern: regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`), Length: 15,
			Type: RuleTypeAlphanumeric, Format: "22ABCDE1234F1Z5", Uppercase: true,
			Messages: ErrorMessages{
				Required: "GST Number is required",
				Invalid:  "Invalid GST Number format",
				Format:   "GST should be 2 digits, 10-character PAN, 1 entity code, Z and 1 check character (e.g., 22ABCDE1234F1Z5)",
			},
		},
		{
			Key: RuleMobile, Name: "Mobile Number",
			Pattern: regexp.MustCompile(`^[6-9]\d{9}$`), Length: 10,
			Type: RuleTypeNumeric, Format: "9876543210",
			Messages: ErrorMessages{
				Required: "Mobile Number is required",
				Invalid:  "Mobile Number must be 10 digits starting with 6, 7, 8 or 9",
				Format:   "Mobile Number should be 10 digits (e.g., 9876543210)",
			},
		},
		{
			Key: RuleEmail, Name: "Email Address",
			Pattern: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
			Type:    RuleTypeEmail, Format: "name@example.com",
			Messages: ErrorMessages{
				Required: "Email Address is required",
				Invalid:  "Please enter a valid Email Address",
				Format:   "Email should look like name@example.com",
			},
		},
		{
			Key: RuleAccountNumber, Name: "Account Number",
			Pattern: regexp.MustCompile(`^\d{9,18}$`), MinLength: 9, MaxLength: 18,
			Type: RuleTypeNumeric, Format: "123456789012",
			Messages: ErrorMessages{
				Required: "Account Number is required",
				Invalid:  "Account Number must contain only digits (9-18)",
				Format:   "Account Number should be 9 to 18 digits",
			},
		},
		{
			Key: RuleIFSC, Name: "IFSC Code",
			Pattern: regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`), Length: 11,
			Type: RuleTypeAlphanumeric, Format: "SBIN0001234", Uppercase: true,
			Messages: ErrorMessages{
				Required: "IFSC Code is required",
				Invalid:  "Invalid IFSC Code format",
				Format:   "IFSC should be 4 letters, 0 and 6 letters or digits (e.g., SBIN0001234)",
			},
		},
		{
			Key: RuleBankName, Name: "Bank Name",
			Pattern: regexp.MustCompile(`^[A-Za-z\s&.,'()-]+$`), MinLength: 2, MaxLength: 100,
			Type: RuleTypeAlphabetic, Format: "State Bank of India",
			Messages: ErrorMessages{
				Required: "Bank Name is required",
				Invalid:  "Bank Name can contain only letters, spaces and & . , ' ( ) -",
				Format:   "Bank Name should be 2 to 100 letters",
			},
		},
		{
			Key: RuleBranchName, Name: "Branch Name",
			Pattern: regexp.MustCompile(`^[A-Za-z\s&.,'()/-]+$`), MinLength: 2, MaxLength: 100,
			Type: RuleTypeAlphabetic, Format: "Andheri West",
			Messages: ErrorMessages{
				Required: "Branch Name is required",
				Invalid:  "Branch Name can contain only letters, spaces and & . , ' ( ) / -",
				Format:   "Branch Name should be 2 to 100 letters",
			},
		},
		{
			Key: RuleAccountHolderName, Name: "Account Holder Name",
			Pattern: regexp.MustCompile(`^[A-Za-z\s.']+$`), MinLength: 2, MaxLength: 100,
			Type: RuleTypeAlphabetic, Format: "Ramesh Kumar",
			Messages: ErrorMessages{
				Required: "Account Holder Name is required",
				Invalid:  "Account Holder Name can contain only letters, spaces, dots and apostrophes",
				Format:   "Account Holder Name should be 2 to 100 letters",
			},
		},
		{
			Key: RuleVehicleNumber, Name: "Vehicle Number",
			Pattern: regexp.MustCompile(`^[A-Z]{2}[0-9]{1,2}[A-Z]{1,2}[0-9]{4}$`),
			Type:    RuleTypeAlphanumeric, Format: "MH12AB1234",
			Messages: ErrorMessages{
				Required: "Vehicle Number is required",
				Invalid:  "Invalid Vehicle Number format",
				Format:   "Vehicle Number should be state code, district number, series and 4 digits (e.g., MH12AB1234)",
			},
		},
		{
			Key: RuleChassisNumber, Name: "Chassis Number",
			Pattern: regexp.MustCompile(`^[A-Za-z0-9]{17}$`), Length: 17,
			Type: RuleTypeAlphanumeric, Format: "MA3FJEB1S00123456",
			Messages: ErrorMessages{
				Required: "Chassis Number is required",
				Invalid:  "Chassis Number must be exactly 17 letters or digits",
				Format:   "Chassis Number should be 17 characters (e.g., MA3FJEB1S00123456)",
			},
		},
		{
			Key: RuleEngineNumber, Name: "Engine Number",
			Pattern: regexp.MustCompile(`^[A-Za-z0-9]{6,20}$`), MinLength: 6, MaxLength: 20,
			Type: RuleTypeAlphanumeric, Format: "K12MN1234567",
			Messages: ErrorMessages{
				Required: "Engine Number is required",
				Invalid:  "Engine Number can contain only letters and digits",
				Format:   "Engine Number should be 6 to 20 letters or digits",
			},
		},
		{
			Key: RuleVehicleCode, Name: "Vehicle Code",
			Pattern: regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`), MinLength: 8, MaxLength: 20,
			Type: RuleTypeAlphanumeric, Format: "VEH00001",
			Messages: ErrorMessages{
				Required: "Vehicle Code is required",
				Invalid:  "Vehicle Code can contain only letters and digits",
				Format:   "Vehicle Code should be 8 to 20 letters or digits",
			},
		},
		{
			Key: RuleDateDDMMYYYY, Name: "Date",
			Pattern: regexp.MustCompile(`^\d{8}$`), Length: 8,
			Type: RuleTypeDate, Format: "31122024",
			Messages: ErrorMessages{
				Required: "Date is required",
				Invalid:  "Date must be 8 digits in DDMMYYYY format",
				Format:   "Date should be DDMMYYYY (e.g., 31122024)",
			},
		},
		{
			Key: RulePincode, Name: "PIN Code",
			Pattern: regexp.MustCompile(`^[1-9][0-9]{5}$`), Length: 6,
			Type: RuleTypeNumeric, Format: "400001",
			Messages: ErrorMessages{
				Required: "PIN Code is required",
				Invalid:  "PIN Code must be 6 digits and cannot start with 0",
				Format:   "PIN Code should be 6 digits (e.g., 400001)",
			},
		},
	}
}
