package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	validateJSON = false
	abbrevLength = 3

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const validVendor = `
vendor_name: Shree Ganesh Transport
vendor_mobile_no: "9876543210"
vendor_address: Plot 4, MIDC Bhosari
vendor_pan_no: abcde1234f
ifsc_code: HDFC0001234
`

func TestValidate_ValidYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validVendor), 0o600))

	out, err := run(t, "", "validate", "vendor", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: no validation errors")
}

func TestValidate_InvalidFromStdin(t *testing.T) {
	out, err := run(t, `{"vendor_name": "X", "vendor_pan_no": "12345"}`, "validate", "vendor", "-")
	assert.ErrorIs(t, err, errFormInvalid)
	assert.Contains(t, out, "Required Fields Missing")
	assert.Contains(t, out, "Mobile Number (vendor_mobile_no)")
	assert.Contains(t, out, "Format Errors")
	assert.Contains(t, out, "PAN Number (vendor_pan_no)")
}

func TestValidate_JSONOutput(t *testing.T) {
	out, err := run(t, validVendor, "validate", "--json", "vendor", "-")
	require.NoError(t, err)

	var v struct {
		Result struct {
			IsValid bool `json:"is_valid"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.Result.IsValid)
}

func TestValidate_UnknownModule(t *testing.T) {
	_, err := run(t, "{}", "validate", "trip", "-")
	assert.Error(t, err)
}

func TestAbbrev(t *testing.T) {
	out, err := run(t, "", "abbrev", "The", "Quick", "Brown", "Fox")
	require.NoError(t, err)
	assert.Equal(t, "QBF\n", out)

	out, err = run(t, "", "abbrev", "-n", "4", "Tata Motors Finance Solutions")
	require.NoError(t, err)
	assert.Equal(t, "TMFS\n", out)
}
