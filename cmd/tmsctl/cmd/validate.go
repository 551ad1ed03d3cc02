package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tms/internal/config"
	"tms/internal/service"
	"tms/internal/validation"
)

var errFormInvalid = errors.New("form has validation errors")

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate <module> <file|->",
	Short: "Validate a form stored as YAML or JSON",
	Long: `Validate runs the same required, format and cross-field checks as the
API against a flat form document. JSON is accepted as YAML. Use - to read
standard input. The exit status is non-zero when the form is invalid.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := validation.ParseModule(args[0])
		if err != nil {
			return err
		}
		data, err := readForm(cmd, args[1])
		if err != nil {
			return err
		}

		// Validation never touches the record store.
		forms := service.NewFormService(validation.NewDefaultEngine(), nil, nil, config.CodesConfig{})
		v, err := forms.Validate(cmd.Context(), module, data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if validateJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(v); err != nil {
				return err
			}
		} else {
			printSummary(out, v)
		}
		if !v.Result.IsValid {
			return errFormInvalid
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "print the full result as JSON")
	rootCmd.AddCommand(validateCmd)
}

func readForm(cmd *cobra.Command, path string) (validation.FormData, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading form: %w", err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing form: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return validation.FormData(data), nil
}

func printSummary(w io.Writer, v *service.FormValidation) {
	if v.Result.IsValid {
		fmt.Fprintln(w, "OK: no validation errors")
		return
	}
	fmt.Fprintln(w, v.Summary.Title)
	fmt.Fprintln(w, v.Summary.Subtitle)
	for _, section := range v.Summary.Sections {
		fmt.Fprintf(w, "\n%s:\n", section.Title)
		for _, fe := range section.Errors {
			fmt.Fprintf(w, "  - %s (%s): %s\n", fe.DisplayName, fe.Field, fe.Error)
		}
	}
}
