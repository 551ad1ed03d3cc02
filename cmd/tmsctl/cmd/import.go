package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tms/internal/validation"
)

var (
	importDryRun bool
	importAs     string
)

var importCmd = &cobra.Command{
	Use:   "import <module> <workbook.xlsx>",
	Short: "Bulk-load records from an Excel workbook",
	Long: `Import reads the first sheet of the workbook, matching header cells to
field keys or display names, and creates every row that validates. Rows
that fail are listed with their errors. With --dry-run nothing is saved.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := validation.ParseModule(args[0])
		if err != nil {
			return err
		}
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("opening workbook: %w", err)
		}
		defer f.Close()

		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		user, err := b.userRepo.GetByEmail(cmd.Context(), importAs)
		if err != nil {
			return fmt.Errorf("resolving --as %q: %w", importAs, err)
		}

		report, err := b.forms.Import(cmd.Context(), module, f, user.ID, importDryRun)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate rows without saving")
	importCmd.Flags().StringVar(&importAs, "as", "", "email of the user recorded as creator")
	_ = importCmd.MarkFlagRequired("as")
	rootCmd.AddCommand(importCmd)
}
