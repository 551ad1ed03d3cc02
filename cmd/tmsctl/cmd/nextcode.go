package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var nextCodeCmd = &cobra.Command{
	Use:   "next-code <customer name>...",
	Short: "Preview the code the next customer with this name would get",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend()
		if err != nil {
			return err
		}
		defer b.Close()

		code, err := b.forms.NextCustomerCode(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCodeCmd)
}
