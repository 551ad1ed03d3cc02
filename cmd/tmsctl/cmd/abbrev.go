package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tms/internal/customercode"
)

var abbrevLength int

var abbrevCmd = &cobra.Command{
	Use:   "abbrev <name>...",
	Short: "Print the customer code prefix for a name",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		fmt.Fprintln(cmd.OutOrStdout(), customercode.Abbreviate(name, abbrevLength))
	},
}

func init() {
	abbrevCmd.Flags().IntVarP(&abbrevLength, "length", "n", 3, "maximum prefix length")
	rootCmd.AddCommand(abbrevCmd)
}
