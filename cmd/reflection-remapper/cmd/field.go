package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fieldCmd)
}

// fieldCmd represents the field command
var fieldCmd = &cobra.Command{
	Use:   "field <OWNER> <NAME>",
	Short: "Remap a field name, printing the declaring class and the field",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadResolver(cmd.Context())
		if err != nil {
			return err
		}

		f, err := r.RemapFieldName(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s#%s\n", f.Owner, f.Name)

		return nil
	},
}
