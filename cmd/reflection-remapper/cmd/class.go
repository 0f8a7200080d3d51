package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classCmd)
}

// classCmd represents the class command
var classCmd = &cobra.Command{
	Use:   "class <NAME>...",
	Short: "Remap class names (arrays such as a.B[] or [La.B; included)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadResolver(cmd.Context())
		if err != nil {
			return err
		}

		for _, name := range args {
			target, err := r.RemapClassOrArrayName(name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), target)
		}

		return nil
	},
}
