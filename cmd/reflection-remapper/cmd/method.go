package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(methodCmd)
}

// methodCmd represents the method command
var methodCmd = &cobra.Command{
	Use:   "method <OWNER> <NAME> [PARAM_TYPE]...",
	Short: "Remap a method name, printing the declaring class, the method and its descriptor",
	Example: `  reflection-remapper method net.minecraft.world.level.Level getBlockState net.minecraft.core.BlockPos
  reflection-remapper method a.B copy 'int[]' '[La.C;'`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadResolver(cmd.Context())
		if err != nil {
			return err
		}

		m, err := r.RemapMethodName(args[0], args[1], args[2:]...)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s#%s %s\n", m.Owner, m.Name, m.Descriptor)

		return nil
	},
}
