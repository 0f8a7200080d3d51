package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reflection-remapper/internal/config"
)

func init() {
	rootCmd.AddCommand(namespacesCmd)
}

// namespacesCmd represents the namespaces command
var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: "List the namespaces of the mapping file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		table, _, err := loadTable(conf)
		if err != nil {
			return err
		}

		for i, ns := range table.Namespaces() {
			if i == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (descriptors)\n", ns)
				continue
			}

			fmt.Fprintln(cmd.OutOrStdout(), ns)
		}

		return nil
	},
}
