package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reflection-remapper/internal/config"
	"reflection-remapper/internal/diagnostic"
	"reflection-remapper/mapping"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the mapping file and print its diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		if conf.Format == config.FormatTiny {
			table, _, err := loadTable(conf)
			if err != nil {
				return err
			}

			log.WithField("classes", table.Len()).Info("Mappings are valid")

			return nil
		}

		f, err := mapping.LoadFile(conf.Mappings)
		if err != nil {
			return err
		}

		diags := mapping.Validate(f)
		for _, d := range diags.All() {
			ctx := log.WithField("code", d.Code)
			if d.Class != "" {
				ctx = ctx.WithField("class", d.Class)
			}
			if d.Member != "" {
				ctx = ctx.WithField("member", d.Member)
			}
			if d.Namespace != "" {
				ctx = ctx.WithField("namespace", d.Namespace)
			}

			switch d.Severity {
			case diagnostic.DiagnosticError:
				ctx.Error(d.Message)
			case diagnostic.DiagnosticWarning:
				ctx.Warn(d.Message)
			default:
				ctx.Info(d.Message)
			}
		}

		if diags.HasErrors() {
			return fmt.Errorf("%d error(s) in %s", len(diags.Errors), conf.Mappings)
		}

		log.WithFields(log.Fields{
			"classes":  len(f.Classes),
			"warnings": len(diags.Warnings),
		}).Info("Mappings are valid")

		return nil
	},
}
