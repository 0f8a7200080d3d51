package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reflection-remapper/hierarchy"
	"reflection-remapper/hierarchy/javasrc"
	"reflection-remapper/internal/config"
	"reflection-remapper/mapping"
	"reflection-remapper/mapping/tiny"
	"reflection-remapper/remapper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reflection-remapper",
	Short: "Remap class, field and method names between mapping namespaces",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihander.Default)

	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/reflection-remapper/config.yaml)")
	pf.StringP("mappings", "m", "", "mapping file (YAML or Tiny v2)")
	pf.String("format", "", "mapping file format: yaml or tiny (default from file extension)")
	pf.String("from", mapping.NamespaceMojangPlusYarn, "source namespace")
	pf.String("to", mapping.NamespaceSpigot, "target namespace")
	pf.Bool("permissive", false, "resolve classes missing from the mappings to themselves")
	pf.Int("cache-size", 0, "maximum number of cached results (0 = unbounded)")
	pf.StringSlice("sources", nil, "Java source roots to read the class hierarchy from")
	pf.String("hierarchy-side", "source", "namespace the hierarchy speaks: source or target")
	pf.BoolP("verbose", "V", false, "verbose output")

	for _, name := range []string{"mappings", "format", "from", "to", "permissive", "cache-size", "sources", "hierarchy-side", "verbose"} {
		viper.BindPFlag(name, pf.Lookup(name))
	}

	config.SetDefaults(viper.GetViper())

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "reflection-remapper"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("reflection_remapper")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// loadTable reads the configured mapping file. The YAML file is returned
// as well when the format is yaml.
func loadTable(conf *config.Config) (*mapping.Table, *mapping.File, error) {
	if conf.Format == config.FormatTiny {
		t, err := tiny.ReadFile(conf.Mappings)
		return t, nil, err
	}

	f, err := mapping.LoadFile(conf.Mappings)
	if err != nil {
		return nil, nil, err
	}

	t, err := f.Table()
	if err != nil {
		return nil, nil, err
	}

	return t, f, nil
}

// loadResolver builds a Resolver from the configuration, wiring the
// superclass edges of the YAML file and the scanned Java sources as its
// hierarchy.
func loadResolver(ctx context.Context) (*remapper.Resolver, error) {
	conf, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	table, file, err := loadTable(conf)
	if err != nil {
		return nil, err
	}

	opts := []remapper.Option{
		remapper.WithMode(conf.Mode()),
		remapper.WithCacheSize(conf.CacheSize),
	}

	var chain hierarchy.Chain

	if file != nil {
		ns := conf.From
		if conf.Side() == remapper.SideTarget {
			ns = conf.To
		}

		if table.HasNamespace(ns) {
			edges, err := file.Hierarchy(table, ns)
			if err != nil {
				return nil, err
			}

			if edges.Len() > 0 {
				chain = append(chain, edges)
			}
		}
	}

	if len(conf.Sources) > 0 {
		if conf.Side() != remapper.SideSource {
			return nil, fmt.Errorf("--sources requires --hierarchy-side source")
		}

		scanned, err := javasrc.Scan(ctx, conf.Sources...)
		if err != nil {
			return nil, fmt.Errorf("failed to scan java sources: %w", err)
		}

		log.WithField("classes", scanned.Len()).Debug("Loaded class hierarchy from sources")

		chain = append(chain, scanned)
	}

	if len(chain) > 0 {
		opts = append(opts, remapper.WithHierarchy(chain, conf.Side()))
	}

	return remapper.New(table, conf.From, conf.To, opts...)
}
