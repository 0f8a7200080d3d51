// Package config is used to load the command line configuration
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"reflection-remapper/mapping"
	"reflection-remapper/remapper"
)

// Mapping file formats.
const (
	FormatYAML = "yaml"
	FormatTiny = "tiny"
)

// Config is the configuration struct
type Config struct {
	Mappings      string   `mapstructure:"mappings"`
	Format        string   `mapstructure:"format"`
	From          string   `mapstructure:"from"`
	To            string   `mapstructure:"to"`
	Permissive    bool     `mapstructure:"permissive"`
	CacheSize     int      `mapstructure:"cache-size"`
	Sources       []string `mapstructure:"sources"`
	HierarchySide string   `mapstructure:"hierarchy-side"`

	side remapper.Side
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("from", mapping.NamespaceMojangPlusYarn)
	v.SetDefault("to", mapping.NamespaceSpigot)
	v.SetDefault("hierarchy-side", "source")
}

func (c *Config) verify() error {
	if c.Mappings == "" {
		return fmt.Errorf("config: mappings file must be set")
	}

	if c.Format == "" {
		c.Format = FormatYAML
		if strings.EqualFold(filepath.Ext(c.Mappings), ".tiny") {
			c.Format = FormatTiny
		}
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatYAML && c.Format != FormatTiny {
		return fmt.Errorf("config: unknown mappings format %q (want %s or %s)", c.Format, FormatYAML, FormatTiny)
	}

	if c.From == "" || c.To == "" {
		return fmt.Errorf("config: both from and to namespaces must be set")
	}

	if c.From == c.To {
		return fmt.Errorf("config: from and to namespaces are both %q", c.From)
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache-size must not be negative, got %d", c.CacheSize)
	}

	side, err := remapper.ParseSide(c.HierarchySide)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.side = side

	return nil
}

// Mode returns the class-name failure policy.
func (c *Config) Mode() remapper.Mode {
	if c.Permissive {
		return remapper.Permissive
	}

	return remapper.Strict
}

// Side returns the namespace the hierarchy sources speak.
func (c *Config) Side() remapper.Side {
	return c.side
}

// Load unmarshals and verifies the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	if err := c.verify(); err != nil {
		return nil, err
	}

	return &c, nil
}
