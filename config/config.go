// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// SearchConfig is settings for the landscape search.
type SearchConfig struct {
	// the maximum native energy for a sequence to count as folding
	Threshold float64 `mapstructure:"threshold"`

	// the number of random draws before the search gives up
	MaxIter int `mapstructure:"max-iter"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line.
type Config struct {
	// temperature for folding stability (ratio to kT)
	Temperature float64 `mapstructure:"temperature"`

	// which derived quantity maps report as the phenotype
	PhenotypeType string `mapstructure:"phenotype-type"`

	// number of concurrent scoring workers (0 means one per CPU)
	Workers int `mapstructure:"workers"`

	// path to a sqlite file caching fold results ("" disables the cache)
	CachePath string `mapstructure:"cache"`

	// landscape search settings
	Search SearchConfig `mapstructure:"search"`
}

// New returns a new Config struct populated by Viper settings (either from
// the local settings.yaml) and/or command line arguments.
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

// SetDefaults registers the fallback values read when neither settings.yaml
// nor the command line sets a key.
func SetDefaults() {
	viper.SetDefault("temperature", 1.0)
	viper.SetDefault("phenotype-type", "stabilities")
	viper.SetDefault("workers", 0)
	viper.SetDefault("search.threshold", 0.0)
	viper.SetDefault("search.max-iter", 1000)
}
