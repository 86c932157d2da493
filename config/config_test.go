package config

import (
	"testing"

	"github.com/spf13/viper"
)

func Test_config(t *testing.T) {
	viper.Reset()
	SetDefaults()

	c := New()

	if c.Temperature != 1.0 {
		t.Errorf("default temperature = %f, want 1.0", c.Temperature)
	}
	if c.PhenotypeType != "stabilities" {
		t.Errorf("default phenotype type = %s, want stabilities", c.PhenotypeType)
	}
	if c.Search.MaxIter != 1000 {
		t.Errorf("default search max-iter = %d, want 1000", c.Search.MaxIter)
	}
}

func Test_config_overrides(t *testing.T) {
	viper.Reset()
	SetDefaults()

	viper.Set("temperature", 2.5)
	viper.Set("phenotype-type", "fracfolded")
	viper.Set("workers", 8)
	viper.Set("search.threshold", -5.0)

	c := New()

	if c.Temperature != 2.5 {
		t.Errorf("temperature = %f, want 2.5", c.Temperature)
	}
	if c.PhenotypeType != "fracfolded" {
		t.Errorf("phenotype type = %s, want fracfolded", c.PhenotypeType)
	}
	if c.Workers != 8 {
		t.Errorf("workers = %d, want 8", c.Workers)
	}
	if c.Search.Threshold != -5.0 {
		t.Errorf("search threshold = %f, want -5.0", c.Search.Threshold)
	}
}
