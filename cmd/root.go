// Package cmd is for command line interactions with the latticegpm application
package cmd

import (
	"log"
	"os"

	"github.com/alycialee/latticegpm/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "latticegpm",
	Short: `Build genotype-phenotype maps from 2D protein lattice models.
Enumerate the binary sequence space between two fully divergent sequences
and report folding phenotypes for every genotype`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	config.SetDefaults()

	viper.SetConfigName("settings")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			stderr.Fatalf("failed to read settings: %v", err)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
