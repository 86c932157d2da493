package cmd

import (
	"os"

	"github.com/alycialee/latticegpm/config"
	"github.com/alycialee/latticegpm/internal/lattice"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the phenotype distribution of a computed map",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		in, _ := cmd.Flags().GetString("in")

		m, err := lattice.ReadJSON(in, lattice.Engine{Workers: c.Workers})
		if err != nil {
			stderr.Fatalln(err)
		}

		lattice.Summarize(m).Write(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringP("in", "i", "", "path to a computed map (JSON)")

	summaryCmd.MarkFlagRequired("in")
}
