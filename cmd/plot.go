package cmd

import (
	"github.com/alycialee/latticegpm/config"
	"github.com/alycialee/latticegpm/internal/lattice"
	"github.com/spf13/cobra"
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot a histogram of a computed map's phenotypes",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		bins, _ := cmd.Flags().GetInt("bins")

		m, err := lattice.ReadJSON(in, lattice.Engine{Workers: c.Workers})
		if err != nil {
			stderr.Fatalln(err)
		}

		if err := lattice.PlotHistogram(m, bins, out); err != nil {
			stderr.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringP("in", "i", "", "path to a computed map (JSON)")
	plotCmd.Flags().StringP("out", "o", "phenotypes.png", "path for the histogram image (.png, .svg, .pdf)")
	plotCmd.Flags().IntP("bins", "b", 16, "number of histogram bins")

	plotCmd.MarkFlagRequired("in")
}
