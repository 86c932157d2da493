package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alycialee/latticegpm/config"
	"github.com/alycialee/latticegpm/internal/lattice"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// phenotypeCmd represents the phenotype command
var phenotypeCmd = &cobra.Command{
	Use:   "phenotype",
	Short: "List the phenotype of every genotype in a computed map",
	Long: `List the phenotype of every genotype in a computed map, in genotype order.
The phenotype is one of the derived quantities stored in or computable from
the map: nativeEs, stabilities, or fracfolded. Passing --type switches the
map's selector and, with --out, writes the updated map back out.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		phenotypeType, _ := cmd.Flags().GetString("type")

		m, err := lattice.ReadJSON(in, lattice.Engine{Workers: c.Workers})
		if err != nil {
			stderr.Fatalln(err)
		}

		if phenotypeType != "" {
			if err := m.SetPhenotypeType(phenotypeType); err != nil {
				stderr.Fatalln(err)
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
		fmt.Fprintf(w, "genotype\t%s\t\n", m.PhenotypeType())
		for i, p := range m.Phenotypes() {
			fmt.Fprintf(w, "%s\t%f\n", m.Genotypes()[i], p)
		}
		w.Flush()

		if out != "" {
			if _, err := m.WriteJSON(out); err != nil {
				stderr.Fatalln(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(phenotypeCmd)

	phenotypeCmd.Flags().StringP("in", "i", "", "path to a computed map (JSON)")
	phenotypeCmd.Flags().StringP("out", "o", "", "path to write the updated map to")
	phenotypeCmd.Flags().StringP("type", "t", "", "phenotype type: nativeEs|stabilities|fracfolded")

	phenotypeCmd.MarkFlagRequired("in")

	viper.BindPFlag("phenotype-type", phenotypeCmd.Flags().Lookup("type"))
}
