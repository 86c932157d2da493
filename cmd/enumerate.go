package cmd

import (
	"fmt"

	"github.com/alycialee/latticegpm/internal/lattice"
	"github.com/spf13/cobra"
)

// enumerateCmd represents the enumerate command
var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Enumerate the binary sequence space between a wildtype and mutant",
	Long: `Enumerate all 2^L sequences between a wildtype and a mutant that differs
from it at every site. Each output sequence takes, per site, either the
wildtype or the mutant character. Sequences are printed in ascending binary
order: the wildtype first ("0...0") and the mutant last ("1...1").`,
	Run: func(cmd *cobra.Command, args []string) {
		wildtype, _ := cmd.Flags().GetString("wildtype")
		mutant, _ := cmd.Flags().GetString("mutant")

		space, err := lattice.EnumerateBinarySpace(wildtype, mutant)
		if err != nil {
			stderr.Fatalln(err)
		}

		for _, seq := range space {
			fmt.Println(seq)
		}
	},
}

func init() {
	rootCmd.AddCommand(enumerateCmd)

	enumerateCmd.Flags().StringP("wildtype", "w", "", "wildtype sequence (the all-zeros corner of the space)")
	enumerateCmd.Flags().StringP("mutant", "m", "", "mutant sequence, differing from the wildtype at every site")

	enumerateCmd.MarkFlagRequired("wildtype")
	enumerateCmd.MarkFlagRequired("mutant")
}
