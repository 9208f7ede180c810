package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gojoint/internal/mesh"
)

var jointOffsetThicknesses []float64

var jointOffsetCmd = &cobra.Command{
	Use:   "offset",
	Short: "Compute the notch offset element size for plate thicknesses",
	Long: `Compute the notch offset used as the automesh target element size.

The offset is derived from the positive plate thicknesses of the
connected sections:

  offset = 0.5*mean + 1.5*max + 0.7*min

Examples:
  gojoint joint offset --thk 7 --thk 10
  gojoint joint offset --thk 7,10,12,19`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(jointOffsetThicknesses) == 0 {
			fmt.Println("Error: at least one --thk value is required")
			return
		}
		offset := mesh.NotchOffset(jointOffsetThicknesses)
		if offset == 0 {
			fmt.Println("Error: no positive thickness values given")
			return
		}
		fmt.Printf("Notch offset: %.4g mm\n", offset)
	},
}

func init() {
	jointCmd.AddCommand(jointOffsetCmd)

	jointOffsetCmd.Flags().Float64SliceVar(&jointOffsetThicknesses, "thk", nil, "Plate thickness in mm (repeatable)")
}
