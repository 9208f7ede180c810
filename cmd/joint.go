package cmd

import (
	"github.com/spf13/cobra"
)

var jointCmd = &cobra.Command{
	Use:   "joint",
	Short: "Joint shell submodel synthesis",
	Long: `Synthesize thin-shell submodels of beam-column intersections.

A joint is defined by the I-section dimensions of the beam and the
column plus the anchor node positions of the connected line elements.
The synthesizer authors mid-plane node templates, panel zone and member
quad patches, rigid link couplings, and runs the clean/convert/automesh
finalization pass.

Subcommands:
  synthesize - Build the full shell submodel for one joint
  offset     - Compute the notch offset element size for plate thicknesses`,
}

func init() {
	rootCmd.AddCommand(jointCmd)
}
