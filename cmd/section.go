package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "I-section geometry and centroid resolution",
	Long: `Inspect steel I-section geometry.

Sections are monosymmetric I-shapes: depth D, bottom flange B1 x tf1,
top flange B2 x tf2, web thickness tw. Dimensions come from flags or
from a JSON file.

Subcommands:
  centroid - Resolve the elastic centroid offsets from the outer fibres

Example JSON file structure:
{
  "d": 300,
  "b1": 150,
  "b2": 150,
  "tw": 7,
  "tf1": 10,
  "tf2": 10
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
