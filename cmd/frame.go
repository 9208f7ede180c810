package cmd

import (
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Parametric portal frame generation",
	Long: `Generate the line-element portal frame joint submodels hang off.

The frame has two continuous columns, one beam per floor, and
intermediate nodes placed at a fixed offset from every beam-column
joint. Those intermediate nodes are the anchors the joint synthesizer
couples its shell submodels to.

Subcommands:
  generate - Generate the frame and list its nodes and members`,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}
