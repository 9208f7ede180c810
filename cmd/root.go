package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gojoint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gojoint",
	Short: "Steel Joint Shell Submodel Synthesizer",
	Long: `gojoint - Steel Joint Shell Submodel Synthesizer

A CLI tool that converts beam-column intersections of steel I-section
frames into refined thin-shell finite element submodels.

This tool helps structural engineers perform:
  - Mid-plane node template generation from I-section dimensions
  - Panel zone and member quad patch topology authoring
  - Rigid link coupling back to line-element anchor nodes
  - Mesh cleaning, patch-to-face conversion, and automeshing

Element sizing follows the notch offset rule derived from the
distinct plate thicknesses of the connected sections.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gojoint v%-47s║\n", version.Version)
		fmt.Println("  ║   Steel Joint Shell Submodel Synthesizer                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool that converts beam-column intersections of steel")
		fmt.Println("  I-section frames into refined thin-shell submodels.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section centroid and plate thickness resolution")
		fmt.Println("    • Mid-plane node templates and panel zone patches")
		fmt.Println("    • Rigid link cluster classification at member cuts")
		fmt.Println("    • Clean, convert, and automesh finalization pass")
		fmt.Println()
		fmt.Println("  Use 'gojoint --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
