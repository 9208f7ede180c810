package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gojoint/internal/diagram"
	"gojoint/internal/mesh"
	"gojoint/internal/section"
)

var (
	centroidFile      string
	centroidShowASCII bool

	centroidD   float64
	centroidB1  float64
	centroidB2  float64
	centroidTw  float64
	centroidTf1 float64
	centroidTf2 float64
)

var sectionCentroidCmd = &cobra.Command{
	Use:   "centroid",
	Short: "Resolve the elastic centroid offsets of an I-section",
	Long: `Calculate the elastic centroid of an I-section as offsets from the
top and bottom outer fibres, using the three-rectangle area model.

Examples:
  gojoint section centroid --d 300 --b1 150 --b2 150 --tw 7 --tf1 10 --tf2 10
  gojoint section centroid --file beam.json --ascii`,
	Run: runSectionCentroid,
}

func init() {
	sectionCmd.AddCommand(sectionCentroidCmd)

	f := sectionCentroidCmd.Flags()
	f.StringVarP(&centroidFile, "file", "f", "", "Path to section JSON file")
	f.BoolVar(&centroidShowASCII, "ascii", false, "Show ASCII section sketch")

	f.Float64Var(&centroidD, "d", 0, "Section depth in mm")
	f.Float64Var(&centroidB1, "b1", 0, "Bottom flange width in mm")
	f.Float64Var(&centroidB2, "b2", 0, "Top flange width in mm")
	f.Float64Var(&centroidTw, "tw", 0, "Web thickness in mm")
	f.Float64Var(&centroidTf1, "tf1", 0, "Bottom flange thickness in mm")
	f.Float64Var(&centroidTf2, "tf2", 0, "Top flange thickness in mm")
}

func runSectionCentroid(cmd *cobra.Command, args []string) {
	var dims *section.Dimensions
	if centroidFile != "" {
		loaded, err := section.LoadFromFile(centroidFile)
		if err != nil {
			fmt.Printf("Error loading section: %v\n", err)
			return
		}
		dims = loaded
	} else {
		dims = &section.Dimensions{
			D: centroidD, B1: centroidB1, B2: centroidB2,
			Tw: centroidTw, Tf1: centroidTf1, Tf2: centroidTf2,
		}
		if err := dims.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	top, bottom := dims.CentroidOffsets()

	if centroidShowASCII {
		fmt.Println(diagram.DrawASCIISection(*dims))
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     I-SECTION CENTROID RESOLUTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Depth (D):\t%.1f mm\n", dims.D)
	fmt.Fprintf(w, "  Bottom flange:\t%.1f x %.1f mm\n", dims.B1, dims.Tf1)
	fmt.Fprintf(w, "  Top flange:\t%.1f x %.1f mm\n", dims.B2, dims.Tf2)
	fmt.Fprintf(w, "  Web:\t%.1f x %.1f mm\n", dims.WebDepth(), dims.Tw)
	fmt.Fprintf(w, "  Doubly symmetric:\t%v\n", dims.DoublySymmetric())
	w.Flush()
	fmt.Println()

	fmt.Println("CENTROID:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  From top fibre:\t%.3f mm\n", top)
	fmt.Fprintf(w, "  From bottom fibre:\t%.3f mm\n", bottom)
	fmt.Fprintf(w, "  Notch offset (element size):\t%.4g mm\n", mesh.NotchOffset(dims.Thicknesses()))
	w.Flush()
	fmt.Println()
}
