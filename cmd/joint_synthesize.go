package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/spf13/cobra"

	"gojoint/internal/config"
	"gojoint/internal/diagram"
	"gojoint/internal/joint"
	"gojoint/internal/modeldb"
	"gojoint/internal/report"
	"gojoint/internal/section"
)

var (
	synthBeamD   float64
	synthBeamB1  float64
	synthBeamB2  float64
	synthBeamTw  float64
	synthBeamTf1 float64
	synthBeamTf2 float64

	synthColD   float64
	synthColB1  float64
	synthColB2  float64
	synthColTw  float64
	synthColTf1 float64
	synthColTf2 float64

	synthPanelThk  float64
	synthGussetThk float64
	synthOffset    float64
	synthTol       float64
	synthMergeTol  float64

	synthDiagramFile string
	synthReportFile  string
	synthExportFile  string
	synthShowASCII   bool
)

var jointSynthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Build the full shell submodel for one joint",
	Long: `Build a thin-shell submodel of one beam-column intersection.

The beam runs along global X and the column along global Y; the joint
origin sits at the intersection. The column line element is cut at
±offset above and below the origin and the beam line element at +offset
along X. The synthesizer replaces everything inside those cuts with
shell plates and couples the cut faces back with rigid link clusters.

Examples:
  gojoint joint synthesize --beam-d 300 --beam-b1 150 --beam-b2 150 \
    --beam-tw 7 --beam-tf1 10 --beam-tf2 10 \
    --col-d 350 --col-b1 175 --col-b2 175 \
    --col-tw 12 --col-tf1 19 --col-tf2 19 \
    --offset 600 --report joint.pdf --export joint.xlsx`,
	Run: runJointSynthesize,
}

func init() {
	jointCmd.AddCommand(jointSynthesizeCmd)

	f := jointSynthesizeCmd.Flags()
	f.Float64Var(&synthBeamD, "beam-d", 0, "Beam section depth in mm [required]")
	f.Float64Var(&synthBeamB1, "beam-b1", 0, "Beam bottom flange width in mm [required]")
	f.Float64Var(&synthBeamB2, "beam-b2", 0, "Beam top flange width in mm [required]")
	f.Float64Var(&synthBeamTw, "beam-tw", 0, "Beam web thickness in mm [required]")
	f.Float64Var(&synthBeamTf1, "beam-tf1", 0, "Beam bottom flange thickness in mm [required]")
	f.Float64Var(&synthBeamTf2, "beam-tf2", 0, "Beam top flange thickness in mm [required]")

	f.Float64Var(&synthColD, "col-d", 0, "Column section depth in mm [required]")
	f.Float64Var(&synthColB1, "col-b1", 0, "Column bottom flange width in mm [required]")
	f.Float64Var(&synthColB2, "col-b2", 0, "Column top flange width in mm [required]")
	f.Float64Var(&synthColTw, "col-tw", 0, "Column web thickness in mm [required]")
	f.Float64Var(&synthColTf1, "col-tf1", 0, "Column bottom flange thickness in mm [required]")
	f.Float64Var(&synthColTf2, "col-tf2", 0, "Column top flange thickness in mm [required]")

	for _, name := range []string{
		"beam-d", "beam-b1", "beam-b2", "beam-tw", "beam-tf1", "beam-tf2",
		"col-d", "col-b1", "col-b2", "col-tw", "col-tf1", "col-tf2",
	} {
		jointSynthesizeCmd.MarkFlagRequired(name)
	}

	f.Float64Var(&synthPanelThk, "panel-thk", 0, "Panel zone plate thickness in mm (default: column web)")
	f.Float64Var(&synthGussetThk, "gusset-thk", 0, "Gusset plate thickness in mm (0 = no gussets)")
	f.Float64Var(&synthOffset, "offset", 600, "Anchor distance from joint origin in mm")
	f.Float64Var(&synthTol, "tol", 0, "Rigid link coordinate tolerance (default from env)")
	f.Float64Var(&synthMergeTol, "merge-tol", 0, "Node merge tolerance (default from env)")

	f.StringVar(&synthDiagramFile, "diagram", "", "Export joint elevation diagram (png, svg, pdf)")
	f.StringVar(&synthReportFile, "report", "", "Write PDF calculation report to file")
	f.StringVar(&synthExportFile, "export", "", "Write XLSX entity workbook to file")
	f.BoolVar(&synthShowASCII, "ascii", false, "Show ASCII section sketches")
}

func runJointSynthesize(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}
	if synthTol == 0 {
		synthTol = cfg.CouplingTolerance
	}
	if synthMergeTol == 0 {
		synthMergeTol = cfg.MergeTolerance
	}

	beam := section.Dimensions{
		D: synthBeamD, B1: synthBeamB1, B2: synthBeamB2,
		Tw: synthBeamTw, Tf1: synthBeamTf1, Tf2: synthBeamTf2,
	}
	column := section.Dimensions{
		D: synthColD, B1: synthColB1, B2: synthColB2,
		Tw: synthColTw, Tf1: synthColTf1, Tf2: synthColTf2,
	}

	if synthOffset <= 0 {
		fmt.Println("Error: --offset must be positive")
		return
	}

	in := joint.Input{
		Beam:              beam,
		Column:            column,
		BeamAnchor:        v3.Vec{X: synthOffset},
		ColumnLowerAnchor: v3.Vec{Y: -synthOffset},
		ColumnUpperAnchor: v3.Vec{Y: synthOffset},
		CouplingTolerance: synthTol,
		MergeTolerance:    synthMergeTol,
	}
	caps := joint.Capabilities{
		PanelThickness:  synthPanelThk,
		GussetThickness: synthGussetThk,
	}

	db := modeldb.NewMemory()
	res, err := joint.Synthesize(db, in, caps)
	if err != nil {
		fmt.Printf("Error synthesizing joint: %v\n", err)
		return
	}

	if synthShowASCII {
		fmt.Println("BEAM SECTION:")
		fmt.Println(diagram.DrawASCIISection(beam))
		fmt.Println("COLUMN SECTION:")
		fmt.Println(diagram.DrawASCIISection(column))
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     JOINT SHELL SUBMODEL SYNTHESIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("TOPOLOGY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Quad patches:\t%d\n", len(res.Patches))
	fmt.Fprintf(w, "  Rigid link clusters:\t%d\n", len(res.Clusters))
	fmt.Fprintf(w, "  Beam slave node:\t%d\n", res.BeamSlave)
	fmt.Fprintf(w, "  Column slave nodes:\t%d, %d\n", res.ColumnLowerSlave, res.ColumnUpperSlave)
	w.Flush()
	fmt.Println()

	fmt.Println("RIGID LINK CLUSTERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Slave\tPlane\tMasters\n")
	fmt.Fprintf(w, "  ─────\t─────\t───────\n")
	for _, c := range res.Clusters {
		fmt.Fprintf(w, "  %d\t%s\t%d\n", c.Slave, c.Plane, len(c.Masters))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("MESH:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Target element size:\t%.4g mm\n", res.TargetSize)
	if res.Mesh != nil {
		fmt.Fprintf(w, "  Nodes merged:\t%d\n", res.Mesh.NodesMerged)
		fmt.Fprintf(w, "  Patches removed:\t%d\n", res.Mesh.PatchesRemoved)
		fmt.Fprintf(w, "  Faces created:\t%d\n", res.Mesh.FacesCreated)
		fmt.Fprintf(w, "  Automesh:\t%d meshed, %d partial, %d failed\n",
			res.Mesh.Meshed, res.Mesh.Partial, res.Mesh.Failed)
	}
	w.Flush()
	fmt.Println()

	if len(res.Warnings) > 0 {
		fmt.Println("DIAGNOSTICS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, warning := range res.Warnings {
			fmt.Printf("  • %s\n", warning)
		}
		fmt.Println()
	}

	if synthDiagramFile != "" {
		path := filepath.Join(cfg.OutputDir, synthDiagramFile)
		if err := diagram.ExportJointElevation(res, path); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", path)
		}
	}
	if synthReportFile != "" {
		path := filepath.Join(cfg.OutputDir, synthReportFile)
		meta := report.Meta{Project: cfg.Project, Author: cfg.Author}
		if err := report.WriteSynthesisPDF(path, beam, column, res, meta); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", path)
		}
	}
	if synthExportFile != "" {
		path := filepath.Join(cfg.OutputDir, synthExportFile)
		if err := report.WriteSynthesisXLSX(path, res); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook written to: %s\n", path)
		}
	}
}
