package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gotbb/internal/bearing"
	"github.com/alexiusacademia/gotbb/internal/log"
	"github.com/alexiusacademia/gotbb/internal/nds"
	"github.com/alexiusacademia/gotbb/internal/report"
	"github.com/spf13/cobra"
)

// errChecksFailed is returned in --strict mode when a bearing check fails
var errChecksFailed = errors.New("one or more bearing checks failed")

var (
	// Beam 1 inputs
	checkB1Width   float64
	checkB1Depth   float64
	checkB1Dead    float64
	checkB1Live    float64
	checkB1Routing float64

	// Beam 2 inputs
	checkB2Width   float64
	checkB2Depth   float64
	checkB2Dead    float64
	checkB2Live    float64
	checkB2Routing float64

	// Column inputs
	checkColWidth float64
	checkColDepth float64

	// Design parameters
	checkFcPerp     float64
	checkFireRating string
	checkCharDepth  float64

	// Options
	checkName       string
	checkNoValidate bool
	checkStrict     bool
	checkJSON       bool
	checkPDFFile    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the bearing of two beams routed into one column",
	Long: `Calculate the non-fire and fire bearing capacity of two timber beams
routed into opposite faces of a column, and compare each to its demand.

  Non-fire: F'c⊥ x min(beam, column width) x routing length vs 1.2D + 1.6L
  Fire:     F'c⊥ x min(beam, charred column width) x (routing - char) vs D + L

F'c⊥ = Fc⊥ x C_M x C_t x C_b x K_F x φ with C_M = C_t = C_b = 1.0,
K_F = 1.67 and φ = 0.90.

Char depth is 0, 1.8 or 3.2 in for a 0, 1 or 2 hour fire rating, or can
be given directly with --char-depth.

Examples:
  # Default beams and column, 1 hour fire rating
  gotbb check --b1-routing 3 --b2-routing 4 --fire-rating 1h

  # Fully specified connection
  gotbb check --b1-width 6 --b1-depth 10 --b1-dead 1000 --b1-live 1000 --b1-routing 3 \
    --b2-width 8 --b2-depth 12 --b2-dead 2000 --b2-live 3000 --b2-routing 4 \
    --col-width 8 --col-depth 10 --fc-perp 430 --fire-rating 2h`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Beam 1 flags
	checkCmd.Flags().Float64Var(&checkB1Width, "b1-width", 6, "Beam 1 width (in)")
	checkCmd.Flags().Float64Var(&checkB1Depth, "b1-depth", 10, "Beam 1 depth (in)")
	checkCmd.Flags().Float64Var(&checkB1Dead, "b1-dead", 1000, "Beam 1 dead load reaction (lbs)")
	checkCmd.Flags().Float64Var(&checkB1Live, "b1-live", 1000, "Beam 1 live load reaction (lbs)")
	checkCmd.Flags().Float64Var(&checkB1Routing, "b1-routing", 0, "Beam 1 routing length into the column (in) [required]")

	// Beam 2 flags
	checkCmd.Flags().Float64Var(&checkB2Width, "b2-width", 8, "Beam 2 width (in)")
	checkCmd.Flags().Float64Var(&checkB2Depth, "b2-depth", 12, "Beam 2 depth (in)")
	checkCmd.Flags().Float64Var(&checkB2Dead, "b2-dead", 2000, "Beam 2 dead load reaction (lbs)")
	checkCmd.Flags().Float64Var(&checkB2Live, "b2-live", 3000, "Beam 2 live load reaction (lbs)")
	checkCmd.Flags().Float64Var(&checkB2Routing, "b2-routing", 0, "Beam 2 routing length into the column (in) [required]")

	// Column flags
	checkCmd.Flags().Float64Var(&checkColWidth, "col-width", 8, "Column width (in)")
	checkCmd.Flags().Float64Var(&checkColDepth, "col-depth", 10, "Column depth (in)")

	// Design flags
	checkCmd.Flags().Float64Var(&checkFcPerp, "fc-perp", 430, "Reference compression perpendicular to grain Fc⊥ (psi)")
	checkCmd.Flags().StringVarP(&checkFireRating, "fire-rating", "r", "0 hour", "Fire rating: 0, 1 or 2 hour")
	checkCmd.Flags().Float64Var(&checkCharDepth, "char-depth", 0, "Char depth (in), overrides --fire-rating")

	// Options
	checkCmd.Flags().StringVarP(&checkName, "name", "n", "", "Connection label for the report")
	checkCmd.Flags().BoolVar(&checkNoValidate, "no-validate", false, "Skip input validation")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit with an error when any check fails")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the report as JSON")
	checkCmd.Flags().StringVarP(&checkPDFFile, "pdf", "o", "", "Export a PDF report to file")

	// Mark required flags
	checkCmd.MarkFlagRequired("b1-routing")
	checkCmd.MarkFlagRequired("b2-routing")
}

// resolveCharDepth applies --char-depth, then --fire-rating, then the configured rating
func resolveCharDepth(cmd *cobra.Command) (float64, error) {
	if cmd.Flags().Changed("char-depth") {
		return checkCharDepth, nil
	}
	if cmd.Flags().Changed("fire-rating") {
		rating, err := nds.ParseFireRating(checkFireRating)
		if err != nil {
			return 0, err
		}
		return rating.CharDepth(), nil
	}
	return cfg.FireRating.CharDepth(), nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	charDepth, err := resolveCharDepth(cmd)
	if err != nil {
		return err
	}

	fcPerp := checkFcPerp
	if !cmd.Flags().Changed("fc-perp") {
		fcPerp = cfg.FcPerp
	}

	node := bearing.BearingNode{
		Name:                checkName,
		Beam1Width:          checkB1Width,
		Beam1Depth:          checkB1Depth,
		Beam1DeadLoad:       checkB1Dead,
		Beam1LiveLoad:       checkB1Live,
		Beam1RoutingLength:  checkB1Routing,
		Beam2Width:          checkB2Width,
		Beam2Depth:          checkB2Depth,
		Beam2DeadLoad:       checkB2Dead,
		Beam2LiveLoad:       checkB2Live,
		Beam2RoutingLength:  checkB2Routing,
		ColumnWidth:         checkColWidth,
		ColumnDepth:         checkColDepth,
		BaseAllowableStress: fcPerp,
		CharDepth:           charDepth,
	}

	if !checkNoValidate {
		if err := node.Validate(); err != nil {
			return err
		}
	}

	log.Debug().
		Float64("fc_perp", node.BaseAllowableStress).
		Float64("char_depth", node.CharDepth).
		Msg("checking bearing node")

	r := bearing.CheckNode(node)
	for _, warning := range r.Warnings {
		log.Warn().Str("node", node.Label(0)).Msg(warning)
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return err
		}
	} else if err := report.WriteText(out, r, report.TextOptions{Label: checkName}); err != nil {
		return err
	}

	if checkPDFFile != "" {
		if err := exportPDF(checkPDFFile, []bearing.Report{r}); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
	}

	if checkStrict && !r.Passed() {
		return errChecksFailed
	}
	return nil
}

// exportPDF writes reports to filename, creating its directory if needed
func exportPDF(filename string, reports []bearing.Report) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	meta := report.PDFMeta{
		Project: cfg.Project,
		Author:  cfg.ReportAuthor,
	}
	if err := report.WritePDF(f, reports, meta); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info().Str("file", filename).Int("nodes", len(reports)).Msg("report exported")
	return nil
}
