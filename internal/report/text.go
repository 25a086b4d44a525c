// Package report renders bearing check results as console text and PDF.
// Renderers only format values already computed by package bearing.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gotbb/internal/bearing"
	"github.com/alexiusacademia/gotbb/internal/nds"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

// TextOptions controls the console report
type TextOptions struct {
	Title string // Defaults to "TIMBER BEAM BEARING CHECK"
	Label string // Node label printed under the title
}

// FireLabel names the fire case, e.g. "1 hour", from the node's char depth
func FireLabel(charDepth float64) string {
	if r, ok := nds.RatingForCharDepth(charDepth); ok {
		return r.String()
	}
	return fmt.Sprintf("%s in char", formatNumber(charDepth))
}

// BearingAreaMessage describes the effective bearing rectangle of a check
func BearingAreaMessage(c bearing.Check) string {
	return fmt.Sprintf("Beam %d Effective Bearing Area = %s inch wide x %s inch long.",
		c.Beam, formatRounded(c.Result.EffectiveWidth, 3), formatRounded(c.Result.EffectiveLength, 3))
}

// CheckMessage states capacity, demand, ratio and outcome of a check
func CheckMessage(c bearing.Check, fireLabel string) string {
	caseLabel := "Non-fire"
	if c.Case == bearing.Fire {
		if c.NoBearing {
			return fmt.Sprintf("After %s fire, beam %d has no bearing material remaining. Increase bearing length.", fireLabel, c.Beam)
		}
		caseLabel = fireLabel + " fire"
	}
	return fmt.Sprintf("%s capacity is %s lbs. Demand is %s lbs. Ratio = %s. %s!",
		caseLabel, formatNumber(c.Capacity), formatNumber(c.Demand), formatRatio(c.Ratio), c.Status)
}

// WriteText writes the full report for one node
func WriteText(out io.Writer, r bearing.Report, opts TextOptions) error {
	title := opts.Title
	if title == "" {
		title = "TIMBER BEAM BEARING CHECK"
	}
	fireLabel := FireLabel(r.Node.CharDepth)
	n := r.Node

	ew := &errWriter{w: out}

	ew.println()
	ew.println(heavyRule)
	ew.printf("     %s - %s FIRE RATING\n", title, fireLabel)
	ew.println(heavyRule)
	ew.println()
	if opts.Label != "" {
		ew.printf("  Node: %s\n\n", opts.Label)
	}

	// Input summary
	ew.println("INPUT DATA:")
	ew.println(lightRule)
	w := tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam 1 (b x d):\t%.3f x %.3f in\n", n.Beam1Width, n.Beam1Depth)
	fmt.Fprintf(w, "  Beam 1 Routing Length:\t%.3f in\n", n.Beam1RoutingLength)
	fmt.Fprintf(w, "  Beam 2 (b x d):\t%.3f x %.3f in\n", n.Beam2Width, n.Beam2Depth)
	fmt.Fprintf(w, "  Beam 2 Routing Length:\t%.3f in\n", n.Beam2RoutingLength)
	fmt.Fprintf(w, "  Column (w x d):\t%.3f x %.3f in\n", n.ColumnWidth, n.ColumnDepth)
	fmt.Fprintf(w, "  Fc⊥:\t%.1f psi\n", n.BaseAllowableStress)
	fmt.Fprintf(w, "  F'c⊥ (C_M·C_t·C_b·K_F·φ):\t%.2f psi\n", r.AdjustedStress)
	fmt.Fprintf(w, "  Char Depth:\t%.3f in\n", n.CharDepth)
	w.Flush()
	ew.println()

	// Loads
	ew.println("LOADS (lbs):")
	ew.println(lightRule)
	w = tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
	header, rule := "  Beam\tDead\tLive", "  ────\t────\t────"
	for _, lc := range nds.Combinations {
		header += "\t" + lc.Description
		rule += "\t" + strings.Repeat("─", len(lc.Description))
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  1\t%s\t%s\t%s\t%s\n", formatNumber(n.Beam1DeadLoad), formatNumber(n.Beam1LiveLoad),
		formatNumber(r.Evaluation.Loads.Beam1Factored), formatNumber(r.Evaluation.Loads.Beam1Unfactored))
	fmt.Fprintf(w, "  2\t%s\t%s\t%s\t%s\n", formatNumber(n.Beam2DeadLoad), formatNumber(n.Beam2LiveLoad),
		formatNumber(r.Evaluation.Loads.Beam2Factored), formatNumber(r.Evaluation.Loads.Beam2Unfactored))
	w.Flush()
	ew.println()

	for _, c := range []bearing.Case{bearing.NonFire, bearing.Fire} {
		if c == bearing.NonFire {
			ew.println("NON-FIRE CASE:")
		} else {
			ew.printf("%s FIRE CASE:\n", fireLabel)
		}
		ew.println(lightRule)
		for _, check := range r.Checks {
			if check.Case != c {
				continue
			}
			ew.printf("  %s\n", BearingAreaMessage(check))
			ew.printf("  %s\n", CheckMessage(check, fireLabel))
		}
		ew.println()
	}

	// Summary
	gov := r.Governing()
	status := "ALL CHECKS PASS"
	if !r.Passed() {
		status = "BEARING CHECK FAILS"
	}
	ew.print(DrawSummaryBox(status, []string{
		fmt.Sprintf("Governing: beam %d, %s case", gov.Beam, gov.Case),
		fmt.Sprintf("Ratio = %s (%s)", formatRatio(gov.Ratio), gov.Status),
	}))
	ew.println()

	if len(r.Warnings) > 0 {
		ew.println("WARNINGS:")
		ew.println(lightRule)
		for _, warning := range r.Warnings {
			ew.printf("  ⚠ %s\n", warning)
		}
		ew.println()
	}

	return ew.err
}

// WriteSummaryTable writes one line per node with all four ratios
func WriteSummaryTable(out io.Writer, reports []bearing.Report) error {
	ew := &errWriter{w: out}

	w := tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tB1 Non-fire\tB1 Fire\tB2 Non-fire\tB2 Fire\tStatus\n")
	fmt.Fprintf(w, "  ────\t───────────\t───────\t───────────\t───────\t──────\n")
	for i, r := range reports {
		status := string(bearing.Pass)
		if !r.Passed() {
			status = string(bearing.Fail)
		}
		fmt.Fprintf(w, "  %s", r.Node.Label(i))
		for _, c := range r.Checks {
			fmt.Fprintf(w, "\t%s", formatRatio(c.Ratio))
		}
		fmt.Fprintf(w, "\t%s\n", status)
	}
	w.Flush()

	return ew.err
}

func formatRatio(ratio float64) string {
	if ratio == bearing.NoBearingSentinel {
		return "no bearing"
	}
	return strconv.FormatFloat(ratio, 'f', 3, 64)
}

// formatNumber prints up to three decimals without trailing zeros
func formatNumber(v float64) string {
	return formatRounded(v, 3)
}

func formatRounded(v float64, digits int) string {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if rounded == 0 {
		// drop negative zero
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// errWriter keeps the first write error so rendering code stays linear
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (ew *errWriter) print(s string) {
	io.WriteString(ew, s)
}

func (ew *errWriter) println(a ...any) {
	fmt.Fprintln(ew, a...)
}

func (ew *errWriter) printf(format string, a ...any) {
	fmt.Fprintf(ew, format, a...)
}
