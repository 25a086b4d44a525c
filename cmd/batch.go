package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/gotbb/internal/bearing"
	"github.com/alexiusacademia/gotbb/internal/log"
	"github.com/alexiusacademia/gotbb/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchFile        string
	batchPDFFile     string
	batchDetail      bool
	batchJSON        bool
	batchStrict      bool
	batchFailOnError bool
	batchNoValidate  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check many bearing nodes from a JSON or Excel file",
	Long: `Check every bearing node listed in a JSON or Excel (.xlsx) file.

A JSON file holds a single node object or an array of nodes:
[
  {
    "name": "C1",
    "beam1_width": 6, "beam1_depth": 10,
    "beam1_dead_load": 1000, "beam1_live_load": 1000, "beam1_routing_length": 3,
    "beam2_width": 8, "beam2_depth": 12,
    "beam2_dead_load": 2000, "beam2_live_load": 3000, "beam2_routing_length": 4,
    "column_width": 8, "column_depth": 10,
    "base_allowable_stress": 430, "char_depth": 1.8
  }
]

An Excel file uses the first sheet. Row 1 is a header; each following row
lists the same fields in the order above, with an optional name in the
last column.

Examples:
  gotbb batch --file nodes.json
  gotbb batch -f level3.xlsx --pdf reports/level3.pdf`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to node file (.json or .xlsx) [required]")
	batchCmd.MarkFlagRequired("file")

	batchCmd.Flags().StringVarP(&batchPDFFile, "pdf", "o", "", "Export a PDF report to file")
	batchCmd.Flags().BoolVar(&batchDetail, "detail", false, "Print the full report for every node")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the reports as JSON")
	batchCmd.Flags().BoolVar(&batchStrict, "strict", false, "Exit with an error when any check fails")
	batchCmd.Flags().BoolVar(&batchFailOnError, "fail-on-error", false, "Stop on the first unreadable or invalid node")
	batchCmd.Flags().BoolVar(&batchNoValidate, "no-validate", false, "Skip input validation")
}

func runBatch(cmd *cobra.Command, args []string) error {
	nodes, rowErrs, err := bearing.LoadFromFile(batchFile)
	if err != nil {
		return fmt.Errorf("load %s: %w", batchFile, err)
	}
	for _, rowErr := range rowErrs {
		if batchFailOnError {
			return rowErr
		}
		log.Warn().Err(rowErr).Str("file", batchFile).Msg("skipping row")
	}

	var valid []bearing.BearingNode
	for i, n := range nodes {
		if n.Name == "" {
			n.Name = n.Label(i)
		}
		if !batchNoValidate {
			if err := n.Validate(); err != nil {
				if batchFailOnError {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				log.Error().Err(err).Str("node", n.Name).Msg("skipping invalid node")
				continue
			}
		}
		valid = append(valid, n)
	}
	if len(valid) == 0 {
		return fmt.Errorf("no valid bearing nodes in %s", batchFile)
	}

	log.Debug().Int("nodes", len(valid)).Str("file", batchFile).Msg("checking nodes")

	reports := bearing.CheckAll(valid)
	failed := 0
	for _, r := range reports {
		if !r.Passed() {
			failed++
		}
		for _, warning := range r.Warnings {
			log.Warn().Str("node", r.Node.Name).Msg(warning)
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case batchJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	case batchDetail:
		for _, r := range reports {
			if err := report.WriteText(out, r, report.TextOptions{Label: r.Node.Name}); err != nil {
				return err
			}
		}
	default:
		fmt.Fprintln(out)
		fmt.Fprintln(out, "BEARING CHECK SUMMARY (demand / capacity):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		if err := report.WriteSummaryTable(out, reports); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %d of %d nodes pass.\n", len(reports)-failed, len(reports))
		fmt.Fprintln(out)
	}

	if batchPDFFile != "" {
		if err := exportPDF(batchPDFFile, reports); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
	}

	if batchStrict && failed > 0 {
		return errChecksFailed
	}
	return nil
}
