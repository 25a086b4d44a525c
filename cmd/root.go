package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gotbb/internal/config"
	"github.com/alexiusacademia/gotbb/internal/log"
	"github.com/alexiusacademia/gotbb/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile string
	verbose bool

	// cfg holds .env / environment defaults, loaded before every command
	cfg = &config.Config{FcPerp: config.DefaultFcPerp, LogLevel: config.DefaultLogLevel}
)

var rootCmd = &cobra.Command{
	Use:   "gotbb",
	Short: "Timber Beam Bearing Calculator",
	Long: `gotbb - Go Timber Beam Bearing Calculator

A CLI tool for checking the bearing of timber beams routed into a
column, at ambient conditions and after fire exposure.

This tool helps structural engineers perform:
  - Bearing capacity checks (Fc⊥ adjusted by C_M, C_t, C_b, K_F and φ)
  - Fire bearing checks with char depth for 0, 1 and 2 hour ratings
  - Load combinations (1.2D + 1.6L strength, D + L fire)
  - Batch checks of many connections from JSON or Excel files
  - PDF summary reports

All dimensions are in inches, loads in pounds and stresses in psi.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded

		if err := log.SetLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("%s: %w", config.EnvLogLevel, err)
		}
		if verbose {
			log.SetDebugMode()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gotbb v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Timber Beam Bearing Calculator                       ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for checking timber beam bearing at column")
		fmt.Fprintln(out, "  connections, at ambient conditions and after fire exposure.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Non-fire and fire bearing capacity of routed beams")
		fmt.Fprintln(out, "    • Factored and unfactored load combinations")
		fmt.Fprintln(out, "    • Batch checks from JSON or Excel files")
		fmt.Fprintln(out, "    • PDF summary reports")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gotbb --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file with default design parameters")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
