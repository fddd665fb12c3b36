// Package cmd wires the command-line interface around the generation
// pipeline: configuration loading, provider selection, per-file runs
// and progress display.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sebrandon1/deckgen/internal/config"
	"github.com/sebrandon1/deckgen/internal/export"
	"github.com/sebrandon1/deckgen/internal/generation"
	"github.com/sebrandon1/deckgen/internal/logging"
	"github.com/sebrandon1/deckgen/internal/provider"
	"github.com/sebrandon1/deckgen/internal/reader"
)

var (
	cfgFile      string
	flagProvider string
	flagModel    string
	flagTheme    string
	flagOutput   string
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "deckgen <input-file>...",
	Short: "Generate slide-deck descriptions from documents using an LLM",
	Long: `deckgen reads one or more documents, asks an LLM backend to analyze
them, and writes a structured, layout-ready slide-deck description for
each. Inputs are processed sequentially in argument order.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVarP(&flagProvider, "provider", "p", "", "LLM backend (deepseek, openai, anthropic, gemini, ollama)")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "model identifier (provider default if empty)")
	rootCmd.Flags().StringVarP(&flagTheme, "theme", "t", "", "presentation theme")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (single input only)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
}

func run(cmd *cobra.Command, args []string) error {
	if flagOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output cannot be combined with multiple input files")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	logger := logging.Setup(os.Stderr, cfg.LogLevel)

	prov, err := provider.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	pipeline := generation.NewPipeline(prov, cfg.Retry.Policy(), cfg.Generation.MaxInputChars, logger)
	serializer := &export.JSONSerializer{}

	for _, input := range args {
		if err := generateOne(cmd.Context(), cmd, pipeline, serializer, cfg.Theme, input); err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
	}
	return nil
}

// applyFlagOverrides lets command-line flags win over config and env.
func applyFlagOverrides(cfg *config.Config) {
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
}

// generateOne runs the pipeline for a single input file. A failed
// document aborts the batch; no partial output file is written.
func generateOne(
	ctx context.Context,
	cmd *cobra.Command,
	pipeline *generation.Pipeline,
	serializer export.Serializer,
	themeName, input string,
) error {
	text, err := reader.Read(input)
	if err != nil {
		return err
	}

	outPath := flagOutput
	if outPath == "" {
		outPath = export.DefaultPath(input)
	}

	var sink generation.ProgressFunc
	if !quiet {
		out := cmd.OutOrStdout()
		sink = func(fraction float64) {
			fmt.Fprintf(out, "\r%s: %3.0f%%", input, fraction*100)
		}
	}

	pres, err := pipeline.Generate(ctx, text, filepath.Base(input), sink)
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}

	if err := serializer.Write(pres, themeName, outPath); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d slides, theme %s)\n",
			outPath, len(pres.Slides), themeName)
	}
	return nil
}

// Execute runs the root command with ctx, which is cancelled on
// interrupt so an in-flight attempt aborts cleanly.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
