package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sebrandon1/deckgen/internal/provider"
	"github.com/sebrandon1/deckgen/internal/reader"
	"github.com/sebrandon1/deckgen/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available presentation themes",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for _, name := range theme.Names() {
			t := theme.Resolve(name)
			marker := " "
			if name == theme.DefaultName {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-12s  title %s %dpt, body %s %dpt\n",
				marker, name, t.TitleFont, t.TitleSize, t.BodyFont, t.BodySize)
		}
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available LLM backends",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for _, info := range provider.Available() {
			fmt.Fprintf(out, "%-10s  %s\n", info.Name, info.Description)
		}
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported input file formats",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for _, ext := range reader.SupportedExtensions() {
			fmt.Fprintln(out, ext)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd, providersCmd, formatsCmd)
}
