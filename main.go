// Command mmd renders Mermaid flowcharts and sequence diagrams as fixed
// width text, suitable for terminals, code comments and plain-text docs.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mmd/diagram"
)

var version = "dev"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		var derr *diagram.Error
		if errors.As(err, &derr) && derr.Kind == diagram.KindParse {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := diagram.DefaultConfig()
	var (
		direction string
		view      bool
	)

	cmd := &cobra.Command{
		Use:     "mmd [file]",
		Short:   "Render Mermaid diagrams as text",
		Long:    "mmd reads a Mermaid flowchart or sequence diagram and renders it\nas a fixed-width character drawing. Reads stdin when no file is given.",
		Args:    cobra.MaximumNArgs(1),
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: false,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.GraphDirection = diagram.GraphDirection(direction)
			if err := cfg.Validate(); err != nil {
				return err
			}
			src, err := readSource(args)
			if err != nil {
				return err
			}
			if view {
				cfg.Color = false // ANSI sequences would garble the pager grid
			}
			if cfg.Color {
				color.NoColor = false
			}
			out, err := renderSource(src, cfg)
			if err != nil {
				return err
			}
			if view {
				return viewOutput(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg.ASCIIOnly, "ascii", false, "render with plain ASCII glyphs")
	cmd.Flags().BoolVar(&cfg.ShowCoordinates, "coords", false, "add coordinate rulers and a route listing")
	cmd.Flags().BoolVar(&cfg.Color, "color", false, "color classDef-styled node labels")
	cmd.Flags().IntVar(&cfg.BoxPadding, "box-padding", cfg.BoxPadding, "blank cells inside box borders")
	cmd.Flags().IntVar(&cfg.PaddingX, "padding-x", cfg.PaddingX, "horizontal cells between boxes")
	cmd.Flags().IntVar(&cfg.PaddingY, "padding-y", cfg.PaddingY, "vertical cells between boxes")
	cmd.Flags().StringVar(&direction, "direction", string(cfg.GraphDirection), "fallback graph direction (LR or TD)")
	cmd.Flags().BoolVar(&view, "view", false, "open the result in a scrollable pager")
	return cmd
}

// readSource loads the diagram from the file argument, or from stdin when
// the argument is missing or "-". Refuses an interactive stdin so a bare
// "mmd" does not appear to hang.
func readSource(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		return string(b), err
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("no input file and stdin is a terminal, see --help")
	}
	b, err := io.ReadAll(os.Stdin)
	return string(b), err
}
