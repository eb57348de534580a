package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/autostyle"
	"github.com/bnema/chatdeck/internal/infrastructure/memdom"
)

var (
	stylePresets  []string
	styleAuto     bool
	styleInline   bool
	styleNoShadow bool
	styleOutput   string
	styleViewport string
	styleCSSOnly  bool
)

var styleCmd = &cobra.Command{
	Use:   "style <file.html>",
	Short: "Restyle a saved chat page offline",
	Long: `Apply the standalone styler to a saved HTML page and write the result.

Elements can carry a data-rect="x,y,w,h" attribute to stand in for layout,
which the auto pass uses to find large surfaces.

Examples:
  chatdeck style saved.html --preset flat -o flat.html
  chatdeck style saved.html --auto --css-only
  chatdeck style saved.html --auto --inline --viewport 1440x900`,
	Args: cobra.ExactArgs(1),
	RunE: runStyle,
}

func init() {
	rootCmd.AddCommand(styleCmd)
	styleCmd.Flags().StringSliceVarP(&stylePresets, "preset", "p", nil,
		fmt.Sprintf("preset to apply (%v)", autostyle.PresetNames()))
	styleCmd.Flags().BoolVar(&styleAuto, "auto", false, "detect large surfaces and flatten them")
	styleCmd.Flags().BoolVar(&styleInline, "inline", false, "also set every declaration inline")
	styleCmd.Flags().BoolVar(&styleNoShadow, "no-shadow", false, "leave shadow roots untouched")
	styleCmd.Flags().StringVarP(&styleOutput, "output", "o", "", "output file (default stdout)")
	styleCmd.Flags().StringVar(&styleViewport, "viewport", "1280x800", "viewport size for the auto pass")
	styleCmd.Flags().BoolVar(&styleCSSOnly, "css-only", false, "print the generated stylesheet instead of the page")
}

func runStyle(_ *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	width, height, err := parseViewport(styleViewport)
	if err != nil {
		return err
	}

	opts := autostyle.Options{
		Presets:     stylePresets,
		ShadowDOM:   !styleNoShadow,
		ForceInline: styleInline,
	}
	if styleAuto {
		auto := autostyle.DefaultAutoOptions()
		opts.Auto = &auto
	}

	out, css, err := styleFile(app.Ctx(), args[0], width, height, opts)
	if err != nil {
		return err
	}

	if styleCSSOnly {
		fmt.Print(css)
		return nil
	}
	if styleOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(styleOutput, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, styles.RenderSuccess(app.Theme, "Styled page written to "+styleOutput))
	return nil
}

// styleFile installs the styler on the page at path, settles it and returns
// the rendered page with the generated stylesheet.
func styleFile(ctx context.Context, path string, width, height float64, opts autostyle.Options) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	win, err := memdom.Parse(f, memdom.WithViewport(width, height), memdom.WithURL("file://"+abs))
	if err != nil {
		return nil, "", err
	}

	handle, err := autostyle.Install(ctx, win, opts)
	if err != nil {
		return nil, "", err
	}
	if err := win.Flush(); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := win.Render(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), handle.CSS(), nil
}
