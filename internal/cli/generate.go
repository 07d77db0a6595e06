package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foldprint/foldprint/pkg/errors"
	"github.com/foldprint/foldprint/pkg/layout"
	"github.com/foldprint/foldprint/pkg/plate"
	"github.com/foldprint/foldprint/pkg/roster"
)

const (
	// defaultOutput is the output path when neither flag nor config set one.
	defaultOutput = "nameplates.pdf"

	// spinnerThreshold is the roster size above which a progress spinner
	// is shown during generation.
	spinnerThreshold = 25
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string  // output document path
	configPath string  // optional foldprint.toml path
	logoSizeMM float64 // logo square side in millimetres
	marginMM   float64 // logo inset from page edges in millimetres
	foldGuide  bool    // draw a dashed line along the fold
}

// generateCommand creates the generate command, the main entry point:
// it reads a names file and produces one foldable nameplate page per name.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		output:     defaultOutput,
		logoSizeMM: 30,
		marginMM:   10,
	}

	cmd := &cobra.Command{
		Use:   "generate [names_file] [logo] [font]",
		Short: "Generate a foldable nameplate PDF from a names file",
		Long: `Generate a foldable nameplate PDF from a names file.

Each non-blank line of the names file becomes one A4 page. The page is
split at its horizontal midline: the top half carries the name upright,
the bottom half carries it rotated 180 degrees, so the folded card reads
correctly from both sides. The logo is stamped near the fold on each half
and lands in the top-left corner of both faces after folding.

The logo may be any raster image the loader supports (PNG, JPEG, GIF);
the font must be a TTF file. If the font cannot be loaded at render time,
a built-in default is substituted with a warning.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), cmd, args[0], args[1], args[2], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PDF path")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ./foldprint.toml if present)")
	cmd.Flags().Float64Var(&opts.logoSizeMM, "logo-size-mm", opts.logoSizeMM, "logo square side in millimetres")
	cmd.Flags().Float64Var(&opts.marginMM, "margin-mm", opts.marginMM, "logo inset from page edges in millimetres")
	cmd.Flags().BoolVar(&opts.foldGuide, "fold-guide", false, "draw a dashed calibration line along the fold")

	return cmd
}

// runGenerate validates the inputs, lays out and renders all pages, and
// writes the output document.
func (c *CLI) runGenerate(ctx context.Context, cmd *cobra.Command, namesPath, logoPath, fontPath string, opts *generateOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyConfig(cmd, opts, cfg)

	// Fail fast: all three inputs must exist before any rendering begins,
	// so a bad invocation never leaves a partial output file behind.
	for _, path := range []string{namesPath, logoPath, fontPath} {
		if _, err := os.Stat(path); err != nil {
			return errors.New(errors.ErrCodeFileNotFound, "input file %q not found", path)
		}
	}

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}

	names, err := roster.Load(namesPath)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded roster", "names", len(names), "file", namesPath)

	tiers := layout.DefaultFontTiers()
	if cfg.FontLarge > 0 {
		tiers.Large = cfg.FontLarge
	}
	if cfg.FontMedium > 0 {
		tiers.Medium = cfg.FontMedium
	}

	geo := layout.A4()
	canvas := plate.NewPDFCanvas(geo, fontPath, c.Logger)

	gen, err := plate.NewGenerator(canvas, plate.Options{
		Geometry: geo,
		Logo: layout.LogoSpec{
			Size:   layout.MM(opts.logoSizeMM),
			Margin: layout.MM(opts.marginMM),
		},
		Tiers:     tiers,
		LogoPath:  logoPath,
		FoldGuide: opts.foldGuide,
	}, c.Logger)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)

	var spinner *Spinner
	if len(names) >= spinnerThreshold {
		total := len(names)
		spinner = newSpinner(ctx, os.Stdout, func() string {
			return fmt.Sprintf("Generating nameplates... %d/%d", gen.Pages(), total)
		})
		spinner.Start()
	}

	err = gen.Generate(names)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := gen.Save(opts.output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("rendered %d pages", gen.Pages()))

	printSuccess("Generated %s nameplates", StyleHighlight.Render(fmt.Sprintf("%d", gen.Pages())))
	printFile(opts.output)
	printDetail("one page per name, fold along the horizontal midline")
	return nil
}

// applyConfig overlays config file values onto flag defaults. Flags the
// user set explicitly always win.
func applyConfig(cmd *cobra.Command, opts *generateOpts, cfg Config) {
	flags := cmd.Flags()

	if cfg.Output != "" && !flags.Changed("output") {
		opts.output = cfg.Output
	}
	if cfg.LogoSizeMM > 0 && !flags.Changed("logo-size-mm") {
		opts.logoSizeMM = cfg.LogoSizeMM
	}
	if cfg.MarginMM > 0 && !flags.Changed("margin-mm") {
		opts.marginMM = cfg.MarginMM
	}
	if cfg.FoldGuide && !flags.Changed("fold-guide") {
		opts.foldGuide = true
	}
}
