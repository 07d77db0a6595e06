package plate

import (
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/foldprint/foldprint/pkg/errors"
	"github.com/foldprint/foldprint/pkg/layout"
)

// Options configures a Generator. The zero value is completed by
// ValidateAndSetDefaults: A4 geometry, 30mm logo with 10mm margin, and
// the standard 48pt/36pt font tiers.
type Options struct {
	Geometry  layout.Geometry  // page extents and fold position
	Logo      layout.LogoSpec  // logo footprint and margin
	Tiers     layout.FontTiers // name font sizes
	LogoPath  string           // raster image stamped on each half; empty disables the logo
	FoldGuide bool             // draw a dashed calibration line along the fold
}

// ValidateAndSetDefaults fills in zero-valued fields and checks the
// geometry invariants.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Geometry == (layout.Geometry{}) {
		o.Geometry = layout.A4()
	}
	if o.Logo == (layout.LogoSpec{}) {
		o.Logo = layout.DefaultLogoSpec()
	}
	if o.Tiers == (layout.FontTiers{}) {
		o.Tiers = layout.DefaultFontTiers()
	}
	return o.Geometry.Validate()
}

// Generator draws one nameplate page per name onto a Canvas. It holds no
// per-name state: every placement is recomputed fresh by pkg/layout.
type Generator struct {
	canvas Canvas
	opts   Options
	logger *log.Logger
	pages  atomic.Int64
}

// NewGenerator creates a generator drawing onto canvas.
// If logger is nil, log.Default() is used.
func NewGenerator(canvas Canvas, opts Options, logger *log.Logger) (*Generator, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		canvas: canvas,
		opts:   opts,
		logger: logger,
	}, nil
}

// Generate draws one page per name, in input order. An empty roster is
// rejected before any page is emitted. Logo draw failures are downgraded
// to warnings so a single bad asset cannot abort the run.
func (g *Generator) Generate(names []string) error {
	if len(names) == 0 {
		return errors.New(errors.ErrCodeEmptyRoster, "no names to generate")
	}

	for _, name := range names {
		g.page(name)
	}

	g.logger.Info("generated nameplates", "pages", g.Pages())
	return nil
}

// Pages returns the number of pages emitted so far. It is safe to call
// from another goroutine while Generate runs, so progress reporters can
// poll it.
func (g *Generator) Pages() int {
	return int(g.pages.Load())
}

// Save writes the finished document to path.
func (g *Generator) Save(path string) error {
	return g.canvas.Save(path)
}

// page draws both halves of one nameplate.
func (g *Generator) page(name string) {
	p := layout.Plan(g.opts.Geometry, g.opts.Logo, g.opts.Tiers, name)

	g.canvas.AddPage()
	g.pages.Add(1)

	g.region(p.Top, name)
	g.region(p.Bottom, name)

	if g.opts.FoldGuide {
		g.canvas.FoldGuide(g.opts.Geometry.Fold)
	}
}

// region draws the logo and the centered name for one half of the page.
func (g *Generator) region(r layout.Region, name string) {
	if g.opts.LogoPath != "" {
		if err := g.canvas.Image(g.opts.LogoPath, r.Logo); err != nil {
			g.logger.Warn("skipping logo", "path", g.opts.LogoPath, "err", err)
		}
	}

	g.canvas.SetFontSize(r.FontSize)
	width := g.canvas.TextWidth(name)

	if r.Rotation == 180 {
		g.canvas.TextRotated(r.Text, name, width)
		return
	}
	g.canvas.Text(layout.Point{X: r.Text.X - width/2, Y: r.Text.Y}, name)
}
