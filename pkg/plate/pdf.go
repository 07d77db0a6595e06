package plate

import (
	"image"
	"math"
	"os"

	// Raster formats the logo loader understands.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/go-pdf/fpdf"

	"github.com/foldprint/foldprint/pkg/errors"
	"github.com/foldprint/foldprint/pkg/layout"
)

// fontFamily is the registry name used for the caller-supplied TTF font.
const fontFamily = "nameplate"

// fallbackFont is the built-in core font used when TTF registration fails.
const fallbackFont = "Helvetica"

// pdfCanvas implements Canvas on top of go-pdf/fpdf.
//
// fpdf uses a top-left origin with y pointing down, so every y coordinate
// from the layout space is flipped through devY. fpdf also carries a
// sticky internal error; pdfCanvas clears it after a failed image draw so
// one bad asset cannot poison the rest of the document.
type pdfCanvas struct {
	pdf       *fpdf.Fpdf
	width     float64
	height    float64
	font      string
	translate func(string) string // identity for UTF-8 fonts, cp1252 mapping for core fonts
}

// NewPDFCanvas creates a PDF surface with the given page geometry and
// registers the TTF font at fontPath. When the font cannot be registered
// the canvas falls back to the built-in Helvetica and logs a warning; the
// run continues.
func NewPDFCanvas(geo layout.Geometry, fontPath string, logger *log.Logger) Canvas {
	if logger == nil {
		logger = log.Default()
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geo.Width, Ht: geo.Height},
	})
	pdf.SetAutoPageBreak(false, 0)

	c := &pdfCanvas{
		pdf:       pdf,
		width:     geo.Width,
		height:    geo.Height,
		font:      fontFamily,
		translate: func(s string) string { return s },
	}

	pdf.AddUTF8Font(fontFamily, "", fontPath)
	if pdf.Err() {
		logger.Warn("font unavailable, substituting built-in default",
			"path", fontPath, "fallback", fallbackFont, "err", pdf.Error())
		pdf.ClearError()
		c.font = fallbackFont
		c.translate = pdf.UnicodeTranslatorFromDescriptor("")
	}

	return c
}

// devY flips a layout-space y coordinate (origin bottom-left, y up) into
// fpdf device space (origin top-left, y down).
func (c *pdfCanvas) devY(y float64) float64 {
	return c.height - y
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFontSize(size float64) {
	c.pdf.SetFont(c.font, "", size)
}

func (c *pdfCanvas) TextWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.translate(s))
}

func (c *pdfCanvas) Text(p layout.Point, s string) {
	c.pdf.Text(p.X, c.devY(p.Y), c.translate(s))
}

func (c *pdfCanvas) TextRotated(p layout.Point, s string, width float64) {
	x, y := p.X, c.devY(p.Y)
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(180, x, y)
	c.pdf.Text(x-width/2, y, c.translate(s))
	c.pdf.TransformEnd()
}

func (c *pdfCanvas) Image(path string, r layout.Rect) error {
	fit, err := fitImage(path, r)
	if err != nil {
		return err
	}

	c.pdf.ImageOptions(path, fit.X, c.devY(fit.Top()), fit.W, fit.H, false, fpdf.ImageOptions{}, 0, "")
	if c.pdf.Err() {
		drawErr := c.pdf.Error()
		c.pdf.ClearError()
		return errors.Wrap(errors.ErrCodeAssetUnavailable, drawErr, "draw image %q", path)
	}
	return nil
}

func (c *pdfCanvas) FoldGuide(y float64) {
	c.pdf.SetDrawColor(160, 160, 160)
	c.pdf.SetDashPattern([]float64{3, 3}, 0)
	c.pdf.Line(0, c.devY(y), c.width, c.devY(y))
	c.pdf.SetDashPattern([]float64{}, 0)
}

func (c *pdfCanvas) Save(path string) error {
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "write document %q", path)
	}
	return nil
}

// fitImage probes the raster image at path and returns the largest
// rectangle with the image's aspect ratio that fits inside bounds,
// centered within it.
func fitImage(path string, bounds layout.Rect) (layout.Rect, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Rect{}, errors.New(errors.ErrCodeAssetUnavailable, "image %q not found", path)
		}
		return layout.Rect{}, errors.Wrap(errors.ErrCodeAssetUnavailable, err, "open image %q", path)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return layout.Rect{}, errors.Wrap(errors.ErrCodeAssetUnavailable, err, "decode image %q", path)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return layout.Rect{}, errors.New(errors.ErrCodeAssetUnavailable, "image %q has empty dimensions", path)
	}

	scale := math.Min(bounds.W/float64(cfg.Width), bounds.H/float64(cfg.Height))
	w := float64(cfg.Width) * scale
	h := float64(cfg.Height) * scale

	return layout.Rect{
		X: bounds.X + (bounds.W-w)/2,
		Y: bounds.Y + (bounds.H-h)/2,
		W: w,
		H: h,
	}, nil
}
