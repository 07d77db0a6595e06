package plate

import "github.com/foldprint/foldprint/pkg/layout"

// Canvas is the rendering surface nameplate pages are drawn onto.
//
// Coordinates follow pkg/layout conventions: points, origin at the
// bottom-left corner, y up. Implementations convert to their own device
// space.
type Canvas interface {
	// AddPage starts a new page.
	AddPage()

	// SetFontSize selects the active font at the given size in points.
	SetFontSize(size float64)

	// TextWidth returns the rendered width of s at the active font size.
	TextWidth(s string) float64

	// Text draws s with its baseline starting at p.
	Text(p layout.Point, s string)

	// TextRotated draws s rotated 180 degrees about the anchor p, with
	// the draw origin offset by -width/2 along the reversed x axis so the
	// run stays centered on the anchor. The rotation must be scoped to
	// this single draw and never leak into subsequent operations.
	TextRotated(p layout.Point, s string, width float64)

	// Image draws the image at path fitted inside r, preserving the
	// aspect ratio and centering inside the footprint. A failure to load
	// or draw the image is returned as an error and must leave the
	// canvas usable for further drawing.
	Image(path string, r layout.Rect) error

	// FoldGuide draws a dashed calibration line across the page at
	// height y.
	FoldGuide(y float64)

	// Save writes the finished document to path and closes it.
	Save(path string) error
}
