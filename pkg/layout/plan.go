package layout

// Point is a position on the page.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Region is the computed placement for one half of the page: where the
// logo goes, where the text anchor sits, how the text is rotated, and at
// what size it is drawn.
//
// Text is the anchor the glyph run is centered on. The drawing surface
// measures the rendered width and offsets the draw origin by -width/2 so
// the run is visually centered on the anchor. For Rotation 180 the surface
// must rotate its coordinate frame about the anchor before drawing and
// restore it afterwards, so the transform never leaks into later draws.
type Region struct {
	Logo     Rect    `json:"logo"`
	Text     Point   `json:"text"`
	Rotation float64 `json:"rotation"`
	FontSize float64 `json:"fontSize"`
}

// Placement is the full per-name layout: one region per page half.
// It is a derived value, recomputed fresh for every name.
type Placement struct {
	Name   string `json:"name"`
	Top    Region `json:"top"`
	Bottom Region `json:"bottom"`
}

// TopRegion computes the upright half above the fold. The logo is inset
// from the left edge just above the crease; the text is centered in the
// band between the fold and the top of the page.
func TopRegion(g Geometry, l LogoSpec, t FontTiers, name string) Region {
	return Region{
		Logo: Rect{
			X: l.Margin,
			Y: g.Fold + l.Margin,
			W: l.Size,
			H: l.Size,
		},
		Text: Point{
			X: g.Width / 2,
			Y: g.Fold + (g.Height-g.Fold)/2,
		},
		Rotation: 0,
		FontSize: t.Select(name),
	}
}

// BottomRegion computes the rotated half below the fold. The logo is
// inset from the right edge just below the crease, mirroring the top
// region's logo so both land in the same corner after the physical flip.
// The text anchor sits at the center of the bottom band and is drawn
// rotated 180 degrees.
func BottomRegion(g Geometry, l LogoSpec, t FontTiers, name string) Region {
	return Region{
		Logo: Rect{
			X: g.Width - l.Margin - l.Size,
			Y: g.Fold - l.Margin - l.Size,
			W: l.Size,
			H: l.Size,
		},
		Text: Point{
			X: g.Width / 2,
			Y: g.Fold / 2,
		},
		Rotation: 180,
		FontSize: t.Select(name),
	}
}

// Plan computes the complete placement for one name.
func Plan(g Geometry, l LogoSpec, t FontTiers, name string) Placement {
	return Placement{
		Name:   name,
		Top:    TopRegion(g, l, t, name),
		Bottom: BottomRegion(g, l, t, name),
	}
}
