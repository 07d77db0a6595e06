package layout

import (
	"unicode/utf8"

	"github.com/foldprint/foldprint/pkg/errors"
)

// PointsPerMM converts millimetres to PostScript points (1 pt = 1/72 inch).
const PointsPerMM = 72.0 / 25.4

// A4 page extents in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// MM converts a length in millimetres to points.
func MM(v float64) float64 { return v * PointsPerMM }

// Geometry describes the page the nameplate is laid out on.
// Fold is the y coordinate of the horizontal crease.
type Geometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fold   float64 `json:"fold"`
}

// A4 returns the geometry for a portrait A4 page folded at its midline.
func A4() Geometry {
	return Geometry{
		Width:  A4Width,
		Height: A4Height,
		Fold:   A4Height / 2,
	}
}

// Validate checks the geometry invariants: positive extents and a fold
// line strictly inside the page.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "page extents must be positive, got %gx%g", g.Width, g.Height)
	}
	if g.Fold <= 0 || g.Fold >= g.Height {
		return errors.New(errors.ErrCodeInvalidGeometry, "fold line %g outside page height %g", g.Fold, g.Height)
	}
	return nil
}

// LogoSpec describes the square logo footprint stamped on each half.
// Size is the side length of the square; Margin is the inset from the
// page edges. Both are in points and constant for a whole run.
type LogoSpec struct {
	Size   float64 `json:"size"`
	Margin float64 `json:"margin"`
}

// DefaultLogoSpec returns the standard 30mm logo with a 10mm margin.
func DefaultLogoSpec() LogoSpec {
	return LogoSpec{
		Size:   MM(30),
		Margin: MM(10),
	}
}

// LongNameRunes is the rune count above which the medium font tier is
// selected. The threshold is inclusive: a name of exactly this length
// still uses the large tier.
const LongNameRunes = 30

// FontTiers holds the two fixed font sizes used for names, in points.
type FontTiers struct {
	Large  float64 `json:"large"`
	Medium float64 `json:"medium"`
}

// DefaultFontTiers returns the standard 48pt/36pt tiers.
func DefaultFontTiers() FontTiers {
	return FontTiers{Large: 48, Medium: 36}
}

// Select returns the font size for a name: the medium tier when the rune
// count exceeds LongNameRunes, the large tier otherwise. It never fails.
func (t FontTiers) Select(name string) float64 {
	if utf8.RuneCountInString(name) > LongNameRunes {
		return t.Medium
	}
	return t.Large
}
