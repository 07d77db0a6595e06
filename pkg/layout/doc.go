// Package layout computes placement geometry for foldable nameplates.
//
// A nameplate is one A4 page folded along its horizontal midline. The top
// half of the page carries the name upright; the bottom half carries the
// same name rotated 180 degrees, so that after folding the card reads
// correctly from both sides of the table. A square logo sits near the fold
// on each half, positioned to land in the top-left corner of both faces
// once the page is folded.
//
// All functions in this package are pure: the same geometry, logo spec and
// name always produce the same placement, with no hidden state.
//
// Coordinates are in PostScript points with the origin at the bottom-left
// corner of the page and the y axis pointing up. Rendering surfaces that
// use a different device space (for example PDF canvases with a top-left
// origin) are responsible for the conversion.
package layout
