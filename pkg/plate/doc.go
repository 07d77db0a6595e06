// Package plate turns a roster of names into a multi-page nameplate
// document: one A4 page per name, each laid out by pkg/layout and drawn
// onto a rendering surface.
//
// The surface is abstracted behind the Canvas interface. The production
// implementation draws PDF pages with go-pdf/fpdf; tests substitute a
// recording fake. Generation is strictly sequential: each page's draw
// calls complete before the next page begins, and the canvas is owned
// exclusively by one Generator.
package plate
