// Package text provides the fonts used to draw strings and labels.
//
// A [Font] bundles a parsed OpenType font with the per-font drawing state
// the immediate-mode layer keeps: size, rotation angle and horizontal and
// vertical alignment. It measures strings but never rasterizes glyphs;
// glyph rendering belongs to the device that receives text draws.
//
// Measurement uses two libraries:
//
//   - golang.org/x/image/font/opentype for vertical metrics (ascent,
//     descent, line gap)
//   - github.com/go-text/typesetting for shaped advances, so kerning and
//     ligatures are reflected in string widths
//
// Shaped advances are memoized per font in an LRU cache, since the same
// strings are typically measured every frame.
//
// Paragraph direction is detected with golang.org/x/text/unicode/bidi.
//
// The default font is Go Regular, embedded through x/image/font/gofont:
//
//	f, err := text.Default()
//	f.SetSize(24)
//	f.SetAlign(text.AlignCenter)
//	w, h := f.Measure("Hello")
package text
