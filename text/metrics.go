package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics holds vertical font metrics in pixels at a given size.
// Descent is positive and measured downward from the baseline.
type Metrics struct {
	Ascent    float32
	Descent   float32
	LineGap   float32
	XHeight   float32
	CapHeight float32
}

// LineHeight returns the baseline-to-baseline distance.
func (m Metrics) LineHeight() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

// parseOpenType parses data with golang.org/x/image/font/opentype.
func parseOpenType(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return f, nil
}

// familyName returns the font family, or "" if the name table lacks one.
func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// metricsAt reads vertical metrics at a pixel size (72 DPI, so ppem
// equals size).
func metricsAt(f *opentype.Font, size float32) Metrics {
	var buf sfnt.Buffer

	m, err := f.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		LineGap:   fixedToFloat(m.Height) - fixedToFloat(m.Ascent) - fixedToFloat(m.Descent),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// floatToFixed converts a float32 size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
