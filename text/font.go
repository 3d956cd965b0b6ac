package text

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/imdraw/cache"
)

// DefaultSize is the size of a newly created font, in pixels.
const DefaultSize float32 = 16

// advanceCacheSize bounds the number of memoized string widths per font.
const advanceCacheSize = 512

// ErrEmptyFont is returned when font data is empty.
var ErrEmptyFont = errors.New("text: empty font data")

type advanceKey struct {
	s    string
	size float32
}

// Font is a parsed font plus its drawing state.
//
// The drawing state (size, angle, alignment) is not safe for concurrent
// mutation. Measurement methods may be called concurrently.
type Font struct {
	family string
	otf    *opentype.Font
	gtf    *gtfont.Font

	size   float32
	angle  float32
	halign HAlign
	valign VAlign

	advances *cache.Cache[advanceKey, float32]
}

// New parses TrueType or OpenType font data.
func New(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	otf, err := parseOpenType(data)
	if err != nil {
		return nil, err
	}
	gtf, err := parseGoText(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	return &Font{
		family:   familyName(otf),
		otf:      otf,
		gtf:      gtf,
		size:     DefaultSize,
		advances: cache.New[advanceKey, float32](advanceCacheSize),
	}, nil
}

// Load reads and parses a font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return New(data)
}

// Default returns a new instance of Go Regular.
func Default() (*Font, error) {
	return New(goregular.TTF)
}

// Family returns the font family name.
func (f *Font) Family() string { return f.family }

// Size returns the font size in pixels.
func (f *Font) Size() float32 { return f.size }

// SetSize sets the font size. Non-positive sizes are ignored.
func (f *Font) SetSize(size float32) {
	if size > 0 && !math.IsInf(float64(size), 0) {
		f.size = size
	}
}

// Angle returns the rotation in radians, counter-clockwise on screen.
func (f *Font) Angle() float32 { return f.angle }

// SetAngle sets the rotation applied around the text origin.
func (f *Font) SetAngle(rad float32) { f.angle = rad }

// Align returns the horizontal alignment.
func (f *Font) Align() HAlign { return f.halign }

// SetAlign sets the horizontal alignment.
func (f *Font) SetAlign(a HAlign) { f.halign = a }

// VerticalAlign returns the vertical alignment.
func (f *Font) VerticalAlign() VAlign { return f.valign }

// SetVerticalAlign sets the vertical alignment.
func (f *Font) SetVerticalAlign(a VAlign) { f.valign = a }

// Metrics returns vertical metrics at the current size.
func (f *Font) Metrics() Metrics {
	return metricsAt(f.otf, f.size)
}

// Advance returns the shaped width of a single line at the current size.
func (f *Font) Advance(s string) float32 {
	if s == "" {
		return 0
	}
	key := advanceKey{s: s, size: f.size}
	return f.advances.GetOrCreate(key, func() float32 {
		return shapeAdvance(f.gtf, s, f.size, DetectDirection(s))
	})
}

// Measure returns the width and height of s. Lines are split on '\n';
// the width is that of the widest line.
func (f *Font) Measure(s string) (w, h float32) {
	if s == "" {
		return 0, 0
	}
	m := f.Metrics()
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w = max(w, f.Advance(line))
	}
	h = m.Ascent + m.Descent + float32(len(lines)-1)*m.LineHeight()
	return w, h
}

// Origin returns the baseline start of the first line of s when it is
// drawn aligned at (x, y). Screen y grows downward. The alignment offset
// is rotated by the font angle.
func (f *Font) Origin(s string, x, y float32) (float32, float32) {
	w, h := f.Measure(s)
	m := f.Metrics()

	dx := -w * f.halign.factor()
	var dy float32
	switch f.valign {
	case AlignTop:
		dy = m.Ascent
	case AlignMiddle:
		dy = m.Ascent - h/2
	case AlignBottom:
		dy = m.Ascent - h
	}

	if f.angle != 0 {
		sin, cos := math.Sincos(float64(f.angle))
		s32, c32 := float32(sin), float32(cos)
		// Counter-clockwise on a y-down screen.
		dx, dy = dx*c32+dy*s32, -dx*s32+dy*c32
	}
	return x + dx, y + dy
}

// CacheStats returns statistics of the advance cache.
func (f *Font) CacheStats() cache.Stats {
	return f.advances.Stats()
}
