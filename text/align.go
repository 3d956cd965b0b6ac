package text

import "fmt"

// HAlign is horizontal alignment relative to the text origin.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return fmt.Sprintf("HAlign(%d)", int(a))
	}
}

// factor returns the fraction of the width shifted left of the origin.
func (a HAlign) factor() float32 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// VAlign is vertical alignment relative to the text origin.
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

// String returns the alignment name.
func (a VAlign) String() string {
	switch a {
	case AlignBaseline:
		return "Baseline"
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		return fmt.Sprintf("VAlign(%d)", int(a))
	}
}
