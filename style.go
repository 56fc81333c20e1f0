package boxplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Pen describes how lines and outlines are stroked. A Pen with a nil
// Color draws nothing.
type Pen struct {
	draw.LineStyle

	// Cosmetic marks the width as a device pixel quantity which does not
	// scale with the view transform. Cosmetic widths contribute to the
	// bounding region through the device pixel padding, geometric widths
	// widen it directly in data units.
	Cosmetic bool
}

// NewPen returns a cosmetic pen of the given color and width.
func NewPen(c color.Color, w vg.Length) Pen {
	return Pen{
		LineStyle: draw.LineStyle{Color: c, Width: w},
		Cosmetic:  true,
	}
}

// GeometricPen returns a pen whose width is measured in data units and
// scales with the view transform.
func GeometricPen(c color.Color, w vg.Length) Pen {
	return Pen{LineStyle: draw.LineStyle{Color: c, Width: w}}
}

// halfStroke is the bounding contribution of a stroke: half its width,
// corrected for the diagonal corner of a square cap.
func (p Pen) halfStroke() float64 {
	if p.Color == nil {
		return 0
	}
	return cornerFactor * 0.5 * float64(p.Width)
}

// cornerFactor accounts for the diagonal corner of a square stroke cap or
// of the unit marker box: sqrt(2)/2, rounded the way the rest of the
// toolkit does.
const cornerFactor = 0.7072

func defaultPen() Pen {
	return NewPen(color.RGBA{R: 0xff, G: 0xff, A: 0xff}, 1) // yellow
}

func defaultMedianPen() Pen {
	return NewPen(color.RGBA{R: 0xff, A: 0xff}, 1) // red
}
