package boxplot

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Symbols maps the marker names accepted by the Symbol option to their
// shapes. All shapes fit the unit square centered on the origin; the
// geometry builder scales them to the configured symbol size in device
// pixels. A custom shape can be supplied through SymbolPath instead.
var Symbols = map[string]vg.Path{
	"circle":   circlePath(),
	"square":   polygon(pt(-0.5, -0.5), pt(0.5, -0.5), pt(0.5, 0.5), pt(-0.5, 0.5)),
	"diamond":  polygon(pt(0, -0.5), pt(0.5, 0), pt(0, 0.5), pt(-0.5, 0)),
	"triangle": polygon(pt(0, 0.5), pt(0.433, -0.25), pt(-0.433, -0.25)),
	"plus":     plusPath(0.125),
	"cross":    crossPath(0.125),
}

func pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(y)}
}

func polygon(pts ...vg.Point) vg.Path {
	var p vg.Path
	p.Move(pts[0])
	for _, q := range pts[1:] {
		p.Line(q)
	}
	p.Close()
	return p
}

func circlePath() vg.Path {
	var p vg.Path
	p.Move(pt(0.5, 0))
	p.Arc(pt(0, 0), 0.5, 0, 2*math.Pi)
	p.Close()
	return p
}

func plusPoints(a float64) []vg.Point {
	return []vg.Point{
		pt(-a, 0.5), pt(a, 0.5), pt(a, a), pt(0.5, a), pt(0.5, -a),
		pt(a, -a), pt(a, -0.5), pt(-a, -0.5), pt(-a, -a), pt(-0.5, -a),
		pt(-0.5, a), pt(-a, a),
	}
}

// plusPath returns a plus sign with arms of half width a.
func plusPath(a float64) vg.Path {
	return polygon(plusPoints(a)...)
}

// crossPath returns plusPath rotated by 45 degrees.
func crossPath(a float64) vg.Path {
	s, c := math.Sqrt2/2, math.Sqrt2/2
	pts := plusPoints(a)
	for i, q := range pts {
		x, y := float64(q.X), float64(q.Y)
		pts[i] = pt(c*x-s*y, s*x+c*y)
	}
	return polygon(pts...)
}
