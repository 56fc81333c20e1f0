package boxplot

import "math"

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Pad grows both edges of i by d. Unset intervals stay unset.
func (i *Interval) Pad(d float64) {
	i.Min -= d
	i.Max += d
}

// Valid reports whether both edges of i are determined.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// Rect

// Rect is an axis aligned rectangle in data coordinates.
// A freshly made Rect has both intervals unset.
type Rect struct {
	X, Y Interval
}

// NewRect returns a Rect with both intervals unset.
func NewRect() Rect {
	return Rect{X: unsetInterval(), Y: unsetInterval()}
}

// Union expands r to include s.
func (r *Rect) Union(s Rect) {
	r.X.Update(s.X.Min, s.X.Max)
	r.Y.Update(s.Y.Min, s.Y.Max)
}

// Pad grows r by dx in the x direction and dy in the y direction.
func (r *Rect) Pad(dx, dy float64) {
	r.X.Pad(dx)
	r.Y.Pad(dy)
}

// Valid reports whether all four edges of r are determined.
func (r Rect) Valid() bool {
	return r.X.Valid() && r.Y.Valid()
}

// ----------------------------------------------------------------------------
// Vec

// Vec is a vector in data coordinates, typically the data-space extent of
// one device pixel along one of the item's local axes.
type Vec struct {
	X, Y float64
}

// Length returns the Euclidean length of v. Degenerate vectors and vectors
// whose length overflows or is otherwise not a finite number yield 0 so
// that they contribute no padding.
func (v Vec) Length() float64 {
	l := math.Hypot(v.X, v.Y)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return 0
	}
	return l
}
