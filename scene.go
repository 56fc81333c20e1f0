package boxplot

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scene is the minimal scene graph contract an Item needs from its host.
type Scene interface {
	// PixelVectors returns the data-space vectors spanned by one device
	// pixel along the item's local x and y axes. Degenerate vectors are
	// fine and contribute no padding.
	PixelVectors() (px, py Vec)

	// BoundsChanged tells the host that bounds returned earlier are
	// stale. It is called on every data or style mutation.
	BoundsChanged()
}

// ----------------------------------------------------------------------------
// View

// A View couples a drawing canvas with the data region it displays.
// It implements Scene for items drawn on it and replays their pictures
// through the data-to-device transform, which makes it a convenient host
// for tests, demos and simple one-shot renderings.
type View struct {
	Canvas draw.Canvas
	X, Y   Interval
}

// Map maps the data coordinate (x, y) onto the canvas.
func (v *View) Map(x, y float64) vg.Point {
	size := v.Canvas.Size()
	xu := (x - v.X.Min) / (v.X.Max - v.X.Min)
	yu := (y - v.Y.Min) / (v.Y.Max - v.Y.Min)
	return vg.Point{
		X: v.Canvas.Min.X + vg.Length(xu)*size.X,
		Y: v.Canvas.Min.Y + vg.Length(yu)*size.Y,
	}
}

// PixelVectors implements Scene. The returned vectors are axis aligned
// since a View applies no rotation.
func (v *View) PixelVectors() (px, py Vec) {
	size := v.Canvas.Size()
	if size.X > 0 {
		px.X = (v.X.Max - v.X.Min) / float64(size.X)
	}
	if size.Y > 0 {
		py.Y = (v.Y.Max - v.Y.Min) / float64(size.Y)
	}
	return px, py
}

// BoundsChanged implements Scene. A View draws immediately and keeps no
// layout state, so there is nothing to invalidate.
func (v *View) BoundsChanged() {}

// Draw paints the item onto the view's canvas.
func (v *View) Draw(it *Item) error {
	c := v.Canvas
	size := c.Size()
	sx := float64(size.X) / (v.X.Max - v.X.Min)
	sy := float64(size.Y) / (v.Y.Max - v.Y.Min)

	c.Push()
	c.Translate(c.Min)
	c.Scale(sx, sy)
	c.Translate(vg.Point{X: vg.Length(-v.X.Min), Y: vg.Length(-v.Y.Min)})
	err := it.Paint(c)
	c.Pop()
	return err
}
