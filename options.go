package boxplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
)

// config holds the complete render configuration of an Item. Options are
// merged into it field by field; fields not touched by an option keep
// their previous value.
type config struct {
	loc    []float64
	data   [][]float64
	locAsX bool
	width  float64

	pen       Pen
	brush     color.Color
	medianPen Pen

	outlier     bool
	symbol      string
	symbolPath  vg.Path
	symbolSize  float64
	symbolPen   Pen
	symbolBrush color.Color
}

func defaultConfig() config {
	return config{
		locAsX:     true,
		width:      0.8,
		pen:        defaultPen(),
		medianPen:  defaultMedianPen(),
		outlier:    true,
		symbol:     "circle",
		symbolSize: 10,
	}
}

// validate checks the cross-field invariants of a merged configuration.
func (c *config) validate() error {
	if len(c.data) > 0 && len(c.loc) > 0 && len(c.loc) != len(c.data) {
		return fmt.Errorf("boxplot: length of loc (%d) and data (%d) must be the same",
			len(c.loc), len(c.data))
	}
	return nil
}

// locations returns the box positions, generating 0..n-1 if none were
// supplied explicitly.
func (c *config) locations() []float64 {
	if len(c.loc) > 0 {
		return c.loc
	}
	loc := make([]float64, len(c.data))
	for i := range loc {
		loc[i] = float64(i)
	}
	return loc
}

// symbolShape resolves the configured marker shape: a custom path wins,
// then the named symbol, falling back to a circle for unknown names.
func (c *config) symbolShape() vg.Path {
	if len(c.symbolPath) > 0 {
		return c.symbolPath
	}
	if p, ok := Symbols[c.symbol]; ok {
		return p
	}
	return Symbols["circle"]
}

// An Option changes one field of an Item's configuration.
type Option func(*config)

// Data sets the samples, one per box. The caller must make sure no
// observation is NaN.
func Data(samples [][]float64) Option {
	return func(c *config) { c.data = samples }
}

// Loc sets the box positions. Its length must match the number of samples.
func Loc(loc []float64) Option {
	return func(c *config) { c.loc = loc }
}

// LocAsX selects the orientation: if true (the default) the positions run
// along the x axis and the sample values along y, otherwise the axes are
// swapped.
func LocAsX(asX bool) Option {
	return func(c *config) { c.locAsX = asX }
}

// Width sets the box width in data units. Default 0.8.
func Width(w float64) Option {
	return func(c *config) { c.width = w }
}

// Outline sets the pen for box outlines and whiskers. Default is a
// cosmetic yellow pen.
func Outline(p Pen) Option {
	return func(c *config) { c.pen = p }
}

// Brush sets the box fill color. Default is no fill.
func Brush(b color.Color) Option {
	return func(c *config) { c.brush = b }
}

// MedianPen sets the pen for the median line. Default is a cosmetic
// red pen.
func MedianPen(p Pen) Option {
	return func(c *config) { c.medianPen = p }
}

// Outliers controls whether outlier markers are drawn. Default true.
func Outliers(show bool) Option {
	return func(c *config) { c.outlier = show }
}

// Symbol selects the outlier marker by name, see Symbols. Default "circle".
func Symbol(name string) Option {
	return func(c *config) { c.symbol = name }
}

// SymbolPath sets a custom outlier marker shape. The path should fit the
// unit square centered on the origin; it is scaled to the symbol size.
func SymbolPath(p vg.Path) Option {
	return func(c *config) { c.symbolPath = p }
}

// SymbolSize sets the outlier marker size in device pixels. Default 10.
func SymbolSize(s float64) Option {
	return func(c *config) { c.symbolSize = s }
}

// SymbolPen sets the pen for outlier marker outlines.
func SymbolPen(p Pen) Option {
	return func(c *config) { c.symbolPen = p }
}

// SymbolBrush sets the fill color of outlier markers.
func SymbolBrush(b color.Color) Option {
	return func(c *config) { c.symbolBrush = b }
}
