package boxplot

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/recorder"
)

// rebuild recomputes the statistics of every sample and records the box,
// whisker and median geometry into a fresh picture, accumulating the raw
// bounds and the device pixel padding along the way. Outlier markers are
// not part of the picture: they are stamped in a separate pass at paint
// time so that their device pixel size can follow the current zoom and
// their style can be rebound without touching the cache.
func (it *Item) rebuild() {
	it.pic = new(recorder.Canvas)
	it.stats = it.stats[:0]
	it.outliers = make(map[float64][]float64)
	it.bounds = NewRect()
	it.pad = 0

	data := it.cfg.data
	if len(data) == 0 {
		return
	}
	loc := it.cfg.locations()

	hw := it.cfg.pen.halfStroke()
	for i, sample := range data {
		if len(sample) == 0 {
			continue
		}
		st := summarize(sample, it.whisker)
		st.pos = loc[i]
		it.stats = append(it.stats, st)
		if len(st.outliers) > 0 {
			it.outliers[st.pos] = st.outliers
		}

		it.drawSample(st)

		rect := it.orientRect(st.pos-it.cfg.width/2, st.pos+it.cfg.width/2, st.lower, st.upper)
		if it.cfg.pen.Cosmetic {
			if hw > it.pad {
				it.pad = hw
			}
		} else {
			rect.Pad(hw, hw)
		}
		it.bounds.Union(rect)
	}
}

// orient maps a (location, value) pair to an (x, y) data point according
// to the configured orientation.
func (it *Item) orient(pos, val float64) vg.Point {
	if it.cfg.locAsX {
		return vg.Point{X: vg.Length(pos), Y: vg.Length(val)}
	}
	return vg.Point{X: vg.Length(val), Y: vg.Length(pos)}
}

// orientRect builds a Rect from a location interval and a value interval,
// swapped like orient.
func (it *Item) orientRect(pos0, pos1, val0, val1 float64) Rect {
	r := NewRect()
	if it.cfg.locAsX {
		r.X.Update(pos0, pos1)
		r.Y.Update(val0, val1)
	} else {
		r.X.Update(val0, val1)
		r.Y.Update(pos0, pos1)
	}
	return r
}

// drawSample records the geometry of one box in drawing order: whisker
// caps, whisker stems, box, median line.
func (it *Item) drawSample(st sampleStats) {
	c := it.pic
	cfg := &it.cfg
	w := cfg.width

	if applyPen(c, cfg.pen) {
		// Caps at the whisker boundaries, a quarter width to each side.
		strokeLine(c, it.orient(st.pos-w/4, st.upper), it.orient(st.pos+w/4, st.upper))
		strokeLine(c, it.orient(st.pos-w/4, st.lower), it.orient(st.pos+w/4, st.lower))
		// Stems connecting the caps to the box edges.
		strokeLine(c, it.orient(st.pos, st.upper), it.orient(st.pos, st.p75))
		strokeLine(c, it.orient(st.pos, st.lower), it.orient(st.pos, st.p25))
	}

	box := vg.Rectangle{
		Min: it.orient(st.pos-w/2, st.p25),
		Max: it.orient(st.pos+w/2, st.p75),
	}
	if cfg.brush != nil {
		c.SetColor(cfg.brush)
		c.Fill(box.Path())
	}
	if applyPen(c, cfg.pen) {
		c.Stroke(box.Path())
	}

	if applyPen(c, cfg.medianPen) {
		strokeLine(c, it.orient(st.pos-w/2, st.median), it.orient(st.pos+w/2, st.median))
	}
}

// paintOutliers stamps one marker per outlier observation onto c. The
// marker shape fits the unit square and is scaled to the symbol size in
// device pixels using the current pixel lengths, keeping it constant
// under zoom. Without a usable pixel scale there is nothing to stamp.
func (it *Item) paintOutliers(c vg.Canvas) {
	if !it.cfg.outlier || len(it.outliers) == 0 {
		return
	}
	px, py := it.pixelLengths()
	sx, sy := px*it.cfg.symbolSize, py*it.cfg.symbolSize
	if sx == 0 && sy == 0 {
		return
	}

	shape := it.cfg.symbolShape()
	pen, brush := it.cfg.symbolPen, it.cfg.symbolBrush
	for _, st := range it.stats {
		for _, v := range it.outliers[st.pos] {
			c.Push()
			c.Translate(it.orient(st.pos, v))
			c.Scale(sx, sy)
			if brush != nil {
				c.SetColor(brush)
				c.Fill(shape)
			}
			if applyPen(c, pen) {
				c.Stroke(shape)
			}
			c.Pop()
		}
	}
}

// applyPen installs p on c and reports whether it draws at all.
func applyPen(c vg.Canvas, p Pen) bool {
	if p.Color == nil {
		return false
	}
	c.SetColor(p.Color)
	c.SetLineWidth(p.Width)
	c.SetLineDash(p.Dashes, p.DashOffs)
	return true
}

func strokeLine(c vg.Canvas, a, b vg.Point) {
	var p vg.Path
	p.Move(a)
	p.Line(b)
	c.Stroke(p)
}
