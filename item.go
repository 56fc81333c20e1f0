package boxplot

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/recorder"
)

// cacheState tracks the lifecycle of the cached picture and its bounds
// artifacts, which are always rebuilt together.
type cacheState int

const (
	cacheAbsent cacheState = iota
	cacheBuilding
	cacheReady
)

// An Item is one box-and-whisker chart primitive. It owns its style
// options, the cached picture and the bounds accumulators. An Item is not
// safe for concurrent use; all methods must run on the thread owning the
// host surface.
type Item struct {
	cfg     config
	whisker WhiskerFunc
	scene   Scene

	state    cacheState
	rebuilds int

	pic      *recorder.Canvas
	stats    []sampleStats
	outliers map[float64][]float64 // outlier observations keyed by position
	bounds   Rect                  // data-space bounds of box and whisker geometry
	pad      float64               // device pixel padding from cosmetic strokes
}

// New creates an Item with the IQR1p5 whisker rule and applies the given
// options on top of the defaults.
func New(opts ...Option) (*Item, error) {
	it := &Item{
		cfg:     defaultConfig(),
		whisker: IQR1p5,
		bounds:  NewRect(),
	}
	if err := it.SetData(opts...); err != nil {
		return nil, err
	}
	return it, nil
}

// SetScene attaches the item to its host scene. A nil scene is allowed
// and makes all device pixel padding resolve to zero.
func (it *Item) SetScene(s Scene) {
	it.scene = s
}

// SetData merges the given options into the current configuration.
// Fields not covered by an option keep their previous value. If the
// merged configuration is invalid, for example because loc and data
// lengths disagree, SetData fails without touching the item: the previous
// configuration and any cached picture stay in effect.
func (it *Item) SetData(opts ...Option) error {
	cfg := it.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	it.cfg = cfg
	it.invalidate()
	return nil
}

// SetWhiskerFunc installs a custom whisker boundary rule. The candidate
// is probed before installation; if it misbehaves an error describing the
// failure is returned and the previously installed rule stays active,
// leaving the cache untouched.
func (it *Item) SetWhiskerFunc(f WhiskerFunc) error {
	if err := validateWhiskerFunc(f); err != nil {
		return err
	}
	it.whisker = f
	it.invalidate()
	return nil
}

func (it *Item) invalidate() {
	it.state = cacheAbsent
	it.pic = nil
	if it.scene != nil {
		it.scene.BoundsChanged()
	}
}

// ensure rebuilds the cached picture and bounds artifacts if absent.
func (it *Item) ensure() {
	if it.state != cacheAbsent {
		return
	}
	it.state = cacheBuilding
	it.rebuild()
	it.rebuilds++
	it.state = cacheReady
}

// Paint replays the cached picture onto c, rebuilding it first if needed,
// and then stamps the outlier markers. The canvas is expected to be set
// up so that canvas units are data units.
func (it *Item) Paint(c vg.Canvas) error {
	it.ensure()
	if err := it.pic.ReplayOn(c); err != nil {
		return err
	}
	it.paintOutliers(c)
	return nil
}

// BoundingRect returns the data-space rectangle enclosing everything the
// item draws: the raw box and whisker bounds grown by the device pixel
// padding and, if outliers are shown, the outlier positions grown by the
// marker footprint. Device pixel quantities are resolved using the
// scene's current pixel vectors.
func (it *Item) BoundingRect() Rect {
	it.ensure()

	px, py := it.pixelLengths()
	rect := it.bounds
	if it.pad > 0 {
		rect.Pad(px*it.pad, py*it.pad)
	}

	if it.cfg.outlier && len(it.outliers) > 0 {
		spad := cornerFactor * it.cfg.symbolSize
		spx, spy := px*spad, py*spad
		for pos, vals := range it.outliers {
			omin, omax := vals[0], vals[0]
			for _, v := range vals[1:] {
				if v < omin {
					omin = v
				}
				if v > omax {
					omax = v
				}
			}
			r := it.orientRect(pos, pos, omin, omax)
			r.Pad(spx, spy)
			rect.Union(r)
		}
	}

	return rect
}

// DataBounds returns the extent of the data itself along one axis
// (0 for x, 1 for y), without any stroke or marker padding. When outliers
// are shown the extent covers every observation, otherwise only the
// whisker boundaries. The location axis is padded by half the box width.
func (it *Item) DataBounds(axis int) Interval {
	data := it.cfg.data
	if len(data) == 0 {
		return unsetInterval()
	}

	val := unsetInterval()
	for _, sample := range data {
		if len(sample) == 0 {
			continue
		}
		if it.cfg.outlier {
			for _, v := range sample {
				val.Update(v)
			}
		} else {
			lower, upper := it.whisker(sample)
			val.Update(lower, upper)
		}
	}

	pos := unsetInterval()
	for _, p := range it.cfg.locations() {
		pos.Update(p)
	}
	pos.Pad(it.cfg.width / 2)

	x, y := pos, val
	if !it.cfg.locAsX {
		x, y = val, pos
	}
	if axis == 0 {
		return x
	}
	return y
}

// PixelPadding returns the device pixel padding accumulated from cosmetic
// strokes, for hosts that compose bounds themselves.
func (it *Item) PixelPadding() float64 {
	it.ensure()
	return it.pad
}

func (it *Item) pixelLengths() (px, py float64) {
	if it.scene == nil {
		return 0, 0
	}
	vx, vy := it.scene.PixelVectors()
	return vx.Length(), vy.Length()
}
