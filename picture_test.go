package boxplot

import (
	"testing"

	"gonum.org/v1/plot/vg/recorder"
)

func TestPictureIsCached(t *testing.T) {
	it, err := New(Data([][]float64{fixedSample}))
	if err != nil {
		t.Fatal(err)
	}

	var dst recorder.Canvas
	if err := it.Paint(&dst); err != nil {
		t.Fatal(err)
	}
	if len(dst.Actions) == 0 {
		t.Fatal("painting recorded no actions")
	}
	pic := it.pic

	// Further paints and bounds queries replay the same picture.
	it.BoundingRect()
	if err := it.Paint(&dst); err != nil {
		t.Fatal(err)
	}
	if it.pic != pic || it.rebuilds != 1 {
		t.Errorf("picture rebuilt without mutation, rebuilds = %d", it.rebuilds)
	}

	// A mutation drops the picture and the next paint rebuilds it.
	if err := it.SetData(Width(0.5)); err != nil {
		t.Fatal(err)
	}
	if it.state != cacheAbsent {
		t.Error("SetData did not invalidate the cache")
	}
	if err := it.Paint(&dst); err != nil {
		t.Fatal(err)
	}
	if it.pic == pic || it.rebuilds != 2 {
		t.Errorf("picture not rebuilt after mutation, rebuilds = %d", it.rebuilds)
	}
}

func TestOrientationSwap(t *testing.T) {
	data := [][]float64{fixedSample, {10, 20, 30, 40}}

	horiz, err := New(Data(data), Outliers(false))
	if err != nil {
		t.Fatal(err)
	}
	vert, err := New(Data(data), Outliers(false), LocAsX(false))
	if err != nil {
		t.Fatal(err)
	}

	// The swap must be mirrored across every draw op, so the bounds of
	// the two orientations are exact transposes of each other.
	h, v := horiz.BoundingRect(), vert.BoundingRect()
	if !h.X.Equal(v.Y) || !h.Y.Equal(v.X) {
		t.Errorf("bounds not transposed: %v vs %v", h, v)
	}

	if lh, lv := len(horiz.pic.Actions), len(vert.pic.Actions); lh != lv {
		t.Errorf("orientations recorded %d vs %d actions", lh, lv)
	}
}

func TestDeferredOutlierPass(t *testing.T) {
	it, err := New(Data([][]float64{fixedSample}))
	if err != nil {
		t.Fatal(err)
	}
	it.SetScene(&testScene{px: Vec{X: 0.01}, py: Vec{Y: 0.01}})

	var dst recorder.Canvas
	if err := it.Paint(&dst); err != nil {
		t.Fatal(err)
	}

	// The outlier markers are stamped after the cached replay and are
	// not part of the picture itself.
	if len(dst.Actions) <= len(it.pic.Actions) {
		t.Errorf("paint recorded %d actions, picture holds %d; expected extra marker ops",
			len(dst.Actions), len(it.pic.Actions))
	}

	// With outliers hidden the paint is exactly the cached replay.
	if err := it.SetData(Outliers(false)); err != nil {
		t.Fatal(err)
	}
	dst.Reset()
	if err := it.Paint(&dst); err != nil {
		t.Fatal(err)
	}
	if len(dst.Actions) != len(it.pic.Actions) {
		t.Errorf("paint recorded %d actions, picture holds %d; expected equal",
			len(dst.Actions), len(it.pic.Actions))
	}
}

func TestEmptySampleSkipped(t *testing.T) {
	it, err := New(Data([][]float64{{1, 2, 3}, {}, {4, 5, 6}}))
	if err != nil {
		t.Fatal(err)
	}
	br := it.BoundingRect()
	if !br.Valid() {
		t.Fatalf("BoundingRect() = %v", br)
	}
	if len(it.stats) != 2 {
		t.Errorf("got statistics for %d samples, want 2", len(it.stats))
	}
	// The empty sample still occupies its position slot.
	if it.stats[1].pos != 2 {
		t.Errorf("second box at position %g, want 2", it.stats[1].pos)
	}
}
