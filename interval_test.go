package boxplot

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	r := NewRect()
	if r.Valid() {
		t.Fatalf("fresh rect %v should be invalid", r)
	}

	s := NewRect()
	s.X.Update(1, 2)
	s.Y.Update(-1, 3)
	r.Union(s)
	if !r.X.Equal(Interval{1, 2}) || !r.Y.Equal(Interval{-1, 3}) {
		t.Errorf("union with %v = %v", s, r)
	}

	s = NewRect()
	s.X.Update(0, 5)
	s.Y.Update(2, 2)
	r.Union(s)
	if !r.X.Equal(Interval{0, 5}) || !r.Y.Equal(Interval{-1, 3}) {
		t.Errorf("union with %v = %v", s, r)
	}

	r.Pad(0.5, 1)
	if !r.X.Equal(Interval{-0.5, 5.5}) || !r.Y.Equal(Interval{-2, 4}) {
		t.Errorf("after padding: %v", r)
	}
}

var vecLengthTests = []struct {
	v    Vec
	want float64
}{
	{Vec{3, 4}, 5},
	{Vec{0, 0}, 0},
	{Vec{0, 2}, 2},
	{Vec{1e308, 1e308}, 0}, // length overflows, must yield no padding
	{Vec{nan, 1}, 0},
}

func TestVecLength(t *testing.T) {
	for i, tc := range vecLengthTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.v.Length(); got != tc.want {
				t.Errorf("%v.Length() = %g, want %g", tc.v, got, tc.want)
			}
		})
	}
}
