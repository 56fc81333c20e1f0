package boxplot

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// fixedSample has hand-computed interpolated percentiles:
// p25 = 3.25, median = 5.5, p75 = 7.75.
var fixedSample = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

var percentileTests = []struct {
	sample []float64
	p      float64
	want   float64
}{
	{fixedSample, 25, 3.25},
	{fixedSample, 50, 5.5},
	{fixedSample, 75, 7.75},
	{fixedSample, 0, 1},
	{fixedSample, 100, 100},
	{[]float64{7}, 50, 7},
	{[]float64{1, 2}, 50, 1.5},
	{[]float64{1, 2, 3}, 50, 2},
}

func TestPercentile(t *testing.T) {
	for i, tc := range percentileTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := percentile(sortedCopy(tc.sample), tc.p)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("percentile(%v, %g) mismatch (-want +got):\n%s",
					tc.sample, tc.p, diff)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	st := summarize(fixedSample, IQR1p5)

	want := sampleStats{
		p25: 3.25, median: 5.5, p75: 7.75,
		lower: 1, upper: 9,
		outliers: []float64{100},
	}
	if diff := cmp.Diff(want, st,
		cmp.AllowUnexported(sampleStats{}),
		cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("summarize mismatch (-want +got):\n%s", diff)
	}

	// Ordering invariant of the five summary values.
	if !(st.lower <= st.p25 && st.p25 <= st.median &&
		st.median <= st.p75 && st.p75 <= st.upper) {
		t.Errorf("summary out of order: %+v", st)
	}
}

// TestOutlierPartition checks that the outliers are exactly the complement
// of [lower, upper]: no inside value is reported and every outside value is.
func TestOutlierPartition(t *testing.T) {
	sample := []float64{-40, 1, 2, 3, 4, 5, 6, 7, 8, 9, 55, 100}
	st := summarize(sample, IQR1p5)

	isOutlier := make(map[float64]bool)
	for _, o := range st.outliers {
		isOutlier[o] = true
	}
	for _, x := range sample {
		outside := x < st.lower || x > st.upper
		if outside != isOutlier[x] {
			t.Errorf("value %g: outside [%g, %g] is %t but reported as outlier is %t",
				x, st.lower, st.upper, outside, isOutlier[x])
		}
	}
}
