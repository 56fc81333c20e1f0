package boxplot

import (
	"math"
	"sort"
)

// sampleStats is the full statistical summary of one sample, valid only
// relative to the options and whisker rule in effect when it was computed.
type sampleStats struct {
	pos              float64
	p25, median, p75 float64
	lower, upper     float64
	outliers         []float64
}

func sortedCopy(sample []float64) []float64 {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	return sorted
}

// percentile computes the p-th percentile of the sorted sample using
// linear interpolation between the two nearest ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	k := int(math.Floor(rank))
	if k+1 >= n {
		return sorted[n-1]
	}
	frac := rank - float64(k)
	return sorted[k] + frac*(sorted[k+1]-sorted[k])
}

// summarize computes quartiles, whisker boundaries and outliers of one
// sample. Outliers are the observations strictly outside [lower, upper].
func summarize(sample []float64, whisker WhiskerFunc) sampleStats {
	sorted := sortedCopy(sample)
	st := sampleStats{
		p25:    percentile(sorted, 25),
		median: percentile(sorted, 50),
		p75:    percentile(sorted, 75),
	}
	st.lower, st.upper = whisker(sample)
	for _, v := range sample {
		if v < st.lower || v > st.upper {
			st.outliers = append(st.outliers, v)
		}
	}
	return st
}
