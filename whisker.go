package boxplot

import (
	"fmt"
	"math"
)

// A WhiskerFunc computes the lower and upper whisker boundary for one
// sample. The sample is passed in input order and must not be modified.
type WhiskerFunc func(sample []float64) (lower, upper float64)

// IQR1p5 is the default whisker boundary rule: the theoretical fences lie
// 1.5 interquartile ranges beyond the 25th and 75th percentile and each
// whisker snaps to the most extreme observation inside its fence, not to
// the fence itself.
func IQR1p5(sample []float64) (lower, upper float64) {
	sorted := sortedCopy(sample)
	p25 := percentile(sorted, 25)
	p75 := percentile(sorted, 75)
	iqr := p75 - p25
	loFence, hiFence := p25-1.5*iqr, p75+1.5*iqr

	lower, upper = math.Inf(1), math.Inf(-1)
	for _, v := range sample {
		if v >= loFence && v < lower {
			lower = v
		}
		if v <= hiFence && v > upper {
			upper = v
		}
	}
	return lower, upper
}

// whiskerProbe is the fixed sample a candidate whisker function is
// invoked on during validation.
var whiskerProbe = []float64{1, 2, 3}

// validateWhiskerFunc checks that f behaves like a whisker boundary rule:
// it must survive the probe sample and return two finite numbers. A panic
// inside f is caught and reported as an error, not propagated.
func validateWhiskerFunc(f WhiskerFunc) (err error) {
	if f == nil {
		return fmt.Errorf("boxplot: nil whisker function")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("boxplot: whisker function panicked on probe input %v: %v",
				whiskerProbe, r)
		}
	}()
	lower, upper := f(whiskerProbe)
	if math.IsNaN(lower) || math.IsInf(lower, 0) ||
		math.IsNaN(upper) || math.IsInf(upper, 0) {
		return fmt.Errorf("boxplot: whisker function returned non-finite boundaries (%g, %g) on probe input %v",
			lower, upper, whiskerProbe)
	}
	return nil
}
