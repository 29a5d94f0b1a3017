package audio

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/arcadia-music/goapi/domain"
)

// CalculatePeaks reduces samples to at most n peaks. Each peak is the largest
// absolute sample of its bucket, rounded to 4 decimals. Empty input yields n
// zero peaks; fewer samples than n yields one peak per sample.
func CalculatePeaks(samples []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, xerrors.Errorf("peaks %d: %w", n, domain.ErrBadParamInput)
	}
	if len(samples) == 0 {
		return make([]float64, n), nil
	}

	count := n
	if len(samples) < n {
		count = len(samples)
	}
	bucket := len(samples) / count

	peaks := make([]float64, count)
	for i := 0; i < count; i++ {
		var max float64
		for _, s := range samples[i*bucket : (i+1)*bucket] {
			if v := math.Abs(s); v > max {
				max = v
			}
		}
		peaks[i] = round4(max)
	}
	return peaks, nil
}

func round4(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(4).Float64()
	return f
}
