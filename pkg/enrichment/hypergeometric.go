package enrichment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// logHypergeometricPMF returns log P(X = k) for X drawn without replacement:
// k annotated among N drawn from a population of M containing n annotated.
func logHypergeometricPMF(k, M, n, N int) float64 {
	return combin.LogGeneralizedBinomial(float64(n), float64(k)) +
		combin.LogGeneralizedBinomial(float64(M-n), float64(N-k)) -
		combin.LogGeneralizedBinomial(float64(M), float64(N))
}

// HypergeometricOver returns P(X >= k), the one-sided over-representation
// tail. k = 0 yields exactly 1.0.
func HypergeometricOver(k, M, n, N int) (float64, error) {
	if err := validateCounts(k, M, n, N); err != nil {
		return 0, err
	}
	lowest := n + N - M
	if lowest < 0 {
		lowest = 0
	}
	if k <= lowest {
		return 1.0, nil
	}
	upper := n
	if N < n {
		upper = N
	}

	// Sum the tail in log space from the largest term to limit rounding.
	p := 0.0
	for i := upper; i >= k; i-- {
		p += math.Exp(logHypergeometricPMF(i, M, n, N))
	}
	return clampProbability(p), nil
}

// HypergeometricUnder returns P(X <= k), the one-sided under-representation
// tail.
func HypergeometricUnder(k, M, n, N int) (float64, error) {
	if err := validateCounts(k, M, n, N); err != nil {
		return 0, err
	}
	upper := n
	if N < n {
		upper = N
	}
	if k >= upper {
		return 1.0, nil
	}
	lowest := n + N - M
	if lowest < 0 {
		lowest = 0
	}

	p := 0.0
	for i := lowest; i <= k; i++ {
		p += math.Exp(logHypergeometricPMF(i, M, n, N))
	}
	return clampProbability(p), nil
}

func validateCounts(k, M, n, N int) error {
	if M == 0 {
		return ErrEmptyReference
	}
	if k < 0 || n < 0 || N < 0 || M < 0 || n > M || N > M || k > n || k > N {
		return fmt.Errorf("k=%d M=%d n=%d N=%d: %w", k, M, n, N, ErrInvalidCounts)
	}
	return nil
}

func clampProbability(p float64) float64 {
	if p > 1.0 {
		return 1.0
	}
	if p < 0.0 {
		return 0.0
	}
	return p
}
