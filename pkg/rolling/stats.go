package rolling

import (
	"github.com/govalues/decimal"

	"github.com/peter-kozarec/cyclic/pkg/circular"
)

var zero = decimal.MustNew(0, 0)

// Stats maintains sum, mean, variance and standard deviation over a
// fixed-capacity window of decimals. Updates are incremental: each Push
// adjusts the running sums by the inserted and evicted values instead of
// rescanning the window.
type Stats struct {
	w *circular.Window[decimal.Decimal]

	sum        decimal.Decimal
	sumSquares decimal.Decimal
	mean       decimal.Decimal
	variance   decimal.Decimal
	stdDev     decimal.Decimal
}

func NewStats(capacity int) *Stats {
	return &Stats{
		w:          circular.NewWindow[decimal.Decimal](capacity),
		sum:        zero,
		sumSquares: zero,
		mean:       zero,
		variance:   zero,
		stdDev:     zero,
	}
}

// Push inserts v, evicting the oldest value once the window is full, and
// refreshes the derived statistics. Decimal arithmetic errors are surfaced
// as-is.
func (s *Stats) Push(v decimal.Decimal) error {
	vSq, err := v.Mul(v)
	if err != nil {
		return err
	}

	sum, err := s.sum.Add(v)
	if err != nil {
		return err
	}
	sumSquares, err := s.sumSquares.Add(vSq)
	if err != nil {
		return err
	}

	if s.w.IsFull() {
		evicted, err := s.w.Last()
		if err != nil {
			return err
		}
		evictedSq, err := evicted.Mul(evicted)
		if err != nil {
			return err
		}
		if sum, err = sum.Sub(evicted); err != nil {
			return err
		}
		if sumSquares, err = sumSquares.Sub(evictedSq); err != nil {
			return err
		}
	}

	s.w.Push(v)
	s.sum = sum
	s.sumSquares = sumSquares
	return s.refresh()
}

func (s *Stats) refresh() error {
	n := decimal.MustNew(int64(s.w.Size()), 0)

	mean, err := s.sum.Quo(n)
	if err != nil {
		return err
	}
	meanSq, err := mean.Mul(mean)
	if err != nil {
		return err
	}
	msq, err := s.sumSquares.Quo(n)
	if err != nil {
		return err
	}
	variance, err := msq.Sub(meanSq)
	if err != nil {
		return err
	}

	s.mean = mean
	s.variance = variance
	if variance.Cmp(zero) > 0 {
		if s.stdDev, err = variance.Sqrt(); err != nil {
			return err
		}
	} else {
		s.stdDev = zero
	}
	return nil
}

func (s *Stats) Sum() decimal.Decimal      { return s.sum }
func (s *Stats) Mean() decimal.Decimal     { return s.mean }
func (s *Stats) Variance() decimal.Decimal { return s.variance }
func (s *Stats) StdDev() decimal.Decimal   { return s.stdDev }

func (s *Stats) Size() int     { return s.w.Size() }
func (s *Stats) Capacity() int { return s.w.Capacity() }

// IsReady reports whether the window has filled to capacity.
func (s *Stats) IsReady() bool { return s.w.IsFull() }

// Min scans the current window for its smallest value.
func (s *Stats) Min() (decimal.Decimal, error) {
	first, err := s.w.First()
	if err != nil {
		return zero, err
	}
	minVal := first
	for _, v := range s.w.Data() {
		if v.Cmp(minVal) < 0 {
			minVal = v
		}
	}
	return minVal, nil
}

// Max scans the current window for its largest value.
func (s *Stats) Max() (decimal.Decimal, error) {
	first, err := s.w.First()
	if err != nil {
		return zero, err
	}
	maxVal := first
	for _, v := range s.w.Data() {
		if v.Cmp(maxVal) > 0 {
			maxVal = v
		}
	}
	return maxVal, nil
}
