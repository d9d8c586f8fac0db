package rolling

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"

	"github.com/peter-kozarec/cyclic/pkg/circular"
)

var (
	dZero = decimal.MustNew(0, 0)
	dOne  = decimal.MustNew(1, 0)
	dTwo  = decimal.MustNew(2, 0)
	dFour = decimal.MustNew(4, 0)
	dTen  = decimal.MustNew(10, 0)
)

func assertEq(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if got.Cmp(want) != 0 {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func push(t *testing.T, s *Stats, values ...int64) {
	t.Helper()
	for _, v := range values {
		if err := s.Push(decimal.MustNew(v, 0)); err != nil {
			t.Fatalf("Push(%d) unexpected error: %v", v, err)
		}
	}
}

func TestStats_FullWindow(t *testing.T) {
	s := NewStats(5)
	push(t, s, 3, 1, 2, 0, 1, 2, 3, 4)

	sqrtTwo, err := dTwo.Sqrt()
	if err != nil {
		t.Fatalf("Sqrt unexpected error: %v", err)
	}

	assertEq(t, "Sum", s.Sum(), dTen)
	assertEq(t, "Mean", s.Mean(), dTwo)
	assertEq(t, "Variance", s.Variance(), dTwo)
	assertEq(t, "StdDev", s.StdDev(), sqrtTwo)

	if !s.IsReady() {
		t.Error("IsReady() got false, want true")
	}
	if s.Size() != 5 {
		t.Errorf("Size() got %d, want 5", s.Size())
	}

	minVal, err := s.Min()
	if err != nil {
		t.Fatalf("Min() unexpected error: %v", err)
	}
	assertEq(t, "Min", minVal, dZero)

	maxVal, err := s.Max()
	if err != nil {
		t.Fatalf("Max() unexpected error: %v", err)
	}
	assertEq(t, "Max", maxVal, dFour)
}

func TestStats_PartialWindow(t *testing.T) {
	s := NewStats(5)

	if s.IsReady() {
		t.Error("IsReady() on fresh stats got true, want false")
	}

	push(t, s, 3)
	assertEq(t, "Mean after one", s.Mean(), decimal.MustNew(3, 0))
	assertEq(t, "Variance after one", s.Variance(), dZero)
	assertEq(t, "StdDev after one", s.StdDev(), dZero)

	push(t, s, 1)
	assertEq(t, "Sum after two", s.Sum(), dFour)
	assertEq(t, "Mean after two", s.Mean(), dTwo)
	assertEq(t, "Variance after two", s.Variance(), dOne)
	assertEq(t, "StdDev after two", s.StdDev(), dOne)
}

func TestStats_Empty(t *testing.T) {
	s := NewStats(3)

	assertEq(t, "Sum", s.Sum(), dZero)
	assertEq(t, "Mean", s.Mean(), dZero)

	if _, err := s.Min(); !errors.Is(err, circular.ErrEmptyBuffer) {
		t.Errorf("Min() got error %v, want ErrEmptyBuffer", err)
	}
	if _, err := s.Max(); !errors.Is(err, circular.ErrEmptyBuffer) {
		t.Errorf("Max() got error %v, want ErrEmptyBuffer", err)
	}
}

func TestStats_EvictionKeepsSumsExact(t *testing.T) {
	s := NewStats(2)
	push(t, s, 100, -100, 100, -100, 100)

	// Window is [-100, 100]: sum 0, mean 0, variance 10000.
	assertEq(t, "Sum", s.Sum(), dZero)
	assertEq(t, "Mean", s.Mean(), dZero)
	assertEq(t, "Variance", s.Variance(), decimal.MustNew(10000, 0))
	assertEq(t, "StdDev", s.StdDev(), decimal.MustNew(100, 0))
}
