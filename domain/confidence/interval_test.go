package confidence

import (
	"errors"
	"math"
	"testing"

	"github.com/cgubbin/confi/domain/core"
)

func TestIntervalQueries(t *testing.T) {
	interval, err := NewInterval(1.0, 3.0, NinetyFivePercent[float64]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !interval.Contains(2.0) {
		t.Error("interval should contain 2.0")
	}
	if !interval.Contains(1.0) || !interval.Contains(3.0) {
		t.Error("both bounds are inclusive")
	}
	if interval.Contains(0.5) {
		t.Error("interval should not contain 0.5")
	}
	if interval.Contains(3.5) {
		t.Error("interval should not contain 3.5")
	}

	if got := interval.Width(); got != 2.0 {
		t.Errorf("width %v, want 2.0", got)
	}
	if got := interval.HalfWidth(); got != 1.0 {
		t.Errorf("half width %v, want 1.0", got)
	}
	if got := interval.Level().Probability(); got != 0.95 {
		t.Errorf("level %v, want 0.95", got)
	}
	if interval.Start() != 1.0 || interval.End() != 3.0 {
		t.Errorf("bounds [%v, %v], want [1, 3]", interval.Start(), interval.End())
	}
}

func TestIntervalBoundsValidation(t *testing.T) {
	if _, err := NewInterval(3.0, 1.0, NinetyFivePercent[float64]()); !errors.Is(err, core.ErrIntervalBounds) {
		t.Errorf("expected interval bounds error, got %v", err)
	}

	// A zero-width interval is legal.
	interval, err := NewInterval(2.0, 2.0, NinetyPercent[float64]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interval.Width() != 0 || !interval.Contains(2.0) {
		t.Error("zero-width interval should contain its single point")
	}
}

func TestIntervalFloat32(t *testing.T) {
	interval, err := NewInterval[float32](-1.5, 2.5, NinetyNinePercent[float32]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := math.Abs(float64(interval.HalfWidth()) - 2.0); diff > 1e-6 {
		t.Errorf("half width off by %v", diff)
	}
	if !interval.Contains(0) {
		t.Error("interval should contain 0")
	}
}

func TestIntervalString(t *testing.T) {
	interval, err := NewInterval(1e-5, 4e-2, NinetyNinePercent[float64]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Confidence Interval: 1.000e-05 -> 4.000e-02 (Confidence Level: 99.000%)"
	if got := interval.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
