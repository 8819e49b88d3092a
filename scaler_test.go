package charts

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewScale(t *testing.T) {
	tests := []struct {
		Name     string
		Values   []float64
		FromZero bool
		Want     Scale
	}{
		{Name: "empty", Want: Scale{Span: 1}},
		{Name: "positive", Values: []float64{10, 20, 30}, Want: Scale{Min: 10, Max: 30, Span: 20}},
		{Name: "positive-from-zero", Values: []float64{10, 20, 30}, FromZero: true, Want: Scale{Min: 0, Max: 30, Span: 30}},
		{Name: "negative-from-zero", Values: []float64{-30, -10}, FromZero: true, Want: Scale{Min: -30, Max: 0, Span: 30}},
		{Name: "constant", Values: []float64{5, 5}, Want: Scale{Min: 5, Max: 5, Span: 1}},
		{Name: "not-finite", Values: []float64{math.NaN(), 4, math.Inf(1), 8}, Want: Scale{Min: 4, Max: 8, Span: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := NewScale(tt.Values, tt.FromZero)
			if got != tt.Want {
				t.Errorf("scale mismatched! want %+v, got %+v", tt.Want, got)
			}
		})
	}
}

func TestScaleValues(t *testing.T) {
	var (
		want = []float64{0, 2.5, 5, 7.5, 10}
		got  = NewScale([]float64{0, 10}, false).Values(len(want))
	)
	if len(got) != len(want) {
		t.Fatalf("length mismatched! want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if !almostEqual(want[i], got[i]) {
			t.Errorf("value %d mismatched! want %f, got %f", i, want[i], got[i])
		}
	}
	if got := NewScale([]float64{3, 7}, false).Values(1); len(got) != 1 || got[0] != 3 {
		t.Errorf("single value mismatched: %v", got)
	}
}

func TestBaseHeight(t *testing.T) {
	tests := []struct {
		Name   string
		Values []float64
		Want   float64
	}{
		{Name: "empty", Want: 0},
		{Name: "positive", Values: []float64{1, 2, 3}, Want: 256},
		{Name: "negative", Values: []float64{-1, -2, -3}, Want: 0},
		{Name: "mixed", Values: []float64{-50, 100}, Want: 256 * 100.0 / 150},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := BaseHeight(tt.Values, 256)
			if !almostEqual(got, tt.Want) {
				t.Errorf("base height mismatched! want %f, got %f", tt.Want, got)
			}
		})
	}
}

func TestPointHeight(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		values := []float64{10, 20, 30}
		if got := PointHeight(10, values, 100, false); got != 0 {
			t.Errorf("lowest value should be at 0, got %f", got)
		}
		if got := PointHeight(30, values, 100, false); !almostEqual(got, 100) {
			t.Errorf("highest value should be at 100, got %f", got)
		}
		if got := PointHeight(30, values, 100, true); !almostEqual(got, 100) {
			t.Errorf("highest value should be at 100 from zero, got %f", got)
		}
		if got := PointHeight(15, values, 100, true); !almostEqual(got, 50) {
			t.Errorf("value from zero mismatched! want 50, got %f", got)
		}
	})
	t.Run("negative", func(t *testing.T) {
		values := []float64{-30, -10}
		for _, v := range values {
			if got := PointHeight(v, values, 100, false); got > 0 {
				t.Errorf("%f: height should not be positive, got %f", v, got)
			}
		}
		if got := PointHeight(-30, values, 100, false); !almostEqual(got, -100) {
			t.Errorf("lowest value mismatched! want -100, got %f", got)
		}
	})
	t.Run("mixed", func(t *testing.T) {
		var (
			values = []float64{-50, 100}
			height = 256.0
		)
		for _, v := range values {
			got := PointHeight(v, values, height, false)
			if math.Signbit(got) != math.Signbit(v) {
				t.Errorf("%f: sign mismatched, got %f", v, got)
			}
		}
		if got := PointHeight(100, values, height, false); !almostEqual(got, height*100/150) {
			t.Errorf("height mismatched! want %f, got %f", height*100/150, got)
		}
	})
	t.Run("constant", func(t *testing.T) {
		values := []float64{5, 5, 5}
		got := PointHeight(5, values, 100, false)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("height should be finite, got %f", got)
		}
	})
	t.Run("not-finite", func(t *testing.T) {
		if got := PointHeight(math.NaN(), []float64{1, 2}, 100, false); got != 0 {
			t.Errorf("NaN should map to 0, got %f", got)
		}
		if got := PointHeight(1, nil, 100, false); got != 0 {
			t.Errorf("empty series should map to 0, got %f", got)
		}
	})
}

func TestMapper(t *testing.T) {
	var (
		values = []float64{-50, 100}
		m      = NewMapper(values, 256, false)
	)
	if got := m.Offset(0); !almostEqual(got, m.Base) {
		t.Errorf("zero should sit on the baseline! want %f, got %f", m.Base, got)
	}
	if got := m.Offset(100); math.Abs(got) > tolerance {
		t.Errorf("maximum should reach the top, got %f", got)
	}
	if got := m.Offset(-50); !almostEqual(got, 256) {
		t.Errorf("minimum should reach the bottom! want 256, got %f", got)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(10, 50)
	if r.Len() != 40 {
		t.Errorf("length mismatched! want 40, got %f", r.Len())
	}
	if r.Step(4) != 10 {
		t.Errorf("step mismatched! want 10, got %f", r.Step(4))
	}
	if r.Step(0) != 0 {
		t.Errorf("step with no item should be 0, got %f", r.Step(0))
	}
}
