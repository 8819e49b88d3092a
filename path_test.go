package charts

import (
	"math"
	"strings"
	"testing"
)

func TestClampRadius(t *testing.T) {
	tests := []struct {
		Width  float64
		Height float64
		Radius float64
		Want   float64
	}{
		{Width: 10, Height: 100, Radius: 50, Want: 5},
		{Width: 100, Height: 10, Radius: 50, Want: 5},
		{Width: 100, Height: -40, Radius: 50, Want: 20},
		{Width: 100, Height: 100, Radius: 4, Want: 4},
		{Width: 100, Height: 100, Radius: -4, Want: 0},
	}
	for _, tt := range tests {
		got := ClampRadius(tt.Width, tt.Height, tt.Radius)
		if got != tt.Want {
			t.Errorf("radius mismatched! want %f, got %f", tt.Want, got)
		}
		if again := ClampRadius(tt.Width, tt.Height, got); again != got {
			t.Errorf("clamping twice changes the radius: %f != %f", got, again)
		}
	}
}

func TestRoundedBarPath(t *testing.T) {
	tests := []struct {
		Name     string
		Width    float64
		Height   float64
		Radius   float64
		Negative bool
		Want     string
	}{
		{
			Name:   "square",
			Width:  20,
			Height: 20,
			Want:   "M 0 0 H 20 V 20 H 0 V 0",
		},
		{
			Name:   "rounded-top",
			Width:  20,
			Height: 20,
			Radius: 4,
			Want:   "M 0 4 A 4 4 90 0 1 4 0 H 16 A 4 4 90 0 1 20 4 V 20 H 0 V 0",
		},
		{
			Name:   "half-circle",
			Width:  10,
			Height: 20,
			Radius: 8,
			Want:   "M 0 5 A 5 5 180 1 1 10 5 V 20 H 0 V 0",
		},
		{
			Name:     "rounded-bottom",
			Width:    20,
			Height:   20,
			Radius:   4,
			Negative: true,
			Want:     "M 0 0 H 20 V 16 A 4 4 90 0 1 16 20 H 4 A 4 4 90 0 1 0 16 V 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := RoundedBarPath(tt.Width, tt.Height, tt.Radius, tt.Negative, 0, 0)
			if got.String() != tt.Want {
				t.Errorf("path mismatched!\nwant: %s\ngot:  %s", tt.Want, got)
			}
		})
	}
}

func TestRoundedBarPathDegenerate(t *testing.T) {
	tests := []struct {
		Name   string
		Width  float64
		Height float64
	}{
		{Name: "no-width", Width: 0, Height: 10},
		{Name: "no-height", Width: 10, Height: 0},
		{Name: "nan", Width: math.NaN(), Height: 10},
		{Name: "inf", Width: 10, Height: math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if p := RoundedBarPath(tt.Width, tt.Height, 4, false, 0, 0); !p.Empty() {
				t.Errorf("path should be empty, got %s", p)
			}
		})
	}
}

func TestRoundedBarPathClamped(t *testing.T) {
	tests := []struct {
		Name     string
		Negative bool
	}{
		{Name: "positive"},
		{Name: "negative", Negative: true},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var (
				clamped = RoundedBarPath(20, 10, 100, tt.Negative, 0, 0)
				exact   = RoundedBarPath(20, 10, 5, tt.Negative, 0, 0)
			)
			if clamped.String() != exact.String() {
				t.Errorf("oversized radius not clamped!\nwant: %s\ngot:  %s", exact, clamped)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		Value float64
		Want  string
	}{
		{Value: 0, Want: "0"},
		{Value: math.Copysign(0, -1), Want: "0"},
		{Value: 1.2246467991473533e-15, Want: "0"},
		{Value: -3e-12, Want: "0"},
		{Value: 0.001, Want: "0.001"},
		{Value: -12.5, Want: "-12.5"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.Value); got != tt.Want {
			t.Errorf("%g: want %s, got %s", tt.Value, tt.Want, got)
		}
	}
	pat := SectorPath(NewPoint(0, 0), 0, 10, 0, math.Pi)
	if str := pat.String(); strings.Contains(str, "0.0000") || strings.Contains(str, "e-") {
		t.Errorf("path carries rounding residue: %s", str)
	}
}

func TestBezierPath(t *testing.T) {
	got := BezierPath([]Point{NewPoint(0, 0), NewPoint(10.7, 10.2)})
	want := "M 0 0 Q 2.5 0 5 5 Q 7.5 10 10 10"
	if got.String() != want {
		t.Errorf("path mismatched!\nwant: %s\ngot:  %s", want, got)
	}
	if got := BezierPath(nil); got.String() != "M 0 0" {
		t.Errorf("empty path mismatched! got %s", got)
	}
	if got := BezierPath([]Point{NewPoint(3, 4)}); got.String() != "M 3 4" {
		t.Errorf("single point path mismatched! got %s", got)
	}
}

func TestSectorPath(t *testing.T) {
	center := NewPoint(100, 100)
	tests := []struct {
		Name  string
		Start float64
		End   float64
		Large float64
	}{
		{Name: "quarter", Start: 0, End: math.Pi / 2, Large: 0},
		{Name: "three-quarters", Start: 0, End: 3 * math.Pi / 2, Large: 1},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			pat := SectorPath(center, 20, 50, tt.Start, tt.End)
			segs := pat.Segments()
			if len(segs) != 5 {
				t.Fatalf("segments mismatched! want 5, got %d", len(segs))
			}
			if segs[1].Cmd != CmdArc || segs[1].Args[3] != tt.Large || segs[1].Args[4] != 1 {
				t.Errorf("outer arc flags mismatched: %v", segs[1].Args)
			}
			if segs[3].Cmd != CmdArc || segs[3].Args[3] != tt.Large || segs[3].Args[4] != 0 {
				t.Errorf("inner arc flags mismatched: %v", segs[3].Args)
			}
		})
	}
	t.Run("start-on-top", func(t *testing.T) {
		segs := SectorPath(center, 0, 50, 0, math.Pi/2).Segments()
		if x, y := segs[0].Args[0], segs[0].Args[1]; !almostEqual(x, 100) || !almostEqual(y, 50) {
			t.Errorf("start point mismatched! want 100,50, got %f,%f", x, y)
		}
		if x, y := segs[1].Args[5], segs[1].Args[6]; !almostEqual(x, 150) || !almostEqual(y, 100) {
			t.Errorf("end point mismatched! want 150,100, got %f,%f", x, y)
		}
	})
	t.Run("full-circle", func(t *testing.T) {
		pat := SectorPath(center, 0, 50, 0, 2*math.Pi)
		if pat.Len() != 7 {
			t.Fatalf("segments mismatched! want 7, got %d", pat.Len())
		}
		for _, s := range pat.Segments() {
			for _, a := range s.Args {
				if math.IsNaN(a) || math.IsInf(a, 0) {
					t.Fatalf("path contains non finite value: %s", pat)
				}
			}
		}
	})
}

func TestPathTranslate(t *testing.T) {
	var pat Path
	pat.MoveTo(0, 0)
	pat.HorizontalTo(10)
	pat.VerticalTo(10)
	pat.ArcTo(5, 5, 0, false, true, 20, 20)
	pat.QuadTo(1, 2, 3, 4)
	pat.Close()

	got := pat.Translate(10, 100).String()
	want := "M 10 100 H 20 V 110 A 5 5 0 0 1 30 120 Q 11 102 13 104 Z"
	if got != want {
		t.Errorf("path mismatched!\nwant: %s\ngot:  %s", want, got)
	}
	if pat.String() != "M 0 0 H 10 V 10 A 5 5 0 0 1 20 20 Q 1 2 3 4 Z" {
		t.Errorf("translate modified the receiver: %s", pat)
	}
}
