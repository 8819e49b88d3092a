package charts

import (
	"math"
	"strings"
	"testing"
)

func sampleLine() LineChart {
	return LineChart{
		Options: DefaultOptions(320, 220),
		Config:  DefaultConfig(),
		Data: ChartData{
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Datasets: []Dataset{
				{Data: []float64{20, 45, 28, 80, 99, 43}},
			},
		},
	}
}

func TestLineChartRender(t *testing.T) {
	c := sampleLine()
	d := c.Render()
	if d.Width != 320 || d.Height != 220 {
		t.Errorf("size mismatched! want 320x220, got %fx%f", d.Width, d.Height)
	}
	lines := d.Filter(KindPolyline)
	if len(lines) != 1 {
		t.Fatalf("lines mismatched! want 1, got %d", len(lines))
	}
	points := lines[0].(Polyline).Points
	if len(points) != 6 {
		t.Fatalf("points mismatched! want 6, got %d", len(points))
	}
	if p := points[0]; p.X != 64 || !almostEqual(p.Y, 220*3.0/4+16) {
		t.Errorf("lowest point mismatched: %+v", p)
	}
	if p := points[4]; !almostEqual(p.Y, 16) {
		t.Errorf("highest point should reach the top padding, got %+v", p)
	}
	if n := len(d.Filter(KindCircle)); n != 6 {
		t.Errorf("dots mismatched! want 6, got %d", n)
	}
	if n := len(d.Filter(KindPolygon)); n != 1 {
		t.Errorf("shadows mismatched! want 1, got %d", n)
	}
	if n := len(d.Filter(KindGradient)); n != 2 {
		t.Errorf("gradients mismatched! want 2, got %d", n)
	}
	if n := len(d.Filter(KindText)); n != 4+6 {
		t.Errorf("labels mismatched! want 10, got %d", n)
	}
}

func TestLineChartOptions(t *testing.T) {
	t.Run("bezier", func(t *testing.T) {
		c := sampleLine()
		c.Bezier = true
		d := c.Render()
		if n := len(d.Filter(KindPath)); n != 2 {
			t.Errorf("curves mismatched! want 2, got %d", n)
		}
		if n := len(d.Filter(KindPolyline)); n != 0 {
			t.Errorf("no polyline expected, got %d", n)
		}
	})
	t.Run("hidden-points", func(t *testing.T) {
		c := sampleLine()
		c.HidePointsAtIndex = []int{1, 3}
		d := c.Render()
		if n := len(d.Filter(KindCircle)); n != 4 {
			t.Errorf("dots mismatched! want 4, got %d", n)
		}
		if n := len(d.Filter(KindText)); n != 4+4 {
			t.Errorf("labels mismatched! want 8, got %d", n)
		}
	})
	t.Run("hide-all", func(t *testing.T) {
		c := sampleLine()
		c.HideDots = true
		c.HideShadow = true
		c.HideInnerLines = true
		c.HideOuterLines = true
		c.HideHorizontalLabels = true
		c.HideVerticalLabels = true
		d := c.Render()
		for _, k := range []Kind{KindCircle, KindPolygon, KindLine, KindText} {
			if n := len(d.Filter(k)); n != 0 {
				t.Errorf("%s: no shape expected, got %d", k, n)
			}
		}
	})
	t.Run("outer-lines", func(t *testing.T) {
		c := sampleLine()
		c.HideInnerLines = true
		if n := len(c.Render().Filter(KindLine)); n != 2 {
			t.Errorf("outer lines mismatched! want 2, got %d", n)
		}
	})
	t.Run("legend", func(t *testing.T) {
		c := sampleLine()
		c.Data.Legend = []string{"Rainy days"}
		d := c.Render()
		if want := 220 + 220*0.15; !almostEqual(d.Height, want) {
			t.Errorf("height mismatched! want %f, got %f", want, d.Height)
		}
		points := d.Filter(KindPolyline)[0].(Polyline).Points
		if !almostEqual(points[4].Y, 16+220*0.15) {
			t.Errorf("plot not shifted below the legend: %+v", points[4])
		}
	})
	t.Run("constant", func(t *testing.T) {
		c := sampleLine()
		c.Data.Datasets[0].Data = []float64{5, 5, 5}
		c.HideVerticalLabels = true
		d := c.Render()
		if n := len(d.Filter(KindText)); n != 1 {
			t.Errorf("a single label expected, got %d", n)
		}
		for _, p := range d.Filter(KindPolyline)[0].(Polyline).Points {
			if !isFinite(p.Y) {
				t.Fatalf("point not finite: %+v", p)
			}
		}
	})
	t.Run("missing-values", func(t *testing.T) {
		c := sampleLine()
		c.Data.Datasets[0].Data = []float64{20, math.NaN(), 28, 80, 99, 43}
		d := c.Render()
		lines := d.Filter(KindPolyline)
		if len(lines) != 2 {
			t.Fatalf("lines mismatched! want 2, got %d", len(lines))
		}
		if n := len(lines[0].(Polyline).Points); n != 1 {
			t.Errorf("points before the gap mismatched! want 1, got %d", n)
		}
		after := lines[1].(Polyline).Points
		if len(after) != 4 {
			t.Fatalf("points after the gap mismatched! want 4, got %d", len(after))
		}
		if want := 64 + 2*(320-64)/6.0; !almostEqual(after[0].X, want) {
			t.Errorf("gap not kept on the x axis! want %f, got %f", want, after[0].X)
		}
		for _, p := range after {
			if almostEqual(p.Y, 220*3.0/4+16) {
				t.Errorf("missing value drawn on the baseline: %+v", p)
			}
		}
		if n := len(d.Filter(KindCircle)); n != 5 {
			t.Errorf("dots mismatched! want 5, got %d", n)
		}
		if n := len(d.Filter(KindPolygon)); n != 2 {
			t.Errorf("shadows mismatched! want 2, got %d", n)
		}
	})
	t.Run("missing-constant", func(t *testing.T) {
		c := sampleLine()
		c.Data.Datasets[0].Data = []float64{math.NaN(), 5, 5}
		c.HideVerticalLabels = true
		d := c.Render()
		labels := d.Filter(KindText)
		if len(labels) != 1 {
			t.Fatalf("a single label expected, got %d", len(labels))
		}
		if str := labels[0].(Text).Content; strings.Contains(str, "NaN") {
			t.Errorf("label shows a missing value: %s", str)
		}
		if n := len(d.Filter(KindCircle)); n != 2 {
			t.Errorf("dots mismatched! want 2, got %d", n)
		}
	})
	t.Run("all-missing", func(t *testing.T) {
		c := sampleLine()
		c.Data.Datasets[0].Data = []float64{math.NaN(), math.NaN()}
		c.Bezier = true
		d := c.Render()
		if n := len(d.Filter(KindPath)); n != 0 {
			t.Errorf("no curve expected, got %d", n)
		}
		if n := len(d.Filter(KindCircle)); n != 0 {
			t.Errorf("no dot expected, got %d", n)
		}
	})
	t.Run("empty", func(t *testing.T) {
		c := sampleLine()
		c.Data.Datasets[0].Data = nil
		d := c.Render()
		if n := len(d.Filter(KindPolyline)); n != 0 {
			t.Errorf("no line expected, got %d", n)
		}
	})
}

func TestLineChartSelect(t *testing.T) {
	var (
		c       = sampleLine()
		clicked []DataPoint
	)
	c.OnDataPointClick = func(p DataPoint) {
		clicked = append(clicked, p)
	}
	x := 64 + 4*(320-64)/6.0
	p, ok := c.Select(x+3, 16+5)
	if !ok {
		t.Fatalf("data point not selected")
	}
	if p.Index != 4 || p.Value != 99 || p.Dataset != 0 {
		t.Errorf("data point mismatched: %+v", p)
	}
	if len(clicked) != 1 || clicked[0].Index != 4 {
		t.Errorf("callback not invoked with the data point: %+v", clicked)
	}
	if got := p.Color(1); got != "rgba(0, 0, 0, 1)" {
		t.Errorf("color mismatched! got %s", got)
	}
	if _, ok := c.Select(0, 0); ok {
		t.Errorf("no data point expected far from the dots")
	}
}

func TestLineChartDotColor(t *testing.T) {
	c := sampleLine()
	c.DotColor = func(v float64, i int) string {
		if v > 50 {
			return "red"
		}
		return "blue"
	}
	c.DotProps = func(v float64, i int) DotProps {
		return DotProps{Radius: 6, Stroke: "black", StrokeWidth: 2}
	}
	dots := c.Render().Filter(KindCircle)
	want := []string{"blue", "blue", "blue", "red", "red", "blue"}
	for i, s := range dots {
		dot := s.(Circle)
		if dot.Fill.Color != want[i] {
			t.Errorf("dot %d: color mismatched! want %s, got %s", i, want[i], dot.Fill.Color)
		}
		if dot.Radius != 6 || dot.Stroke.Color != "black" || dot.Stroke.Width != 2 {
			t.Errorf("dot %d: props mismatched: %+v", i, dot)
		}
	}
}
