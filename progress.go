package charts

import (
	"math"
)

type ProgressData struct {
	Labels []string
	Data   []float64
}

type ProgressChart struct {
	Options
	Config
	Data ProgressData

	HideLegend bool
}

const (
	ringWidth = 16
	ringTrack = 0.999
)

func (c ProgressChart) Render() Drawing {
	var (
		layout = Layout{Options: c.Options, Config: c.Config}
		width  = c.Width - c.Style.Number("margin", 0)*2 - c.Style.Number("marginRight", 0)
		cv     canvas
	)
	cv.add(layout.defs(c.Width, c.Height)...)
	cv.add(layout.background(width, c.Height))

	cv.offset(c.Width/2.5, c.Height/2)
	cv.add(c.tracks()...)
	cv.add(c.rings()...)
	if !c.HideLegend {
		cv.add(c.legend()...)
	}
	return cv.drawing(width, c.Height)
}

// Radius gives the radius of the ring at index.
func (c ProgressChart) Radius(index int) float64 {
	n := float64(len(c.Data.Data))
	return ((c.Height/2-barSize)/n)*float64(index) + barSize
}

// Progress gives the value at index clamped to [0, 1].
func (c ProgressChart) Progress(index int) float64 {
	if index < 0 || index >= len(c.Data.Data) {
		return 0
	}
	v := c.Data.Data[index]
	if !isFinite(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func (c ProgressChart) tracks() []Shape {
	list := make([]Shape, 0, len(c.Data.Data))
	for i := range c.Data.Data {
		list = append(list, Arc{
			Radius: c.Radius(i),
			Start:  0,
			End:    fullcircle * ringTrack,
			Stroke: NewStroke(c.color(0.2, i), ringWidth),
		})
	}
	return list
}

func (c ProgressChart) rings() []Shape {
	var (
		list = make([]Shape, 0, len(c.Data.Data))
		n    = float64(len(c.Data.Data))
	)
	for i := range c.Data.Data {
		stroke := NewStroke(c.color((float64(i)/n)*0.5+0.5, i), ringWidth)
		stroke.LineCap = "round"
		stroke.LineJoin = "round"
		list = append(list, Arc{
			Radius: c.Radius(i),
			Start:  0,
			End:    fullcircle * c.Progress(i),
			Stroke: stroke,
		})
	}
	return list
}

func (c ProgressChart) legend() []Shape {
	var (
		list  = make([]Shape, 0, len(c.Data.Data)*2)
		step  = (c.Height * 0.8) / float64(len(c.Data.Data))
		font  = c.labelProps().font()
		texts []Shape
	)
	for i := range c.Data.Data {
		y := -(c.Height / 2.5) + step*float64(i)
		list = append(list, Rect{
			X:      c.Width/2.5 - 24,
			Y:      y + 12,
			Width:  legendIcon,
			Height: legendIcon,
			RX:     legendIcon / 2,
			RY:     legendIcon / 2,
			Fill:   NewFill(c.color(0.2*float64(i+1), i)),
		})
		texts = append(texts, Text{
			X:       c.Width / 2.5,
			Y:       y + 12*2,
			Content: c.Label(i),
			Font:    font,
		})
	}
	return append(list, texts...)
}

// Label gives the legend text of the ring at index.
func (c ProgressChart) Label(index int) string {
	pct := formatFloat(roundHalfUp(100*c.Progress(index))) + "%"
	if index < len(c.Data.Labels) && c.Data.Labels[index] != "" {
		return c.Data.Labels[index] + " " + pct
	}
	return pct
}
