package charts

import (
	"math"
)

type BarChart struct {
	Options
	Config
	Data ChartData

	BarFull              bool
	HideInnerLines       bool
	HideHorizontalLabels bool
	HideVerticalLabels   bool
}

const barTopHeight = 2

func (c BarChart) Render() Drawing {
	var (
		layout = c.layout()
		pad    = c.Style.padding(16, 64)
		values = c.Data.First().Data
		cv     canvas
	)
	cv.add(layout.defs(c.Width, c.Height)...)
	cv.add(layout.background(c.Width, c.Height))
	if !c.HideInnerLines {
		cv.add(layout.HorizontalLines(4, c.Width, c.Height, pad.Top, pad.Right)...)
	}
	if !c.HideHorizontalLabels {
		cv.add(layout.HorizontalLabels(4, values, c.Height, pad.Top, pad.Right)...)
	}
	if !c.HideVerticalLabels {
		cv.add(layout.VerticalLabels(c.Data.Labels, c.Width, c.Height, pad.Right, pad.Top, c.barWidth(), 1)...)
	}
	cv.add(c.bars(values, pad)...)
	if !c.BarFull {
		cv.add(c.tops(values, pad)...)
	}
	return cv.drawing(c.Width, c.Height)
}

func (c BarChart) layout() Layout {
	return Layout{
		Options: c.Options,
		Config:  c.Config,
	}
}

func (c BarChart) bars(values []float64, pad Padding) []Shape {
	var (
		mapper = NewMapper(values, c.Height, c.FromZero)
		width  = c.barWidth()
		fill   = NewFill(GradientRef(FillShadowGradientID))
		list   []Shape
	)
	for i, v := range values {
		if v == 0 {
			continue
		}
		x := pad.Right + (float64(i)*(c.Width-pad.Right))/float64(len(values)) + width/2
		if b, ok := makeBar(mapper, v, x, width, c.BarRadius, pad.Top, fill); ok {
			list = append(list, b)
		}
	}
	return list
}

func (c BarChart) tops(values []float64, pad Padding) []Shape {
	var (
		mapper = NewMapper(values, c.Height, c.FromZero)
		width  = c.barWidth()
		list   = make([]Shape, 0, len(values))
	)
	for i, v := range values {
		x := pad.Right + (float64(i)*(c.Width-pad.Right))/float64(len(values)) + width/2
		list = append(list, barTop(mapper, v, x, width, pad.Top, NewFill(c.color(0.6, 0))))
	}
	return list
}

// makeBar places the bar of value at x. Bars of positive values grow up from
// the baseline, the others grow down from it.
func makeBar(mapper Mapper, value, x, width, radius, top float64, fill Fill) (Bar, bool) {
	var (
		extent = mapper.Extent(value)
		start  = mapper.Base
	)
	if extent > 0 {
		start -= extent
	}
	bar := Bar{
		X:        x,
		Y:        (start/4)*3 + top,
		Width:    width,
		Height:   (math.Abs(extent) / 4) * 3,
		Negative: value < 0,
		Fill:     fill,
	}
	bar.Radius = ClampRadius(bar.Width, bar.Height, radius)
	return bar, bar.Width != 0 && bar.Height != 0 && isFinite(bar.Y)
}

func barTop(mapper Mapper, value, x, width, top float64, fill Fill) Rect {
	return Rect{
		X:      x,
		Y:      (mapper.Offset(value)/4)*3 + top,
		Width:  width,
		Height: barTopHeight,
		Fill:   fill,
	}
}
