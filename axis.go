package charts

import (
	"math"
	"strconv"
)

// Tick is a label of an axis before it is turned into text.
type Tick struct {
	Value float64
	Text  string
}

func (f Layout) HorizontalLines(count int, width, height, paddingTop, paddingRight float64) []Shape {
	if count <= 0 {
		return nil
	}
	var (
		list  = make([]Shape, 0, count)
		props = f.backgroundLineProps()
		band  = height / float64(count)
	)
	for i := 0; i < count; i++ {
		y := band*float64(i) + paddingTop
		list = append(list, Line{
			X1:     paddingRight,
			Y1:     y,
			X2:     width,
			Y2:     y,
			Stroke: props.stroke(),
		})
	}
	return list
}

func (f Layout) HorizontalLine(width, height, paddingTop, paddingRight float64) Shape {
	y := height - height/4 + paddingTop
	return Line{
		X1:     paddingRight,
		Y1:     y,
		X2:     width,
		Y2:     y,
		Stroke: f.backgroundLineProps().stroke(),
	}
}

func (f Layout) VerticalLines(count int, width, height, paddingTop, paddingRight float64) []Shape {
	if count <= 0 {
		return nil
	}
	var (
		list  = make([]Shape, 0, count)
		props = f.backgroundLineProps()
		step  = (width - paddingRight) / float64(count)
	)
	for i := 0; i < count; i++ {
		x := math.Floor(step*float64(i) + paddingRight)
		list = append(list, Line{
			X1:     x,
			Y1:     0,
			X2:     x,
			Y2:     height - height/4 + paddingTop,
			Stroke: props.stroke(),
		})
	}
	return list
}

func (f Layout) VerticalLine(height, paddingTop, paddingRight float64) Shape {
	x := math.Floor(paddingRight)
	return Line{
		X1:     x,
		Y1:     0,
		X2:     x,
		Y2:     height - height/4 + paddingTop,
		Stroke: f.backgroundLineProps().stroke(),
	}
}

// Ticks computes the values of the y axis. A single tick shows the first
// finite value of the series, otherwise count ticks are spread over the scale.
func (f Layout) Ticks(count int, data []float64) []Tick {
	if count <= 0 {
		return nil
	}
	var values []float64
	if count == 1 {
		var first float64
		if list := finiteValues(data); len(list) > 0 {
			first = list[0]
		}
		values = append(values, first)
	} else {
		values = NewScale(data, f.FromZero).Values(count)
	}
	list := make([]Tick, 0, len(values))
	for _, v := range values {
		str := f.YAxisLabel + f.formatY(toFixed(v, f.decimals())) + f.YAxisSuffix
		list = append(list, Tick{Value: v, Text: str})
	}
	return list
}

func (f Layout) HorizontalLabels(count int, data []float64, height, paddingTop, paddingRight float64) []Shape {
	var (
		ticks = f.Ticks(count, data)
		list  = make([]Shape, 0, len(ticks))
		font  = f.labelProps().font()
		x     = paddingRight - f.YLabelsOffset
	)
	for i, t := range ticks {
		y := height*3/4 - ((height-paddingTop)/float64(count))*float64(i) + 12
		if count == 1 && f.FromZero {
			y = paddingTop + 4
		}
		list = append(list, Text{
			X:        x,
			Y:        y,
			Content:  t.Text,
			Anchor:   "end",
			Rotation: f.HorizontalLabelRotation,
			Origin:   NewPoint(x, y),
			Font:     font,
		})
	}
	return list
}

// VerticalLabels places labels along the x axis. The compress factor shrinks
// the positions to follow narrower columns.
func (f Layout) VerticalLabels(labels []string, width, height, paddingRight, paddingTop, offset, compress float64) []Shape {
	if compress == 0 {
		compress = 1
	}
	var (
		list   = make([]Shape, 0, len(labels))
		font   = f.labelProps().font()
		step   = (width - paddingRight) / float64(len(labels))
		anchor = "middle"
	)
	if f.VerticalLabelRotation != 0 {
		anchor = "start"
	}
	for i, label := range labels {
		if f.hidden(i) {
			continue
		}
		var (
			x = (step*float64(i) + paddingRight + offset) * compress
			y = height*3/4 + paddingTop + FontSize*2 + f.XLabelsOffset
		)
		list = append(list, Text{
			X:        x,
			Y:        y,
			Content:  f.formatX(label) + f.XAxisLabel,
			Anchor:   anchor,
			Rotation: f.VerticalLabelRotation,
			Origin:   NewPoint(x, y),
			Font:     font,
		})
	}
	return list
}

const stackedCompress = 0.71

func toFixed(v float64, decimals int) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
