package charts

import (
	"unicode/utf8"
)

type LineChart struct {
	Options
	Config
	Data ChartData

	Bezier               bool
	HideShadow           bool
	HideDots             bool
	HideInnerLines       bool
	HideOuterLines       bool
	HideHorizontalLabels bool
	HideVerticalLabels   bool

	DotColor         func(float64, int) string
	DotProps         func(float64, int) DotProps
	OnDataPointClick func(DataPoint)
}

const (
	touchRadius  = 14
	legendIcon   = 16
	legendGap    = 4
	legendLetter = 6
)

func (c LineChart) Render() Drawing {
	var (
		layout = c.layout()
		pad    = c.Style.padding(16, 64)
		offset = c.legendOffset()
		values = c.Data.Values()
		width  = c.Width - c.Style.Number("margin", 0)*2 - c.Style.Number("marginRight", 0)
		cv     canvas
	)
	cv.add(layout.defs(c.Width, c.Height)...)
	cv.add(layout.background(width, c.Height+offset))
	cv.add(c.legend(c.Width, offset)...)

	cv.offset(0, offset)
	if !c.HideInnerLines {
		cv.add(layout.HorizontalLines(4, c.Width, c.Height, pad.Top, pad.Right)...)
	} else if !c.HideOuterLines {
		cv.add(layout.HorizontalLine(c.Width, c.Height, pad.Top, pad.Right))
	}
	if !c.HideHorizontalLabels {
		count := 4
		if sc := NewScale(values, false); len(finiteValues(values)) > 0 && sc.Min == sc.Max {
			count = 1
		}
		cv.add(layout.HorizontalLabels(count, values, c.Height, pad.Top, pad.Right)...)
	}
	if !c.HideInnerLines {
		cv.add(layout.VerticalLines(c.Data.First().Len(), c.Width, c.Height, pad.Top, pad.Right)...)
	} else if !c.HideOuterLines {
		cv.add(layout.VerticalLine(c.Height, pad.Top, pad.Right))
	}
	if !c.HideVerticalLabels {
		cv.add(layout.VerticalLabels(c.Data.Labels, c.Width, c.Height, pad.Right, pad.Top, 0, 1)...)
	}
	cv.add(c.lines(pad)...)
	if !c.HideShadow {
		cv.add(c.shadows(pad)...)
	}
	if !c.HideDots {
		for _, d := range c.dots(pad) {
			cv.add(d)
		}
	}
	return cv.drawing(width, c.Height+pad.Bottom+offset)
}

// Select returns the data point whose dot is within touch distance of the
// given position. OnDataPointClick is called with it when set.
func (c LineChart) Select(x, y float64) (DataPoint, bool) {
	if c.HideDots {
		return DataPoint{}, false
	}
	var (
		pad    = c.Style.padding(16, 64)
		offset = c.legendOffset()
		pos    = NewPoint(x, y)
	)
	for _, d := range c.dots(pad) {
		d = d.Translate(0, offset).(Circle)
		if d.Data == nil || NewPoint(d.CX, d.CY).Distance(pos) > touchRadius {
			continue
		}
		if c.OnDataPointClick != nil {
			c.OnDataPointClick(*d.Data)
		}
		return *d.Data, true
	}
	return DataPoint{}, false
}

func (c LineChart) layout() Layout {
	return Layout{
		Options: c.Options,
		Config:  c.Config,
	}
}

func (c LineChart) legendOffset() float64 {
	if len(c.Data.Legend) == 0 {
		return 0
	}
	return c.Height * 0.15
}

func (c LineChart) datasetColor(index int, opacity float64) string {
	if index < len(c.Data.Datasets) && c.Data.Datasets[index].Color != nil {
		return c.Data.Datasets[index].Color(opacity, index)
	}
	return c.color(opacity, index)
}

func (c LineChart) strokeWidth(d Dataset) float64 {
	if d.StrokeWidth > 0 {
		return d.StrokeWidth
	}
	if c.StrokeWidth > 0 {
		return c.StrokeWidth
	}
	return 3
}

func (c LineChart) points(d Dataset, pad Padding) []Point {
	var (
		mapper = NewMapper(c.Data.Values(), c.Height, c.FromZero)
		list   = make([]Point, 0, d.Len())
		n      = float64(d.Len())
	)
	for i, v := range d.Data {
		var (
			x = pad.Right + (float64(i)*(c.Width-pad.Right))/n
			y = (mapper.Offset(v)/4)*3 + pad.Top
		)
		list = append(list, NewPoint(x, y))
	}
	return list
}

// runs splits the points of a dataset on its missing values so that lines and
// shadows leave a gap where a value is not finite.
func (c LineChart) runs(d Dataset, pad Padding) [][]Point {
	var (
		points = c.points(d, pad)
		list   [][]Point
		curr   []Point
	)
	for i, v := range d.Data {
		if isFinite(v) {
			curr = append(curr, points[i])
			continue
		}
		if len(curr) > 0 {
			list = append(list, curr)
			curr = nil
		}
	}
	if len(curr) > 0 {
		list = append(list, curr)
	}
	return list
}

func (c LineChart) lines(pad Padding) []Shape {
	var list []Shape
	for i, d := range c.Data.Datasets {
		stroke := NewStroke(c.datasetColor(i, 0.2), c.strokeWidth(d))
		for _, run := range c.runs(d, pad) {
			if c.Bezier {
				list = append(list, Curve{
					D:      BezierPath(run),
					Stroke: stroke,
				})
				continue
			}
			list = append(list, Polyline{
				Points: run,
				Stroke: stroke,
			})
		}
	}
	return list
}

func (c LineChart) shadows(pad Padding) []Shape {
	var (
		list   []Shape
		bottom = (c.Height/4)*3 + pad.Top
		fill   = NewFill(GradientRef(FillShadowGradientID))
	)
	for _, d := range c.Data.Datasets {
		for _, run := range c.runs(d, pad) {
			var (
				first = NewPoint(run[0].X, bottom)
				last  = NewPoint(run[len(run)-1].X, bottom)
			)
			if !c.Bezier {
				points := make([]Point, 0, len(run)+2)
				points = append(points, run...)
				list = append(list, Polygon{
					Points: append(points, last, first),
					Fill:   fill,
				})
				continue
			}
			pat := BezierPath(run)
			pat.LineTo(last.X, last.Y)
			pat.LineTo(first.X, first.Y)
			pat.Close()
			list = append(list, Curve{
				D:    pat,
				Fill: fill,
			})
		}
	}
	return list
}

func (c LineChart) dots(pad Padding) []Circle {
	var list []Circle
	for i, d := range c.Data.Datasets {
		points := c.points(d, pad)
		for j, v := range d.Data {
			if c.hidden(j) || !isFinite(v) {
				continue
			}
			var (
				pt    = points[j]
				props = c.dotProps(v, j)
				index = i
			)
			dot := Circle{
				CX:     pt.X,
				CY:     pt.Y,
				Radius: props.Radius,
				Fill:   NewFill(c.dotColor(i, v, j)),
				Data: &DataPoint{
					Index:   j,
					Value:   v,
					Dataset: i,
					X:       pt.X,
					Y:       pt.Y,
					Color: func(opacity float64) string {
						return c.datasetColor(index, opacity)
					},
				},
			}
			if props.Stroke != "" {
				dot.Stroke = NewStroke(props.Stroke, props.StrokeWidth)
			}
			list = append(list, dot)
		}
	}
	return list
}

func (c LineChart) dotColor(dataset int, value float64, index int) string {
	if c.DotColor != nil {
		return c.DotColor(value, index)
	}
	return c.datasetColor(dataset, 0.9)
}

func (c LineChart) dotProps(value float64, index int) DotProps {
	def := DotProps{Radius: 4}
	if c.DotProps != nil {
		return c.DotProps(value, index).merge(def)
	}
	return c.Dots.merge(def)
}

func (c LineChart) legend(width, offset float64) []Shape {
	if len(c.Data.Legend) == 0 {
		return nil
	}
	var (
		list = make([]Shape, 0, len(c.Data.Legend)*2)
		base = width / float64(len(c.Data.Legend)+1)
		font = c.labelProps().font()
	)
	for i, str := range c.Data.Legend {
		var (
			shift = float64(utf8.RuneCountInString(str)*legendLetter) / 2
			x     = base * float64(i+1)
		)
		list = append(list, Rect{
			X:      x - (legendIcon + shift),
			Y:      offset/2 - legendIcon/2,
			Width:  legendIcon,
			Height: legendIcon,
			RX:     legendIcon / 2,
			RY:     legendIcon / 2,
			Fill:   NewFill(c.datasetColor(i, 0.9)),
		})
		list = append(list, Text{
			X:       x - shift + legendGap,
			Y:       offset * 0.65,
			Content: str,
			Font:    font,
		})
	}
	return list
}
