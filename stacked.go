package charts

import (
	"github.com/aclements/go-moremath/vec"
)

type StackedData struct {
	Labels    []string
	Legend    []string
	Data      [][]float64
	BarColors []string
}

// Border is the largest column total.
func (s StackedData) Border() float64 {
	var border float64
	for _, col := range s.Data {
		if sum := vec.Sum(finiteValues(col)); sum > border {
			border = sum
		}
	}
	return border
}

func (s StackedData) color(index int) string {
	if index < len(s.BarColors) && s.BarColors[index] != "" {
		return s.BarColors[index]
	}
	return Category10.At(index)
}

type StackedBarChart struct {
	Options
	Config
	Data StackedData

	HideLegend           bool
	HideHorizontalLabels bool
	HideVerticalLabels   bool
}

const (
	stackedMargin   = 55
	stackedCompact  = 0.7
	stackedBarShift = 20
	stackedLabel    = 28
)

func (c StackedBarChart) Render() Drawing {
	var (
		layout = c.layout()
		pad    = c.Style.padding(15, 50)
		border = c.Data.Border()
		cv     canvas
	)
	cv.add(layout.defs(c.Width, c.Height)...)
	cv.add(layout.background(c.Width, c.Height))
	cv.add(layout.HorizontalLines(4, c.Width, c.Height, pad.Top, pad.Right)...)
	if !c.HideHorizontalLabels {
		cv.add(layout.HorizontalLabels(4, []float64{0, border}, c.Height, pad.Top, pad.Right)...)
	}
	if !c.HideVerticalLabels {
		cv.add(layout.VerticalLabels(c.Data.Labels, c.Width, c.Height, pad.Right+stackedLabel, pad.Top, barSize, stackedCompress)...)
	}
	cv.add(c.bars(border, pad.Top, pad.Right+stackedBarShift)...)
	cv.add(c.legend()...)
	return cv.drawing(c.Width, c.Height)
}

func (c StackedBarChart) layout() Layout {
	return Layout{
		Options: c.Options,
		Config:  c.Config,
	}
}

// Segments gives the height of each segment of the column at index.
func (c StackedBarChart) Segments(index int) []float64 {
	if index < 0 || index >= len(c.Data.Data) {
		return nil
	}
	var (
		col    = c.Data.Data[index]
		border = c.Data.Border()
		list   = make([]float64, 0, len(col))
	)
	for _, v := range col {
		var h float64
		if border > 0 && isFinite(v) {
			h = (c.Height - stackedMargin) * (v / border)
		}
		list = append(list, h)
	}
	return list
}

func (c StackedBarChart) bars(border, paddingTop, paddingRight float64) []Shape {
	var (
		list  []Shape
		width = c.barWidth()
		font  = c.labelProps().font()
		count = float64(len(c.Data.Data))
	)
	for i, col := range c.Data.Data {
		var (
			top = paddingTop
			x   = (paddingRight + (float64(i)*(c.Width-paddingRight))/count + width/2) * stackedCompact
		)
		for z, h := range c.Segments(i) {
			y := (c.Height/4)*3 - h + top
			r := Rect{
				X:      x,
				Y:      y,
				Width:  width,
				Height: h,
				Fill:   NewFill(c.Data.color(z)),
			}
			if z == len(col)-1 {
				r.RX, r.RY = c.BarRadius, c.BarRadius
			}
			list = append(list, r)
			if !c.HideLegend {
				ty := y + 7
				if h > 15 {
					ty = y + 15
				}
				list = append(list, Text{
					X:       x + 7 + width/2,
					Y:       ty,
					Content: formatFloat(col[z]),
					Anchor:  "end",
					Font:    font,
				})
			}
			top -= h
		}
	}
	return list
}

func (c StackedBarChart) legend() []Shape {
	var (
		list = make([]Shape, 0, len(c.Data.Legend)*2)
		font = c.labelProps().font()
	)
	for i, str := range c.Data.Legend {
		shift := float64(i) * 50
		list = append(list, Rect{
			X:      c.Width * 0.71,
			Y:      c.Height*0.7 - shift,
			Width:  legendIcon,
			Height: legendIcon,
			RX:     legendIcon / 2,
			RY:     legendIcon / 2,
			Fill:   NewFill(c.Data.color(i)),
		})
		list = append(list, Text{
			X:       c.Width * 0.78,
			Y:       c.Height*0.76 - shift,
			Content: str,
			Font:    font,
		})
	}
	return list
}
