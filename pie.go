package charts

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

type Slice struct {
	Name            string
	Color           string
	LegendFontColor string
	LegendFontSize  float64
	Values          map[string]any
}

func (s Slice) Value(accessor string) float64 {
	return NumericOrDefault(s.Values[accessor], 0)
}

type PieChart struct {
	Options
	Config
	Data     []Slice
	Accessor string

	Absolute   bool
	HideLegend bool
	Center     Point
	HoleRadius float64
}

func (c PieChart) Render() Drawing {
	var (
		layout = Layout{Options: c.Options, Config: c.Config}
		left   = c.Style.Number("paddingLeft", 0)
		cv     canvas
	)
	cv.add(layout.defs(c.Width, c.Height)...)
	cv.add(layout.background(c.Width, c.Height))

	cv.offset(c.Width/4+left, c.Height/2)
	var (
		sectors = c.Sectors()
		texts   = c.Labels()
		labels  = c.labelProps()
		step    = (c.Height * 0.8) / float64(len(c.Data))
	)
	for i, s := range sectors {
		cv.add(s)
		if c.HideLegend {
			continue
		}
		item := c.Data[i]
		cv.add(Rect{
			X:      c.Width/2.5 - 24,
			Y:      -(c.Height / 2.5) + step*float64(i) + 12,
			Width:  legendIcon,
			Height: legendIcon,
			RX:     legendIcon / 2,
			RY:     legendIcon / 2,
			Fill:   NewFill(item.Color),
		})
		props := LabelProps{
			Size:  item.LegendFontSize,
			Color: item.LegendFontColor,
		}
		cv.add(Text{
			X:       c.Width / 2.5,
			Y:       -(c.Height / 2.5) + step*float64(i) + 12*2,
			Content: texts[i] + " " + item.Name,
			Font:    props.merge(labels).font(),
		})
	}
	return cv.drawing(c.Width, c.Height)
}

func (c PieChart) values() []float64 {
	list := make([]float64, 0, len(c.Data))
	for _, s := range c.Data {
		list = append(list, c.value(s))
	}
	return list
}

func (c PieChart) value(s Slice) float64 {
	return s.Value(c.Accessor)
}

// Sectors computes one sector per slice, centered on Center. The sweep of a
// slice is its share of the total; all sweeps are zero when the total is.
func (c PieChart) Sectors() []Shape {
	var (
		values = c.values()
		total  = vec.Sum(values)
		list   = make([]Shape, 0, len(values))
		angle  float64
	)
	for i, v := range values {
		var sweep float64
		if total != 0 {
			sweep = v / total * fullcircle
		}
		list = append(list, Sector{
			Center: c.Center,
			Inner:  c.HoleRadius,
			Outer:  c.Height / 2.5,
			Start:  angle,
			End:    angle + sweep,
			Fill:   NewFill(c.Data[i].Color),
		})
		angle += sweep
	}
	return list
}

// Labels gives the value shown in the legend of each slice: the value itself
// when Absolute is set, its rounded percentage of the total otherwise.
func (c PieChart) Labels() []string {
	var (
		values = c.values()
		total  = vec.Sum(values)
		list   = make([]string, 0, len(values))
	)
	for _, v := range values {
		switch {
		case c.Absolute:
			list = append(list, formatFloat(v))
		case total == 0:
			list = append(list, "0%")
		default:
			list = append(list, formatFloat(roundHalfUp(100/total*v))+"%")
		}
	}
	return list
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
