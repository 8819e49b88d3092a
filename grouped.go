package charts

import (
	"strconv"
)

type GroupedDataset struct {
	Legend       string
	GradientFrom string
	GradientTo   string
	Data         []float64
}

type GroupedData struct {
	Labels   []string
	Datasets []GroupedDataset
}

func (g GroupedData) Values() []float64 {
	all := make([][]float64, 0, len(g.Datasets))
	for _, d := range g.Datasets {
		all = append(all, d.Data)
	}
	return flatten(all)
}

// Categories gives the number of clusters, one per label or, without labels,
// one per value of the longest dataset.
func (g GroupedData) Categories() int {
	if len(g.Labels) > 0 {
		return len(g.Labels)
	}
	var n int
	for _, d := range g.Datasets {
		if len(d.Data) > n {
			n = len(d.Data)
		}
	}
	return n
}

// GroupedBarChart draws for each category one bar per dataset, side by side.
type GroupedBarChart struct {
	Options
	Config
	Data GroupedData

	BarFull              bool
	HideInnerLines       bool
	HideHorizontalLabels bool
	HideVerticalLabels   bool
}

func (c GroupedBarChart) Render() Drawing {
	var (
		layout = c.layout()
		pad    = c.Style.padding(16, 64)
		values = c.Data.Values()
		cv     canvas
	)
	cv.add(layout.defs(c.Width, c.Height)...)
	cv.add(c.gradients()...)
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

func (c GroupedBarChart) layout() Layout {
	return Layout{
		Options: c.Options,
		Config:  c.Config,
	}
}

func (c GroupedBarChart) gradients() []Shape {
	var list []Shape
	for i, d := range c.Data.Datasets {
		if d.GradientFrom == "" {
			continue
		}
		to := d.GradientTo
		if to == "" {
			to = d.GradientFrom
		}
		list = append(list, c.layout().shadowGradient(seriesGradientID(i), c.Height, d.GradientFrom, to))
	}
	return list
}

func (c GroupedBarChart) fill(index int) Fill {
	if d := c.Data.Datasets[index]; d.GradientFrom != "" {
		return NewFill(GradientRef(seriesGradientID(index)))
	}
	return NewFill(GradientRef(FillShadowGradientID))
}

// position gives the left side of the bar of the dataset at serie in the
// cluster of category.
func (c GroupedBarChart) position(category, serie int, pad Padding) float64 {
	var (
		width = c.barWidth()
		count = float64(c.Data.Categories())
	)
	return pad.Right + (float64(category)*(c.Width-pad.Right))/count + width/2 + width*float64(serie)
}

func (c GroupedBarChart) bars(values []float64, pad Padding) []Shape {
	var (
		mapper = NewMapper(values, c.Height, c.FromZero)
		list   []Shape
	)
	for s, d := range c.Data.Datasets {
		fill := c.fill(s)
		for j, v := range d.Data {
			if v == 0 || j >= c.Data.Categories() {
				continue
			}
			x := c.position(j, s, pad)
			if b, ok := makeBar(mapper, v, x, c.barWidth(), c.BarRadius, pad.Top, fill); ok {
				list = append(list, b)
			}
		}
	}
	return list
}

func (c GroupedBarChart) tops(values []float64, pad Padding) []Shape {
	var (
		mapper = NewMapper(values, c.Height, c.FromZero)
		list   []Shape
	)
	for s, d := range c.Data.Datasets {
		for j, v := range d.Data {
			if j >= c.Data.Categories() {
				continue
			}
			list = append(list, barTop(mapper, v, c.position(j, s, pad), c.barWidth(), pad.Top, NewFill(c.color(0.6, s))))
		}
	}
	return list
}

func seriesGradientID(index int) string {
	return FillShadowGradientID + "_" + strconv.Itoa(index)
}
