package charts

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Renderer interface {
	Render() Drawing
}

// Drawing is the result of a render: the canvas size and the shapes to paint,
// in painting order.
type Drawing struct {
	Width  float64
	Height float64
	Shapes []Shape
}

func (d Drawing) Filter(kind Kind) []Shape {
	var list []Shape
	for _, s := range d.Shapes {
		if s.Kind() == kind {
			list = append(list, s)
		}
	}
	return list
}

const (
	BackgroundGradientID = "backgroundGradient"
	FillShadowGradientID = "fillShadowGradient"
)

// Layout holds the settings shared by all the charts.
type Layout struct {
	Options
	Config
}

func (f Layout) backgroundGradient(width, height float64) Gradient {
	return Gradient{
		ID: BackgroundGradientID,
		X1: 0,
		Y1: height,
		X2: width,
		Y2: 0,
		Stops: []Stop{
			{Offset: 0, Color: f.BackgroundGradientFrom, Opacity: f.BackgroundGradientFromOpacity},
			{Offset: 1, Color: f.BackgroundGradientTo, Opacity: f.BackgroundGradientToOpacity},
		},
	}
}

func (f Layout) shadowGradient(id string, height float64, from, to string) Gradient {
	return Gradient{
		ID: id,
		X1: 0,
		Y1: 0,
		X2: 0,
		Y2: height,
		Stops: []Stop{
			{Offset: 0, Color: from, Opacity: f.FillShadowGradientOpacity},
			{Offset: 1, Color: to, Opacity: 0},
		},
	}
}

func (f Layout) defs(width, height float64) []Shape {
	shadow := f.FillShadowGradient
	if shadow == "" {
		shadow = f.color(1, 0)
	}
	return []Shape{
		f.backgroundGradient(width, height),
		f.shadowGradient(FillShadowGradientID, height, shadow, shadow),
	}
}

func (f Layout) background(width, height float64) Rect {
	r := f.Style.borderRadius()
	fill := NewFill(GradientRef(BackgroundGradientID))
	if f.BackgroundColor != "" {
		fill = NewFill(f.BackgroundColor)
	}
	return Rect{
		Width:  width,
		Height: height,
		RX:     r,
		RY:     r,
		Fill:   fill,
	}
}

// canvas collects shapes, shifting them by the current offset.
type canvas struct {
	dx     float64
	dy     float64
	shapes []Shape
}

func (c *canvas) offset(dx, dy float64) {
	c.dx, c.dy = dx, dy
}

func (c *canvas) add(list ...Shape) {
	for _, s := range list {
		if s == nil {
			continue
		}
		if c.dx != 0 || c.dy != 0 {
			s = s.Translate(c.dx, c.dy)
		}
		c.shapes = append(c.shapes, s)
	}
}

func (c *canvas) drawing(width, height float64) Drawing {
	return Drawing{
		Width:  width,
		Height: height,
		Shapes: c.shapes,
	}
}
