package charts

type Kind int

const (
	KindRect Kind = iota
	KindBar
	KindLine
	KindPolyline
	KindPolygon
	KindPath
	KindSector
	KindArc
	KindCircle
	KindText
	KindGradient
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindPolygon:
		return "polygon"
	case KindPath:
		return "path"
	case KindSector:
		return "sector"
	case KindArc:
		return "arc"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	case KindGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

type Shape interface {
	Kind() Kind
	Translate(float64, float64) Shape
}

type Fill struct {
	Color   string
	Opacity float64
}

func NewFill(color string) Fill {
	return Fill{
		Color:   color,
		Opacity: 1,
	}
}

func (f Fill) IsZero() bool {
	return f.Color == ""
}

type Stroke struct {
	Color     string
	Width     float64
	Opacity   float64
	DashArray []float64
	LineCap   string
	LineJoin  string
}

func NewStroke(color string, width float64) Stroke {
	return Stroke{
		Color:   color,
		Width:   width,
		Opacity: 1,
	}
}

func (s Stroke) IsZero() bool {
	return s.Color == "" || s.Width <= 0
}

type Font struct {
	Size   float64
	Color  string
	Family string
	Weight string
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	RX     float64
	RY     float64
	Title  string
	Fill   Fill
}

func (r Rect) Kind() Kind { return KindRect }

func (r Rect) Translate(dx, dy float64) Shape {
	r.X += dx
	r.Y += dy
	return r
}

// Bar is a rectangle with rounded corners on the side opposite to the
// baseline.
type Bar struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Radius   float64
	Negative bool
	Fill     Fill
}

func (b Bar) Kind() Kind { return KindBar }

func (b Bar) Translate(dx, dy float64) Shape {
	b.X += dx
	b.Y += dy
	return b
}

func (b Bar) Path() Path {
	return RoundedBarPath(b.Width, b.Height, b.Radius, b.Negative, b.X, b.Y)
}

type Line struct {
	X1     float64
	Y1     float64
	X2     float64
	Y2     float64
	Stroke Stroke
}

func (i Line) Kind() Kind { return KindLine }

func (i Line) Translate(dx, dy float64) Shape {
	i.X1 += dx
	i.X2 += dx
	i.Y1 += dy
	i.Y2 += dy
	return i
}

type Polyline struct {
	Points []Point
	Stroke Stroke
}

func (p Polyline) Kind() Kind { return KindPolyline }

func (p Polyline) Translate(dx, dy float64) Shape {
	p.Points = translatePoints(p.Points, dx, dy)
	return p
}

type Polygon struct {
	Points []Point
	Fill   Fill
	Stroke Stroke
}

func (p Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Translate(dx, dy float64) Shape {
	p.Points = translatePoints(p.Points, dx, dy)
	return p
}

type Curve struct {
	D      Path
	Fill   Fill
	Stroke Stroke
}

func (c Curve) Kind() Kind { return KindPath }

func (c Curve) Translate(dx, dy float64) Shape {
	c.D = c.D.Translate(dx, dy)
	return c
}

// Sector is a slice of a ring. Angles are in radians, clockwise from twelve
// o'clock.
type Sector struct {
	Center Point
	Inner  float64
	Outer  float64
	Start  float64
	End    float64
	Fill   Fill
	Stroke Stroke
}

func (s Sector) Kind() Kind { return KindSector }

func (s Sector) Translate(dx, dy float64) Shape {
	s.Center = s.Center.Translate(dx, dy)
	return s
}

func (s Sector) Path() Path {
	return SectorPath(s.Center, s.Inner, s.Outer, s.Start, s.End)
}

func (s Sector) Sweep() float64 {
	return s.End - s.Start
}

// Arc is a stroked portion of a circle.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
	Stroke Stroke
}

func (a Arc) Kind() Kind { return KindArc }

func (a Arc) Translate(dx, dy float64) Shape {
	a.Center = a.Center.Translate(dx, dy)
	return a
}

func (a Arc) Path() Path {
	return ArcPath(a.Center, a.Radius, a.Start, a.End)
}

type Circle struct {
	CX     float64
	CY     float64
	Radius float64
	Fill   Fill
	Stroke Stroke
	Data   *DataPoint
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Translate(dx, dy float64) Shape {
	c.CX += dx
	c.CY += dy
	if c.Data != nil {
		dat := *c.Data
		dat.X += dx
		dat.Y += dy
		c.Data = &dat
	}
	return c
}

type Text struct {
	X        float64
	Y        float64
	Content  string
	Anchor   string
	Rotation float64
	Origin   Point
	Font     Font
}

func (t Text) Kind() Kind { return KindText }

func (t Text) Translate(dx, dy float64) Shape {
	t.X += dx
	t.Y += dy
	t.Origin = t.Origin.Translate(dx, dy)
	return t
}

type Stop struct {
	Offset  float64
	Color   string
	Opacity float64
}

// Gradient is a linear gradient definition referenced by fills through
// GradientRef.
type Gradient struct {
	ID    string
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Stops []Stop
}

func (g Gradient) Kind() Kind { return KindGradient }

func (g Gradient) Translate(dx, dy float64) Shape {
	return g
}

func GradientRef(id string) string {
	return "url(#" + id + ")"
}

func translatePoints(points []Point, dx, dy float64) []Point {
	list := make([]Point, 0, len(points))
	for _, p := range points {
		list = append(list, p.Translate(dx, dy))
	}
	return list
}
