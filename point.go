package charts

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Add(other Point) Point {
	return p.Translate(other.X, other.Y)
}

func (p Point) Translate(dx, dy float64) Point {
	return NewPoint(p.X+dx, p.Y+dy)
}

func (p Point) Floor() Point {
	return NewPoint(math.Floor(p.X), math.Floor(p.Y))
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// DataPoint describes the value behind a dot of a line chart.
type DataPoint struct {
	Index   int
	Value   float64
	Dataset int
	X       float64
	Y       float64
	Color   func(float64) string
}

func (d DataPoint) Point() Point {
	return NewPoint(d.X, d.Y)
}
