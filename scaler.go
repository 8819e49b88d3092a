package charts

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

type Scale struct {
	Min  float64
	Max  float64
	Span float64
}

func NewScale(values []float64, fromZero bool) Scale {
	finite := finiteValues(values)
	if fromZero {
		finite = append(finite, 0)
	}
	if len(finite) == 0 {
		return Scale{Span: 1}
	}
	var s Scale
	s.Min, s.Max = stats.Bounds(finite)
	s.Span = s.Max - s.Min
	if s.Span == 0 || !isFinite(s.Span) {
		s.Span = 1
	}
	return s
}

// Values returns count evenly spaced values from Min to Min+Span, both
// included.
func (s Scale) Values(count int) []float64 {
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []float64{s.Min}
	default:
		return vec.Linspace(s.Min, s.Min+s.Span, count)
	}
}

func BaseHeight(values []float64, height float64) float64 {
	var (
		sc      = NewScale(values, false)
		min     = sc.Min
		max     = sc.Max
		nothing = len(finiteValues(values)) == 0
	)
	switch {
	case nothing:
		return 0
	case min >= 0 && max >= 0:
		return height
	case min < 0 && max > 0:
		return height * max / sc.Span
	default:
		return 0
	}
}

func PointHeight(value float64, values []float64, height float64, fromZero bool) float64 {
	if !isFinite(value) {
		return 0
	}
	var (
		raw  = NewScale(values, false)
		span = NewScale(values, fromZero).Span
		min  = raw.Min
		max  = raw.Max
	)
	if len(finiteValues(values)) == 0 {
		return 0
	}
	switch {
	case min >= 0 && max >= 0:
		if fromZero {
			return height * value / span
		}
		return height * (value - min) / span
	case min < 0 && max <= 0:
		if fromZero {
			return height * value / span
		}
		return height * (value - max) / span
	default:
		return height * value / span
	}
}

// Mapper caches the scale of one series for a given plot height.
type Mapper struct {
	Scale
	Height   float64
	Base     float64
	FromZero bool

	values []float64
}

func NewMapper(values []float64, height float64, fromZero bool) Mapper {
	return Mapper{
		Scale:    NewScale(values, fromZero),
		Height:   height,
		Base:     BaseHeight(values, height),
		FromZero: fromZero,
		values:   values,
	}
}

func (m Mapper) Extent(value float64) float64 {
	return PointHeight(value, m.values, m.Height, m.FromZero)
}

// Offset is the distance from the top of the plot to value.
func (m Mapper) Offset(value float64) float64 {
	return m.Base - m.Extent(value)
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Step(n int) float64 {
	if n <= 0 {
		return 0
	}
	return r.Len() / float64(n)
}

func finiteValues(values []float64) []float64 {
	list := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			list = append(list, v)
		}
	}
	return list
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
