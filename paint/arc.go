package paint

import (
	"math"

	"github.com/midbel/svg"
)

type cubic struct {
	c1  svg.Pos
	c2  svg.Pos
	end svg.Pos
}

// arcCurves approximates the elliptical arc going from one point to another
// with cubic curves, each one spanning at most a quarter turn. Radii too
// small to reach the end point are scaled up the way SVG renderers do.
func arcCurves(from, to svg.Pos, rx, ry, rotation float64, large, sweep bool) []cubic {
	if from == to {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []cubic{{c1: from, c2: to, end: to}}
	}
	var (
		phi      = rotation * math.Pi / 180
		cos, sin = math.Cos(phi), math.Sin(phi)
		dx       = (from.X - to.X) / 2
		dy       = (from.Y - to.Y) / 2
		x1       = cos*dx + sin*dy
		y1       = -sin*dx + cos*dy
	)
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}
	var (
		num  = rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
		den  = rx*rx*y1*y1 + ry*ry*x1*x1
		coef = math.Sqrt(math.Max(0, num/den))
	)
	if large == sweep {
		coef = -coef
	}
	var (
		cx1 = coef * rx * y1 / ry
		cy1 = -coef * ry * x1 / rx
		cx  = cos*cx1 - sin*cy1 + (from.X+to.X)/2
		cy  = sin*cx1 + cos*cy1 + (from.Y+to.Y)/2
	)
	var (
		theta = math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
		delta = math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	)
	if sweep && delta < 0 {
		delta += fullcircle
	} else if !sweep && delta > 0 {
		delta -= fullcircle
	}

	var (
		count   = max(int(math.Ceil(math.Abs(delta)/(math.Pi/2)-epsilon)), 1)
		step    = delta / float64(count)
		kappa   = 4.0 / 3.0 * math.Tan(step/4)
		list    = make([]cubic, 0, count)
		onArc   = func(t float64) svg.Pos {
			x, y := rx*math.Cos(t), ry*math.Sin(t)
			return svg.NewPos(snap(cx+cos*x-sin*y), snap(cy+sin*x+cos*y))
		}
		tangent = func(t float64) (float64, float64) {
			x, y := -rx*math.Sin(t), ry*math.Cos(t)
			return cos*x - sin*y, sin*x + cos*y
		}
	)
	for i := 0; i < count; i++ {
		var (
			t1       = theta + float64(i)*step
			t2       = t1 + step
			p1       = onArc(t1)
			p2       = onArc(t2)
			d1x, d1y = tangent(t1)
			d2x, d2y = tangent(t2)
		)
		if i == count-1 {
			p2 = to
		}
		list = append(list, cubic{
			c1:  svg.NewPos(snap(p1.X+kappa*d1x), snap(p1.Y+kappa*d1y)),
			c2:  svg.NewPos(snap(p2.X-kappa*d2x), snap(p2.Y-kappa*d2y)),
			end: p2,
		})
	}
	return list
}

// snap drops the rounding residue left by the trigonometric functions.
func snap(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}

const (
	fullcircle = 2 * math.Pi
	epsilon    = 1e-9
)
