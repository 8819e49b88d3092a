package charts

import (
	"math"
	"strconv"
	"strings"

	"github.com/midbel/slices"
)

const (
	CmdMove  = 'M'
	CmdLine  = 'L'
	CmdHoriz = 'H'
	CmdVert  = 'V'
	CmdArc   = 'A'
	CmdQuad  = 'Q'
	CmdClose = 'Z'
)

// Segment is one absolute path command. Arc arguments are rx, ry, rotation,
// large, sweep, x, y with the flags encoded as 0 or 1.
type Segment struct {
	Cmd  byte
	Args []float64
}

func (s Segment) translate(dx, dy float64) Segment {
	args := make([]float64, len(s.Args))
	copy(args, s.Args)
	switch s.Cmd {
	case CmdMove, CmdLine:
		args[0] += dx
		args[1] += dy
	case CmdHoriz:
		args[0] += dx
	case CmdVert:
		args[0] += dy
	case CmdQuad:
		args[0] += dx
		args[1] += dy
		args[2] += dx
		args[3] += dy
	case CmdArc:
		args[5] += dx
		args[6] += dy
	}
	return Segment{Cmd: s.Cmd, Args: args}
}

type Path struct {
	segments []Segment
}

func (p *Path) MoveTo(x, y float64) {
	p.push(CmdMove, x, y)
}

func (p *Path) LineTo(x, y float64) {
	p.push(CmdLine, x, y)
}

func (p *Path) HorizontalTo(x float64) {
	p.push(CmdHoriz, x)
}

func (p *Path) VerticalTo(y float64) {
	p.push(CmdVert, y)
}

func (p *Path) ArcTo(rx, ry, rotation float64, large, sweep bool, x, y float64) {
	p.push(CmdArc, rx, ry, rotation, flag(large), flag(sweep), x, y)
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.push(CmdQuad, cx, cy, x, y)
}

func (p *Path) Close() {
	p.push(CmdClose)
}

func (p *Path) push(cmd byte, args ...float64) {
	p.segments = append(p.segments, Segment{Cmd: cmd, Args: args})
}

func (p Path) Empty() bool {
	return len(p.segments) == 0
}

func (p Path) Len() int {
	return len(p.segments)
}

func (p Path) Segments() []Segment {
	return p.segments
}

func (p Path) Translate(dx, dy float64) Path {
	var x Path
	x.segments = make([]Segment, 0, len(p.segments))
	for _, s := range p.segments {
		x.segments = append(x.segments, s.translate(dx, dy))
	}
	return x
}

func (p Path) String() string {
	var str strings.Builder
	for i, s := range p.segments {
		if i > 0 {
			str.WriteByte(' ')
		}
		str.WriteByte(s.Cmd)
		for _, a := range s.Args {
			str.WriteByte(' ')
			str.WriteString(formatFloat(a))
		}
	}
	return str.String()
}

// ClampRadius keeps radius within [0, min(width/2, height/2)].
func ClampRadius(width, height, radius float64) float64 {
	r := math.Min(math.Min(math.Abs(height)/2, math.Abs(width)/2), radius)
	return math.Max(r, 0)
}

func RoundedBarPath(width, height, radius float64, negative bool, x, y float64) Path {
	var pat Path
	if width == 0 || height == 0 {
		return pat
	}
	for _, v := range []float64{width, height, radius, x, y} {
		if !isFinite(v) {
			return pat
		}
	}
	var (
		r    = ClampRadius(width, height, radius)
		half = math.Abs(width/2-r) < epsilon
	)
	if !negative && r > 0 {
		pat.MoveTo(x, y+r)
		if half {
			pat.ArcTo(r, r, 180, true, true, x+width, y+r)
		} else {
			pat.ArcTo(r, r, 90, false, true, x+r, y)
			pat.HorizontalTo(x + width - r)
			pat.ArcTo(r, r, 90, false, true, x+width, y+r)
		}
	} else {
		pat.MoveTo(x, y)
		pat.HorizontalTo(x + width)
	}
	if negative && r > 0 {
		pat.VerticalTo(y + height - r)
		if half {
			pat.ArcTo(r, r, 180, true, true, x, y+height-r)
		} else {
			pat.ArcTo(r, r, 90, false, true, x+width-r, y+height)
			pat.HorizontalTo(x + r)
			pat.ArcTo(r, r, 90, false, true, x, y+height-r)
		}
	} else {
		pat.VerticalTo(y + height)
		pat.HorizontalTo(x)
	}
	pat.VerticalTo(y)
	return pat
}

// BezierPath smooths points with quadratic curves going through the middle of
// each pair of consecutive points. Coordinates are floored.
func BezierPath(points []Point) Path {
	var pat Path
	if len(points) == 0 {
		pat.MoveTo(0, 0)
		return pat
	}
	fst := slices.Fst(points).Floor()
	pat.MoveTo(fst.X, fst.Y)

	prev := fst
	for _, pt := range slices.Rest(points) {
		var (
			curr = pt.Floor()
			mid  = NewPoint((prev.X+curr.X)/2, (prev.Y+curr.Y)/2)
		)
		pat.QuadTo((mid.X+prev.X)/2, prev.Y, mid.X, mid.Y)
		pat.QuadTo((mid.X+curr.X)/2, curr.Y, curr.X, curr.Y)
		prev = curr
	}
	return pat
}

// SectorPath draws the ring portion between inner and outer radius from start
// to end, angles in radians measured clockwise from twelve o'clock.
func SectorPath(center Point, inner, outer, start, end float64) Path {
	var pat Path
	for _, v := range []float64{center.X, center.Y, inner, outer, start, end} {
		if !isFinite(v) {
			return pat
		}
	}
	if end-start >= fullcircle-epsilon {
		mid := start + (end-start)/2
		return joinSectors(SectorPath(center, inner, outer, start, mid), SectorPath(center, inner, outer, mid, end))
	}
	var (
		large = end-start > math.Pi
		a     = center.Add(onCircle(outer, start))
		b     = center.Add(onCircle(outer, end))
		c     = center.Add(onCircle(inner, end))
		d     = center.Add(onCircle(inner, start))
	)
	pat.MoveTo(a.X, a.Y)
	pat.ArcTo(outer, outer, 0, large, true, b.X, b.Y)
	pat.LineTo(c.X, c.Y)
	pat.ArcTo(inner, inner, 0, large, false, d.X, d.Y)
	pat.Close()
	return pat
}

// ArcPath is the open outer arc of a sector.
func ArcPath(center Point, radius, start, end float64) Path {
	var pat Path
	for _, v := range []float64{center.X, center.Y, radius, start, end} {
		if !isFinite(v) {
			return pat
		}
	}
	if end-start >= fullcircle-epsilon {
		mid := start + (end-start)/2
		fst := ArcPath(center, radius, start, mid)
		lst := ArcPath(center, radius, mid, end)
		fst.segments = append(fst.segments, lst.segments[1:]...)
		return fst
	}
	var (
		a = center.Add(onCircle(radius, start))
		b = center.Add(onCircle(radius, end))
	)
	pat.MoveTo(a.X, a.Y)
	pat.ArcTo(radius, radius, 0, end-start > math.Pi, true, b.X, b.Y)
	return pat
}

func RoundedRectPath(x, y, width, height, rx, ry float64) Path {
	var pat Path
	if width <= 0 || height <= 0 {
		return pat
	}
	rx = math.Max(math.Min(rx, width/2), 0)
	ry = math.Max(math.Min(ry, height/2), 0)
	if rx == 0 || ry == 0 {
		pat.MoveTo(x, y)
		pat.HorizontalTo(x + width)
		pat.VerticalTo(y + height)
		pat.HorizontalTo(x)
		pat.Close()
		return pat
	}
	pat.MoveTo(x+rx, y)
	pat.HorizontalTo(x + width - rx)
	pat.ArcTo(rx, ry, 0, false, true, x+width, y+ry)
	pat.VerticalTo(y + height - ry)
	pat.ArcTo(rx, ry, 0, false, true, x+width-rx, y+height)
	pat.HorizontalTo(x + rx)
	pat.ArcTo(rx, ry, 0, false, true, x, y+height-ry)
	pat.VerticalTo(y + ry)
	pat.ArcTo(rx, ry, 0, false, true, x+rx, y)
	pat.Close()
	return pat
}

func joinSectors(fst, lst Path) Path {
	// outer arc of both halves then inner arc back to the start
	var pat Path
	if fst.Len() < 5 || lst.Len() < 5 {
		return pat
	}
	pat.segments = append(pat.segments, fst.segments[0], fst.segments[1], lst.segments[1], lst.segments[2])
	pat.segments = append(pat.segments, lst.segments[3], fst.segments[3], fst.segments[4])
	return pat
}

func onCircle(radius, angle float64) Point {
	return NewPoint(radius*math.Sin(angle), -radius*math.Cos(angle))
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// formatFloat writes v in its shortest form. Values closer to zero than
// residue are written as 0.
func formatFloat(v float64) string {
	if math.Abs(v) < residue {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

const (
	fullcircle = 2 * math.Pi
	epsilon    = 0x1p-52
	residue    = 1e-9
)
