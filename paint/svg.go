package paint

import (
	"bufio"
	"html"
	"io"
	"math"
	"strings"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// Render renders the chart and writes it as SVG to w.
func Render(w io.Writer, r charts.Renderer) error {
	return SVG(w, r.Render())
}

// SVG writes the drawing to w. Gradients are flattened: a fill referencing
// one is painted with the color and the opacity of its first stop.
func SVG(w io.Writer, d charts.Drawing) error {
	el := svg.NewSVG(svg.WithDimension(d.Width, d.Height))

	p := painter{
		gradients: collectGradients(d.Shapes),
	}
	for _, s := range d.Shapes {
		if e := p.element(s); e != nil {
			el.Append(e)
		}
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

type painter struct {
	gradients map[string]charts.Gradient
}

func collectGradients(shapes []charts.Shape) map[string]charts.Gradient {
	set := make(map[string]charts.Gradient)
	for _, s := range shapes {
		g, ok := s.(charts.Gradient)
		if !ok {
			continue
		}
		set[g.ID] = g
	}
	return set
}

func (p painter) element(s charts.Shape) svg.Element {
	switch s := s.(type) {
	case charts.Rect:
		return p.rect(s)
	case charts.Bar:
		return p.path(s.Path(), p.fill(s.Fill), charts.Stroke{})
	case charts.Line:
		li := svg.NewLine(svg.NewPos(s.X1, s.Y1), svg.NewPos(s.X2, s.Y2))
		li.Stroke = p.stroke(s.Stroke)
		return li.AsElement()
	case charts.Polyline:
		if len(s.Points) == 0 {
			return nil
		}
		var pl svg.PolyLine
		pl.Points = positions(s.Points)
		pl.Fill = svg.NewFill("none")
		pl.Stroke = p.stroke(s.Stroke)
		return pl.AsElement()
	case charts.Polygon:
		if len(s.Points) == 0 {
			return nil
		}
		var pg svg.Polygon
		pg.Points = positions(s.Points)
		pg.Fill = p.fill(s.Fill)
		if !s.Stroke.IsZero() {
			pg.Stroke = p.stroke(s.Stroke)
		}
		return pg.AsElement()
	case charts.Curve:
		return p.path(s.D, p.fill(s.Fill), s.Stroke)
	case charts.Sector:
		return p.path(s.Path(), p.fill(s.Fill), s.Stroke)
	case charts.Arc:
		return p.path(s.Path(), svg.NewFill("none"), s.Stroke)
	case charts.Circle:
		return p.circle(s)
	case charts.Text:
		return p.text(s)
	default:
		return nil
	}
}

func (p painter) rect(r charts.Rect) svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.Width, r.Height)
	el.RX = r.RX
	el.RY = r.RY
	el.Fill = p.fill(r.Fill)
	el.Title = html.EscapeString(r.Title)
	return el.AsElement()
}

func (p painter) circle(c charts.Circle) svg.Element {
	var ci svg.Circle
	ci.Pos = svg.NewPos(c.CX, c.CY)
	ci.Radius = c.Radius
	ci.Fill = p.fill(c.Fill)
	if !c.Stroke.IsZero() {
		ci.Stroke = p.stroke(c.Stroke)
	}
	return ci.AsElement()
}

func (p painter) text(t charts.Text) svg.Element {
	txt := svg.NewText(html.EscapeString(t.Content))
	txt.Pos = svg.NewPos(t.X, t.Y)
	txt.Anchor = t.Anchor
	if t.Font.Size > 0 {
		var families []string
		if t.Font.Family != "" {
			families = append(families, t.Font.Family)
		}
		txt.Font = svg.NewFont(t.Font.Size, families...)
		txt.Font.Weight = t.Font.Weight
	}
	if t.Font.Color != "" {
		txt.Fill = p.fill(charts.NewFill(t.Font.Color))
	}
	if t.Rotation != 0 {
		txt.Transform.Rotate(t.Rotation, t.Origin.X, t.Origin.Y)
	}
	return txt.AsElement()
}

func (p painter) path(d charts.Path, fill svg.Fill, stroke charts.Stroke) svg.Element {
	if d.Empty() {
		return nil
	}
	pat := convert(d)
	pat.Fill = fill
	if !stroke.IsZero() {
		pat.Stroke = p.stroke(stroke)
	}
	return pat.AsElement()
}

func (p painter) fill(f charts.Fill) svg.Fill {
	if f.IsZero() {
		return svg.NewFill("none")
	}
	var (
		color   = f.Color
		opacity = f.Opacity
	)
	if id, ok := gradientID(color); ok {
		if g, ok := p.gradients[id]; ok && len(g.Stops) > 0 {
			stop := slices.Fst(g.Stops)
			color = stop.Color
			opacity *= stop.Opacity
		}
	}
	fill := svg.NewFill(color)
	fill.Opacity = math.Min(opacity, 1)
	return fill
}

func (p painter) stroke(s charts.Stroke) svg.Stroke {
	color := s.Color
	if id, ok := gradientID(color); ok {
		if g, ok := p.gradients[id]; ok && len(g.Stops) > 0 {
			color = slices.Fst(g.Stops).Color
		}
	}
	sk := svg.NewStroke(color, 0)
	sk.Width = s.Width
	if s.Opacity > 0 && s.Opacity < 1 {
		sk.Opacity = s.Opacity
	}
	sk.Dash.Array = dashes(s.DashArray)
	sk.Line.Cap = s.LineCap
	sk.Line.Join = s.LineJoin
	return sk
}

// dashes rounds the dash pattern to whole pixels, the unit the svg package
// writes stroke-dasharray in.
func dashes(list []float64) []int {
	if len(list) == 0 {
		return nil
	}
	arr := make([]int, 0, len(list))
	for _, v := range list {
		arr = append(arr, int(math.Round(v)))
	}
	return arr
}

func gradientID(color string) (string, bool) {
	if !strings.HasPrefix(color, "url(#") || !strings.HasSuffix(color, ")") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(color, "url(#"), ")"), true
}

func positions(points []charts.Point) []svg.Pos {
	list := make([]svg.Pos, 0, len(points))
	for _, pt := range points {
		list = append(list, svg.NewPos(pt.X, pt.Y))
	}
	return list
}

// convert translates a path into the svg path model. Arcs are written as
// cubic curves since the svg package has no arc command.
func convert(d charts.Path) svg.Path {
	var (
		pat   svg.Path
		curr  svg.Pos
		start svg.Pos
	)
	for _, s := range d.Segments() {
		a := s.Args
		switch s.Cmd {
		case charts.CmdMove:
			curr = svg.NewPos(a[0], a[1])
			start = curr
			pat.AbsMoveTo(curr)
		case charts.CmdLine:
			curr = svg.NewPos(a[0], a[1])
			pat.AbsLineTo(curr)
		case charts.CmdHoriz:
			curr.X = a[0]
			pat.AbsHorizontalLine(a[0])
		case charts.CmdVert:
			curr.Y = a[0]
			pat.AbsVerticalLine(a[0])
		case charts.CmdArc:
			end := svg.NewPos(a[5], a[6])
			for _, c := range arcCurves(curr, end, a[0], a[1], a[2], a[3] != 0, a[4] != 0) {
				pat.AbsCubicCurve(c.end, c.c1, c.c2)
			}
			curr = end
		case charts.CmdQuad:
			curr = svg.NewPos(a[2], a[3])
			pat.AbsQuadraticCurve(curr, svg.NewPos(a[0], a[1]))
		case charts.CmdClose:
			pat.ClosePath()
			curr = start
		}
	}
	return pat
}
