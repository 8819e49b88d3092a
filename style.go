package charts

import (
	"math"
	"strconv"
	"strings"
)

const FontSize = 12.0

type LineStyle int

const (
	StyleSolid LineStyle = iota
	StyleDashed
	StyleDotted
)

// DashArray gives the default dash pattern of the style.
func (s LineStyle) DashArray() []float64 {
	switch s {
	case StyleDashed:
		return []float64{5, 10}
	case StyleDotted:
		return []float64{1, 5}
	default:
		return nil
	}
}

type LineProps struct {
	Stroke    string
	Width     float64
	Opacity   float64
	Style     LineStyle
	DashArray []float64
}

func (p LineProps) merge(other LineProps) LineProps {
	if p.Stroke == "" {
		p.Stroke = other.Stroke
	}
	if p.Width == 0 {
		p.Width = other.Width
	}
	if p.Opacity == 0 {
		p.Opacity = other.Opacity
	}
	if len(p.DashArray) == 0 {
		p.DashArray = p.Style.DashArray()
	}
	if len(p.DashArray) == 0 {
		p.DashArray = other.DashArray
	}
	return p
}

func (p LineProps) stroke() Stroke {
	s := NewStroke(p.Stroke, p.Width)
	if p.Opacity > 0 {
		s.Opacity = p.Opacity
	}
	s.DashArray = append(s.DashArray, p.DashArray...)
	return s
}

type LabelProps struct {
	Size   float64
	Color  string
	Family string
	Weight string
}

func (p LabelProps) merge(other LabelProps) LabelProps {
	if p.Size == 0 {
		p.Size = other.Size
	}
	if p.Color == "" {
		p.Color = other.Color
	}
	if p.Family == "" {
		p.Family = other.Family
	}
	if p.Weight == "" {
		p.Weight = other.Weight
	}
	return p
}

func (p LabelProps) font() Font {
	return Font{
		Size:   p.Size,
		Color:  p.Color,
		Family: p.Family,
		Weight: p.Weight,
	}
}

type DotProps struct {
	Radius      float64
	Stroke      string
	StrokeWidth float64
}

func (p DotProps) merge(other DotProps) DotProps {
	if p.Radius == 0 {
		p.Radius = other.Radius
	}
	if p.Stroke == "" {
		p.Stroke = other.Stroke
	}
	if p.StrokeWidth == 0 {
		p.StrokeWidth = other.StrokeWidth
	}
	return p
}

// Config holds the paint settings shared by every chart.
type Config struct {
	Color      ColorFunc
	LabelColor ColorFunc

	DecimalPlaces int

	BackgroundColor               string
	BackgroundGradientFrom        string
	BackgroundGradientTo          string
	BackgroundGradientFromOpacity float64
	BackgroundGradientToOpacity   float64

	FillShadowGradient        string
	FillShadowGradientOpacity float64

	BarPercentage float64
	BarRadius     float64
	StrokeWidth   float64

	BackgroundLines LineProps
	Labels          LabelProps
	Dots            DotProps
}

func DefaultConfig() Config {
	return Config{
		Color:                         defaultColor,
		DecimalPlaces:                 2,
		BackgroundGradientFrom:        "#ffffff",
		BackgroundGradientTo:          "#ffffff",
		BackgroundGradientFromOpacity: 1,
		BackgroundGradientToOpacity:   1,
		FillShadowGradientOpacity:     0.1,
		BarPercentage:                 1,
		StrokeWidth:                   3,
	}
}

func (c Config) color(opacity float64, index int) string {
	if c.Color == nil {
		return defaultColor(opacity, index)
	}
	return c.Color(opacity, index)
}

func (c Config) labelColor(opacity float64) string {
	if c.LabelColor == nil {
		return c.color(opacity, 0)
	}
	return c.LabelColor(opacity, 0)
}

func (c Config) backgroundLineProps() LineProps {
	def := LineProps{
		Stroke:    c.color(0.2, 0),
		Width:     1,
		DashArray: StyleDashed.DashArray(),
	}
	return c.BackgroundLines.merge(def)
}

func (c Config) labelProps() LabelProps {
	def := LabelProps{
		Size:  FontSize,
		Color: c.labelColor(0.8),
	}
	return c.Labels.merge(def)
}

func (c Config) barWidth() float64 {
	return barSize * c.BarPercentage
}

func (c Config) decimals() int {
	if c.DecimalPlaces < 0 {
		return 0
	}
	return c.DecimalPlaces
}

const barSize = 32

// Options holds the layout settings shared by the axis based charts.
type Options struct {
	Width  float64
	Height float64

	FromZero bool

	YAxisLabel    string
	YAxisSuffix   string
	YLabelsOffset float64
	XLabelsOffset float64
	XAxisLabel    string

	HorizontalLabelRotation float64
	VerticalLabelRotation   float64
	FormatYLabel            func(string) string
	FormatXLabel            func(string) string

	HidePointsAtIndex []int

	Style Style
}

func DefaultOptions(width, height float64) Options {
	return Options{
		Width:         width,
		Height:        height,
		YLabelsOffset: 12,
	}
}

func (o Options) hidden(index int) bool {
	for _, i := range o.HidePointsAtIndex {
		if i == index {
			return true
		}
	}
	return false
}

func (o Options) formatY(str string) string {
	if o.FormatYLabel == nil {
		return str
	}
	return o.FormatYLabel(str)
}

func (o Options) formatX(str string) string {
	if o.FormatXLabel == nil {
		return str
	}
	return o.FormatXLabel(str)
}

// Style is the free form view style of a chart. Its numeric entries are read
// with NumericOrDefault.
type Style map[string]any

func (s Style) Number(key string, def float64) float64 {
	if s == nil {
		return def
	}
	return NumericOrDefault(s[key], def)
}

func (s Style) padding(top, right float64) Padding {
	return Padding{
		Top:    s.Number("paddingTop", top),
		Right:  s.Number("paddingRight", right),
		Bottom: s.Number("paddingBottom", 0),
		Left:   s.Number("paddingLeft", 0),
	}
}

func (s Style) borderRadius() float64 {
	return s.Number("borderRadius", 0)
}

// NumericOrDefault returns value as a float64 when it holds a finite number
// or a string parsing to one, def otherwise.
func NumericOrDefault(value any, def float64) float64 {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		f = x
	default:
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
