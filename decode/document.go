package decode

import (
	"math"
	"time"

	charts "github.com/midbel/chartkit"
	"gopkg.in/yaml.v3"
)

type document struct {
	Charts []yaml.Node `yaml:"charts"`
}

type chart struct {
	Name    string         `yaml:"name"`
	Type    string         `yaml:"type"`
	Width   float64        `yaml:"width"`
	Height  float64        `yaml:"height"`
	Options options        `yaml:"options"`
	Config  config         `yaml:"config"`
	Style   map[string]any `yaml:"style"`
	Data    yaml.Node      `yaml:"data"`

	pos Position
}

type options struct {
	FromZero bool `yaml:"fromZero"`

	YAxisLabel    string  `yaml:"yAxisLabel"`
	YAxisSuffix   string  `yaml:"yAxisSuffix"`
	YLabelsOffset float64 `yaml:"yLabelsOffset"`
	XLabelsOffset float64 `yaml:"xLabelsOffset"`
	XAxisLabel    string  `yaml:"xAxisLabel"`

	HorizontalLabelRotation float64 `yaml:"horizontalLabelRotation"`
	VerticalLabelRotation   float64 `yaml:"verticalLabelRotation"`
	HidePointsAtIndex       []int   `yaml:"hidePointsAtIndex"`

	Bezier               bool `yaml:"bezier"`
	BarFull              bool `yaml:"barFull"`
	HideShadow           bool `yaml:"hideShadow"`
	HideDots             bool `yaml:"hideDots"`
	HideInnerLines       bool `yaml:"hideInnerLines"`
	HideOuterLines       bool `yaml:"hideOuterLines"`
	HideHorizontalLabels bool `yaml:"hideHorizontalLabels"`
	HideVerticalLabels   bool `yaml:"hideVerticalLabels"`
	HideLegend           bool `yaml:"hideLegend"`

	Accessor   string  `yaml:"accessor"`
	Absolute   bool    `yaml:"absolute"`
	HoleRadius float64 `yaml:"holeRadius"`

	EndDate            string  `yaml:"endDate"`
	NumDays            int     `yaml:"numDays"`
	SquareSize         float64 `yaml:"squareSize"`
	GutterSize         float64 `yaml:"gutterSize"`
	Vertical           bool    `yaml:"vertical"`
	HideMonthLabels    bool    `yaml:"hideMonthLabels"`
	ShowOutOfRangeDays bool    `yaml:"showOutOfRangeDays"`
}

func defaultOptions() options {
	return options{
		YLabelsOffset: charts.DefaultOptions(0, 0).YLabelsOffset,
		Accessor:      "population",
		GutterSize:    1,
	}
}

func (o options) layout(width, height float64, style map[string]any) charts.Options {
	opts := charts.DefaultOptions(width, height)
	opts.FromZero = o.FromZero
	opts.YAxisLabel = o.YAxisLabel
	opts.YAxisSuffix = o.YAxisSuffix
	opts.YLabelsOffset = o.YLabelsOffset
	opts.XLabelsOffset = o.XLabelsOffset
	opts.XAxisLabel = o.XAxisLabel
	opts.HorizontalLabelRotation = o.HorizontalLabelRotation
	opts.VerticalLabelRotation = o.VerticalLabelRotation
	opts.HidePointsAtIndex = o.HidePointsAtIndex
	opts.Style = charts.Style(style)
	return opts
}

type config struct {
	Color      *Color `yaml:"color"`
	LabelColor *Color `yaml:"labelColor"`

	DecimalPlaces int `yaml:"decimalPlaces"`

	BackgroundColor               string  `yaml:"backgroundColor"`
	BackgroundGradientFrom        string  `yaml:"backgroundGradientFrom"`
	BackgroundGradientTo          string  `yaml:"backgroundGradientTo"`
	BackgroundGradientFromOpacity float64 `yaml:"backgroundGradientFromOpacity"`
	BackgroundGradientToOpacity   float64 `yaml:"backgroundGradientToOpacity"`

	FillShadowGradient        string  `yaml:"fillShadowGradient"`
	FillShadowGradientOpacity float64 `yaml:"fillShadowGradientOpacity"`

	BarPercentage float64 `yaml:"barPercentage"`
	BarRadius     float64 `yaml:"barRadius"`
	StrokeWidth   float64 `yaml:"strokeWidth"`
}

func defaultConfig() config {
	def := charts.DefaultConfig()
	return config{
		DecimalPlaces:                 def.DecimalPlaces,
		BackgroundGradientFrom:        def.BackgroundGradientFrom,
		BackgroundGradientTo:          def.BackgroundGradientTo,
		BackgroundGradientFromOpacity: def.BackgroundGradientFromOpacity,
		BackgroundGradientToOpacity:   def.BackgroundGradientToOpacity,
		FillShadowGradientOpacity:     def.FillShadowGradientOpacity,
		BarPercentage:                 def.BarPercentage,
		StrokeWidth:                   def.StrokeWidth,
	}
}

func (c config) paint() charts.Config {
	cfg := charts.DefaultConfig()
	if fn := c.Color.Func(); fn != nil {
		cfg.Color = fn
	}
	cfg.LabelColor = c.LabelColor.Func()
	cfg.DecimalPlaces = c.DecimalPlaces
	cfg.BackgroundColor = c.BackgroundColor
	cfg.BackgroundGradientFrom = c.BackgroundGradientFrom
	cfg.BackgroundGradientTo = c.BackgroundGradientTo
	cfg.BackgroundGradientFromOpacity = c.BackgroundGradientFromOpacity
	cfg.BackgroundGradientToOpacity = c.BackgroundGradientToOpacity
	cfg.FillShadowGradient = c.FillShadowGradient
	cfg.FillShadowGradientOpacity = c.FillShadowGradientOpacity
	cfg.BarPercentage = c.BarPercentage
	cfg.BarRadius = c.BarRadius
	cfg.StrokeWidth = c.StrokeWidth
	return cfg
}

// Number accepts any scalar. Values that are not numeric decode as NaN so
// that charts leave a gap for them.
type Number float64

func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*n = Number(math.NaN())
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	*n = Number(charts.NumericOrDefault(v, math.NaN()))
	return nil
}

func numbers(list []Number) []float64 {
	vs := make([]float64, len(list))
	for i := range list {
		vs[i] = float64(list[i])
	}
	return vs
}

type dataset struct {
	Data        []Number `yaml:"data"`
	Color       *Color   `yaml:"color"`
	StrokeWidth float64  `yaml:"strokeWidth"`
}

type chartData struct {
	Labels   []string  `yaml:"labels"`
	Datasets []dataset `yaml:"datasets"`
	Legend   []string  `yaml:"legend"`
}

func (c chartData) data() charts.ChartData {
	data := charts.ChartData{
		Labels: c.Labels,
		Legend: c.Legend,
	}
	for _, d := range c.Datasets {
		data.Datasets = append(data.Datasets, charts.Dataset{
			Data:        numbers(d.Data),
			Color:       d.Color.Func(),
			StrokeWidth: d.StrokeWidth,
		})
	}
	return data
}

type groupedData struct {
	Labels   []string `yaml:"labels"`
	Datasets []struct {
		Legend       string   `yaml:"legend"`
		GradientFrom string   `yaml:"gradientFrom"`
		GradientTo   string   `yaml:"gradientTo"`
		Data         []Number `yaml:"data"`
	} `yaml:"datasets"`
}

func (g groupedData) data() charts.GroupedData {
	data := charts.GroupedData{
		Labels: g.Labels,
	}
	for _, d := range g.Datasets {
		data.Datasets = append(data.Datasets, charts.GroupedDataset{
			Legend:       d.Legend,
			GradientFrom: d.GradientFrom,
			GradientTo:   d.GradientTo,
			Data:         numbers(d.Data),
		})
	}
	return data
}

type stackedData struct {
	Labels    []string   `yaml:"labels"`
	Legend    []string   `yaml:"legend"`
	Data      [][]Number `yaml:"data"`
	BarColors []string   `yaml:"barColors"`
}

func (s stackedData) data() charts.StackedData {
	data := charts.StackedData{
		Labels:    s.Labels,
		Legend:    s.Legend,
		BarColors: s.BarColors,
	}
	for _, col := range s.Data {
		data.Data = append(data.Data, numbers(col))
	}
	return data
}

type progressData struct {
	Labels []string `yaml:"labels"`
	Data   []Number `yaml:"data"`
}

// UnmarshalYAML accepts either a plain list of values or a mapping with
// labels and data.
func (p *progressData) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		p.Labels = nil
		return node.Decode(&p.Data)
	}
	type plain progressData
	var tmp plain
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	*p = progressData(tmp)
	return nil
}

func (p progressData) data() charts.ProgressData {
	return charts.ProgressData{
		Labels: p.Labels,
		Data:   numbers(p.Data),
	}
}

func decodeSlices(node *yaml.Node) ([]charts.Slice, error) {
	var list []map[string]any
	if err := decodeData(node, &list); err != nil {
		return nil, err
	}
	var slices []charts.Slice
	for _, m := range list {
		s := charts.Slice{
			Values: m,
		}
		s.Name, _ = m["name"].(string)
		s.Color, _ = m["color"].(string)
		s.LegendFontColor, _ = m["legendFontColor"].(string)
		s.LegendFontSize = charts.NumericOrDefault(m["legendFontSize"], 0)
		slices = append(slices, s)
	}
	return slices, nil
}

const dateFormat = "2006-01-02"

type contribution struct {
	Date  string `yaml:"date"`
	Count int    `yaml:"count"`
}

func decodeContributions(node *yaml.Node) ([]charts.ContributionValue, error) {
	var list []contribution
	if err := decodeData(node, &list); err != nil {
		return nil, err
	}
	values := make([]charts.ContributionValue, 0, len(list))
	for _, c := range list {
		when, err := parseDate(c.Date)
		if err != nil {
			return nil, err
		}
		values = append(values, charts.ContributionValue{
			Date:  when,
			Count: c.Count,
		})
	}
	return values, nil
}

func parseDate(str string) (time.Time, error) {
	return time.ParseInLocation(dateFormat, str, time.UTC)
}

func decodeData(node *yaml.Node, v any) error {
	if node.Kind == 0 {
		return nil
	}
	return node.Decode(v)
}
