package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	defaultWidth  = 320
	defaultHeight = 220
)

type Entry struct {
	Name string
	Type string
	charts.Renderer
}

type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

type Decoder struct {
	reader io.Reader
	file   string
	strict bool
	format Format
}

type Option func(*Decoder)

func WithFile(file string) Option {
	return func(d *Decoder) {
		d.file = file
	}
}

// WithStrict rejects documents with fields that are not known.
func WithStrict(strict bool) Option {
	return func(d *Decoder) {
		d.strict = strict
	}
}

func WithFormat(format Format) Option {
	return func(d *Decoder) {
		d.format = format
	}
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := Decoder{
		reader: r,
		format: FormatYAML,
	}
	for _, o := range opts {
		o(&d)
	}
	return &d
}

func (d *Decoder) Decode() ([]Entry, error) {
	buf, err := d.read()
	if err != nil {
		return nil, err
	}
	var (
		doc document
		dec = yaml.NewDecoder(bytes.NewReader(buf))
	)
	dec.KnownFields(d.strict)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, d.decodeError("empty document", Position{})
		}
		return nil, d.decodeError(err.Error(), lineOf(err))
	}
	var (
		list []Entry
		seen = make(map[string]struct{})
	)
	for i := range doc.Charts {
		e, err := d.decodeChart(&doc.Charts[i], i)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(e.Name)
		if _, ok := seen[key]; ok {
			return nil, OptionError{
				Option:   "name",
				Chart:    e.Name,
				File:     d.file,
				Err:      fmt.Errorf("%w: chart %q defined more than once", ErrInvalidDocument, e.Name),
				Position: keyPosition(&doc.Charts[i], "name"),
			}
		}
		seen[key] = struct{}{}
		logging.Debug().Add(logging.Chart(e.Name), logging.Kind(e.Type), logging.File(d.file)).Msg("chart decoded")
		list = append(list, e)
	}
	return list, nil
}

func (d *Decoder) read() ([]byte, error) {
	buf, err := io.ReadAll(d.reader)
	if err != nil {
		return nil, err
	}
	if d.format != FormatJSON {
		return buf, nil
	}
	var v any
	if err := json.Unmarshal(buf, &v); err != nil {
		var pos Position
		if e, ok := err.(*json.SyntaxError); ok {
			pos = offsetToPosition(buf, e.Offset)
		}
		return nil, d.decodeError(err.Error(), pos)
	}
	return yaml.Marshal(v)
}

func (d *Decoder) decodeChart(node *yaml.Node, index int) (Entry, error) {
	c := chart{
		Options: defaultOptions(),
		Config:  defaultConfig(),
		pos:     Position{Line: node.Line, Column: node.Column},
	}
	if err := d.decodeNode(node, &c); err != nil {
		return Entry{}, d.decodeError(err.Error(), c.pos)
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("chart-%d", index+1)
	}
	if !validName(c.Name) {
		c.pos = keyPosition(node, "name")
		return Entry{}, d.optionError("name", c, fmt.Errorf("%w: %q can not be used as a file name", ErrInvalidDocument, c.Name))
	}
	c.pos = keyPosition(node, "type")
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	kind := strings.ToLower(strings.TrimSpace(c.Type))
	if alias, ok := aliases[kind]; ok {
		kind = alias
	}
	if kind == "bezier" {
		kind, c.Options.Bezier = "line", true
	}
	build, ok := builders[kind]
	if !ok {
		return Entry{}, d.optionError("type", c, fmt.Errorf("%w: %q", ErrUnknownChart, c.Type))
	}
	r, err := build(c)
	if err != nil {
		return Entry{}, d.optionError("data", c, fmt.Errorf("%w: %s", ErrInvalidDocument, err))
	}
	return Entry{
		Name:     c.Name,
		Type:     kind,
		Renderer: r,
	}, nil
}

// validName reports whether name can be used as the base name of the file a
// chart is written to.
func validName(name string) bool {
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return false
	}
	return filepath.Base(name) == name
}

// keyPosition gives the position of the value of key in a mapping node or
// the position of the node itself when the key is not set.
func keyPosition(node *yaml.Node, key string) Position {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return Position{Line: node.Content[i+1].Line, Column: node.Content[i+1].Column}
		}
	}
	return Position{Line: node.Line, Column: node.Column}
}

// decodeNode decodes a single chart. In strict mode the node is decoded again
// from its own text since the strictness of the document decoder does not
// reach nodes decoded later.
func (d *Decoder) decodeNode(node *yaml.Node, c *chart) error {
	if !d.strict {
		return node.Decode(c)
	}
	buf, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	return dec.Decode(c)
}

func (d *Decoder) optionError(option string, c chart, err error) error {
	return OptionError{
		Option:   option,
		Chart:    c.Name,
		File:     d.file,
		Err:      err,
		Position: c.pos,
	}
}

func (d *Decoder) decodeError(msg string, pos Position) error {
	return DecodeError{
		Message:  msg,
		File:     d.file,
		Position: pos,
	}
}

// LoadFile decodes the charts of a file. The format is given by the extension
// of the file.
func LoadFile(path string, opts ...Option) ([]Entry, error) {
	var format Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	opts = append([]Option{WithFile(path), WithFormat(format)}, opts...)
	return NewDecoder(r, opts...).Decode()
}

type builder func(chart) (charts.Renderer, error)

var aliases = map[string]string{
	"lines":         "line",
	"bars":          "bar",
	"grouped-bar":   "grouped",
	"groupedbar":    "grouped",
	"stacked-bar":   "stacked",
	"stackedbar":    "stacked",
	"donut":         "pie",
	"ring":          "progress",
	"rings":         "progress",
	"heatmap":       "contribution",
	"contributions": "contribution",
}

var builders = map[string]builder{
	"line":         buildLine,
	"bar":          buildBar,
	"grouped":      buildGrouped,
	"stacked":      buildStacked,
	"pie":          buildPie,
	"progress":     buildProgress,
	"contribution": buildContribution,
}

func buildLine(c chart) (charts.Renderer, error) {
	var data chartData
	if err := decodeData(&c.Data, &data); err != nil {
		return nil, err
	}
	r := charts.LineChart{
		Options:              c.Options.layout(c.Width, c.Height, c.Style),
		Config:               c.Config.paint(),
		Data:                 data.data(),
		Bezier:               c.Options.Bezier,
		HideShadow:           c.Options.HideShadow,
		HideDots:             c.Options.HideDots,
		HideInnerLines:       c.Options.HideInnerLines,
		HideOuterLines:       c.Options.HideOuterLines,
		HideHorizontalLabels: c.Options.HideHorizontalLabels,
		HideVerticalLabels:   c.Options.HideVerticalLabels,
	}
	return r, nil
}

func buildBar(c chart) (charts.Renderer, error) {
	var data chartData
	if err := decodeData(&c.Data, &data); err != nil {
		return nil, err
	}
	r := charts.BarChart{
		Options:              c.Options.layout(c.Width, c.Height, c.Style),
		Config:               c.Config.paint(),
		Data:                 data.data(),
		BarFull:              c.Options.BarFull,
		HideInnerLines:       c.Options.HideInnerLines,
		HideHorizontalLabels: c.Options.HideHorizontalLabels,
		HideVerticalLabels:   c.Options.HideVerticalLabels,
	}
	return r, nil
}

func buildGrouped(c chart) (charts.Renderer, error) {
	var data groupedData
	if err := decodeData(&c.Data, &data); err != nil {
		return nil, err
	}
	r := charts.GroupedBarChart{
		Options:              c.Options.layout(c.Width, c.Height, c.Style),
		Config:               c.Config.paint(),
		Data:                 data.data(),
		BarFull:              c.Options.BarFull,
		HideInnerLines:       c.Options.HideInnerLines,
		HideHorizontalLabels: c.Options.HideHorizontalLabels,
		HideVerticalLabels:   c.Options.HideVerticalLabels,
	}
	return r, nil
}

func buildStacked(c chart) (charts.Renderer, error) {
	var data stackedData
	if err := decodeData(&c.Data, &data); err != nil {
		return nil, err
	}
	r := charts.StackedBarChart{
		Options:              c.Options.layout(c.Width, c.Height, c.Style),
		Config:               c.Config.paint(),
		Data:                 data.data(),
		HideLegend:           c.Options.HideLegend,
		HideHorizontalLabels: c.Options.HideHorizontalLabels,
		HideVerticalLabels:   c.Options.HideVerticalLabels,
	}
	return r, nil
}

func buildPie(c chart) (charts.Renderer, error) {
	slices, err := decodeSlices(&c.Data)
	if err != nil {
		return nil, err
	}
	r := charts.PieChart{
		Options:    c.Options.layout(c.Width, c.Height, c.Style),
		Config:     c.Config.paint(),
		Data:       slices,
		Accessor:   c.Options.Accessor,
		Absolute:   c.Options.Absolute,
		HideLegend: c.Options.HideLegend,
		HoleRadius: c.Options.HoleRadius,
	}
	return r, nil
}

func buildProgress(c chart) (charts.Renderer, error) {
	var data progressData
	if err := decodeData(&c.Data, &data); err != nil {
		return nil, err
	}
	r := charts.ProgressChart{
		Options:    c.Options.layout(c.Width, c.Height, c.Style),
		Config:     c.Config.paint(),
		Data:       data.data(),
		HideLegend: c.Options.HideLegend,
	}
	return r, nil
}

func buildContribution(c chart) (charts.Renderer, error) {
	values, err := decodeContributions(&c.Data)
	if err != nil {
		return nil, err
	}
	end, err := endDate(c.Options.EndDate, values)
	if err != nil {
		return nil, err
	}
	r := charts.NewContributionGraph(c.Options.layout(c.Width, c.Height, c.Style), c.Config.paint(), values, end)
	if c.Options.NumDays > 0 {
		r.NumDays = c.Options.NumDays
	}
	if c.Options.SquareSize > 0 {
		r.SquareSize = c.Options.SquareSize
	}
	r.GutterSize = c.Options.GutterSize
	r.Vertical = c.Options.Vertical
	r.HideMonthLabels = c.Options.HideMonthLabels
	r.ShowOutOfRangeDays = c.Options.ShowOutOfRangeDays
	return r, nil
}

// endDate defaults to the most recent day with a value.
func endDate(str string, values []charts.ContributionValue) (time.Time, error) {
	if str != "" {
		return parseDate(str)
	}
	var end time.Time
	for _, v := range values {
		if v.Date.After(end) {
			end = v.Date
		}
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}
	return end, nil
}

var lineRe = regexp.MustCompile(`line (\d+)`)

func lineOf(err error) Position {
	var pos Position
	if m := lineRe.FindStringSubmatch(err.Error()); len(m) == 2 {
		pos.Line, _ = strconv.Atoi(m[1])
	}
	return pos
}

func offsetToPosition(buf []byte, offset int64) Position {
	pos := Position{Line: 1, Column: 1}
	if offset > int64(len(buf)) {
		offset = int64(len(buf))
	}
	for _, b := range buf[:offset] {
		if b == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
