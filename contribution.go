package charts

import (
	"math"
	"time"
)

type ContributionValue struct {
	Date  time.Time
	Count int
}

type contributionEntry struct {
	Value ContributionValue
	Title string
}

// ContributionGraph lays out a calendar of days, one column per week, with
// each day shaded according to its count.
type ContributionGraph struct {
	Options
	Config
	Values  []ContributionValue
	EndDate time.Time

	NumDays    int
	SquareSize float64
	GutterSize float64

	Vertical           bool
	HideMonthLabels    bool
	ShowOutOfRangeDays bool

	TitleForValue func(*ContributionValue) string
}

const (
	daysInWeek    = 7
	squareSize    = 20
	monthGutter   = 8
	contribLeft   = 32
	defaultNumDay = 200
	day           = 24 * time.Hour
)

var monthLabels = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

func NewContributionGraph(options Options, config Config, values []ContributionValue, end time.Time) ContributionGraph {
	return ContributionGraph{
		Options:    options,
		Config:     config,
		Values:     values,
		EndDate:    end,
		NumDays:    defaultNumDay,
		SquareSize: squareSize,
		GutterSize: 1,
	}
}

func (c ContributionGraph) Render() Drawing {
	var (
		layout = Layout{Options: c.Options, Config: c.Config}
		cv     canvas
	)
	cv.add(layout.defs(c.Width, c.Height)...)
	cv.add(layout.background(c.Width, c.Height))
	cv.add(c.monthLabels()...)
	cv.add(c.weeks()...)
	return cv.drawing(c.Width, c.Height)
}

func (c ContributionGraph) days() int {
	if c.NumDays <= 0 {
		return defaultNumDay
	}
	return c.NumDays
}

func (c ContributionGraph) square() float64 {
	if c.SquareSize <= 0 {
		return squareSize
	}
	return c.SquareSize
}

func (c ContributionGraph) squareWithGutter() float64 {
	return c.square() + c.GutterSize
}

func (c ContributionGraph) monthLabelSize() float64 {
	switch {
	case c.HideMonthLabels:
		return 0
	case c.Vertical:
		return 2 * (c.square() + monthGutter)
	default:
		return c.square() + monthGutter
	}
}

// EndDay is the last day shown, at midnight UTC.
func (c ContributionGraph) EndDay() time.Time {
	return truncateDay(c.EndDate)
}

// StartDay is the first day shown: the end day is included in the window.
func (c ContributionGraph) StartDay() time.Time {
	return c.EndDay().AddDate(0, 0, -c.days()+1)
}

func (c ContributionGraph) EmptyDaysAtStart() int {
	return int(c.StartDay().Weekday())
}

func (c ContributionGraph) EmptyDaysAtEnd() int {
	return daysInWeek - 1 - int(c.EndDay().Weekday())
}

// FirstDay is the Sunday starting the first week.
func (c ContributionGraph) FirstDay() time.Time {
	return c.StartDay().AddDate(0, 0, -c.EmptyDaysAtStart())
}

func (c ContributionGraph) WeekCount() int {
	n := c.days() + c.EmptyDaysAtStart() + c.EmptyDaysAtEnd()
	return int(math.Ceil(float64(n) / daysInWeek))
}

// GraphWidth and GraphHeight give the extent of the grid of squares.
func (c ContributionGraph) GraphWidth() float64 {
	return float64(c.WeekCount())*c.squareWithGutter() - c.GutterSize
}

func (c ContributionGraph) GraphHeight() float64 {
	return daysInWeek*c.squareWithGutter() + c.monthLabelSize() - c.GutterSize
}

// Index gives the position of date counted in days from FirstDay.
func (c ContributionGraph) Index(date time.Time) int {
	diff := truncateDay(date).Sub(c.FirstDay())
	return int(math.Floor(float64(diff) / float64(day)))
}

func (c ContributionGraph) cache() map[int]contributionEntry {
	cache := make(map[int]contributionEntry)
	for i := range c.Values {
		var (
			val = c.Values[i]
			ent = contributionEntry{Value: val}
		)
		if c.TitleForValue != nil {
			ent.Title = c.TitleForValue(&val)
		}
		cache[c.Index(val.Date)] = ent
	}
	return cache
}

// Opacity gives the shade of a day according to its count.
func Opacity(count int) float64 {
	if count == 0 {
		return 0.15
	}
	return math.Min(float64(count)*0.15, 1) + 0.15
}

func (c ContributionGraph) weekOrigin(week int) Point {
	offset := float64(week) * c.squareWithGutter()
	if c.Vertical {
		return NewPoint(10, offset)
	}
	return NewPoint(offset, 50)
}

func (c ContributionGraph) squareOrigin(weekday int) Point {
	offset := float64(weekday) * c.squareWithGutter()
	if c.Vertical {
		return NewPoint(offset, 0)
	}
	return NewPoint(0, offset)
}

func (c ContributionGraph) monthOrigin(week int) Point {
	if c.Vertical {
		return NewPoint(0, float64(week+1)*c.squareWithGutter()-2)
	}
	return NewPoint(float64(week)*c.squareWithGutter(), c.monthLabelSize()-monthGutter)
}

func (c ContributionGraph) weeks() []Shape {
	var (
		cache = c.cache()
		first = c.EmptyDaysAtStart()
		last  = first + c.days()
		size  = c.square()
		list  []Shape
	)
	for w := 0; w < c.WeekCount(); w++ {
		origin := c.weekOrigin(w)
		for d := 0; d < daysInWeek; d++ {
			index := w*daysInWeek + d
			if (index < first || index >= last) && !c.ShowOutOfRangeDays {
				continue
			}
			var (
				pos   = c.squareOrigin(d).Add(origin)
				entry = cache[index]
			)
			list = append(list, Rect{
				X:      pos.X + contribLeft,
				Y:      pos.Y,
				Width:  size,
				Height: size,
				Title:  c.title(cache, index),
				Fill:   NewFill(c.color(Opacity(entry.Value.Count), 0)),
			})
		}
	}
	return list
}

func (c ContributionGraph) title(cache map[int]contributionEntry, index int) string {
	if e, ok := cache[index]; ok {
		return e.Title
	}
	if c.TitleForValue != nil {
		return c.TitleForValue(nil)
	}
	return ""
}

// MonthLabels gives the week columns that start a new month with the name of
// that month.
func (c ContributionGraph) MonthLabels() map[int]string {
	labels := make(map[int]string)
	if c.HideMonthLabels {
		return labels
	}
	for w := 0; w < c.WeekCount()-1; w++ {
		end := c.FirstDay().AddDate(0, 0, (w+1)*daysInWeek)
		if d := end.Day(); d >= 1 && d <= daysInWeek {
			labels[w] = monthLabels[end.Month()-1]
		}
	}
	return labels
}

func (c ContributionGraph) monthLabels() []Shape {
	var (
		labels = c.MonthLabels()
		font   = c.labelProps().font()
		list   []Shape
	)
	for w := 0; w < c.WeekCount()-1; w++ {
		str, ok := labels[w]
		if !ok {
			continue
		}
		pos := c.monthOrigin(w)
		list = append(list, Text{
			X:       pos.X + contribLeft,
			Y:       pos.Y + 8,
			Content: str,
			Font:    font,
		})
	}
	return list
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
