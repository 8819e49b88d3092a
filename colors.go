package charts

import (
	"fmt"
	"strconv"
)

type Palette []string

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// ColorFunc gives the color to use at the given opacity for the item at
// index. Most charts ignore the index.
type ColorFunc func(opacity float64, index int) string

func RGBA(r, g, b uint8) ColorFunc {
	return func(opacity float64, _ int) string {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(opacity, 'f', -1, 64))
	}
}

func Static(color string) ColorFunc {
	return func(_ float64, _ int) string {
		return color
	}
}

// Cycle picks colors by index in the palette.
func (p Palette) Cycle() ColorFunc {
	return func(_ float64, index int) string {
		return p.At(index)
	}
}

var defaultColor = RGBA(0, 0, 0)
