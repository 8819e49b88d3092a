package decode

import (
	"fmt"
	"strings"

	charts "github.com/midbel/chartkit"
	"gopkg.in/yaml.v3"
)

// Color is written either as a [r, g, b] triple, giving a color whose
// opacity varies, or as a plain string used as is. The names category10 and
// tableau10 select a palette indexed by series.
type Color struct {
	Value string
	fn    charts.ColorFunc
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		c.Value = node.Value
		switch strings.ToLower(node.Value) {
		case "category10":
			c.fn = charts.Category10.Cycle()
		case "tableau10":
			c.fn = charts.Tableau10.Cycle()
		default:
			c.fn = charts.Static(node.Value)
		}
	case yaml.SequenceNode:
		var rgb []uint8
		if err := node.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("%w: color expects 3 components, got %d", ErrInvalidDocument, len(rgb))
		}
		c.Value = fmt.Sprintf("rgb(%d, %d, %d)", rgb[0], rgb[1], rgb[2])
		c.fn = charts.RGBA(rgb[0], rgb[1], rgb[2])
	default:
		return fmt.Errorf("%w: color should be a string or a [r, g, b] list", ErrInvalidDocument)
	}
	return nil
}

func (c *Color) Func() charts.ColorFunc {
	if c == nil {
		return nil
	}
	return c.fn
}
