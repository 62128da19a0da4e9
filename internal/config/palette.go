package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Palette is the classic sixteen-color console palette, addressed by name.
var Palette = map[string]color.RGBA{
	"black":        {0x00, 0x00, 0x00, 0xff},
	"blue":         {0x00, 0x00, 0xaa, 0xff},
	"green":        {0x00, 0xaa, 0x00, 0xff},
	"cyan":         {0x00, 0xaa, 0xaa, 0xff},
	"red":          {0xaa, 0x00, 0x00, 0xff},
	"magenta":      {0xaa, 0x00, 0xaa, 0xff},
	"brown":        {0xaa, 0x55, 0x00, 0xff},
	"lightgray":    {0xaa, 0xaa, 0xaa, 0xff},
	"darkgray":     {0x55, 0x55, 0x55, 0xff},
	"lightblue":    {0x55, 0x55, 0xff, 0xff},
	"lightgreen":   {0x55, 0xff, 0x55, 0xff},
	"lightcyan":    {0x55, 0xff, 0xff, 0xff},
	"lightred":     {0xff, 0x55, 0x55, 0xff},
	"lightmagenta": {0xff, 0x55, 0xff, 0xff},
	"yellow":       {0xff, 0xff, 0x55, 0xff},
	"white":        {0xff, 0xff, 0xff, 0xff},
}

// Color is a color.RGBA that reads and writes palette names or #rrggbb in YAML.
type Color color.RGBA

func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

// String returns the palette name when there is one, #rrggbb otherwise.
func (c Color) String() string {
	for _, name := range PaletteNames() {
		if Palette[name] == color.RGBA(c) {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// ParseColor resolves a palette name (case-insensitive) or a #rrggbb literal.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := Palette[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// PaletteNames returns the palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(Palette))
	for name := range Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
