package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/muesli/termenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Grid     GridConfig       `toml:"grid"`
	Assets   AssetsConfig     `toml:"assets"`
	Bindings []BindingConfig  `toml:"bindings"`
	Colors   map[string]Color `toml:"colors"`
}

type GridConfig struct {
	Editable   bool `toml:"editable"`
	MaxSlots   int  `toml:"max_slots"`
	Columns    int  `toml:"columns"`
	TileWidth  int  `toml:"tile_width"`
	TileHeight int  `toml:"tile_height"`
}

// AssetsConfig names the images shown while loading, on failure and on the add slot.
type AssetsConfig struct {
	Placeholder string `toml:"placeholder"`
	Error       string `toml:"error"`
	Add         string `toml:"add"`
	// Glyphs maps asset names to the text drawn for them in the terminal.
	Glyphs map[string]string `toml:"glyphs"`
}

// Color is either a bare foreground color or a table of style attributes.
type Color struct {
	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Bold          bool   `toml:"bold"`
	Italic        bool   `toml:"italic"`
	Underline     bool   `toml:"underline"`
	Strikethrough bool   `toml:"strikethrough"`
	Reverse       bool   `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*c = Color{Fg: v}
		return nil
	case map[string]any:
		var out Color
		for key, raw := range v {
			switch key {
			case "fg", "bg":
				s, ok := raw.(string)
				if !ok {
					return fmt.Errorf("color %s: expected string, got %T", key, raw)
				}
				if key == "fg" {
					out.Fg = s
				} else {
					out.Bg = s
				}
			case "bold", "italic", "underline", "strikethrough", "reverse":
				b, ok := raw.(bool)
				if !ok {
					return fmt.Errorf("color %s: expected bool, got %T", key, raw)
				}
				switch key {
				case "bold":
					out.Bold = b
				case "italic":
					out.Italic = b
				case "underline":
					out.Underline = b
				case "strikethrough":
					out.Strikethrough = b
				case "reverse":
					out.Reverse = b
				}
			default:
				return fmt.Errorf("color: unknown attribute %q", key)
			}
		}
		*c = out
		return nil
	default:
		return fmt.Errorf("color: expected string or table, got %T", value)
	}
}

// Load decodes data on top of the current values. Bindings are merged with
// the existing ones; user keys shadow default keys of the same scope.
func (c *Config) Load(data string) error {
	base := append([]BindingConfig(nil), c.Bindings...)

	metadata, err := toml.Decode(data, c)
	if err != nil {
		return err
	}

	if metadata.IsDefined("bindings") {
		// decode again so the overlay holds only what this file declared
		var overlay struct {
			Bindings []BindingConfig `toml:"bindings"`
		}
		if _, err := toml.Decode(data, &overlay); err != nil {
			return err
		}
		c.Bindings = mergeBindings(base, overlay.Bindings)
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	var problems []string
	if c.Grid.MaxSlots < 0 {
		problems = append(problems, fmt.Sprintf("grid.max_slots must not be negative, got %d", c.Grid.MaxSlots))
	}
	if c.Grid.Columns < 1 {
		problems = append(problems, fmt.Sprintf("grid.columns must be at least 1, got %d", c.Grid.Columns))
	}
	if c.Grid.TileWidth < MinTileWidth {
		problems = append(problems, fmt.Sprintf("grid.tile_width must be at least %d, got %d", MinTileWidth, c.Grid.TileWidth))
	}
	if c.Grid.TileHeight < MinTileHeight {
		problems = append(problems, fmt.Sprintf("grid.tile_height must be at least %d, got %d", MinTileHeight, c.Grid.TileHeight))
	}
	if err := validateBindings(c.Bindings); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Tiles need a border, one row of image and one caption row.
const (
	MinTileWidth  = 5
	MinTileHeight = 4
)

// ColorsEnabled reports whether the palette should be loaded, honouring NO_COLOR.
func ColorsEnabled() bool {
	return !termenv.EnvNoColor()
}
