package common

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/idursun/photogrid/internal/config"
)

var DefaultPalette = NewPalette()

type node struct {
	style    lipgloss.Style
	children map[string]*node
}

// Palette resolves space separated selectors such as "photogrid tile selected"
// to styles. More specific selectors inherit from less specific ones.
type Palette struct {
	root  *node
	cache map[string]lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		root:  &node{children: make(map[string]*node)},
		cache: make(map[string]lipgloss.Style),
	}
}

func (p *Palette) add(key string, style lipgloss.Style) {
	current := p.root
	for _, field := range strings.Fields(key) {
		child, ok := current.children[field]
		if !ok {
			child = &node{children: make(map[string]*node)}
			current.children[field] = child
		}
		current = child
	}
	current.style = style
}

func (p *Palette) get(fields ...string) lipgloss.Style {
	current := p.root
	for _, field := range fields {
		child, ok := current.children[field]
		if !ok {
			return lipgloss.NewStyle()
		}
		current = child
	}
	return current.style
}

// Update loads colors from the configuration. Existing selectors are replaced.
func (p *Palette) Update(styleMap map[string]config.Color) {
	for key, c := range styleMap {
		p.add(key, createStyleFrom(c))
	}
	clear(p.cache)
}

func (p *Palette) Get(selector string) lipgloss.Style {
	if style, ok := p.cache[selector]; ok {
		return style
	}
	fields := strings.Fields(selector)

	// for "a b c" the lookup order is "a b c", "a b", "a", then "b c", "b", then "c"
	finalStyle := lipgloss.NewStyle()
	for start := range fields {
		for end := len(fields); end > start; end-- {
			finalStyle = finalStyle.Inherit(p.get(fields[start:end]...))
		}
	}
	p.cache[selector] = finalStyle
	return finalStyle
}

func createStyleFrom(c config.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(parseColor(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(parseColor(c.Bg))
	}
	// only set attributes so unset ones can still be inherited
	if c.Bold {
		style = style.Bold(true)
	}
	if c.Italic {
		style = style.Italic(true)
	}
	if c.Underline {
		style = style.Underline(true)
	}
	if c.Strikethrough {
		style = style.Strikethrough(true)
	}
	if c.Reverse {
		style = style.Reverse(true)
	}
	return style
}

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright black":   "8",
	"bright red":     "9",
	"bright green":   "10",
	"bright yellow":  "11",
	"bright blue":    "12",
	"bright magenta": "13",
	"bright cyan":    "14",
	"bright white":   "15",
}

func parseColor(c string) color.Color {
	if len(c) == 7 && c[0] == '#' {
		return lipgloss.Color(c)
	}
	if v, err := strconv.Atoi(c); err == nil && v >= 0 && v <= 255 {
		return lipgloss.Color(c)
	}
	if code, ok := namedColors[c]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.NoColor{}
}
