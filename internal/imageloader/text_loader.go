package imageloader

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rivo/uniseg"
)

const defaultCacheSize = 256

var ErrUndecodable = errors.New("source cannot be decoded")

var defaultAssets = map[AssetID]string{
	AssetPlaceholder: "◌",
	AssetAdd:         "+",
}

// TextLoader renders sources as text thumbnails for terminal grids. Decoded
// thumbnails are kept in an LRU cache keyed by source, fit and size.
type TextLoader struct {
	notify    func(tea.Msg)
	assets    map[AssetID]string
	cacheSize int
	cache     *lru.Cache[string, string]
}

type Option func(*TextLoader)

// WithNotify makes decoding asynchronous; notify receives a LoadedMsg for
// every surface that was updated in the background. Without it, Display
// decodes inline.
func WithNotify(notify func(tea.Msg)) Option {
	return func(l *TextLoader) {
		l.notify = notify
	}
}

// WithAssets overrides the glyphs drawn for asset ids.
func WithAssets(assets map[AssetID]string) Option {
	return func(l *TextLoader) {
		for id, glyph := range assets {
			l.assets[id] = glyph
		}
	}
}

func WithCacheSize(size int) Option {
	return func(l *TextLoader) {
		l.cacheSize = size
	}
}

func NewTextLoader(options ...Option) (*TextLoader, error) {
	l := &TextLoader{
		assets:    make(map[AssetID]string, len(defaultAssets)),
		cacheSize: defaultCacheSize,
	}
	for id, glyph := range defaultAssets {
		l.assets[id] = glyph
	}
	for _, opt := range options {
		opt(l)
	}
	cache, err := lru.New[string, string](l.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating thumbnail cache: %w", err)
	}
	l.cache = cache
	return l, nil
}

func (l *TextLoader) Display(target *Surface, req Request) {
	if target == nil {
		return
	}
	generation, changed := target.begin(req)
	if !changed {
		return
	}
	width, height := target.Size()

	if id, ok := req.Source.(AssetID); ok {
		target.complete(generation, l.renderAsset(id, width, height), StateLoaded)
		return
	}

	key := fmt.Sprintf("%T|%v|%s|%dx%d", req.Source, req.Source, req.Fit, width, height)
	if content, ok := l.cache.Get(key); ok {
		target.complete(generation, content, StateLoaded)
		return
	}

	target.complete(generation, l.renderAsset(req.Placeholder, width, height), StatePlaceholder)
	if l.notify == nil {
		l.resolve(target, generation, req, key)
		return
	}
	go func() {
		if l.resolve(target, generation, req, key) {
			l.notify(LoadedMsg{Target: target})
		}
	}()
}

func (l *TextLoader) resolve(target *Surface, generation uint64, req Request, key string) bool {
	width, height := target.Size()
	content, err := decode(req.Source, req.Fit, width, height)
	if err != nil {
		return target.complete(generation, l.renderAsset(req.Error, width, height), StateFailed)
	}
	l.cache.Add(key, content)
	return target.complete(generation, content, StateLoaded)
}

func (l *TextLoader) renderAsset(id AssetID, width, height int) string {
	glyph, ok := l.assets[id]
	if !ok {
		glyph = string(id)
	}
	return frame(glyph, " ", width, height, FitCenterCrop)
}

func decode(source any, fit FitMode, width, height int) (string, error) {
	label, err := label(source)
	if err != nil {
		return "", err
	}
	return frame(label, "░", width, height, fit), nil
}

func label(source any) (string, error) {
	switch s := source.(type) {
	case nil:
		return "", ErrUndecodable
	case string:
		if s == "" {
			return "", ErrUndecodable
		}
		if strings.Contains(s, "://") {
			u, err := url.Parse(s)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
			}
			name := path.Base(u.Path)
			if u.Host == "" || name == "/" || name == "." {
				return "", fmt.Errorf("%w: %s", ErrUndecodable, s)
			}
			return name, nil
		}
		return filepath.Base(s), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return fmt.Sprint(s), nil
	}
}

// frame draws text on the middle row of a width x height block filled with fill.
func frame(text, fill string, width, height int, fit FitMode) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	blank := strings.Repeat(fill, width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	var row string
	switch fit {
	case FitCenterCrop:
		row = centerCrop(text, width)
	default:
		row = cropRight(text, width)
	}
	lines[height/2] = row
	return strings.Join(lines, "\n")
}

// centerCrop keeps the middle of s when it is wider than width and centers it
// otherwise.
func centerCrop(s string, width int) string {
	sw := uniseg.StringWidth(s)
	if sw <= width {
		pad := width - sw
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	}
	skip := (sw - width) / 2
	var b strings.Builder
	pos, used := 0, 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if pos < skip {
			pos += w
			continue
		}
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString(strings.Repeat(" ", width-used))
	return b.String()
}

func cropRight(s string, width int) string {
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString(strings.Repeat(" ", width-used))
	return b.String()
}
