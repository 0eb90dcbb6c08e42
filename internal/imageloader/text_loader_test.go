package imageloader

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(source any) Request {
	return Request{
		Source:      source,
		Placeholder: AssetPlaceholder,
		Error:       AssetError,
		Fit:         FitCenterCrop,
	}
}

func TestTextLoader_InlineDecode(t *testing.T) {
	loader, err := NewTextLoader()
	require.NoError(t, err)

	surface := NewSurface(12, 3)
	loader.Display(surface, request("https://x/a.jpg?x-oss-process=image/resize,m_fixed,h_300,w_0"))

	content, state := surface.Content()
	assert.Equal(t, StateLoaded, state)
	lines := strings.Split(content, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "   a.jpg    ", lines[1])
	assert.Equal(t, strings.Repeat("░", 12), lines[0])
}

func TestTextLoader_UndecodableShowsErrorAsset(t *testing.T) {
	loader, err := NewTextLoader(WithAssets(map[AssetID]string{"broken": "x"}))
	require.NoError(t, err)

	surface := NewSurface(5, 1)
	req := request("https://x/")
	req.Error = "broken"
	loader.Display(surface, req)

	content, state := surface.Content()
	assert.Equal(t, StateFailed, state)
	assert.Equal(t, "  x  ", content)
}

func TestTextLoader_AssetSourceRendersGlyph(t *testing.T) {
	loader, err := NewTextLoader()
	require.NoError(t, err)

	surface := NewSurface(3, 1)
	loader.Display(surface, request(AssetAdd))

	content, state := surface.Content()
	assert.Equal(t, StateLoaded, state)
	assert.Equal(t, " + ", content)
}

func TestSurface_SameRequestIsNotReissued(t *testing.T) {
	surface := NewSurface(4, 1)
	gen, changed := surface.begin(request("a.png"))
	require.True(t, changed)
	assert.Equal(t, uint64(1), gen)

	_, changed = surface.begin(request("a.png"))
	assert.False(t, changed)

	surface.Resize(5, 1)
	_, changed = surface.begin(request("a.png"))
	assert.True(t, changed)
}

func TestTextLoader_AsyncCompletionNotifies(t *testing.T) {
	done := make(chan tea.Msg, 1)
	loader, err := NewTextLoader(WithNotify(func(msg tea.Msg) { done <- msg }))
	require.NoError(t, err)

	surface := NewSurface(7, 1)
	loader.Display(surface, request("cat.png"))

	select {
	case msg := <-done:
		loaded, ok := msg.(LoadedMsg)
		require.True(t, ok)
		assert.Same(t, surface, loaded.Target)
	case <-time.After(time.Second):
		t.Fatal("loader did not complete")
	}
	content, state := surface.Content()
	assert.Equal(t, StateLoaded, state)
	assert.Equal(t, "cat.png", content)
}

func TestTextLoader_CacheHitSkipsPlaceholder(t *testing.T) {
	loader, err := NewTextLoader()
	require.NoError(t, err)

	loader.Display(NewSurface(7, 1), request("cat.png"))

	async, err := NewTextLoader(WithNotify(func(tea.Msg) { t.Error("unexpected async load") }))
	require.NoError(t, err)
	async.cache = loader.cache

	surface := NewSurface(7, 1)
	async.Display(surface, request("cat.png"))
	_, state := surface.Content()
	assert.Equal(t, StateLoaded, state)
}

func TestSurface_StaleCompletionIgnored(t *testing.T) {
	surface := NewSurface(3, 1)
	first, _ := surface.begin(request("a.png"))
	second, _ := surface.begin(request("b.png"))

	assert.True(t, surface.complete(second, "b", StateLoaded))
	assert.False(t, surface.complete(first, "a", StateLoaded))
	content, _ := surface.Content()
	assert.Equal(t, "b", content)
}

func TestCenterCrop(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, " abc "},
		{"abcdefg", 3, "cde"},
		{"abcd", 4, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, centerCrop(tt.in, tt.width))
		})
	}
}

func TestNewTextLoader_InvalidCacheSize(t *testing.T) {
	_, err := NewTextLoader(WithCacheSize(0))
	assert.Error(t, err)
}
