package photo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplaySource_URLGetsThumbnailSuffix(t *testing.T) {
	s := URL("https://x/a.jpg")
	assert.Equal(t, "https://x/a.jpg?x-oss-process=image/resize,m_fixed,h_300,w_0", s.DisplaySource())
}

func TestDisplaySource_LocalPassesThrough(t *testing.T) {
	type handle struct{ id int }
	h := handle{id: 7}
	assert.Equal(t, h, Local(h).DisplaySource())
	assert.Equal(t, "/tmp/a.png", Local("/tmp/a.png").DisplaySource())
}

func TestEqual_IsValueNotIdentity(t *testing.T) {
	a := URL("https://x/a.jpg")
	b := URL("https://x/a.jpg")
	assert.True(t, a.Equal(b))
	assert.False(t, a == b)
	assert.False(t, a.Equal(Local("https://x/a.jpg")))
}

func TestEqual_LocalHandlesCompareByTypeAndValue(t *testing.T) {
	type handle struct{ id int }
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "same string", a: "a", b: "a", want: true},
		{name: "same struct", a: handle{id: 1}, b: handle{id: 1}, want: true},
		{name: "different value", a: handle{id: 1}, b: handle{id: 2}, want: false},
		{name: "int and string print alike", a: 1, b: "1", want: false},
		{name: "non-comparable handles", a: []byte("a"), b: []byte("a"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Local(tt.a).Equal(Local(tt.b)))
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		source *Source
		want   string
	}{
		{URL("https://cdn.example.com/photos/beach.jpg"), "beach.jpg"},
		{URL("https://cdn.example.com/"), "https://cdn.example.com/"},
		{Local("/home/me/pics/cat.png"), "cat.png"},
		{Local(42), "42"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.Name())
		})
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, KindURL, Parse("https://x/a.jpg").Kind())
	assert.Equal(t, KindURL, Parse("http://x/a.jpg").Kind())
	assert.Equal(t, KindLocal, Parse("./a.jpg").Kind())
	assert.Equal(t, KindLocal, Parse("file:///tmp/a.jpg").Kind())
}
