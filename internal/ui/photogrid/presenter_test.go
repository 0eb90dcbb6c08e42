package photogrid

import (
	"fmt"
	"testing"

	"github.com/idursun/photogrid/internal/imageloader"
	"github.com/idursun/photogrid/internal/photo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urls(n int) []*photo.Source {
	list := make([]*photo.Source, n)
	for i := range list {
		list[i] = photo.URL(fmt.Sprintf("https://x/%d.jpg", i))
	}
	return list
}

func TestVisibleSlotCount_EditableBelowCapacity(t *testing.T) {
	for n := 0; n < 9; n++ {
		p := NewPresenter(urls(n), WithEditable(true), WithMaxSlots(9))
		assert.Equal(t, n+1, p.VisibleSlotCount(), "n=%d", n)
		assert.Equal(t, SlotAdd, p.SlotFor(n).Kind, "n=%d", n)
	}
}

func TestVisibleSlotCount_EditableAtOrAboveCapacity(t *testing.T) {
	for _, n := range []int{9, 10, 15} {
		p := NewPresenter(urls(n), WithEditable(true), WithMaxSlots(9))
		assert.Equal(t, 9, p.VisibleSlotCount(), "n=%d", n)
		for i := -1; i < n+2; i++ {
			assert.NotEqual(t, SlotAdd, p.SlotFor(i).Kind, "n=%d i=%d", n, i)
		}
		assert.Equal(t, SlotHidden, p.SlotFor(9).Kind)
	}
}

func TestVisibleSlotCount_ViewOnly(t *testing.T) {
	for _, n := range []int{0, 1, 9, 12} {
		p := NewPresenter(urls(n))
		assert.Equal(t, n, p.VisibleSlotCount(), "n=%d", n)
		for i := -1; i <= n+1; i++ {
			assert.NotEqual(t, SlotAdd, p.SlotFor(i).Kind, "n=%d i=%d", n, i)
		}
	}
}

func TestNewPresenter_Defaults(t *testing.T) {
	p := NewPresenter(nil)
	assert.False(t, p.Editable())
	assert.Equal(t, DefaultMaxSlots, p.MaxSlots())
	assert.Equal(t, 0, p.VisibleSlotCount())
}

func TestNewPresenter_NegativeMaxSlots(t *testing.T) {
	p := NewPresenter(urls(2), WithEditable(true), WithMaxSlots(-3))
	assert.Equal(t, 0, p.MaxSlots())
	assert.Equal(t, 0, p.VisibleSlotCount())
	assert.Equal(t, SlotHidden, p.SlotFor(0).Kind)
}

func TestSlotFor(t *testing.T) {
	list := urls(2)
	p := NewPresenter(list, WithEditable(true), WithMaxSlots(4))

	tests := []struct {
		index int
		want  SlotState
	}{
		{-1, SlotState{Kind: SlotHidden}},
		{0, SlotState{Kind: SlotItem, Source: list[0], Position: 0}},
		{1, SlotState{Kind: SlotItem, Source: list[1], Position: 1}},
		{2, SlotState{Kind: SlotAdd}},
		{3, SlotState{Kind: SlotHidden}},
		{4, SlotState{Kind: SlotHidden}},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, p.SlotFor(tt.index))
		})
	}
}

func TestSlotFor_Idempotent(t *testing.T) {
	p := NewPresenter(urls(3), WithEditable(true), WithMaxSlots(9))
	for i := -1; i < 6; i++ {
		first := p.SlotFor(i)
		second := p.SlotFor(i)
		assert.Equal(t, first, second)
		assert.Same(t, first.Source, second.Source)
	}
}

func TestRemoveByIdentity_AtCapacityResets(t *testing.T) {
	list := urls(9)
	p := NewPresenter(list, WithEditable(true), WithMaxSlots(9))
	require.Equal(t, 9, p.VisibleSlotCount())

	var changes []Change
	p.OnChange(func(c Change) { changes = append(changes, c) })

	removal, err := p.RemoveByIdentity(list[3])
	require.NoError(t, err)
	assert.Equal(t, 3, removal.Position)
	assert.Equal(t, 8, removal.Remaining)
	assert.Equal(t, Change{Kind: ChangeReset}, removal.Change)
	assert.Equal(t, []Change{{Kind: ChangeReset}}, changes)
	assert.Equal(t, SlotAdd, p.SlotFor(8).Kind)
	assert.Equal(t, 9, p.VisibleSlotCount())
}

func TestRemoveByIdentity_OffCapacityIsLocalized(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		remaining int
		visible   int
		lastKind  SlotKind
		lastItem  int
	}{
		{name: "below capacity", size: 5, remaining: 4, visible: 5, lastKind: SlotAdd, lastItem: -1},
		{name: "above capacity", size: 10, remaining: 9, visible: 9, lastKind: SlotItem, lastItem: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := urls(tt.size)
			p := NewPresenter(list, WithEditable(true), WithMaxSlots(9))

			removal, err := p.RemoveByIdentity(list[2])
			require.NoError(t, err)
			assert.Equal(t, Change{Kind: ChangeRemoved, Position: 2}, removal.Change)
			assert.Equal(t, tt.remaining, removal.Remaining)
			assert.Equal(t, tt.visible, p.VisibleSlotCount())
			assert.Same(t, list[3], p.SlotFor(2).Source)

			last := p.SlotFor(tt.visible - 1)
			assert.Equal(t, tt.lastKind, last.Kind)
			if tt.lastItem >= 0 {
				assert.Same(t, list[tt.lastItem], last.Source)
				assert.Equal(t, tt.visible-1, last.Position)
			}
		})
	}
}

func TestRemoveByIdentity_Duplicates(t *testing.T) {
	first := photo.URL("https://x/same.jpg")
	second := photo.URL("https://x/same.jpg")
	require.True(t, first.Equal(second))

	p := NewPresenter([]*photo.Source{first, second})
	removal, err := p.RemoveByIdentity(second)
	require.NoError(t, err)
	assert.Equal(t, 1, removal.Position)
	assert.Same(t, first, p.SlotFor(0).Source)
}

func TestRemoveByIdentity_SameEntryTwice(t *testing.T) {
	src := photo.Local("a.png")
	p := NewPresenter([]*photo.Source{src, photo.Local("b.png"), src})

	removal, err := p.RemoveByIdentity(src)
	require.NoError(t, err)
	assert.Equal(t, 0, removal.Position)
	assert.Same(t, src, p.SlotFor(1).Source)
}

func TestRemoveByIdentity_NotFound(t *testing.T) {
	list := urls(2)
	p := NewPresenter(list)

	called := false
	p.OnChange(func(Change) { called = true })

	_, err := p.RemoveByIdentity(photo.URL("https://x/0.jpg"))
	assert.ErrorIs(t, err, photo.ErrNotFound)
	_, err = p.RemoveByIdentity(nil)
	assert.ErrorIs(t, err, photo.ErrNotFound)
	assert.False(t, called)
	assert.Equal(t, 2, p.Len())
}

func TestSetList(t *testing.T) {
	p := NewPresenter(urls(3), WithEditable(true))

	var changes []Change
	p.OnChange(func(c Change) { changes = append(changes, c) })

	p.SetList(nil)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, SlotAdd, p.SlotFor(0).Kind)
	assert.Equal(t, []Change{{Kind: ChangeReset}}, changes)
}

func TestSetList_CallerSliceIsNotShared(t *testing.T) {
	list := urls(2)
	p := NewPresenter(nil)
	p.SetList(list)

	list[0] = photo.URL("https://x/other.jpg")
	assert.Equal(t, "https://x/0.jpg", p.SlotFor(0).Source.Value())
}

func TestRequest(t *testing.T) {
	local := photo.Local("/sdcard/DCIM/a.jpg")
	p := NewPresenter([]*photo.Source{photo.URL("https://x/a.jpg"), local}, WithEditable(true))

	req, ok := p.Request(0)
	require.True(t, ok)
	assert.Equal(t, imageloader.Request{
		Source:      "https://x/a.jpg?x-oss-process=image/resize,m_fixed,h_300,w_0",
		Placeholder: imageloader.AssetPlaceholder,
		Error:       imageloader.AssetError,
		Fit:         imageloader.FitCenterCrop,
	}, req)

	req, ok = p.Request(1)
	require.True(t, ok)
	assert.Equal(t, "/sdcard/DCIM/a.jpg", req.Source)

	req, ok = p.Request(2)
	require.True(t, ok)
	assert.Equal(t, imageloader.AssetAdd, req.Source)

	_, ok = p.Request(3)
	assert.False(t, ok)
}

func TestRequest_CustomAssets(t *testing.T) {
	p := NewPresenter(nil, WithEditable(true), WithAssets(Assets{Placeholder: "wait", Error: "oops", Add: "plus"}))
	req, ok := p.Request(0)
	require.True(t, ok)
	assert.Equal(t, imageloader.AssetID("plus"), req.Source)
	assert.Equal(t, imageloader.AssetID("wait"), req.Placeholder)
	assert.Equal(t, imageloader.AssetID("oops"), req.Error)
}

func TestNames(t *testing.T) {
	p := NewPresenter([]*photo.Source{photo.URL("https://x/a/cat.jpg"), photo.Local("/tmp/dog.png")})
	assert.Equal(t, []string{"cat.jpg", "dog.png"}, p.Names())
}
