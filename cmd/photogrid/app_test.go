package main

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/photogrid/internal/config"
	"github.com/idursun/photogrid/internal/imageloader"
	"github.com/idursun/photogrid/internal/photo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, editable bool, sources ...*photo.Source) *app {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Grid.Editable = editable
	loader, err := imageloader.NewTextLoader()
	require.NoError(t, err)

	a := newApp(cfg, sources, loader)
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return a
}

func TestApp_AddTapAppendsPhoto(t *testing.T) {
	a := newTestApp(t, true, photo.Local("a.jpg"))

	a.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	a.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	names := a.grid.Presenter().Names()
	assert.Equal(t, []string{"a.jpg", "new-1.jpg", "new-2.jpg"}, names)
	assert.Equal(t, "added new-2.jpg", a.message)
}

func TestApp_ItemTapAndDelete(t *testing.T) {
	a := newTestApp(t, true, photo.Local("a.jpg"), photo.Local("b.jpg"))

	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "opened a.jpg (slot 0)", a.message)

	a.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	assert.Equal(t, "removed a.jpg from position 0", a.message)
	assert.Equal(t, []string{"b.jpg"}, a.grid.Presenter().Names())
}

func TestApp_MouseClickUsesLastFrame(t *testing.T) {
	a := newTestApp(t, false, photo.Local("a.jpg"), photo.Local("b.jpg"))
	a.View()

	// the header takes the first row; the second tile starts at x=16
	_, cmd := a.Update(tea.MouseClickMsg{X: 20, Y: 3, Button: tea.MouseLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, "opened b.jpg (slot 1)", a.message)
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp(t, false)
	_, cmd := a.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
