package main

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/photogrid/internal/config"
	"github.com/idursun/photogrid/internal/imageloader"
	"github.com/idursun/photogrid/internal/photo"
	"github.com/idursun/photogrid/internal/ui/common"
	"github.com/idursun/photogrid/internal/ui/layout"
	"github.com/idursun/photogrid/internal/ui/photogrid"
	"github.com/idursun/photogrid/internal/ui/render"
)

// app owns the photo list. It plays the part of the screen hosting the grid:
// it opens photos, confirms deletes and adds new photos.
type app struct {
	grid           *photogrid.Model
	displayContext *render.DisplayContext
	message        string
	styles         struct {
		title   lipgloss.Style
		message lipgloss.Style
	}
	added  int
	width  int
	height int
}

func newApp(cfg *config.Config, sources []*photo.Source, loader imageloader.Loader) *app {
	presenter := photogrid.NewPresenter(sources,
		photogrid.WithEditable(cfg.Grid.Editable),
		photogrid.WithMaxSlots(cfg.Grid.MaxSlots),
		photogrid.WithAssets(photogrid.Assets{
			Placeholder: imageloader.AssetID(cfg.Assets.Placeholder),
			Error:       imageloader.AssetID(cfg.Assets.Error),
			Add:         imageloader.AssetID(cfg.Assets.Add),
		}),
	)
	a := &app{
		grid:           photogrid.New(presenter, loader, cfg),
		displayContext: render.NewDisplayContext(),
	}
	a.styles.title = common.DefaultPalette.Get("photogrid title")
	a.styles.message = common.DefaultPalette.Get("photogrid status")
	a.grid.Dispatcher().SetItemTapListener(a)
	a.grid.Dispatcher().SetEditableListener(a)
	return a
}

func (a *app) OnItemTap(slot int, src *photo.Source) {
	a.message = fmt.Sprintf("opened %s (slot %d)", src.Name(), slot)
	slog.Info("photo opened", "slot", slot, "source", src)
}

func (a *app) OnDeleteTap(position int, src *photo.Source) {
	a.message = fmt.Sprintf("removed %s from position %d", src.Name(), position)
	slog.Info("photo removed", "position", position, "source", src)
}

func (a *app) OnAddTap() {
	a.added++
	presenter := a.grid.Presenter()
	src := photo.Local(fmt.Sprintf("new-%d.jpg", a.added))
	presenter.SetList(append(presenter.Items(), src))
	a.message = fmt.Sprintf("added %s", src.Name())
	slog.Info("photo added", "source", src)
}

func (a *app) Init() tea.Cmd {
	return a.grid.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyPressMsg:
		if !a.grid.IsEditing() && key.Matches(msg, a.grid.KeyMap().Quit) {
			return a, tea.Quit
		}
	case tea.MouseMsg:
		if interactionMsg, handled := a.displayContext.ProcessMouseEvent(msg); handled {
			return a, a.grid.Update(interactionMsg)
		}
		return a, nil
	case photogrid.DeleteFailedMsg:
		a.message = msg.Err.Error()
		return a, nil
	}
	return a, a.grid.Update(msg)
}

func (a *app) View() tea.View {
	a.displayContext.Clear()
	var content string
	if a.width > 0 && a.height > 0 {
		box := layout.NewBox(layout.Rect(0, 0, a.width, a.height))
		rows := box.V(layout.Fixed(1), layout.Fill(1))
		header := a.styles.title.Render("photos")
		if a.message != "" {
			header += "  " + a.styles.message.Render(a.message)
		}
		a.displayContext.AddDraw(rows[0].R, header, render.ZStatus)
		a.grid.ViewRect(a.displayContext, rows[1])
		content = a.displayContext.RenderToString(a.width, a.height)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}
