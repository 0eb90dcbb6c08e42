package photogrid

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/idursun/photogrid/internal/config"
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Tap    key.Binding
	Delete key.Binding
	Add    key.Binding
	Search key.Binding
	Quit   key.Binding

	SearchApply  key.Binding
	SearchCancel key.Binding
	SearchPrev   key.Binding
	SearchNext   key.Binding
}

func NewKeyMap(c *config.Config) KeyMap {
	return KeyMap{
		Up:     binding(c, config.ScopeGrid, config.ActionMoveUp),
		Down:   binding(c, config.ScopeGrid, config.ActionMoveDown),
		Left:   binding(c, config.ScopeGrid, config.ActionMoveLeft),
		Right:  binding(c, config.ScopeGrid, config.ActionMoveRight),
		Tap:    binding(c, config.ScopeGrid, config.ActionTap),
		Delete: binding(c, config.ScopeGrid, config.ActionDelete),
		Add:    binding(c, config.ScopeGrid, config.ActionAdd),
		Search: binding(c, config.ScopeGrid, config.ActionSearch),
		Quit:   binding(c, config.ScopeApp, config.ActionQuit),

		SearchApply:  binding(c, config.ScopeSearch, config.ActionApply),
		SearchCancel: binding(c, config.ScopeSearch, config.ActionCancel),
		SearchPrev:   binding(c, config.ScopeSearch, config.ActionMoveLeft),
		SearchNext:   binding(c, config.ScopeSearch, config.ActionMoveRight),
	}
}

func binding(c *config.Config, scope, action string) key.Binding {
	keys := c.Keys(scope, action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), c.Help(scope, action)),
	)
}

// ShortHelp lists the bindings shown in the status line.
func (k KeyMap) ShortHelp(editable bool) []key.Binding {
	bindings := []key.Binding{k.Tap}
	if editable {
		bindings = append(bindings, k.Delete, k.Add)
	}
	return append(bindings, k.Search, k.Quit)
}

func (k KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.SearchApply, k.SearchCancel, k.SearchNext}
}
