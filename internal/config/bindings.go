package config

import (
	"fmt"
	"slices"
	"strings"
)

// Binding scopes.
const (
	ScopeGrid   = "grid"
	ScopeSearch = "grid.search"
	ScopeApp    = "app"
)

// Actions that can be bound, per scope.
const (
	ActionMoveUp    = "move_up"
	ActionMoveDown  = "move_down"
	ActionMoveLeft  = "move_left"
	ActionMoveRight = "move_right"
	ActionTap       = "tap"
	ActionDelete    = "delete"
	ActionAdd       = "add"
	ActionSearch    = "search"
	ActionApply     = "apply"
	ActionCancel    = "cancel"
	ActionQuit      = "quit"
)

var knownActions = map[string][]string{
	ScopeGrid: {
		ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
		ActionTap, ActionDelete, ActionAdd, ActionSearch,
	},
	ScopeSearch: {ActionApply, ActionCancel, ActionMoveLeft, ActionMoveRight},
	ScopeApp:    {ActionQuit},
}

// StringList allows TOML values to be specified as a string or array of strings.
type StringList []string

func (l *StringList) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*l = StringList{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}
			out = append(out, s)
		}
		*l = StringList(out)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %T", value)
	}
}

type BindingConfig struct {
	Action string     `toml:"action"`
	Scope  string     `toml:"scope"`
	Key    StringList `toml:"key"`
	Help   string     `toml:"help"`
}

// Keys returns every key bound to action in scope, in declaration order.
func (c *Config) Keys(scope, action string) []string {
	var keys []string
	for _, b := range c.Bindings {
		if strings.TrimSpace(b.Scope) == scope && strings.TrimSpace(b.Action) == action {
			keys = append(keys, b.Key...)
		}
	}
	return keys
}

// Help returns the help text of the first binding for action in scope.
func (c *Config) Help(scope, action string) string {
	for _, b := range c.Bindings {
		if strings.TrimSpace(b.Scope) == scope && strings.TrimSpace(b.Action) == action && b.Help != "" {
			return b.Help
		}
	}
	return action
}

func validateBindings(bindings []BindingConfig) error {
	for i, b := range bindings {
		scope := strings.TrimSpace(b.Scope)
		action := strings.TrimSpace(b.Action)
		actions, ok := knownActions[scope]
		if !ok {
			return fmt.Errorf("bindings[%d]: unknown scope %q", i, scope)
		}
		if !slices.Contains(actions, action) {
			return fmt.Errorf("bindings[%d]: unknown action %q in scope %q", i, action, scope)
		}
		if len(b.Key) == 0 {
			return fmt.Errorf("bindings[%d]: %s.%s has no keys", i, scope, action)
		}
		for _, key := range b.Key {
			if key == "" {
				return fmt.Errorf("bindings[%d]: %s.%s contains an empty key", i, scope, action)
			}
		}
	}
	return nil
}

func mergeBindings(base []BindingConfig, overlay []BindingConfig) []BindingConfig {
	merged := append([]BindingConfig(nil), base...)
	for _, user := range overlay {
		merged = removeShadowedKeys(merged, user)
		merged = append(merged, user)
	}
	return merged
}

// removeShadowedKeys drops keys of existing bindings in the same scope that the
// user binding takes over. Bindings left without keys are removed.
func removeShadowedKeys(existing []BindingConfig, user BindingConfig) []BindingConfig {
	scope := strings.TrimSpace(user.Scope)
	if scope == "" || len(user.Key) == 0 {
		return existing
	}

	userKeys := make(map[string]struct{}, len(user.Key))
	for _, key := range user.Key {
		userKeys[key] = struct{}{}
	}

	filtered := make([]BindingConfig, 0, len(existing))
	for _, binding := range existing {
		if strings.TrimSpace(binding.Scope) != scope {
			filtered = append(filtered, binding)
			continue
		}
		kept := make(StringList, 0, len(binding.Key))
		for _, key := range binding.Key {
			if _, shadowed := userKeys[key]; !shadowed {
				kept = append(kept, key)
			}
		}
		if len(kept) == 0 {
			continue
		}
		binding.Key = kept
		filtered = append(filtered, binding)
	}
	return filtered
}
