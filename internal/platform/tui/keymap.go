package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/salad-chef/internal/core"
)

// PlayerKeys are one chef's movement and interact bindings.
type PlayerKeys struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Interact key.Binding
}

func (k PlayerKeys) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Interact, core.ActionInteract},
	}
}

// KeyMap holds every binding of a round. Both chefs share one keyboard.
type KeyMap struct {
	Player1 PlayerKeys
	Player2 PlayerKeys
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Player1.Up, k.Player1.Down, k.Player1.Left, k.Player1.Right, k.Player1.Interact},
		{k.Player2.Up, k.Player2.Down, k.Player2.Left, k.Player2.Right, k.Player2.Interact},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns WASD+E for Player1 and arrows+0/enter for Player2.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Player1: PlayerKeys{
			Up:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P1 up")),
			Down:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "P1 down")),
			Left:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P1 left")),
			Right:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P1 right")),
			Interact: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "P1 use")),
		},
		Player2: PlayerKeys{
			Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "P2 up")),
			Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "P2 down")),
			Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("left", "P2 left")),
			Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("right", "P2 right")),
			Interact: key.NewBinding(key.WithKeys("0", "enter"), key.WithHelp("0/enter", "P2 use")),
		},
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a player and action. Global actions
// (pause, restart, quit) come back for Player1.
// In solo mode the Player2 keys drive Player1 as well.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, solo bool) (player core.PlayerID, action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Player1, core.ActionQuit, true
	case key.Matches(msg, km.keys.Pause):
		return core.Player1, core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.Player1, core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.Player1, core.ActionBack, false
	}

	for _, b := range km.keys.Player1.actions() {
		if key.Matches(msg, b.binding) {
			return core.Player1, b.action, false
		}
	}
	for _, b := range km.keys.Player2.actions() {
		if key.Matches(msg, b.binding) {
			if solo {
				return core.Player1, b.action, false
			}
			return core.Player2, b.action, false
		}
	}
	return core.PlayerNone, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame, solo bool) bool {
	player, action, isQuit := km.MapKey(msg, solo)
	if action != core.ActionNone {
		frame.Set(player, action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
