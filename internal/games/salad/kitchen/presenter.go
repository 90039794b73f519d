package kitchen

import "github.com/vovakirdan/salad-chef/internal/core"

// Mood is how a customer is feeling, for display.
type Mood int

const (
	MoodWaiting Mood = iota
	MoodAngry
	MoodHappy
	MoodUnhappy
)

// String returns the mood name.
func (m Mood) String() string {
	switch m {
	case MoodWaiting:
		return "Waiting"
	case MoodAngry:
		return "Angry"
	case MoodHappy:
		return "Happy"
	case MoodUnhappy:
		return "Unhappy"
	default:
		return "Unknown"
	}
}

// Presenter receives fire-and-forget view notifications. Implementations
// must not call back into the kitchen.
type Presenter interface {
	InventoryChanged(player core.PlayerID, items []Veggie)
	ScoreChanged(player core.PlayerID, score int)
	CustomerMood(seat int, mood Mood)
}

// NopPresenter ignores every notification.
type NopPresenter struct{}

func (NopPresenter) InventoryChanged(core.PlayerID, []Veggie) {}
func (NopPresenter) ScoreChanged(core.PlayerID, int)          {}
func (NopPresenter) CustomerMood(int, Mood)                   {}
