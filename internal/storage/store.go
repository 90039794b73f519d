package storage

import "time"

// TopScoreSlots is the fixed size of the high score table.
const TopScoreSlots = 10

// EmptyName marks a slot nobody has claimed yet.
const EmptyName = "--"

// ScoreEntry is one slot of the high score table.
type ScoreEntry struct {
	Slot      int
	Name      string
	Score     int
	UpdatedAt time.Time
}

// ScoreStore is the persistent high score table.
type ScoreStore interface {
	// TopScores returns every slot, best first.
	TopScores() ([]ScoreEntry, error)
	// RecordScore replaces the lowest slot if score is not lower than it.
	RecordScore(name string, score int) error
}

// RoundRecord is the summary of one finished round.
type RoundRecord struct {
	ID           string // uuid
	Mode         string // "versus" or "solo"
	Player1Score int
	Player2Score int
	Winner       string // Empty when nobody scored
	Duration     int    // Seconds
	CreatedAt    time.Time
}

// RoundLog keeps the history of finished rounds.
type RoundLog interface {
	SaveRound(r RoundRecord) (string, error)
	RecentRounds(limit int) ([]RoundRecord, error)
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode        string
	Rounds      int
	BestScore   int
	Player1Wins int
	Player2Wins int
	LastPlayed  time.Time
}

var (
	_ ScoreStore = (*Store)(nil)
	_ RoundLog   = (*Store)(nil)
	_ ScoreStore = (*MemoryStore)(nil)
	_ RoundLog   = (*MemoryStore)(nil)
)
