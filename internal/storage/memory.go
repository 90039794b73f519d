package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps scores and rounds in memory with the same rules as Store.
// Safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	slots  [TopScoreSlots]ScoreEntry
	rounds []RoundRecord
	now    func() time.Time
}

// NewMemoryStore creates a store with every slot empty.
func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{now: time.Now}
	for i := range m.slots {
		m.slots[i] = ScoreEntry{Slot: i, Name: EmptyName}
	}
	return m
}

// TopScores returns all slots ordered by score descending.
func (m *MemoryStore) TopScores() ([]ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ScoreEntry, len(m.slots))
	copy(out, m.slots[:])
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// RecordScore replaces the first lowest slot if score is not lower than it.
func (m *MemoryStore) RecordScore(name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowest := 0
	for i := range m.slots {
		if m.slots[i].Score < m.slots[lowest].Score {
			lowest = i
		}
	}
	if score < m.slots[lowest].Score {
		return nil
	}
	m.slots[lowest] = ScoreEntry{Slot: lowest, Name: name, Score: score, UpdatedAt: m.now()}
	return nil
}

// SaveRound records a finished round and returns its id.
func (m *MemoryStore) SaveRound(r RoundRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("storage: invalid round id %q: %w", r.ID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rounds {
		if existing.ID == r.ID {
			return "", fmt.Errorf("storage: round %s already saved", r.ID)
		}
	}
	r.CreatedAt = m.now()
	m.rounds = append(m.rounds, r)
	return r.ID, nil
}

// RecentRounds returns the most recent rounds, newest first.
func (m *MemoryStore) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RoundRecord, 0, min(limit, len(m.rounds)))
	for i := len(m.rounds) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.rounds[i])
	}
	return out, nil
}
