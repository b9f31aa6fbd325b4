// Package highscore keeps the per-game top-5 table and best score in a
// key-value store.
//
// Keys are "<game>-scores" holding a JSON array of entries and
// "<game>-highscore" holding the best score as a decimal integer.
package highscore

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vovakirdan/retrowave-arcade/internal/kv"
)

// MaxEntries is the size of the table.
const MaxEntries = 5

// DateLayout is the format of Entry.Date.
const DateLayout = "2006-01-02"

// Entry is one row of the high score table.
type Entry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Date   string `json:"date"`
}

// Board reads and writes high scores. It implements arcade.Recorder.
type Board struct {
	store kv.Store
	now   func() time.Time
}

// NewBoard creates a board over store.
func NewBoard(store kv.Store) *Board {
	return &Board{store: store, now: time.Now}
}

// WithClock replaces the clock used to date new entries.
func (b *Board) WithClock(now func() time.Time) *Board {
	b.now = now
	return b
}

// ScoresKey returns the table key for a game.
func ScoresKey(gameID string) string { return gameID + "-scores" }

// HighScoreKey returns the best-score key for a game.
func HighScoreKey(gameID string) string { return gameID + "-highscore" }

// Table returns the stored entries, best first. Malformed data is reset
// to an empty table.
func (b *Board) Table(gameID string) []Entry {
	raw, ok := b.store.Get(ScoresKey(gameID))
	if !ok || raw == "" {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		//nolint:errcheck // Best-effort reset, the table is already unusable
		b.store.Set(ScoresKey(gameID), "[]")
		return nil
	}
	sortEntries(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// HighScore returns the best score ever recorded, or 0.
func (b *Board) HighScore(gameID string) int {
	raw, ok := b.store.Get(HighScoreKey(gameID))
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Record appends a new entry, keeps the best MaxEntries and raises the
// best score when beaten.
func (b *Board) Record(gameID, player string, score int) error {
	if player == "" {
		player = "Player"
	}
	entries := append(b.Table(gameID), Entry{
		Player: player,
		Score:  score,
		Date:   b.now().Format(DateLayout),
	})
	sortEntries(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("highscore: encode table: %w", err)
	}
	if err := b.store.Set(ScoresKey(gameID), string(data)); err != nil {
		return fmt.Errorf("highscore: save table: %w", err)
	}

	if score > b.HighScore(gameID) {
		if err := b.store.Set(HighScoreKey(gameID), strconv.Itoa(score)); err != nil {
			return fmt.Errorf("highscore: save best: %w", err)
		}
	}
	return nil
}

// IsHighScore reports whether score would enter the table.
func (b *Board) IsHighScore(gameID string, score int) bool {
	entries := b.Table(gameID)
	if len(entries) < MaxEntries {
		return score > 0
	}
	return score > entries[len(entries)-1].Score
}

// sortEntries orders by score descending. Ties keep insertion order so an
// older score stays ahead of a newer equal one.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
