package highscore

import (
	"testing"
	"time"

	"github.com/vovakirdan/retrowave-arcade/internal/kv"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func TestEmptyBoard(t *testing.T) {
	b := NewBoard(kv.NewMemory())

	if got := b.HighScore("neonrider"); got != 0 {
		t.Errorf("HighScore() = %d, expected 0", got)
	}
	if got := b.Table("neonrider"); len(got) != 0 {
		t.Errorf("Table() = %v, expected empty", got)
	}
}

func TestRecordFirstScore(t *testing.T) {
	store := kv.NewMemory()
	b := NewBoard(store).WithClock(fixedClock)

	if err := b.Record("neonrider", "Player", 150); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	raw, _ := store.Get("neonrider-scores")
	expected := `[{"player":"Player","score":150,"date":"2026-03-14"}]`
	if raw != expected {
		t.Errorf("stored table = %s, expected %s", raw, expected)
	}
	if b.HighScore("neonrider") != 150 {
		t.Errorf("HighScore() = %d, expected 150", b.HighScore("neonrider"))
	}
}

func TestRecordKeepsTopFive(t *testing.T) {
	b := NewBoard(kv.NewMemory()).WithClock(fixedClock)

	for _, s := range []int{40, 10, 90, 70, 20, 60, 30} {
		if err := b.Record("invaders", "p", s); err != nil {
			t.Fatalf("Record(%d) error = %v", s, err)
		}
	}

	table := b.Table("invaders")
	if len(table) != MaxEntries {
		t.Fatalf("len(Table()) = %d, expected %d", len(table), MaxEntries)
	}
	expected := []int{90, 70, 60, 40, 30}
	for i, e := range table {
		if e.Score != expected[i] {
			t.Errorf("Table()[%d].Score = %d, expected %d", i, e.Score, expected[i])
		}
	}
	if b.HighScore("invaders") != 90 {
		t.Errorf("HighScore() = %d, expected 90", b.HighScore("invaders"))
	}
}

func TestRecordLowScoreKeepsBest(t *testing.T) {
	b := NewBoard(kv.NewMemory())
	_ = b.Record("invaders", "p", 500)
	_ = b.Record("invaders", "p", 20)

	if b.HighScore("invaders") != 500 {
		t.Errorf("HighScore() = %d, expected 500", b.HighScore("invaders"))
	}
	if len(b.Table("invaders")) != 2 {
		t.Errorf("len(Table()) = %d, expected 2", len(b.Table("invaders")))
	}
}

func TestMalformedTableResets(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not json"},
		{"object", `{"score":1}`},
		{"truncated", `[{"player":"a"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := kv.NewMemory()
			_ = store.Set("neonrider-scores", tc.raw)
			b := NewBoard(store)

			if got := b.Table("neonrider"); len(got) != 0 {
				t.Errorf("Table() = %v, expected empty", got)
			}
			if raw, _ := store.Get("neonrider-scores"); raw != "[]" {
				t.Errorf("stored table = %q, expected reset to []", raw)
			}
			if err := b.Record("neonrider", "p", 5); err != nil {
				t.Fatalf("Record() after reset error = %v", err)
			}
			if len(b.Table("neonrider")) != 1 {
				t.Error("Record() after reset should store one entry")
			}
		})
	}
}

func TestMalformedHighScore(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set("neonrider-highscore", "abc")
	if got := NewBoard(store).HighScore("neonrider"); got != 0 {
		t.Errorf("HighScore() = %d, expected 0", got)
	}
}

func TestIsHighScore(t *testing.T) {
	b := NewBoard(kv.NewMemory())
	if !b.IsHighScore("g", 1) {
		t.Error("any positive score enters an empty table")
	}
	for _, s := range []int{50, 40, 30, 20, 10} {
		_ = b.Record("g", "p", s)
	}
	if b.IsHighScore("g", 10) {
		t.Error("tying the lowest entry should not enter a full table")
	}
	if !b.IsHighScore("g", 11) {
		t.Error("beating the lowest entry should enter a full table")
	}
}
