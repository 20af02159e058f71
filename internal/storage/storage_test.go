package storage

import (
	"errors"
	"testing"
	"time"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(id, result string) *GameRecord {
	return &GameRecord{
		ID:       id,
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		Moves:    []string{"e2e4", "e7e5"},
		FinalFEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2",
		Status:   "NotInCheck",
		Result:   result,
		SavedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStorage_SaveLoad(t *testing.T) {
	s := openTestStorage(t)
	rec := sampleRecord("opening", "*")

	if err := s.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame() error: %v", err)
	}

	got, err := s.LoadGame("opening")
	if err != nil {
		t.Fatalf("LoadGame() error: %v", err)
	}
	testutil.AssertEqual(t, got, rec)
}

func TestStorage_SaveReplaces(t *testing.T) {
	s := openTestStorage(t)

	if err := s.SaveGame(sampleRecord("g", "*")); err != nil {
		t.Fatal(err)
	}
	updated := sampleRecord("g", "0-1")
	updated.Moves = append(updated.Moves, "d1h5")
	if err := s.SaveGame(updated); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadGame("g")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got.Moves, []string{"e2e4", "e7e5", "d1h5"})
	testutil.AssertTrue(t, got.Finished(), "finished game")
}

func TestStorage_SaveSetsTimestamp(t *testing.T) {
	s := openTestStorage(t)
	rec := sampleRecord("fresh", "*")
	rec.SavedAt = time.Time{}

	if err := s.SaveGame(rec); err != nil {
		t.Fatal(err)
	}
	testutil.AssertFalse(t, rec.SavedAt.IsZero(), "SavedAt filled in")
}

func TestStorage_InvalidID(t *testing.T) {
	s := openTestStorage(t)

	for _, id := range []string{"", "a/b", "line\nbreak"} {
		if err := s.SaveGame(sampleRecord(id, "*")); !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("SaveGame(id=%q) error = %v, want ErrInvalidConfig", id, err)
		}
	}
}

func TestStorage_NotFound(t *testing.T) {
	s := openTestStorage(t)

	if _, err := s.LoadGame("missing"); !errors.Is(err, chesserrors.ErrGameNotFound) {
		t.Errorf("LoadGame() error = %v, want ErrGameNotFound", err)
	}
	if err := s.DeleteGame("missing"); !errors.Is(err, chesserrors.ErrGameNotFound) {
		t.Errorf("DeleteGame() error = %v, want ErrGameNotFound", err)
	}
}

func TestStorage_ListAndDelete(t *testing.T) {
	s := openTestStorage(t)

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		if err := s.SaveGame(sampleRecord(id, "*")); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := s.ListGames()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ids, []string{"alpha", "bravo", "charlie"})

	testutil.AssertNoError(t, s.DeleteGame("bravo"))

	ids, err = s.ListGames()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ids, []string{"alpha", "charlie"})
}

func TestStorage_Stats(t *testing.T) {
	s := openTestStorage(t)

	records := []*GameRecord{
		sampleRecord("a", "1-0"),
		sampleRecord("b", "1-0"),
		sampleRecord("c", "0-1"),
		sampleRecord("d", "1/2-1/2"),
		sampleRecord("e", "*"),
	}
	for _, rec := range records {
		if err := s.SaveGame(rec); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.Stats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats, &ArchiveStats{Games: 5, WhiteWins: 2, BlackWins: 1, Draws: 1, Unfinished: 1})
}

func TestOpen(t *testing.T) {
	if _, err := Open(""); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Open(\"\") error = %v, want ErrInvalidConfig", err)
	}

	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := s.SaveGame(sampleRecord("persisted", "1-0")); err != nil {
		t.Fatal(err)
	}
	testutil.AssertNoError(t, s.Close())

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s.Close()

	rec, err := s.LoadGame("persisted")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Result, "1-0")
}
