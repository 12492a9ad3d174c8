package storage_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/AntiHeld889/beamerctl/internal/model"
	"github.com/AntiHeld889/beamerctl/internal/storage"
)

func newTestSQLite(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "playlists.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStorage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_EmptyLoad(t *testing.T) {
	s := newTestSQLite(t)

	store, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(store.Playlists) != 0 {
		t.Errorf("fresh database should be empty, got %+v", store.Playlists)
	}
}

func TestSQLiteStorage_SaveLoadRoundTrip(t *testing.T) {
	s := newTestSQLite(t)

	store := model.NewStore()
	store.Upsert(model.NewPlaylist(model.NewPlaylistParams{
		Name:      "Abend",
		LoopVideo: "loops/ambient.webm",
		Videos:    []string{"clips/z.mp4", "clips/a.mp4", "intro.mp4"},
	}))

	if err := s.Save(store); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p := loaded.GetPlaylistByName("Abend")
	if p == nil {
		t.Fatal("playlist missing after round trip")
	}
	if p.LoopVideo != "loops/ambient.webm" {
		t.Errorf("loop video = %q", p.LoopVideo)
	}

	// Position column must preserve the draft order exactly, not sort it.
	want := []string{"clips/z.mp4", "clips/a.mp4", "intro.mp4"}
	if !reflect.DeepEqual(p.Videos, want) {
		t.Errorf("video order = %v, want %v", p.Videos, want)
	}
}

func TestSQLiteStorage_SaveReplacesPreviousState(t *testing.T) {
	s := newTestSQLite(t)

	store := model.NewStore()
	store.Upsert(model.NewPlaylist(model.NewPlaylistParams{Name: "Alt", Videos: []string{"a.mp4"}}))
	if err := s.Save(store); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	store = model.NewStore()
	store.Upsert(model.NewPlaylist(model.NewPlaylistParams{Name: "Neu", Videos: []string{"b.mp4"}}))
	if err := s.Save(store); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Playlists) != 1 {
		t.Fatalf("loaded %d playlists, want 1", len(loaded.Playlists))
	}
	if loaded.GetPlaylistByName("Alt") != nil {
		t.Error("stale playlist survived the save")
	}
	if loaded.GetPlaylistByName("Neu") == nil {
		t.Error("new playlist missing")
	}
}

func TestSQLiteStorage_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlists.db")

	s, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("NewSQLiteStorage: %v", err)
	}
	store := model.NewStore()
	store.Upsert(model.NewPlaylist(model.NewPlaylistParams{Name: "Dauer", Videos: []string{"x.mp4"}}))
	if err := s.Save(store); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	s2, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	loaded, err := s2.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.GetPlaylistByName("Dauer") == nil {
		t.Error("playlist missing after reopen")
	}
}
