package model_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/AntiHeld889/beamerctl/internal/model"
)

func TestNewPlaylist_GeneratesIDAndInitializesVideos(t *testing.T) {
	p := model.NewPlaylist(model.NewPlaylistParams{Name: "Abend"})

	if p.ID == "" {
		t.Error("ID should be generated")
	}
	if p.Videos == nil {
		t.Error("Videos should be initialized")
	}

	q := model.NewPlaylist(model.NewPlaylistParams{Name: "Abend"})
	if p.ID == q.ID {
		t.Error("IDs should be unique")
	}
}

func TestPlaylist_JSONRoundTrip(t *testing.T) {
	p := model.Playlist{
		ID:        "p1",
		Name:      "Abend",
		LoopVideo: "loops/ambient.webm",
		Videos:    []string{"clips/b.mp4", "clips/a.mp4"},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got model.Playlist
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestStore_GetPlaylistByName(t *testing.T) {
	store := model.NewStore()
	store.Upsert(model.Playlist{ID: "p1", Name: "Abend", Videos: []string{}})

	if got := store.GetPlaylistByName("Abend"); got == nil || got.ID != "p1" {
		t.Errorf("got %+v", got)
	}
	if got := store.GetPlaylistByName("Fehlt"); got != nil {
		t.Errorf("unknown name should return nil, got %+v", got)
	}
}

func TestStore_UpsertReplacesByNameKeepingID(t *testing.T) {
	store := model.NewStore()
	store.Upsert(model.Playlist{ID: "p1", Name: "Abend", Videos: []string{"a.mp4"}})

	replacement := model.NewPlaylist(model.NewPlaylistParams{
		Name:   "Abend",
		Videos: []string{"b.mp4", "c.mp4"},
	})
	store.Upsert(replacement)

	if len(store.Playlists) != 1 {
		t.Fatalf("store has %d playlists, want 1", len(store.Playlists))
	}
	p := store.GetPlaylistByName("Abend")
	if p.ID != "p1" {
		t.Errorf("upsert should keep the original ID, got %q", p.ID)
	}
	want := []string{"b.mp4", "c.mp4"}
	if !reflect.DeepEqual(p.Videos, want) {
		t.Errorf("videos = %v, want %v", p.Videos, want)
	}
}

func TestStore_Delete(t *testing.T) {
	store := model.NewStore()
	store.Upsert(model.Playlist{ID: "p1", Name: "Abend", Videos: []string{}})

	if !store.Delete("Abend") {
		t.Error("delete of existing playlist should return true")
	}
	if store.Delete("Abend") {
		t.Error("second delete should return false")
	}
	if len(store.Playlists) != 0 {
		t.Errorf("store = %+v, want empty", store.Playlists)
	}
}
