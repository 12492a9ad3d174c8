package player_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/AntiHeld889/beamerctl/internal/player"
)

func TestClient_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"active_playlist":"Abend","status":{"mode":"loop"}}`))
	}))
	defer srv.Close()

	client := player.New(srv.URL)
	status, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.ActivePlaylist != "Abend" {
		t.Errorf("active playlist = %q, want Abend", status.ActivePlaylist)
	}
	if status.Mode != player.ModeLoop {
		t.Errorf("mode = %q, want loop", status.Mode)
	}
}

func TestClient_StatusUnknownModeFallsBackToIdle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"active_playlist":"","status":{"mode":"weird"}}`))
	}))
	defer srv.Close()

	status, err := player.New(srv.URL).Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Mode != player.ModeIdle {
		t.Errorf("mode = %q, want idle", status.Mode)
	}
}

func TestClient_StatusServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := player.New(srv.URL).Status(context.Background()); err == nil {
		t.Error("expected error on 500")
	}
}

func TestClient_SavePlaylistSendsOrderedForm(t *testing.T) {
	var gotForm map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlist/new" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotForm = r.PostForm
	}))
	defer srv.Close()

	client := player.New(srv.URL)
	err := client.SavePlaylist(context.Background(), "Abend", "loop.mp4", []string{"b.mp4", "a.mp4", "b2.mp4"})
	if err != nil {
		t.Fatalf("SavePlaylist: %v", err)
	}

	if got := gotForm["name"]; len(got) != 1 || got[0] != "Abend" {
		t.Errorf("name field = %v", got)
	}
	if got := gotForm["loop_video"]; len(got) != 1 || got[0] != "loop.mp4" {
		t.Errorf("loop_video field = %v", got)
	}
	want := []string{"b.mp4", "a.mp4", "b2.mp4"}
	if got := gotForm["videos"]; !reflect.DeepEqual(got, want) {
		t.Errorf("videos fields = %v, want %v", got, want)
	}
}

func TestClient_SavePlaylistRequiresName(t *testing.T) {
	client := player.New("http://localhost:1")
	if err := client.SavePlaylist(context.Background(), "", "", nil); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestClient_StartEscapesName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
	}))
	defer srv.Close()

	if err := player.New(srv.URL).Start(context.Background(), "mein abend"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if gotPath != "/playlist/mein%20abend/start" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestClient_Trigger(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	if err := player.New(srv.URL).Trigger(context.Background()); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/trigger" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestClient_TriggerServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no playlist", http.StatusConflict)
	}))
	defer srv.Close()

	if err := player.New(srv.URL).Trigger(context.Background()); err == nil {
		t.Error("expected error on 409")
	}
}

func TestClient_EditPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.EscapedPath() {
		case "/playlist/new", "/playlist/Abend/edit":
			w.Write([]byte("<html></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := player.New(srv.URL)

	body, err := client.EditPage(context.Background(), "")
	if err != nil {
		t.Fatalf("EditPage new: %v", err)
	}
	body.Close()

	body, err = client.EditPage(context.Background(), "Abend")
	if err != nil {
		t.Fatalf("EditPage edit: %v", err)
	}
	body.Close()

	if _, err := client.EditPage(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown playlist")
	}
}
