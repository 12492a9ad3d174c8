package catalog_test

import (
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/AntiHeld889/beamerctl/internal/catalog"
)

func TestScanDir_VideosOnlySortedByPath(t *testing.T) {
	fsys := fstest.MapFS{
		"intro.mp4":           {},
		"clips/b.MKV":         {},
		"clips/a.mp4":         {},
		"clips/notes.txt":     {},
		"thumbs/preview.jpg":  {},
		"loops/ambient.webm":  {},
		"loops/readme.md":     {},
		"archive/old.mov":     {},
		"archive/backup.тest": {},
	}

	entries, err := catalog.ScanDir(fsys, "")
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	want := []string{
		"archive/old.mov",
		"clips/a.mp4",
		"clips/b.MKV",
		"intro.mp4",
		"loops/ambient.webm",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestScanDir_DisplayNameIsBasename(t *testing.T) {
	fsys := fstest.MapFS{"clips/deep/x.mp4": {}}

	entries, err := catalog.ScanDir(fsys, "")
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(entries) != 1 || entries[0].DisplayName != "x.mp4" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestScanDir_PreviewURI(t *testing.T) {
	fsys := fstest.MapFS{"clips/my video.mp4": {}}

	entries, err := catalog.ScanDir(fsys, "http://beamerpi:5000/")
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	want := "http://beamerpi:5000/videos/clips/my%20video.mp4"
	if entries[0].PreviewURI != want {
		t.Errorf("preview URI = %q, want %q", entries[0].PreviewURI, want)
	}
}

func TestScanDir_NoPreviewBase(t *testing.T) {
	fsys := fstest.MapFS{"a.mp4": {}}

	entries, err := catalog.ScanDir(fsys, "")
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if entries[0].PreviewURI != "" {
		t.Errorf("preview URI without base = %q, want empty", entries[0].PreviewURI)
	}
}

func TestScanDir_EmptyDir(t *testing.T) {
	entries, err := catalog.ScanDir(fstest.MapFS{}, "")
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}
