package catalog

import (
	"io/fs"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
)

// videoExts are the file extensions included in a directory scan.
var videoExts = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
	".m4v":  true,
}

// ScanDir walks the video directory and returns one entry per video file.
// The relative slash-separated path is the stable identifier. previewBase,
// if non-empty, is the player's video URL prefix used to derive preview
// URIs (previewBase + "/videos/" + escaped path).
func ScanDir(fsys fs.FS, previewBase string) ([]Entry, error) {
	var entries []Entry

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectory: skip it, keep the rest of the scan.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !videoExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		entries = append(entries, Entry{
			Path:        path,
			DisplayName: filepath.Base(path),
			PreviewURI:  previewURI(previewBase, path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// previewURI builds the player's streaming URL for a video path.
func previewURI(base, path string) string {
	if base == "" {
		return ""
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimSuffix(base, "/") + "/videos/" + strings.Join(segments, "/")
}
