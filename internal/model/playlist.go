package model

import "github.com/google/uuid"

// Playlist is a locally stored playlist draft: one optional loop video and
// an ordered list of trigger videos. Videos are catalog paths.
type Playlist struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	LoopVideo string   `json:"loopVideo,omitempty"` // empty = black background
	Videos    []string `json:"videos"`
}

// NewPlaylistParams holds parameters for creating a new Playlist.
type NewPlaylistParams struct {
	Name      string
	LoopVideo string
	Videos    []string
}

// NewPlaylist creates a Playlist with a generated UUID.
func NewPlaylist(params NewPlaylistParams) Playlist {
	videos := params.Videos
	if videos == nil {
		videos = []string{}
	}

	return Playlist{
		ID:        uuid.New().String(),
		Name:      params.Name,
		LoopVideo: params.LoopVideo,
		Videos:    videos,
	}
}

// Store holds all locally saved playlist drafts.
type Store struct {
	Playlists []Playlist `json:"playlists"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{Playlists: []Playlist{}}
}

// GetPlaylistByName finds a playlist by name, returns nil if not found.
func (s *Store) GetPlaylistByName(name string) *Playlist {
	for i := range s.Playlists {
		if s.Playlists[i].Name == name {
			return &s.Playlists[i]
		}
	}
	return nil
}

// Upsert replaces the playlist with the same name, or appends a new one.
func (s *Store) Upsert(p Playlist) {
	for i := range s.Playlists {
		if s.Playlists[i].Name == p.Name {
			p.ID = s.Playlists[i].ID
			s.Playlists[i] = p
			return
		}
	}
	s.Playlists = append(s.Playlists, p)
}

// Delete removes the playlist with the given name. Returns true if removed.
func (s *Store) Delete(name string) bool {
	for i := range s.Playlists {
		if s.Playlists[i].Name == name {
			s.Playlists = append(s.Playlists[:i], s.Playlists[i+1:]...)
			return true
		}
	}
	return false
}
