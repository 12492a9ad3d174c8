// Package player is the HTTP client for the remote BeamerPi player server.
package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AntiHeld889/beamerctl/internal/logx"
	"github.com/AntiHeld889/beamerctl/internal/selection"
)

// Mode is the player's current playback mode.
type Mode string

const (
	ModeTrigger Mode = "trigger" // a trigger video is playing
	ModeLoop    Mode = "loop"    // loop video running, waiting for triggers
	ModeIdle    Mode = "idle"    // no playlist active
)

// Status is the player's live state.
type Status struct {
	ActivePlaylist string
	Mode           Mode
}

type statusResp struct {
	ActivePlaylist string `json:"active_playlist"`
	Status         struct {
		Mode string `json:"mode"`
	} `json:"status"`
}

// Client talks to the player server.
type Client struct {
	http *http.Client
	base string
}

// New creates a Client for the given base URL, e.g. "http://beamerpi:5000".
func New(baseURL string) *Client {
	return &Client{
		http: &http.Client{Timeout: 10 * time.Second},
		base: strings.TrimSuffix(baseURL, "/"),
	}
}

// BaseURL returns the configured player base URL.
func (c *Client) BaseURL() string {
	return c.base
}

// Status fetches the player's live state from /api/status.
func (c *Client) Status(ctx context.Context) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/status", nil)
	if err != nil {
		return Status{}, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return Status{}, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return Status{}, errors.New("status " + res.Status)
	}

	var payload statusResp
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return Status{}, err
	}

	mode := Mode(payload.Status.Mode)
	switch mode {
	case ModeTrigger, ModeLoop, ModeIdle:
	default:
		mode = ModeIdle
	}
	return Status{ActivePlaylist: payload.ActivePlaylist, Mode: mode}, nil
}

// SavePlaylist submits a playlist to the player: name, loop video and the
// ordered trigger videos as repeated form fields.
func (c *Client) SavePlaylist(ctx context.Context, name, loopVideo string, order []string) error {
	if name == "" {
		return errors.New("playlist name empty")
	}
	values := selection.FormValues(name, loopVideo, order)
	if err := c.postForm(ctx, "/playlist/new", values); err != nil {
		return fmt.Errorf("save playlist %q: %w", name, err)
	}
	logx.Infof("saved playlist %q (%d videos)", name, len(order))
	return nil
}

// Start activates a saved playlist on the player.
func (c *Client) Start(ctx context.Context, name string) error {
	if err := c.postForm(ctx, "/playlist/"+url.PathEscape(name)+"/start", nil); err != nil {
		return fmt.Errorf("start playlist %q: %w", name, err)
	}
	return nil
}

// EditPage fetches the server-rendered playlist edit page. The caller
// owns the body and parses it with catalog.ParseEditPage.
func (c *Client) EditPage(ctx context.Context, name string) (io.ReadCloser, error) {
	path := "/playlist/new"
	if name != "" {
		path = "/playlist/" + url.PathEscape(name) + "/edit"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, errors.New("status " + res.Status)
	}
	return res.Body, nil
}

// Trigger fires the next trigger video.
func (c *Client) Trigger(ctx context.Context) error {
	if err := c.postForm(ctx, "/api/trigger", nil); err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, values url.Values) error {
	var body string
	if values != nil {
		body = values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		logx.Warnf("player %s%s: %v", c.base, path, err)
		return err
	}
	defer res.Body.Close()
	// The player answers form posts with a redirect back to the index.
	if res.StatusCode >= 400 {
		logx.Warnf("player %s%s: status %s", c.base, path, res.Status)
		return errors.New("status " + res.Status)
	}
	return nil
}
