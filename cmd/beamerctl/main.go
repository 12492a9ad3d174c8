package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntiHeld889/beamerctl/internal/catalog"
	"github.com/AntiHeld889/beamerctl/internal/logx"
	"github.com/AntiHeld889/beamerctl/internal/model"
	"github.com/AntiHeld889/beamerctl/internal/player"
	"github.com/AntiHeld889/beamerctl/internal/storage"
	"github.com/AntiHeld889/beamerctl/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "status":
			runStatus()
			return
		case "push":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: beamerctl push <playlist>\n")
				os.Exit(1)
			}
			runPush(os.Args[2])
			return
		case "trigger":
			runTrigger()
			return
		case "delete":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: beamerctl delete <playlist>\n")
				os.Exit(1)
			}
			runDelete(os.Args[2])
			return
		case "edit":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: beamerctl edit <playlist>\n")
				os.Exit(1)
			}
			runTUI(os.Args[2])
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	// No args - run full TUI on a fresh playlist
	runTUI("")
}

func printHelp() {
	help := `beamerctl - playlist control surface for a BeamerPi player

Usage:
  beamerctl                 Build a new playlist interactively
  beamerctl edit <name>     Edit a saved playlist
  beamerctl push <name>     Submit a saved draft to the player and start it
  beamerctl delete <name>   Delete a locally saved draft
  beamerctl status          Show the player's live state
  beamerctl trigger         Fire the next trigger video
  beamerctl help            Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    h/l         Collapse/expand folder
    gg/G        Jump to top/bottom
    tab         Switch pane

  Playlist:
    space       Select/deselect video
    J/K         Move video down/up in the playlist
    d           Remove video from playlist
    L           Pick loop video
    n           Name playlist

  Player:
    w           Save draft locally
    s           Submit playlist and start it
    t           Fire next trigger video

  Other:
    /           Search videos
    p           Preview video
    Y           Copy video path to clipboard
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/beamerctl/config.json
  ~/.config/beamerctl/playlists.json
`
	fmt.Print(help)
}

// setup loads config, wires the log file and creates the player client.
func setup() (*storage.Config, *player.Client) {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if logPath, err := storage.DefaultLogFilePath(); err == nil {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			logx.SetOutput(f)
		}
	}

	return cfg, player.New(cfg.PlayerURL)
}

// buildIndex resolves the video catalog. A local mount of the video
// directory wins; without one we parse the player's rendered edit page.
// fromScan reports which path produced the index.
func buildIndex(cfg *storage.Config, client *player.Client, playlistName string) (index *catalog.Index, page catalog.Page, fromScan bool, err error) {
	if info, err := os.Stat(cfg.VideoDir); err == nil && info.IsDir() {
		entries, err := catalog.ScanDir(os.DirFS(cfg.VideoDir), cfg.PlayerURL)
		if err != nil {
			return nil, catalog.Page{}, false, fmt.Errorf("scan %s: %w", cfg.VideoDir, err)
		}
		logx.Infof("scanned %s: %d videos", cfg.VideoDir, len(entries))
		return catalog.New(entries), catalog.Page{}, true, nil
	}

	page, err = fetchEditPage(client, playlistName)
	if err != nil {
		return nil, catalog.Page{}, false, err
	}
	return catalog.New(page.Entries), page, false, nil
}

// fetchEditPage downloads and parses the player's rendered edit form.
func fetchEditPage(client *player.Client, playlistName string) (catalog.Page, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	body, err := client.EditPage(ctx, playlistName)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("fetch edit page: %w", err)
	}
	defer body.Close()

	page, err := catalog.ParseEditPage(body)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("parse edit page: %w", err)
	}
	logx.Infof("parsed edit page: %d videos, %d preselected", len(page.Entries), len(page.Preselected))
	return page, nil
}

// seedSelection decides what the TUI opens with when editing: a local
// draft wins, otherwise the server page's checked state and initial order.
func seedSelection(params *tui.AppParams, draft *model.Playlist, page catalog.Page) {
	if draft != nil {
		params.Preselected = draft.Videos
		params.InitialOrder = nil
		params.LoopVideo = draft.LoopVideo
		return
	}
	params.Preselected = page.Preselected
	params.InitialOrder = page.InitialOrder
}

// runTUI runs the full interactive TUI, optionally editing a named playlist.
func runTUI(playlistName string) {
	cfg, client := setup()

	store, st := loadDrafts()

	index, page, fromScan, err := buildIndex(cfg, client, playlistName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building catalog: %v\n", err)
		os.Exit(1)
	}
	if index.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No videos found. Check videoDir or the player URL in the config.")
		os.Exit(1)
	}

	var draft *model.Playlist
	if playlistName != "" {
		draft = store.GetPlaylistByName(playlistName)
	}

	// Editing a playlist that exists only on the player: the catalog may
	// have come from the local mount, but the playlist's checked state
	// still lives in the server's edit form. An unreachable player only
	// costs the preselection, not the edit session.
	if playlistName != "" && draft == nil && fromScan {
		if p, err := fetchEditPage(client, playlistName); err == nil {
			page.Preselected = p.Preselected
			page.InitialOrder = p.InitialOrder
		} else {
			logx.Warnf("edit %q: %v", playlistName, err)
		}
	}

	params := tui.AppParams{
		Index:        index,
		Client:       client,
		Store:        store,
		PlaylistName: playlistName,
		PreviewCmd:   cfg.PreviewCommand,
		PollInterval: time.Duration(cfg.StatusInterval) * time.Second,
	}
	seedSelection(&params, draft, page)

	app := tui.NewApp(params)
	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}

	finalApp := finalModel.(tui.App)
	if err := st.Save(finalApp.Store()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving drafts: %v\n", err)
		os.Exit(1)
	}
}

// loadDrafts opens the local draft store.
func loadDrafts() (*model.Store, storage.Storage) {
	st, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening draft storage: %v\n", err)
		os.Exit(1)
	}
	store, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading drafts: %v\n", err)
		os.Exit(1)
	}
	return store, st
}

// runStatus prints the player's live state.
func runStatus() {
	_, client := setup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	status, err := client.Status(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Player unreachable: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Player:   %s\n", client.BaseURL())
	fmt.Printf("Mode:     %s\n", status.Mode)
	if status.ActivePlaylist != "" {
		fmt.Printf("Playlist: %s\n", status.ActivePlaylist)
	} else {
		fmt.Println("Playlist: (none)")
	}
}

// runPush submits a saved draft to the player and starts it.
func runPush(name string) {
	_, client := setup()

	store, _ := loadDrafts()
	draft := store.GetPlaylistByName(name)
	if draft == nil {
		fmt.Fprintf(os.Stderr, "No draft named %q\n", name)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := client.SavePlaylist(ctx, draft.Name, draft.LoopVideo, draft.Videos); err != nil {
		fmt.Fprintf(os.Stderr, "Error submitting playlist: %v\n", err)
		os.Exit(1)
	}
	if err := client.Start(ctx, draft.Name); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting playlist: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Playlist %q started (%d videos)\n", draft.Name, len(draft.Videos))
}

// runDelete removes a locally saved draft.
func runDelete(name string) {
	store, st := loadDrafts()
	if !store.Delete(name) {
		fmt.Fprintf(os.Stderr, "No draft named %q\n", name)
		os.Exit(1)
	}
	if err := st.Save(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving drafts: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Draft %q deleted\n", name)
}

// runTrigger fires the next trigger video.
func runTrigger() {
	_, client := setup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Trigger(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error firing trigger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Trigger fired")
}
