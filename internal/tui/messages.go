package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntiHeld889/beamerctl/internal/logx"
	"github.com/AntiHeld889/beamerctl/internal/player"
)

// statusTickMsg schedules the next status poll.
type statusTickMsg time.Time

// statusMsg carries the result of a status poll. Errors only flip the
// badge to offline; they never surface further (auxiliary UX only).
type statusMsg struct {
	status player.Status
	err    error
}

// submitResultMsg carries the result of a playlist submission.
type submitResultMsg struct {
	name string
	err  error
}

// triggerResultMsg carries the result of a trigger request.
type triggerResultMsg struct {
	err error
}

// statusTick emits a statusTickMsg after the poll interval.
func statusTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// pollStatus fetches player state in the background. Fire and forget: the
// selection model is never touched from this path.
func pollStatus(client *player.Client) tea.Cmd {
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		status, err := client.Status(ctx)
		return statusMsg{status: status, err: err}
	}
}

// submitPlaylist posts the named playlist with the given order and starts it.
func submitPlaylist(client *player.Client, name, loopVideo string, order []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.SavePlaylist(ctx, name, loopVideo, order); err != nil {
			logx.Errorf("submit %q: %v", name, err)
			return submitResultMsg{name: name, err: err}
		}
		if err := client.Start(ctx, name); err != nil {
			logx.Errorf("start %q: %v", name, err)
			return submitResultMsg{name: name, err: err}
		}
		return submitResultMsg{name: name}
	}
}

// fireTrigger requests the next trigger video.
func fireTrigger(client *player.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return triggerResultMsg{err: client.Trigger(ctx)}
	}
}
