// Package preview launches and tears down the external media player used
// to preview a single catalog entry. At most one preview runs at a time; a
// preview that fails to start is not an error anywhere above this package.
package preview

import (
	"os/exec"
	"runtime"

	"github.com/AntiHeld889/beamerctl/internal/logx"
)

// Runner manages the single external preview process.
type Runner struct {
	command string // overrides the platform default when non-empty
	cmd     *exec.Cmd
	uri     string
}

// NewRunner creates a Runner. command is the preview player binary from
// config; empty selects a platform default.
func NewRunner(command string) *Runner {
	return &Runner{command: command}
}

// Open starts playback of uri, superseding any running preview. A start
// failure leaves no preview active and is swallowed after logging.
func (r *Runner) Open(uri string) {
	r.Close()
	if uri == "" {
		return
	}

	cmd := r.playerCmd(uri)
	if cmd == nil {
		return
	}
	if err := cmd.Start(); err != nil {
		logx.Warnf("preview %s: %v", uri, err)
		return
	}
	r.cmd = cmd
	r.uri = uri
	logx.Debugf("preview started: %s (pid %d)", uri, cmd.Process.Pid)
	// Reap the process when playback ends on its own.
	go func() { _ = cmd.Wait() }()
}

// Close stops the running preview, if any, and releases the process
// handle so nothing keeps buffering in the background.
func (r *Runner) Close() {
	if r.cmd != nil && r.cmd.Process != nil {
		_ = r.cmd.Process.Kill()
	}
	r.cmd = nil
	r.uri = ""
}

// Active returns the URI currently playing, or "" when closed.
func (r *Runner) Active() string {
	return r.uri
}

// playerCmd picks the player invocation for this platform.
func (r *Runner) playerCmd(uri string) *exec.Cmd {
	if r.command != "" {
		return exec.Command(r.command, uri)
	}
	if _, err := exec.LookPath("mpv"); err == nil {
		return exec.Command("mpv", "--really-quiet", "--keep-open=no", uri)
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", uri)
	case "linux":
		return exec.Command("xdg-open", uri)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	}
	return nil
}
