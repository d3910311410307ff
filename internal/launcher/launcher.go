// Package launcher opens a URL with a chosen app.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/jask/browserpick/internal/domain"
)

// ErrNoCommand is returned for apps with nothing to run on this platform.
var ErrNoCommand = errors.New("app has no launch command")

// Request describes one launch.
type Request struct {
	App        domain.App
	URL        string
	Background bool
}

// Launcher opens URLs. Implementations must not wait for the app to exit.
type Launcher interface {
	Open(ctx context.Context, req Request) error
}

// Starter starts a command without waiting on it.
type Starter func(ctx context.Context, name string, args ...string) error

// ExecLauncher launches apps as OS processes.
type ExecLauncher struct {
	GOOS  string
	Start Starter
}

// New returns an ExecLauncher for the running OS.
func New() *ExecLauncher {
	return &ExecLauncher{GOOS: runtime.GOOS, Start: startProcess}
}

func (l *ExecLauncher) Open(ctx context.Context, req Request) error {
	name, args, err := Command(l.GOOS, req)
	if err != nil {
		return err
	}
	start := l.Start
	if start == nil {
		start = startProcess
	}
	if err := start(ctx, name, args...); err != nil {
		return fmt.Errorf("start %s: %w", req.App.Name, err)
	}
	return nil
}

// Command builds the process invocation for req on goos. On darwin the app
// command is an application name for open(1); elsewhere it is an executable,
// optionally with leading arguments.
func Command(goos string, req Request) (string, []string, error) {
	cmd := strings.TrimSpace(req.App.Command)
	if cmd == "" {
		return "", nil, fmt.Errorf("%s: %w", req.App.ID, ErrNoCommand)
	}
	var url []string
	if req.URL != "" {
		url = []string{req.URL}
	}
	switch goos {
	case "darwin":
		args := []string{"-a", cmd}
		if req.Background {
			args = append(args, "-g")
		}
		return "open", append(args, url...), nil
	case "windows":
		if len(url) == 1 {
			url[0] = escapeForCmd(url[0])
		}
		return "cmd", append([]string{"/C", "start", "", cmd}, url...), nil
	default:
		fields := strings.Fields(cmd)
		return fields[0], append(fields[1:], url...), nil
	}
}

// cmdURLReplacer makes a URL safe as one cmd.exe token. Whitespace and quotes
// are percent-encoded so Go never wraps the argument in quotes (inside quotes
// cmd ignores carets); every other cmd metacharacter gets a caret.
var cmdURLReplacer = strings.NewReplacer(
	" ", "^%20",
	"\t", "^%09",
	`"`, "^%22",
	"^", "^^",
	"&", "^&",
	"|", "^|",
	"<", "^<",
	">", "^>",
	"(", "^(",
	")", "^)",
	"%", "^%",
	"!", "^!",
)

func escapeForCmd(url string) string {
	return cmdURLReplacer.Replace(url)
}

// startProcess ignores ctx: the opened app must outlive the picker, so the
// process is not tied to the command's context.
func startProcess(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap in the background so the child does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}
