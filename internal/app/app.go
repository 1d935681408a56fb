package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"

	"github.com/kobzarvs/tilde/internal/config"
	"github.com/kobzarvs/tilde/internal/editor"
	"github.com/kobzarvs/tilde/internal/gitinfo"
	"github.com/kobzarvs/tilde/internal/logger"
	"github.com/kobzarvs/tilde/internal/session"
	"github.com/kobzarvs/tilde/internal/terminal"
)

// App is the top-level runtime for tilde.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

// Run wires the terminal, configuration, session and editor together and
// drives the decode-apply-redraw loop until the user quits.
func (a *App) Run() error {
	// The terminal state is thread-affine; keep everything on one OS thread.
	runtime.LockOSThread()

	if err := logger.Init(os.Getenv("TILDE_DEBUG") != ""); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	langs, err := config.LoadLanguages()
	if err != nil {
		return fmt.Errorf("load languages: %w", err)
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}

	state, err := terminal.EnableRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	restore := func() error { return terminal.Restore(fd, state) }

	rows, cols, err := terminal.Size(fd)
	if err != nil {
		return multierr.Append(fmt.Errorf("window size: %w", err), restore())
	}

	ed := editor.New(cfg, terminal.NewInput(fd), os.Stdout)
	ed.SetSize(rows, cols)
	ed.AddLanguages(langs)

	sess, err := session.NewManager()
	if err != nil {
		logger.Warn("session disabled", "error", err)
		sess = nil
	}

	var openPath string
	if len(a.args) > 0 {
		openPath = a.args[0]
		if err := ed.Open(openPath); err != nil {
			return multierr.Append(err, restore())
		}
		if abs, err := filepath.Abs(openPath); err == nil {
			openPath = abs
		}
		if sess != nil {
			if st, ok := sess.GetFileState(openPath); ok {
				ed.SetPosition(st.CursorRow, st.CursorCol, st.RowOffset, st.ColOffset)
			}
		}
		ed.SetGitBranch(gitinfo.Branch(openPath))
		logger.Info("editing", "path", openPath, "repo", gitinfo.Root(openPath))
	} else if cwd, err := os.Getwd(); err == nil {
		ed.SetGitBranch(gitinfo.Branch(cwd))
	}

	ed.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	var loopErr error
	for {
		ed.RefreshScreen()
		quit, err := ed.ProcessKeypress()
		if err != nil {
			loopErr = fmt.Errorf("read key: %w", err)
			break
		}
		if quit {
			break
		}
		if sess != nil && openPath != "" {
			row, col, rowOff, colOff := ed.Position()
			sess.SetFileState(openPath, session.FileState{
				CursorRow: row,
				CursorCol: col,
				RowOffset: rowOff,
				ColOffset: colOff,
			})
		}
	}

	_, _ = os.Stdout.WriteString("\x1b[2J\x1b[H")
	if sess != nil {
		sess.Stop()
	}
	return multierr.Append(loopErr, restore())
}
