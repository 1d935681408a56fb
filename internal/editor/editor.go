package editor

import (
	"io"
	"time"

	"github.com/kobzarvs/tilde/internal/config"
)

// Editor is the full editing context: document, cursor, viewport, syntax
// table and I/O endpoints. Everything operates on this explicit struct;
// there is no ambient state.
type Editor struct {
	cx, cy int // logical cursor position in raw content
	rx     int // rendered cursor column, derived on every scroll

	rowOffset  int
	colOffset  int
	screenRows int
	screenCols int

	rows     []*Row
	dirty    int
	filename string

	statusMsg  string
	statusTime time.Time

	syntax   *Syntax
	syntaxes []*Syntax

	gitBranch string

	tabStop        int
	quitTimes      int
	welcome        bool
	messageTimeout time.Duration

	quitPresses int

	in  io.Reader
	out io.Writer
}

// New builds an editor reading raw bytes from in and writing frames to out.
func New(cfg config.Config, in io.Reader, out io.Writer) *Editor {
	tabStop := cfg.Editor.TabStop
	if tabStop < 1 {
		tabStop = 1
	}
	return &Editor{
		tabStop:        tabStop,
		quitTimes:      cfg.Editor.QuitTimes,
		welcome:        cfg.Editor.WelcomeMessage,
		messageTimeout: time.Duration(cfg.Editor.MessageTimeout) * time.Second,
		quitPresses:    cfg.Editor.QuitTimes,
		syntaxes:       builtinSyntaxes(),
		in:             in,
		out:            out,
	}
}

// SetSize sets the terminal dimensions; two rows are reserved for the
// status and message bars.
func (e *Editor) SetSize(rows, cols int) {
	e.screenRows = rows - 2
	if e.screenRows < 0 {
		e.screenRows = 0
	}
	e.screenCols = cols
}

// SetGitBranch sets the branch name shown in the status bar; empty hides it.
func (e *Editor) SetGitBranch(branch string) {
	e.gitBranch = branch
}

// Filename returns the path associated with the document, if any.
func (e *Editor) Filename() string {
	return e.filename
}

// Dirty reports whether the document has unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty > 0
}

// Position returns the cursor and viewport coordinates for session
// persistence.
func (e *Editor) Position() (row, col, rowOff, colOff int) {
	return e.cy, e.cx, e.rowOffset, e.colOffset
}

// SetPosition restores a saved cursor and viewport, clamped to the loaded
// document.
func (e *Editor) SetPosition(row, col, rowOff, colOff int) {
	if row < 0 {
		row = 0
	}
	if row > len(e.rows) {
		row = len(e.rows)
	}
	e.cy = row
	rowLen := 0
	if e.cy < len(e.rows) {
		rowLen = len(e.rows[e.cy].chars)
	}
	if col < 0 {
		col = 0
	}
	if col > rowLen {
		col = rowLen
	}
	e.cx = col
	if rowOff < 0 || rowOff > e.cy {
		rowOff = 0
	}
	e.rowOffset = rowOff
	if colOff < 0 {
		colOff = 0
	}
	e.colOffset = colOff
}

// moveCursor applies one arrow key. Left at column 0 wraps to the previous
// row end, right at the row end wraps to the next row start, and vertical
// moves snap the column to the destination row length.
func (e *Editor) moveCursor(key Key) {
	var row *Row
	if e.cy < len(e.rows) {
		row = e.rows[e.cy]
	}

	switch key {
	case keyArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case keyArrowRight:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			e.cy++
			e.cx = 0
		}
	case keyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	rowLen := 0
	if e.cy < len(e.rows) {
		rowLen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// ProcessKeypress decodes and applies one key. It returns quit=true when
// the editor should exit; a dirty document demands the quit chord be
// repeated before that happens.
func (e *Editor) ProcessKeypress() (quit bool, err error) {
	key, err := e.readKey()
	if err != nil {
		return false, err
	}

	switch key {
	case keyEnter:
		e.insertNewline()

	case keyCtrlQ:
		if e.dirty > 0 && e.quitPresses > 0 {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitPresses)
			e.quitPresses--
			return false, nil
		}
		return true, nil

	case keyCtrlS:
		e.save()

	case keyCtrlF:
		e.find()

	case keyHome:
		e.cx = 0

	case keyEnd:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case keyBackspace, keyCtrlH, keyDelete:
		if key == keyDelete {
			e.moveCursor(keyArrowRight)
		}
		e.delChar()

	case keyPageUp, keyPageDown:
		if key == keyPageUp {
			e.cy = e.rowOffset
		} else {
			e.cy = e.rowOffset + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		move := keyArrowDown
		if key == keyPageUp {
			move = keyArrowUp
		}
		for times := e.screenRows; times > 0; times-- {
			e.moveCursor(move)
		}

	case keyArrowUp, keyArrowDown, keyArrowLeft, keyArrowRight:
		e.moveCursor(key)

	case keyCtrlL, keyEsc:
		// ignored; unmatched escape sequences land here too

	default:
		if key == keyTab || (key >= 32 && key < 256) {
			e.insertChar(byte(key))
		}
	}

	e.quitPresses = e.quitTimes
	return false, nil
}
