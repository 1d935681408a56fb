package editor

import (
	"bytes"
	"fmt"
	"time"
	"unicode/utf8"
)

// Version is shown on the welcome banner.
const Version = "0.1.0"

// scroll clamps the row and column offsets so the cursor's render
// coordinates stay inside the visible window, adjusting each axis by the
// minimum amount.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = e.cxToRx(e.rows[e.cy], e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// drawRows emits every visible row: either a slice of the rendered buffer
// with SGR color codes at tag boundaries, or a "~" filler past the end of
// the document. Control bytes render reverse-video as @-letters.
func (e *Editor) drawRows(buf *bytes.Buffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOffset
		if fileRow >= len(e.rows) {
			if len(e.rows) == 0 && e.welcome && y == e.screenRows/3 {
				e.drawWelcome(buf)
			} else {
				buf.WriteByte('~')
			}
		} else {
			row := e.rows[fileRow]
			// a row shorter than the horizontal offset has nothing visible
			start := e.colOffset
			if start > len(row.render) {
				start = len(row.render)
			}
			length := len(row.render) - start
			if length > e.screenCols {
				length = e.screenCols
			}
			line := row.render[start : start+length]
			hl := row.hl[start : start+length]
			currentColor := -1
			for j := 0; j < length; j++ {
				c := line[j]
				switch {
				case c < 32 || c == 127:
					sym := byte('?')
					if c <= 26 {
						sym = '@' + c
					}
					buf.WriteString("\x1b[7m")
					buf.WriteByte(sym)
					buf.WriteString("\x1b[m")
					if currentColor != -1 {
						fmt.Fprintf(buf, "\x1b[%dm", currentColor)
					}
				case hl[j] == hlNormal:
					if currentColor != -1 {
						buf.WriteString("\x1b[39m")
						currentColor = -1
					}
					buf.WriteByte(c)
				default:
					color := syntaxToColor(hl[j])
					if color != currentColor {
						currentColor = color
						fmt.Fprintf(buf, "\x1b[%dm", color)
					}
					buf.WriteByte(c)
				}
			}
			buf.WriteString("\x1b[39m")
		}
		buf.WriteString("\x1b[K")
		buf.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(buf *bytes.Buffer) {
	welcome := fmt.Sprintf("Tilde editor -- version %s", Version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(welcome)
}

// drawStatusBar emits the reverse-video status line: filename, modified
// indicator and git branch on the left, language and cursor line on the
// right.
func (e *Editor) drawStatusBar(buf *bytes.Buffer) {
	buf.WriteString("\x1b[7m")

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	name = truncate(name, 20)
	modified := ""
	if e.dirty > 0 {
		modified = " (modified)"
	}
	branch := ""
	if e.gitBranch != "" {
		branch = " ⎇ " + e.gitBranch
	}
	status := fmt.Sprintf("%s - %d lines%s%s", name, len(e.rows), modified, branch)

	lang := "no ft"
	if e.syntax != nil {
		lang = e.syntax.Name
	}
	rstatus := fmt.Sprintf("%s | %d/%d", lang, e.cy+1, len(e.rows))

	status = truncate(status, e.screenCols)
	buf.WriteString(status)
	for col := len(status); col < e.screenCols; col++ {
		if e.screenCols-col == len(rstatus) {
			buf.WriteString(rstatus)
			break
		}
		buf.WriteByte(' ')
	}

	buf.WriteString("\x1b[m")
	buf.WriteString("\r\n")
}

// drawMessageBar emits the transient message line; a message stays visible
// for the configured timeout from when it was last set.
func (e *Editor) drawMessageBar(buf *bytes.Buffer) {
	buf.WriteString("\x1b[K")
	msg := truncate(e.statusMsg, e.screenCols)
	if len(msg) > 0 && time.Since(e.statusTime) < e.messageTimeout {
		buf.WriteString(msg)
	}
}

// RefreshScreen composes the whole frame into one buffer and flushes it in
// a single write so the terminal never shows a partially drawn frame.
func (e *Editor) RefreshScreen() {
	e.scroll()

	var buf bytes.Buffer
	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	e.drawRows(&buf)
	e.drawStatusBar(&buf)
	e.drawMessageBar(&buf)

	fmt.Fprintf(&buf, "\x1b[%d;%dH", (e.cy-e.rowOffset)+1, (e.rx-e.colOffset)+1)
	buf.WriteString("\x1b[?25h")

	_, _ = e.out.Write(buf.Bytes())
}

// truncate shortens s to at most max bytes, backing up so a multi-byte
// UTF-8 sequence is never split.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// SetStatusMessage replaces the transient message and restarts its
// visibility timer.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}
