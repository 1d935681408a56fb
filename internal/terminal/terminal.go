// Package terminal owns the raw-mode configuration of the controlling
// terminal: termios flags, timeout-bounded byte reads, and window sizing
// with a cursor-position fallback for terminals that reject TIOCGWINSZ.
package terminal

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// State holds the termios settings captured before entering raw mode.
type State struct {
	termios unix.Termios
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// EnableRaw switches fd into raw mode: no echo, no canonical line
// buffering, no signal keys, and reads that time out after a tenth of a
// second so escape-sequence decoding never blocks indefinitely.
func EnableRaw(fd int) (*State, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}
	saved := State{termios: *termios}

	termios.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}
	return &saved, nil
}

// Restore puts the terminal back into the state captured by EnableRaw.
func Restore(fd int, st *State) error {
	if st == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &st.termios); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}

// Input reads raw bytes from the terminal. In raw mode a read may return
// zero bytes without error when it times out; callers treat that as "no
// byte arrived".
type Input struct {
	fd int
}

func NewInput(fd int) *Input {
	return &Input{fd: fd}
}

func (in *Input) Read(p []byte) (int, error) {
	n, err := unix.Read(in.fd, p)
	if n < 0 {
		n = 0
	}
	if err == unix.EAGAIN {
		err = nil
	}
	return n, err
}

// Size returns the terminal dimensions as (rows, cols). When the ioctl
// path fails it falls back to the VT100 device-status-report protocol:
// push the cursor to the bottom-right corner and ask where it ended up.
func Size(fd int) (rows, cols int, err error) {
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return h, w, nil
	}
	return cursorPositionSize(fd)
}

func cursorPositionSize(fd int) (rows, cols int, err error) {
	if _, err := unix.Write(fd, []byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("query cursor position: %w", err)
	}

	// Expected response: ESC [ rows ; cols R
	var resp []byte
	buf := make([]byte, 1)
	for {
		n, err := unix.Read(fd, buf)
		if err != nil || n != 1 {
			break
		}
		if buf[0] == 'R' {
			break
		}
		resp = append(resp, buf[0])
		if len(resp) > 32 {
			break
		}
	}
	if len(resp) < 2 || resp[0] != 0x1b || resp[1] != '[' {
		return 0, 0, errors.New("malformed cursor position report")
	}
	if _, err := fmt.Sscanf(string(resp[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parse cursor position report: %w", err)
	}
	return rows, cols, nil
}
