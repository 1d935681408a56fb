package editor

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kobzarvs/tilde/internal/logger"
)

// Open loads filename into the document, one row per line with trailing
// CR/LF trimmed. A missing file starts an empty document under that name.
// Loading is not a user edit: the dirty counter resets afterwards.
func (e *Editor) Open(filename string) error {
	e.filename = filename
	e.selectSyntax()

	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("opening new file", "path", filename)
			return nil
		}
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		e.insertRow(len(e.rows), []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	e.dirty = 0
	logger.Info("opened file", "path", filename, "rows", len(e.rows))
	return nil
}

// save writes the whole serialized document to the current file, prompting
// for a name first when the document has none. Failures stay on the message
// bar; the in-memory document is untouched either way.
func (e *Editor) save() {
	if e.filename == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.selectSyntax()
	}

	data := e.rowsToString()
	if err := os.WriteFile(e.filename, data, 0o644); err != nil {
		logger.Error("save failed", "path", e.filename, "error", err)
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	e.dirty = 0
	e.SetStatusMessage("%d bytes written to disk", len(data))
	logger.Info("saved file", "path", e.filename, "bytes", len(data))
}
