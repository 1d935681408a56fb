package editor

import "bytes"

// insertRow inserts a new row holding line at position at, clamped to
// [0, row count]. Rows below shift down one index.
func (e *Editor) insertRow(at int, line []byte) {
	if at < 0 {
		at = 0
	}
	if at > len(e.rows) {
		at = len(e.rows)
	}
	row := &Row{idx: at, chars: append([]byte(nil), line...)}
	e.rows = append(e.rows, nil)
	copy(e.rows[at+1:], e.rows[at:])
	e.rows[at] = row
	for i := at + 1; i < len(e.rows); i++ {
		e.rows[i].idx = i
	}
	e.updateRow(row)
	e.dirty++
}

// delRow removes row at; out of bounds is a no-op. Rows below shift up one
// index.
func (e *Editor) delRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:at], e.rows[at+1:]...)
	for i := at; i < len(e.rows); i++ {
		e.rows[i].idx = i
	}
	e.dirty++
}

// insertChar inserts c at the cursor, appending a fresh row first when the
// cursor sits past the last row.
func (e *Editor) insertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rowInsertChar(e.rows[e.cy], e.cx, c)
	e.cx++
}

// insertNewline splits the current row at the cursor. The suffix moves to a
// new row below; the current row is truncated at the split point.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		row := e.rows[e.cy]
		e.insertRow(e.cy+1, row.chars[e.cx:])
		// insertRow restructured the row slice; re-fetch by index before
		// truncating.
		row = e.rows[e.cy]
		row.chars = row.chars[:e.cx]
		e.updateRow(row)
	}
	e.cy++
	e.cx = 0
}

// delChar removes the character left of the cursor. At column 0 the row is
// joined onto the previous one and the cursor lands at the join point. At
// the very start of the document it is a no-op.
func (e *Editor) delChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}
	row := e.rows[e.cy]
	if e.cx > 0 {
		e.rowDelChar(row, e.cx-1)
		e.cx--
		return
	}
	prev := e.rows[e.cy-1]
	e.cx = len(prev.chars)
	e.rowAppendBytes(prev, row.chars)
	e.delRow(e.cy)
	e.cy--
}

// rowsToString serializes the document, one trailing newline per row.
func (e *Editor) rowsToString() []byte {
	var buf bytes.Buffer
	for _, row := range e.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
