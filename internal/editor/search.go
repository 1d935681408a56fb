package editor

import "bytes"

// findState carries one incremental search session: the row of the last
// match, the scan direction, and the original highlight tags of the row
// currently overlaid with the match class.
type findState struct {
	lastMatch    int
	direction    int
	savedHlIndex int
	savedHl      []byte
}

// find runs an incremental search prompt. Escape restores the cursor and
// viewport to their pre-search values; Enter leaves the cursor at the
// match.
func (e *Editor) find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.colOffset, e.rowOffset

	st := &findState{lastMatch: -1, direction: 1}
	_, ok := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, key Key) {
		e.findCallback(st, query, key)
	})
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOff, savedRowOff
	}
}

// findCallback runs on every search keystroke. It first restores the tags
// of the previously highlighted row, then interprets the key (arrows set
// the direction, Enter/Escape end the session, anything else restarts the
// scan) and searches the rendered rows from the last match, wrapping at
// both document boundaries.
func (e *Editor) findCallback(st *findState, query string, key Key) {
	if st.savedHl != nil {
		if st.savedHlIndex < len(e.rows) {
			copy(e.rows[st.savedHlIndex].hl, st.savedHl)
		}
		st.savedHl = nil
	}

	switch key {
	case keyEnter, keyEsc:
		st.lastMatch = -1
		st.direction = 1
		return
	case keyArrowRight, keyArrowDown:
		st.direction = 1
	case keyArrowLeft, keyArrowUp:
		st.direction = -1
	default:
		st.lastMatch = -1
		st.direction = 1
	}

	if st.lastMatch == -1 {
		st.direction = 1
	}
	current := st.lastMatch
	for range e.rows {
		current += st.direction
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}

		row := e.rows[current]
		j := bytes.Index(row.render, []byte(query))
		if j < 0 {
			continue
		}

		st.lastMatch = current
		e.cy = current
		e.cx = e.rxToCx(row, j)
		// Force the next scroll clamp to land the match row at the top of
		// the window.
		e.rowOffset = len(e.rows)

		st.savedHlIndex = current
		st.savedHl = append([]byte(nil), row.hl...)
		for k := j; k < j+len(query) && k < len(row.hl); k++ {
			row.hl[k] = hlMatch
		}
		break
	}
}
