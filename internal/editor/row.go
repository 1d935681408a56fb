package editor

// Row is one line of the document. chars is the raw content; render is the
// tab-expanded form shown on screen, with hl holding one highlight class
// per rendered byte. hlOpenComment records whether the row ends inside an
// unterminated block comment.
type Row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []byte
	hlOpenComment bool
}

// updateRow recomputes the rendered form of the row and re-tags it. Tabs
// expand to the next multiple of the tab stop.
func (e *Editor) updateRow(row *Row) {
	row.render = row.render[:0]
	for _, c := range row.chars {
		if c == '\t' {
			row.render = append(row.render, ' ')
			for len(row.render)%e.tabStop != 0 {
				row.render = append(row.render, ' ')
			}
		} else {
			row.render = append(row.render, c)
		}
	}
	e.updateSyntax(row.idx)
}

// cxToRx maps a raw column to its rendered column.
func (e *Editor) cxToRx(row *Row, cx int) int {
	rx := 0
	for i := 0; i < cx && i < len(row.chars); i++ {
		if row.chars[i] == '\t' {
			rx += (e.tabStop - 1) - (rx % e.tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx is the inverse of cxToRx: it returns the raw index whose rendered
// span covers rx. Landing inside a tab's rendered span maps back to the
// tab itself.
func (e *Editor) rxToCx(row *Row, rx int) int {
	cur := 0
	for cx := 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			cur += (e.tabStop - 1) - (cur % e.tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(row.chars)
}

// rowInsertChar inserts c into the raw content at position at, clamped to
// the row length.
func (e *Editor) rowInsertChar(row *Row, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = append(row.chars, 0)
	copy(row.chars[at+1:], row.chars[at:])
	row.chars[at] = c
	e.updateRow(row)
	e.dirty++
}

// rowDelChar removes the character at position at in place.
func (e *Editor) rowDelChar(row *Row, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = append(row.chars[:at], row.chars[at+1:]...)
	e.updateRow(row)
	e.dirty++
}

// rowAppendBytes appends s to the end of the row's raw content.
func (e *Editor) rowAppendBytes(row *Row, s []byte) {
	row.chars = append(row.chars, s...)
	e.updateRow(row)
	e.dirty++
}
