package editor

import (
	"bytes"
	"strings"
)

// Highlight classes, one per rendered byte.
const (
	hlNormal byte = iota
	hlComment
	hlMLComment
	hlKeyword1
	hlKeyword2
	hlString
	hlNumber
	hlMatch
)

const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// updateSyntax re-tags the row at index at. When a row's block-comment exit
// state changes, the following row is queued and re-tagged too; the
// worklist drains until the state stabilizes or the document ends.
func (e *Editor) updateSyntax(at int) {
	pending := []int{at}
	for len(pending) > 0 {
		idx := pending[0]
		pending = pending[1:]
		if idx < 0 || idx >= len(e.rows) {
			continue
		}
		if e.scanRow(e.rows[idx]) && idx+1 < len(e.rows) {
			pending = append(pending, idx+1)
		}
	}
}

// scanRow runs the per-row highlight state machine and reports whether the
// row's block-comment exit state changed.
func (e *Editor) scanRow(row *Row) bool {
	row.hl = make([]byte, len(row.render))

	if e.syntax == nil {
		changed := row.hlOpenComment
		row.hlOpenComment = false
		return changed
	}

	keywords := e.syntax.Keywords
	scs := e.syntax.LineComment
	mcs := e.syntax.BlockCommentStart
	mce := e.syntax.BlockCommentEnd

	prevSep := true
	inString := byte(0)
	inComment := row.idx > 0 && e.rows[row.idx-1].hlOpenComment

	r := row.render
	i := 0
	for i < len(r) {
		c := r[i]
		prevHl := hlNormal
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(r[i:], []byte(scs)) {
				for j := i; j < len(r); j++ {
					row.hl[j] = hlComment
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.hl[i] = hlMLComment
				if bytes.HasPrefix(r[i:], []byte(mce)) {
					for j := 0; j < len(mce); j++ {
						row.hl[i+j] = hlMLComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(r[i:], []byte(mcs)) {
				for j := 0; j < len(mcs); j++ {
					row.hl[i+j] = hlMLComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if e.syntax.Flags&highlightStrings != 0 {
			if inString != 0 {
				row.hl[i] = hlString
				if c == '\\' && i+1 < len(r) {
					row.hl[i+1] = hlString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = hlString
				i++
				continue
			}
		}

		if e.syntax.Flags&highlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == hlNumber)) ||
				(c == '.' && prevHl == hlNumber) {
				row.hl[i] = hlNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, kw := range keywords {
				class := hlKeyword1
				if strings.HasSuffix(kw, "|") {
					class = hlKeyword2
					kw = kw[:len(kw)-1]
				}
				klen := len(kw)
				if klen == 0 || i+klen > len(r) {
					continue
				}
				if string(r[i:i+klen]) == kw &&
					(i+klen == len(r) || isSeparator(r[i+klen])) {
					for j := 0; j < klen; j++ {
						row.hl[i+j] = class
					}
					i += klen
					matched = true
					break
				}
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.hlOpenComment != inComment
	row.hlOpenComment = inComment
	return changed
}

// syntaxToColor maps a highlight class to its ANSI foreground code.
func syntaxToColor(hl byte) int {
	switch hl {
	case hlComment, hlMLComment:
		return 36
	case hlKeyword1:
		return 33
	case hlKeyword2:
		return 32
	case hlString:
		return 35
	case hlNumber:
		return 31
	case hlMatch:
		return 34
	default:
		return 37
	}
}
