package editor

import "testing"

// hlSpan asserts that row's highlight tags are class over [from, to).
func hlSpan(t *testing.T, row *Row, from, to int, class byte) {
	t.Helper()
	for i := from; i < to; i++ {
		if row.hl[i] != class {
			t.Fatalf("row %d col %d (%q): hl = %d, want %d",
				row.idx, i, row.render[i], row.hl[i], class)
		}
	}
}

func TestHighlightKeywordsNumbersAndComment(t *testing.T) {
	e := newTestEditor("int x = 1; // note", "int y = 2;")
	withCSyntax(e)

	row0 := e.rows[0]
	hlSpan(t, row0, 0, 3, hlKeyword2)  // int
	hlSpan(t, row0, 3, 8, hlNormal)    // " x = "
	hlSpan(t, row0, 8, 9, hlNumber)    // 1
	hlSpan(t, row0, 9, 11, hlNormal)   // "; "
	hlSpan(t, row0, 11, 18, hlComment) // // note

	row1 := e.rows[1]
	hlSpan(t, row1, 0, 3, hlKeyword2)
	hlSpan(t, row1, 3, 8, hlNormal)
	hlSpan(t, row1, 8, 9, hlNumber)
	hlSpan(t, row1, 9, 10, hlNormal)
}

func TestHighlightPrimaryKeyword(t *testing.T) {
	e := newTestEditor("return x;")
	withCSyntax(e)
	hlSpan(t, e.rows[0], 0, 6, hlKeyword1)
	hlSpan(t, e.rows[0], 6, 9, hlNormal)
}

func TestKeywordNeedsSeparatorOnBothSides(t *testing.T) {
	e := newTestEditor("printf interned")
	withCSyntax(e)
	hlSpan(t, e.rows[0], 0, 15, hlNormal)
}

func TestKeywordAtRowEnd(t *testing.T) {
	e := newTestEditor("return")
	withCSyntax(e)
	hlSpan(t, e.rows[0], 0, 6, hlKeyword1)
}

func TestHighlightStringsAndEscapes(t *testing.T) {
	e := newTestEditor(`x = "a\"b" + 'c';`)
	withCSyntax(e)
	row := e.rows[0]
	hlSpan(t, row, 4, 10, hlString)  // "a\"b"
	hlSpan(t, row, 10, 13, hlNormal) // " + "
	hlSpan(t, row, 13, 16, hlString) // 'c'
	hlSpan(t, row, 16, 17, hlNormal) // ;
}

func TestHighlightDecimalNumbers(t *testing.T) {
	e := newTestEditor("x = 3.14;")
	withCSyntax(e)
	row := e.rows[0]
	hlSpan(t, row, 4, 8, hlNumber)
	hlSpan(t, row, 8, 9, hlNormal)
}

func TestDigitInsideWordNotNumber(t *testing.T) {
	e := newTestEditor("var1")
	withCSyntax(e)
	hlSpan(t, e.rows[0], 0, 4, hlNormal)
}

func TestBlockCommentSpansRows(t *testing.T) {
	e := newTestEditor("a /* open", "middle", "close */ b", "after")
	withCSyntax(e)

	if !e.rows[0].hlOpenComment {
		t.Fatalf("row 0 should end inside the block comment")
	}
	if !e.rows[1].hlOpenComment {
		t.Fatalf("row 1 should end inside the block comment")
	}
	if e.rows[2].hlOpenComment {
		t.Fatalf("row 2 should close the block comment")
	}
	if e.rows[3].hlOpenComment {
		t.Fatalf("row 3 should be outside the block comment")
	}

	hlSpan(t, e.rows[0], 2, 9, hlMLComment)
	hlSpan(t, e.rows[1], 0, 6, hlMLComment)
	hlSpan(t, e.rows[2], 0, 8, hlMLComment)
	hlSpan(t, e.rows[2], 8, 10, hlNormal)
	hlSpan(t, e.rows[3], 0, 5, hlNormal)
}

func TestRemovingOpenerRetagsFollowingRows(t *testing.T) {
	e := newTestEditor("/* open", "middle", "close */ x", "tail")
	withCSyntax(e)

	// delete "/*" from row 0; the worklist must re-tag rows 1 and 2
	e.rowDelChar(e.rows[0], 0)
	e.rowDelChar(e.rows[0], 0)

	if e.rows[0].hlOpenComment || e.rows[1].hlOpenComment {
		t.Fatalf("open-comment flags = %v, %v, want false, false",
			e.rows[0].hlOpenComment, e.rows[1].hlOpenComment)
	}
	hlSpan(t, e.rows[1], 0, 6, hlNormal)
	// row 2 now has a stray "*/" but nothing before it is a comment
	if e.rows[2].hl[0] == hlMLComment {
		t.Fatalf("row 2 still tagged as block comment")
	}
}

func TestReinsertingOpenerPropagatesDown(t *testing.T) {
	e := newTestEditor("x", "y", "z */ w")
	withCSyntax(e)
	hlSpan(t, e.rows[1], 0, 1, hlNormal)

	// turn row 0 into a comment opener; rows 1 and 2 must re-tag
	e.rowAppendBytes(e.rows[0], []byte(" /*"))

	if !e.rows[0].hlOpenComment || !e.rows[1].hlOpenComment {
		t.Fatalf("open-comment flags = %v, %v, want true, true",
			e.rows[0].hlOpenComment, e.rows[1].hlOpenComment)
	}
	hlSpan(t, e.rows[1], 0, 1, hlMLComment)
	hlSpan(t, e.rows[2], 0, 4, hlMLComment)
	hlSpan(t, e.rows[2], 4, 6, hlNormal)
	if e.rows[2].hlOpenComment {
		t.Fatalf("row 2 should close the comment")
	}
}

func TestLineCommentMarkerInsideStringIgnored(t *testing.T) {
	e := newTestEditor(`s = "http://x";`)
	withCSyntax(e)
	row := e.rows[0]
	hlSpan(t, row, 4, 14, hlString)
	hlSpan(t, row, 14, 15, hlNormal)
}

func TestNoSyntaxLeavesRowsNormal(t *testing.T) {
	e := newTestEditor("int x = 1; // note")
	hlSpan(t, e.rows[0], 0, len(e.rows[0].render), hlNormal)
}
