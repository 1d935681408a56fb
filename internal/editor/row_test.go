package editor

import "testing"

func TestRenderExpandsTabs(t *testing.T) {
	e := newTestEditor("a\tb")
	if got := string(e.rows[0].render); got != "a       b" {
		t.Fatalf("render = %q, want %q", got, "a       b")
	}

	e2 := newTestEditor("\t\tx")
	if got := string(e2.rows[0].render); got != "                x" {
		t.Fatalf("render = %q, want %q", got, "                x")
	}
}

func TestRenderAndHighlightSameLength(t *testing.T) {
	e := newTestEditor("a\tb", "plain")
	withCSyntax(e)

	mutations := []func(){
		func() { e.rowInsertChar(e.rows[0], 1, '\t') },
		func() { e.rowDelChar(e.rows[0], 0) },
		func() { e.insertRow(1, []byte("\tnew\trow")) },
		func() { e.rowAppendBytes(e.rows[2], []byte("\ttail")) },
		func() { e.delRow(0) },
	}
	for i, mutate := range mutations {
		mutate()
		for _, row := range e.rows {
			if len(row.render) != len(row.hl) {
				t.Fatalf("after mutation %d: row %d render len %d != hl len %d",
					i, row.idx, len(row.render), len(row.hl))
			}
		}
	}
}

func TestCxToRxAccountsForTabs(t *testing.T) {
	e := newTestEditor("\ta\tb")
	row := e.rows[0]

	cases := []struct{ cx, rx int }{
		{0, 0},
		{1, 8},
		{2, 9},
		{3, 16},
		{4, 17},
	}
	for _, tc := range cases {
		if got := e.cxToRx(row, tc.cx); got != tc.rx {
			t.Fatalf("cxToRx(%d) = %d, want %d", tc.cx, got, tc.rx)
		}
	}
}

func TestRxToCxInvertsCxToRx(t *testing.T) {
	e := newTestEditor("a\tbc\t\td", "no tabs here", "\t")
	for _, row := range e.rows {
		for cx := 0; cx <= len(row.chars); cx++ {
			rx := e.cxToRx(row, cx)
			if got := e.rxToCx(row, rx); got != cx {
				t.Fatalf("row %d: rxToCx(cxToRx(%d)) = %d, want %d", row.idx, cx, got, cx)
			}
		}
	}
}

func TestRxInsideTabMapsToTabIndex(t *testing.T) {
	e := newTestEditor("a\tb")
	row := e.rows[0]
	// columns 1..7 of the rendered row are the tab's span
	for rx := 1; rx < 8; rx++ {
		if got := e.rxToCx(row, rx); got != 1 {
			t.Fatalf("rxToCx(%d) = %d, want 1", rx, got)
		}
	}
	if got := e.rxToCx(row, 8); got != 2 {
		t.Fatalf("rxToCx(8) = %d, want 2", got)
	}
}

func TestRxPastRowEndMapsToRowLength(t *testing.T) {
	e := newTestEditor("ab")
	if got := e.rxToCx(e.rows[0], 99); got != 2 {
		t.Fatalf("rxToCx(99) = %d, want 2", got)
	}
}
