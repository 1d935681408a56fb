package editor

// Key is one decoded logical key. Values below 256 are plain bytes;
// symbolic keys live above that range so they can never collide with input
// bytes.
type Key int

const (
	keyCtrlF     Key = 6
	keyCtrlH     Key = 8
	keyTab       Key = 9
	keyCtrlL     Key = 12
	keyEnter     Key = 13
	keyCtrlQ     Key = 17
	keyCtrlS     Key = 19
	keyEsc       Key = 27
	keyBackspace Key = 127
)

const (
	keyArrowLeft Key = iota + 1000
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

// readByte attempts a single read of one byte. In raw mode the underlying
// read is timeout-bounded (VMIN=0, VTIME=1) and may legitimately return
// zero bytes; that is reported as ok=false.
func (e *Editor) readByte() (byte, bool) {
	var b [1]byte
	n, _ := e.in.Read(b[:])
	return b[0], n == 1
}

// readKey blocks until one logical key has been decoded from the input
// stream. Escape sequences that stall or do not match any known pattern
// degrade to a bare Escape key.
func (e *Editor) readKey() (Key, error) {
	var b [1]byte
	for {
		n, err := e.in.Read(b[:])
		if n == 1 {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	c := b[0]
	if Key(c) != keyEsc {
		return Key(c), nil
	}

	seq0, ok := e.readByte()
	if !ok {
		return keyEsc, nil
	}
	seq1, ok := e.readByte()
	if !ok {
		return keyEsc, nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok := e.readByte()
			if !ok || seq2 != '~' {
				return keyEsc, nil
			}
			switch seq1 {
			case '1', '7':
				return keyHome, nil
			case '3':
				return keyDelete, nil
			case '4', '8':
				return keyEnd, nil
			case '5':
				return keyPageUp, nil
			case '6':
				return keyPageDown, nil
			}
			return keyEsc, nil
		}
		switch seq1 {
		case 'A':
			return keyArrowUp, nil
		case 'B':
			return keyArrowDown, nil
		case 'C':
			return keyArrowRight, nil
		case 'D':
			return keyArrowLeft, nil
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	case 'O':
		switch seq1 {
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	}
	return keyEsc, nil
}
