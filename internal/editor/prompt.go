package editor

// prompt reads a line of input on the message bar. format must contain one
// %s for the input typed so far. The callback, when non-nil, runs on every
// keystroke with the current input and the key just read; search hangs its
// incremental scan here. Escape cancels (ok=false), Enter accepts non-empty
// input.
func (e *Editor) prompt(format string, callback func(query string, key Key)) (string, bool) {
	var buf []byte
	for {
		e.SetStatusMessage(format, buf)
		e.RefreshScreen()

		key, err := e.readKey()
		if err != nil {
			e.SetStatusMessage("")
			if callback != nil {
				callback(string(buf), keyEsc)
			}
			return "", false
		}

		switch {
		case key == keyDelete || key == keyCtrlH || key == keyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case key == keyEsc:
			e.SetStatusMessage("")
			if callback != nil {
				callback(string(buf), key)
			}
			return "", false
		case key == keyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(string(buf), key)
				}
				return string(buf), true
			}
		case key >= 32 && key < 127:
			buf = append(buf, byte(key))
		}

		if callback != nil {
			callback(string(buf), key)
		}
	}
}
