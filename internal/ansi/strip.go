// Package ansi holds the terminal color codes used by debug output and a
// helper for removing escape sequences from relayed text.
package ansi

const esc = 0x1b

type stripState int

const (
	stripText stripState = iota
	stripEsc
	stripCSI
	stripString
	stripStringEsc
)

// Strip returns data with ANSI escape sequences removed. CSI sequences end at
// their final byte; OSC, DCS, SOS, PM and APC strings end at BEL or ST.
// An unterminated sequence at the end of data is dropped.
func Strip(data []byte) []byte {
	out := make([]byte, 0, len(data))
	state := stripText
	for _, b := range data {
		switch state {
		case stripText:
			if b == esc {
				state = stripEsc
				continue
			}
			out = append(out, b)
		case stripEsc:
			switch b {
			case '[':
				state = stripCSI
			case ']', 'P', 'X', '^', '_':
				state = stripString
			default:
				// two-byte sequence such as ESC 7 or ESC =
				state = stripText
			}
		case stripCSI:
			if b >= 0x40 && b <= 0x7e {
				state = stripText
			}
		case stripString:
			switch b {
			case 0x07:
				state = stripText
			case esc:
				state = stripStringEsc
			}
		case stripStringEsc:
			if b == '\\' {
				state = stripText
			} else if b != esc {
				state = stripString
			}
		}
	}
	return out
}
