package terminal

import "io"

// Sequences that undo the side effects of screen acquisition: mouse
// reporting off, cursor visible, alternate screen exited, attributes reset
var resetSeqs = [][]byte{
	[]byte("\x1b[?1003l"), // motion reporting off
	[]byte("\x1b[?1002l"), // drag reporting off
	[]byte("\x1b[?1000l"), // click reporting off
	[]byte("\x1b[?1006l"), // SGR encoding off
	[]byte("\x1b[?25h"),   // cursor show
	[]byte("\x1b[?1049l"), // alternate screen exit
	[]byte("\x1b[0m"),     // attribute reset
}

// EmergencyReset writes the restore sequences directly, bypassing the
// screen. Call from panic recovery when Fini cannot run normally
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSeqs {
		w.Write(seq)
	}
}
