package svgpath

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// scanner splits path data into command letters, numbers and arc flags.
// Numbers may follow each other without separator when the sign or the
// decimal point is enough to tell them apart ("10-5", "1.5.5").
type scanner struct {
	data []byte
	pos  int
}

func newScanner(d string) *scanner {
	sc := &scanner{data: []byte(d)}
	// ignore anything before the first command
	for sc.pos < len(sc.data) && !isCommand(sc.data[sc.pos]) {
		sc.pos++
	}
	return sc
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func (sc *scanner) skipSeparators() {
	for sc.pos < len(sc.data) && isSeparator(sc.data[sc.pos]) {
		sc.pos++
	}
}

// done returns true when only separators are left.
func (sc *scanner) done() bool {
	sc.skipSeparators()
	return sc.pos >= len(sc.data)
}

// command consumes the next token if it is a command letter.
func (sc *scanner) command() (byte, bool) {
	sc.skipSeparators()
	if sc.pos < len(sc.data) && isCommand(sc.data[sc.pos]) {
		sc.pos++
		return sc.data[sc.pos-1], true
	}
	return 0, false
}

// number consumes the next token if it is a number.
func (sc *scanner) number() (float64, bool) {
	sc.skipSeparators()
	f, n := strconv.ParseFloat(sc.data[sc.pos:])
	if n == 0 {
		return 0, false
	}
	sc.pos += n
	return f, true
}

// flag consumes one character, which should be '0' or '1'.
// Flags need no separator: "a1 1 0 0110 10" is valid.
// The character is consumed even if it is not a valid flag,
// so that the caller may skip the command.
func (sc *scanner) flag() (value, valid, ok bool) {
	sc.skipSeparators()
	if sc.pos >= len(sc.data) {
		return false, false, false
	}
	c := sc.data[sc.pos]
	if isCommand(c) {
		return false, false, false
	}
	sc.pos++
	switch c {
	case '0':
		return false, true, true
	case '1':
		return true, true, true
	}
	return false, false, true
}
