package forth

import "strings"

// line is a text buffer with a read cursor. The parser consumes one word at
// a time; QUERY splices fresh input at the cursor.
type line struct {
	str string
	pos int
	len int
}

func newLine(s string) line {
	return line{str: s, len: len(s)}
}

func (l *line) clear() {
	l.str = ""
	l.pos = 0
	l.len = 0
}

func (l *line) valid() bool { return l.pos < l.len }

func (l *line) savePos() int       { return l.pos }
func (l *line) restorePos(pos int) { l.pos = pos }

func (l *line) lookChar() byte { return l.str[l.pos] }

func (l *line) getChar() byte {
	c := l.str[l.pos]
	l.pos++
	return c
}

func (l *line) lookNextChar(offset int) byte {
	if l.pos+offset < l.len {
		return l.str[l.pos+offset]
	}
	return 0
}

func (l *line) skipChar() { l.pos++ }

func (l *line) addChar(c byte) {
	l.str += string(c)
	l.len++
}

func (l *line) skipSpace() {
	for l.pos < l.len && l.isSpace() {
		l.pos++
	}
}

func (l *line) isSpace() bool {
	switch l.str[l.pos] {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (l *line) isDigit() bool {
	c := l.str[l.pos]
	return c >= '0' && c <= '9'
}

func (l *line) isAlpha() bool {
	c := l.str[l.pos]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (l *line) isAlNum() bool { return l.isDigit() || l.isAlpha() }

func (l *line) isBaseChar(base int) bool {
	return isBaseChar(rune(l.str[l.pos]), base, nil)
}

func (l *line) isChar(c byte) bool { return l.str[l.pos] == c }

func (l *line) isOneOf(chars string) bool {
	return strings.IndexByte(chars, l.str[l.pos]) >= 0
}

// insert splices str at the cursor so its characters are read next.
func (l *line) insert(str string) {
	l.str = l.str[:l.pos] + str + l.str[l.pos:]
	l.len += len(str)
}

// word is a whitespace-delimited token of source text, with a validity flag
// so that an exhausted source reads as "no word" rather than an empty one.
type word struct {
	valid bool
	str   string
}

func (w *word) reset() { w.valid = false }

func (w *word) setValue(s string) {
	w.valid = true
	w.str = s
}

func (w word) value() string { return w.str }

func (w word) is(s string) bool { return w.str == s }

// readWordFrom captures the next whitespace-delimited word from l, eating
// the delimiter run that follows it.
func readWordFrom(l *line, w *word) bool {
	w.reset()

	var sb strings.Builder
	sb.WriteByte(l.getChar())
	for l.valid() && !l.isSpace() {
		sb.WriteByte(l.getChar())
	}
	w.setValue(sb.String())

	for l.valid() && l.isSpace() {
		l.skipChar()
	}
	return true
}
