package forth

import (
	"fmt"
	"io"

	"github.com/forthlab/goforth/internal/termkey"
)

// Line-oriented input/output words.

func execEmit(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	eng.out.Write([]byte{byte(n.Integer())})
	return nil
}

// textMod captures raw characters up to a closing delimiter at parse time.
// It backs both `."` (which emits the text) and `(` (which discards it).
type textMod struct {
	end  byte
	text string
}

func (m *textMod) clone() modifier { return &textMod{end: m.end, text: m.text} }

func (m *textMod) read(eng *Forth, b *Builtin) error {
	if !eng.fillBuffer() {
		return errMissingChar
	}

	var text []byte
	text = append(text, eng.line.getChar())
	for eng.line.valid() && !eng.line.isChar(m.end) {
		text = append(text, eng.line.getChar())
	}
	if eng.line.valid() && eng.line.isChar(m.end) {
		eng.line.skipChar()
	}
	m.text = string(text)
	return nil
}

func (m *textMod) print(eng *Forth, w io.Writer, b *Builtin) {
	if m.end == ')' {
		fmt.Fprintf(w, "( %s)", m.text)
	} else {
		fmt.Fprintf(w, ".\" %s\"", m.text)
	}
}

// ." emits its captured text.
func execPrintText(eng *Forth, b *Builtin) error {
	m := b.mod.(*textMod)
	io.WriteString(eng.out, m.text)
	return nil
}

// TYPE prints n character cells of a ref.
func execType(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	ref, err := eng.popVarRef()
	if err != nil {
		return err
	}

	for i := 0; i < int(n.Integer()); i++ {
		if nt, ok := ref.indValue(i).(*NumberToken); ok {
			eng.out.Write([]byte{byte(nt.Number().Integer())})
		}
	}
	return nil
}

// COUNT unpacks a counted string: pushes the ref advanced past the count
// cell, then the count itself.
func execCount(eng *Forth, b *Builtin) error {
	ref, err := eng.popVarRef()
	if err != nil {
		return err
	}
	count := ref.indValue(0)
	if count == nil {
		return errInvalidVariable
	}
	eng.push(ref.indexVar(1))
	eng.push(count)
	return nil
}

// -TRAILING shortens a (ref, n) pair past any trailing blanks.
func execTrailing(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	ref, err := eng.popVarRef()
	if err != nil {
		return err
	}

	i := int(n.Integer()) - 1
	for i >= 0 {
		nt, ok := ref.indValue(i).(*NumberToken)
		if !ok {
			break
		}
		if !isSpaceByte(byte(nt.Number().Integer())) {
			break
		}
		i--
	}

	eng.push(ref)
	eng.pushNumber(MakeInteger(int32(i + 1)))
	return nil
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// KEY reads one keystroke, in raw mode when input is a terminal.
func execKey(eng *Forth, b *Builtin) error {
	eng.out.Flush()

	var c byte
	var err error
	if eng.inFile != nil {
		c, err = termkey.ReadKey(eng.inFile)
	} else {
		c, err = eng.in.ReadByte()
	}
	if err != nil {
		return err
	}
	eng.pushInteger(int32(c))
	return nil
}

// EXPECT reads up to n characters into a ref, stopping at a newline.
func execExpect(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	ref, err := eng.popVarRef()
	if err != nil {
		return err
	}

	eng.out.Flush()
	for i := 0; i < int(n.Integer()); i++ {
		c, err := eng.in.ReadByte()
		if err != nil || c == '\n' {
			break
		}
		ref.setIndValue(i, newIntegerToken(int32(c)))
	}
	return nil
}

// queryMax bounds one QUERY read, per the classic 80-column input buffer.
const queryMax = 80

// QUERY reads a line from input and splices it into the current parse line,
// so the just-read characters become the next tokens.
func execQuery(eng *Forth, b *Builtin) error {
	eng.out.Flush()

	var text []byte
	for i := 0; i < queryMax; i++ {
		c, err := eng.in.ReadByte()
		if err != nil {
			break
		}
		if len(text) > 0 && c == '\n' {
			break
		}
		text = append(text, c)
	}

	eng.line.insert(string(text))
	return nil
}

// WORD reads characters up to (and consuming) the delimiter popped from
// the stack, stores them as a length-prefixed cell array in the shared
// WORD variable, and pushes that variable.
func execWord(eng *Forth, b *Builtin) error {
	wordVar := eng.wordVariable()

	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	if !eng.fillBuffer() {
		return errMissingChar
	}

	delim := byte(n.Integer())

	var text []byte
	text = append(text, eng.line.getChar())
	for eng.line.valid() && !eng.line.isChar(delim) {
		text = append(text, eng.line.getChar())
	}
	if eng.line.valid() && eng.line.isChar(delim) {
		eng.line.skipChar()
	}

	if eng.tracing() {
		eng.tracef("Word: %q", text)
	}

	if wordVar.Len() < len(text)+1 {
		wordVar.allot(len(text) + 1 - wordVar.Len())
	}
	wordVar.setIndValue(0, newIntegerToken(int32(len(text))))
	for i, c := range text {
		wordVar.setIndValue(i+1, newIntegerToken(int32(c)))
	}

	eng.push(wordVar)
	return nil
}

// DECIMAL resets BASE to ten.
func execDecimal(eng *Forth, b *Builtin) error {
	v, ok := eng.lookupVariable("BASE")
	if !ok {
		eng.defineVariableInteger("BASE", 10)
		return nil
	}
	v.setIntegerValue(10)
	return nil
}

// . pops and prints the top of the stack followed by a space.
func execPrint(eng *Forth, b *Builtin) error {
	t, err := eng.pop()
	if err != nil {
		return err
	}

	if v, ok := t.(*Variable); ok && v.isConstant() {
		if val := v.value(); val != nil {
			t = val
		}
	}

	t.print(eng, eng.out)
	io.WriteString(eng.out, " ")
	return nil
}

// PSTACK prints the whole data stack, bottom first.
func execPStack(eng *Forth, b *Builtin) error {
	for i, t := range eng.stack {
		if i > 0 {
			io.WriteString(eng.out, " ")
		}
		t.print(eng, eng.out)
	}
	return nil
}

// loadMod captures the filename following LOAD at parse time.
type loadMod struct {
	filename string
}

func (m *loadMod) clone() modifier { return &loadMod{filename: m.filename} }

func (m *loadMod) read(eng *Forth, b *Builtin) error {
	if !eng.fillBuffer() {
		return errMissingChar
	}
	w, ok := eng.readWord()
	if !ok {
		return errMissingWord
	}
	m.filename = w.value()
	return nil
}

func (m *loadMod) print(eng *Forth, w io.Writer, b *Builtin) {
	fmt.Fprintf(w, "LOAD %q", m.filename)
}

// LOAD parses its file as a source, synchronously and inline. Failures are
// reported by the file parse itself and do not fail the LOAD.
func execLoad(eng *Forth, b *Builtin) error {
	m := b.mod.(*loadMod)
	eng.ParseFile(m.filename)
	return nil
}
