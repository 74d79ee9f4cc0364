package forth

import "io"

// Control-structure words. Each carries a body populated by a compile-time
// sub-reader: the reader switches into compile state, accumulates resolved
// tokens until its terminator, and execution replays the stored body under
// the interpreter.

// doBody is the compiled state of one DO ... LOOP / +LOOP occurrence.
type doBody struct {
	tokens []Token
	hasInc bool
	leave  bool
}

func (d *doBody) clone() modifier {
	return &doBody{tokens: d.tokens, hasInc: d.hasInc}
}

func (d *doBody) read(eng *Forth, b *Builtin) error {
	restore := eng.pushParseState(compileState)
	defer restore()

	for {
		w, ok := eng.readWord()
		if !ok {
			return unterminatedError("DO")
		}
		if w.is("LOOP") {
			return nil
		}
		if w.is("+LOOP") {
			d.hasInc = true
			return nil
		}
		t, err := eng.parseWord(w)
		if err != nil {
			return err
		}
		addBlockToken(&d.tokens, t)
	}
}

func (d *doBody) print(eng *Forth, w io.Writer, b *Builtin) {
	io.WriteString(w, "DO ")
	for _, t := range d.tokens {
		t.print(eng, w)
		io.WriteString(w, " ")
	}
	if d.hasInc {
		io.WriteString(w, "+LOOP")
	} else {
		io.WriteString(w, "LOOP")
	}
}

// DO pops the end and start tokens, parks a duplicate of the start and the
// end on the return stack for I and J, and iterates the body until the
// counter crosses the bound in the loop's direction.
func execDo(eng *Forth, b *Builtin) error {
	d := b.mod.(*doBody)

	end, start, err := eng.pop2()
	if err != nil {
		return err
	}

	start = dupToken(start)
	eng.rstack = append(eng.rstack, start, end)

	if err := runDoLoop(eng, d, start, end); err != nil {
		return err
	}

	eng.rstack = eng.rstack[:len(eng.rstack)-2]
	return nil
}

func runDoLoop(eng *Forth, d *doBody, start, end Token) error {
	var cmp int
	if err := cmpTokens(end, start, &cmp); err != nil {
		return err
	}
	up := cmp > 0

	inc := MakeInteger(1)
	d.leave = false

	for {
		if err := cmpTokens(end, start, &cmp); err != nil {
			return err
		}
		if up {
			if cmp <= 0 {
				return nil
			}
		} else if cmp >= 0 {
			return nil
		}

		for _, t := range d.tokens {
			if err := eng.execToken(t); err != nil {
				return err
			}
			if d.leave {
				break
			}
		}
		if d.leave {
			return nil
		}

		if d.hasInc {
			n, err := eng.popNumber()
			if err != nil {
				return err
			}
			inc = n
		}
		if err := incToken(start, inc); err != nil {
			return err
		}
	}
}

// I pushes the innermost loop counter, second from the top of the return
// stack.
func execI(eng *Forth, b *Builtin) error {
	n := len(eng.rstack)
	if n < 2 {
		return errNotInDo
	}
	eng.push(eng.rstack[n-2])
	return nil
}

// J pushes the next outer loop counter, fourth from the top.
func execJ(eng *Forth, b *Builtin) error {
	n := len(eng.rstack)
	if n < 4 {
		return errNotInNestedDo
	}
	eng.push(eng.rstack[n-4])
	return nil
}

// LEAVE flags the nearest enclosing DO or BEGIN frame on the execution
// stack; the loop notices after the current token finishes.
func execLeave(eng *Forth, b *Builtin) error {
	for n := len(eng.xstack) - 1; n >= 0; n-- {
		blk, ok := eng.xstack[n].(*Builtin)
		if !ok {
			continue
		}
		switch m := blk.mod.(type) {
		case *doBody:
			m.leave = true
			return nil
		case *beginBody:
			m.leave = true
			return nil
		}
	}
	return errLeaveOutsideLoop
}

// ifBody is the compiled state of one IF ... ELSE ... THEN occurrence.
type ifBody struct {
	ifTokens   []Token
	elseTokens []Token
}

func (d *ifBody) clone() modifier {
	return &ifBody{ifTokens: d.ifTokens, elseTokens: d.elseTokens}
}

func (d *ifBody) read(eng *Forth, b *Builtin) error {
	restore := eng.pushParseState(compileState)
	defer restore()

	inElse := false
	for {
		w, ok := eng.readWord()
		if !ok {
			return unterminatedError("IF")
		}
		if w.is("ELSE") {
			inElse = true
			continue
		}
		if w.is("THEN") {
			return nil
		}
		t, err := eng.parseWord(w)
		if err != nil {
			return err
		}
		if inElse {
			addBlockToken(&d.elseTokens, t)
		} else {
			addBlockToken(&d.ifTokens, t)
		}
	}
}

func (d *ifBody) print(eng *Forth, w io.Writer, b *Builtin) {
	io.WriteString(w, "IF ")
	for _, t := range d.ifTokens {
		t.print(eng, w)
		io.WriteString(w, " ")
	}
	if len(d.elseTokens) > 0 {
		io.WriteString(w, "ELSE ")
		for _, t := range d.elseTokens {
			t.print(eng, w)
			io.WriteString(w, " ")
		}
	}
	io.WriteString(w, "THEN")
}

func execIf(eng *Forth, b *Builtin) error {
	d := b.mod.(*ifBody)

	cond, err := eng.popBoolean()
	if err != nil {
		return err
	}

	body := d.elseTokens
	if cond {
		body = d.ifTokens
	}
	for _, t := range body {
		if err := eng.execToken(t); err != nil {
			return err
		}
	}
	return nil
}

// beginBody is the compiled state of one BEGIN ... UNTIL or BEGIN ...
// WHILE ... REPEAT occurrence. For the WHILE form, whileTokens holds the
// pre-while part and tokens the post-while part.
type beginBody struct {
	tokens      []Token
	whileTokens []Token
	isUntil     bool
	isWhile     bool
	leave       bool
}

func (d *beginBody) clone() modifier {
	return &beginBody{
		tokens:      d.tokens,
		whileTokens: d.whileTokens,
		isUntil:     d.isUntil,
		isWhile:     d.isWhile,
	}
}

func (d *beginBody) read(eng *Forth, b *Builtin) error {
	restore := eng.pushParseState(compileState)
	defer restore()

	for {
		w, ok := eng.readWord()
		if !ok {
			return unterminatedError("BEGIN")
		}
		switch {
		case w.is("UNTIL"):
			d.isUntil = true
			d.isWhile = false
			return nil
		case w.is("REPEAT"):
			if !d.isWhile {
				return errMissingWhile
			}
			return nil
		case w.is("WHILE"):
			d.isUntil = false
			d.isWhile = true
			d.whileTokens = d.tokens
			d.tokens = nil
			continue
		}
		t, err := eng.parseWord(w)
		if err != nil {
			return err
		}
		addBlockToken(&d.tokens, t)
	}
}

func (d *beginBody) print(eng *Forth, w io.Writer, b *Builtin) {
	io.WriteString(w, "BEGIN ")
	if d.isUntil {
		for _, t := range d.tokens {
			t.print(eng, w)
			io.WriteString(w, " ")
		}
		io.WriteString(w, "UNTIL")
		return
	}
	for _, t := range d.whileTokens {
		t.print(eng, w)
		io.WriteString(w, " ")
	}
	io.WriteString(w, "WHILE ")
	for _, t := range d.tokens {
		t.print(eng, w)
		io.WriteString(w, " ")
	}
	io.WriteString(w, "REPEAT")
}

func execBegin(eng *Forth, b *Builtin) error {
	d := b.mod.(*beginBody)
	d.leave = false

	if d.isUntil {
		for {
			for _, t := range d.tokens {
				if err := eng.execToken(t); err != nil {
					return err
				}
				if d.leave {
					break
				}
			}
			if d.leave {
				return nil
			}

			done, err := eng.popBoolean()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}

	for {
		for _, t := range d.whileTokens {
			if err := eng.execToken(t); err != nil {
				return err
			}
			if d.leave {
				break
			}
		}
		if d.leave {
			return nil
		}

		done, err := eng.popBoolean()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		for _, t := range d.tokens {
			if err := eng.execToken(t); err != nil {
				return err
			}
			if d.leave {
				break
			}
		}
		if d.leave {
			return nil
		}
	}
}
