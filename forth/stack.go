package forth

// Data stack primitives. The return and execution stacks are plain slices
// on the session, manipulated directly by the words that own them.

func (eng *Forth) push(t Token) {
	if eng.tracing() {
		eng.tracef("Push: %s", eng.tokenString(t))
	}
	eng.stack = append(eng.stack, t)
}

// pushDup pushes a copy of t when t is mutable, so that later writes
// through the copy do not show through the original.
func (eng *Forth) pushDup(t Token) {
	eng.push(dupToken(t))
}

func (eng *Forth) pushBoolean(b bool)  { eng.push(Boolean(b)) }
func (eng *Forth) pushInteger(i int32) { eng.push(newIntegerToken(i)) }
func (eng *Forth) pushNumber(n Number) { eng.push(newNumberToken(n)) }

// PushBoolean pushes a boolean token; part of the embedder API.
func (eng *Forth) PushBoolean(b bool) { eng.pushBoolean(b) }

// PushInteger pushes an integer token; part of the embedder API.
func (eng *Forth) PushInteger(i int32) { eng.pushInteger(i) }

// PushNumber pushes a number token; part of the embedder API.
func (eng *Forth) PushNumber(n Number) { eng.pushNumber(n) }

// Push pushes any token; part of the embedder API.
func (eng *Forth) Push(t Token) { eng.push(t) }

// Depth reports the data stack depth.
func (eng *Forth) Depth() int { return len(eng.stack) }

func (eng *Forth) peek() (Token, error) {
	if len(eng.stack) == 0 {
		return nil, errStackEmpty
	}
	t := eng.stack[len(eng.stack)-1]
	if eng.tracing() {
		eng.tracef("Peek: %s", eng.tokenString(t))
	}
	return t, nil
}

// peekN returns the nth token from the top, 1-indexed, leaving it in place.
func (eng *Forth) peekN(n int) (Token, error) {
	if n <= 0 {
		return nil, errInvalidIndex
	}
	if n > len(eng.stack) {
		return nil, errStackTooSmall
	}
	t := eng.stack[len(eng.stack)-n]
	if eng.tracing() {
		eng.tracef("Peek(%d): %s", n, eng.tokenString(t))
	}
	return t, nil
}

func (eng *Forth) pop() (Token, error) {
	if len(eng.stack) == 0 {
		return nil, errStackEmpty
	}
	i := len(eng.stack) - 1
	t := eng.stack[i]
	eng.stack = eng.stack[:i]
	if eng.tracing() {
		eng.tracef("Pop: %s", eng.tokenString(t))
	}
	return t, nil
}

// popN removes the nth token from the top, 1-indexed, closing the gap.
func (eng *Forth) popN(n int) (Token, error) {
	if n <= 0 {
		return nil, errInvalidIndex
	}
	if n > len(eng.stack) {
		return nil, errStackTooSmall
	}
	i := len(eng.stack) - n
	t := eng.stack[i]
	eng.stack = append(eng.stack[:i], eng.stack[i+1:]...)
	if eng.tracing() {
		eng.tracef("Pop(%d): %s", n, eng.tokenString(t))
	}
	return t, nil
}

func (eng *Forth) pop2() (t1, t2 Token, err error) {
	if t2, err = eng.pop(); err != nil {
		return
	}
	t1, err = eng.pop()
	return
}

func (eng *Forth) pop3() (t1, t2, t3 Token, err error) {
	if t3, err = eng.pop(); err != nil {
		return
	}
	if t2, err = eng.pop(); err != nil {
		return
	}
	t1, err = eng.pop()
	return
}

// Pop removes and returns the top token; part of the embedder API.
func (eng *Forth) Pop() (Token, error) { return eng.pop() }

func (eng *Forth) popBoolean() (bool, error) {
	t, err := eng.pop()
	if err != nil {
		return false, err
	}
	switch v := t.(type) {
	case *NumberToken:
		return v.Number().Integer() != 0, nil
	case Boolean:
		return bool(v), nil
	}
	return false, errMustBeIntOrBool
}

// tokenToNumber unwraps a number token, resolving a constant variable to
// its stored value first.
func tokenToNumber(t Token) (Number, error) {
	if vb, ok := t.(varBase); ok && vb.isConstant() {
		if val := vb.value(); val != nil {
			t = val
		}
	}
	nt, ok := t.(*NumberToken)
	if !ok {
		return Number{}, errMustBeNumber
	}
	return nt.Number(), nil
}

func (eng *Forth) popNumber() (Number, error) {
	t, err := eng.pop()
	if err != nil {
		return Number{}, err
	}
	return tokenToNumber(t)
}

// PopNumber pops a number; part of the embedder API.
func (eng *Forth) PopNumber() (Number, error) { return eng.popNumber() }

func (eng *Forth) popNumbers2() (n1, n2 Number, err error) {
	if n2, err = eng.popNumber(); err != nil {
		return
	}
	n1, err = eng.popNumber()
	return
}

func (eng *Forth) popNumbers3() (n1, n2, n3 Number, err error) {
	if n3, err = eng.popNumber(); err != nil {
		return
	}
	if n2, err = eng.popNumber(); err != nil {
		return
	}
	n1, err = eng.popNumber()
	return
}

// popBoolOrNumber admits booleans where the logical words need them.
func (eng *Forth) popBoolOrNumber() (Number, error) {
	t, err := eng.pop()
	if err != nil {
		return Number{}, err
	}
	if vb, ok := t.(varBase); ok && vb.isConstant() {
		if val := vb.value(); val != nil {
			t = val
		}
	}
	switch v := t.(type) {
	case *NumberToken:
		return v.Number(), nil
	case Boolean:
		return MakeBoolean(bool(v)), nil
	}
	return Number{}, errMustBeIntOrBool
}

func (eng *Forth) popBoolOrNumbers2() (n1, n2 Number, err error) {
	if n2, err = eng.popBoolOrNumber(); err != nil {
		return
	}
	n1, err = eng.popBoolOrNumber()
	return
}

func (eng *Forth) popVarBase() (varBase, error) {
	t, err := eng.pop()
	if err != nil {
		return nil, err
	}
	vb, ok := t.(varBase)
	if !ok {
		return nil, errMustBeVarBase
	}
	return vb, nil
}

// popVarRef accepts any non-constant variable-like token: a Ref, or a
// Variable addressing its current cell.
func (eng *Forth) popVarRef() (varBase, error) {
	t, err := eng.pop()
	if err != nil {
		return nil, err
	}
	if !isVarRef(t) {
		return nil, errMustBeVarRef
	}
	return t.(varBase), nil
}

// PopRef pops a variable reference; part of the embedder API. The returned
// Ref addresses the popped cursor even when a Variable proper was on top.
func (eng *Forth) PopRef() (*Ref, error) {
	vb, err := eng.popVarRef()
	if err != nil {
		return nil, err
	}
	if r, ok := vb.(*Ref); ok {
		return r, nil
	}
	return vb.indexVar(0), nil
}

func (eng *Forth) popVariable() (*Variable, error) {
	t, err := eng.pop()
	if err != nil {
		return nil, err
	}
	v, ok := t.(*Variable)
	if !ok {
		return nil, errMustBeVariable
	}
	return v, nil
}

func (eng *Forth) popProcedure() (*Procedure, error) {
	t, err := eng.pop()
	if err != nil {
		return nil, err
	}
	p, ok := t.(*Procedure)
	if !ok {
		return nil, errMustBeProcedure
	}
	return p, nil
}

func (eng *Forth) clearStack()     { eng.stack = eng.stack[:0] }
func (eng *Forth) clearRetStack()  { eng.rstack = eng.rstack[:0] }
func (eng *Forth) clearExecStack() { eng.xstack = eng.xstack[:0] }

// cmpOp pops two numbers and yields the sign of their difference.
func (eng *Forth) cmpOp() (int, error) {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return 0, err
	}
	return Cmp(n1, n2), nil
}

// ucmpOp compares as unsigned 32-bit integers.
func (eng *Forth) ucmpOp() (int, error) {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return 0, err
	}
	u1, u2 := uint32(n1.Integer()), uint32(n2.Integer())
	switch {
	case u1 > u2:
		return 1, nil
	case u1 < u2:
		return -1, nil
	}
	return 0, nil
}
