package forth

// Stack manipulation words. DUP, OVER and PICK duplicate mutable tokens so
// that the copy's cursor moves independently of the original.

func execDup(eng *Forth, b *Builtin) error {
	t, err := eng.peek()
	if err != nil {
		return err
	}
	eng.pushDup(t)
	return nil
}

func execDrop(eng *Forth, b *Builtin) error {
	_, err := eng.pop()
	return err
}

func execSwap(eng *Forth, b *Builtin) error {
	n := len(eng.stack)
	if n < 2 {
		return errStackEmpty
	}
	eng.stack[n-1], eng.stack[n-2] = eng.stack[n-2], eng.stack[n-1]
	return nil
}

func execOver(eng *Forth, b *Builtin) error {
	n := len(eng.stack)
	if n < 2 {
		return errStackUnderflow
	}
	eng.pushDup(eng.stack[n-2])
	return nil
}

// ROT rotates the third token to the top: 1 2 3 -> 2 3 1.
func execRot(eng *Forth, b *Builtin) error {
	n := len(eng.stack)
	if n < 3 {
		return errStackUnderflow
	}
	t := eng.stack[n-3]
	eng.stack[n-3] = eng.stack[n-2]
	eng.stack[n-2] = eng.stack[n-1]
	eng.stack[n-1] = t
	return nil
}

// PICK copies the nth token from the top, 1-indexed.
func execPick(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	if !n.IsInteger() {
		return errMustBeInteger
	}
	t, err := eng.peekN(int(n.Integer()))
	if err != nil {
		return err
	}
	eng.pushDup(t)
	return nil
}

// ROLL removes the nth token from the top, 1-indexed, and pushes it.
func execRoll(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	if !n.IsInteger() {
		return errMustBeInteger
	}
	t, err := eng.popN(int(n.Integer()))
	if err != nil {
		return err
	}
	eng.push(t)
	return nil
}

// ?DUP duplicates the top of stack only when it is non-zero.
func execQDup(eng *Forth, b *Builtin) error {
	t, err := eng.peek()
	if err != nil {
		return err
	}
	n, err := tokenToNumber(t)
	if err != nil {
		return err
	}
	if n.Integer() != 0 {
		eng.pushDup(t)
	}
	return nil
}

func execDepth(eng *Forth, b *Builtin) error {
	eng.pushInteger(int32(len(eng.stack)))
	return nil
}

// >R parks the top of the data stack on the return stack.
func execToR(eng *Forth, b *Builtin) error {
	t, err := eng.pop()
	if err != nil {
		return err
	}
	eng.rstack = append(eng.rstack, t)
	return nil
}

// R> moves the top of the return stack back to the data stack.
func execFromR(eng *Forth, b *Builtin) error {
	n := len(eng.rstack)
	if n == 0 {
		return errStackEmpty
	}
	t := eng.rstack[n-1]
	eng.rstack = eng.rstack[:n-1]
	eng.push(t)
	return nil
}

// e@ copies the top of the return stack without removing it.
func execCopyR(eng *Forth, b *Builtin) error {
	n := len(eng.rstack)
	if n == 0 {
		return errStackEmpty
	}
	eng.push(eng.rstack[n-1])
	return nil
}
