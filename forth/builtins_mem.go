package forth

import "io"

// Memory words operate through variable refs; a Variable pushed by name
// addresses its current cell directly.

// @ fetches the addressed cell onto the data stack.
func execFetch(eng *Forth, b *Builtin) error {
	t, err := eng.pop()
	if err != nil {
		return errStackUnderflow
	}
	if !isVarRef(t) {
		return errNotAVariable
	}
	ref := t.(varBase)

	val := ref.value()
	if val == nil {
		return errInvalidVariable
	}
	eng.stack = append(eng.stack, val)

	if eng.tracing() {
		eng.tracef("Fetch %s = %s", eng.tokenString(t), eng.tokenString(val))
	}
	return nil
}

// ! stores the second-on-stack token through the ref on top.
func execStore(eng *Forth, b *Builtin) error {
	n := len(eng.stack)
	if n < 2 {
		return errStackUnderflow
	}
	ref, val := eng.stack[n-1], eng.stack[n-2]
	eng.stack = eng.stack[:n-2]

	if !isVarRef(ref) {
		return errNotAVariable
	}
	vb := ref.(varBase)
	if !vb.setValue(val) {
		return errInvalidVariable
	}

	if eng.tracing() {
		eng.tracef("Store %s = %s", eng.tokenString(ref), eng.tokenString(val))
	}
	return nil
}

// ? fetches and prints the addressed cell.
func execPrintFetch(eng *Forth, b *Builtin) error {
	ref, err := eng.popVarRef()
	if err != nil {
		return err
	}
	val := ref.value()
	if val == nil {
		return errInvalidVariable
	}
	val.print(eng, eng.out)
	io.WriteString(eng.out, " ")
	return nil
}

// +! adds a number into a variable's current cell.
func execAddStore(eng *Forth, b *Builtin) error {
	v, err := eng.popVariable()
	if err != nil {
		return err
	}
	n, err := eng.popNumber()
	if err != nil {
		return err
	}

	val := v.value()
	if val == nil {
		return errInvalidVariable
	}
	nt, ok := val.(*NumberToken)
	if !ok {
		return errVarMustBeNumber
	}
	v.setValue(newNumberToken(Plus(nt.Number(), n)))

	if eng.tracing() {
		eng.tracef("Set %s = %s", v.Name(), eng.tokenString(newNumberToken(n)))
	}
	return nil
}

// MOVE copies n cells from the source ref to the destination ref.
func execMove(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	dst, err := eng.popVarRef()
	if err != nil {
		return err
	}
	src, err := eng.popVarRef()
	if err != nil {
		return err
	}

	for i := 0; i < int(n.Integer()); i++ {
		dst.setIndValue(i, src.indValue(i))
	}
	return nil
}

// FILL stores one token into n cells of a ref.
func execFill(eng *Forth, b *Builtin) error {
	t, err := eng.pop()
	if err != nil {
		return err
	}
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	ref, err := eng.popVarRef()
	if err != nil {
		return err
	}

	for i := 0; i < int(n.Integer()); i++ {
		ref.setIndValue(i, t)
	}
	return nil
}
