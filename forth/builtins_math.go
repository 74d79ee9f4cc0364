package forth

// Comparison, arithmetic and logical words.

func execLess(eng *Forth, b *Builtin) error {
	cmp, err := eng.cmpOp()
	if err != nil {
		return err
	}
	eng.pushBoolean(cmp < 0)
	return nil
}

func execEqual(eng *Forth, b *Builtin) error {
	cmp, err := eng.cmpOp()
	if err != nil {
		return err
	}
	eng.pushBoolean(cmp == 0)
	return nil
}

func execGreater(eng *Forth, b *Builtin) error {
	cmp, err := eng.cmpOp()
	if err != nil {
		return err
	}
	eng.pushBoolean(cmp > 0)
	return nil
}

// U< compares as unsigned 32-bit integers.
func execULess(eng *Forth, b *Builtin) error {
	cmp, err := eng.ucmpOp()
	if err != nil {
		return err
	}
	eng.pushBoolean(cmp < 0)
	return nil
}

func execNot(eng *Forth, b *Builtin) error {
	n, err := eng.popBoolOrNumber()
	if err != nil {
		return err
	}
	eng.pushNumber(n.Not())
	return nil
}

// + is overloaded: an integer added to a variable ref yields a new ref with
// the offset advanced, either operand order.
func execPlus(eng *Forth, b *Builtin) error {
	return refAwareAddSub(eng, 1)
}

// - mirrors +, retreating the ref offset.
func execMinus(eng *Forth, b *Builtin) error {
	return refAwareAddSub(eng, -1)
}

func refAwareAddSub(eng *Forth, dir int32) error {
	n := len(eng.stack)
	if n < 2 {
		return errStackUnderflow
	}

	if isVarRef(eng.stack[n-2]) {
		num, err := eng.popNumber()
		if err != nil {
			return err
		}
		ref, err := eng.popVarRef()
		if err != nil {
			return err
		}
		eng.push(ref.indexVar(int(dir * num.Integer())))
		return nil
	}

	if isVarRef(eng.stack[n-1]) {
		ref, err := eng.popVarRef()
		if err != nil {
			return err
		}
		num, err := eng.popNumber()
		if err != nil {
			return err
		}
		eng.push(ref.indexVar(int(dir * num.Integer())))
		return nil
	}

	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return err
	}
	if dir > 0 {
		eng.pushNumber(Plus(n1, n2))
	} else {
		eng.pushNumber(Minus(n1, n2))
	}
	return nil
}

func execTimes(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return err
	}
	eng.pushNumber(Times(n1, n2))
	return nil
}

func execDivide(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return err
	}
	q, err := Divide(n1, n2)
	if err != nil {
		return err
	}
	eng.pushNumber(q)
	return nil
}

func execMod(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return err
	}
	m, err := Mod(n1, n2)
	if err != nil {
		return err
	}
	eng.pushNumber(m)
	return nil
}

// /MOD pushes the modulus then the quotient.
func execDivMod(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return err
	}
	m, err := Mod(n1, n2)
	if err != nil {
		return err
	}
	q, err := Divide(n1, n2)
	if err != nil {
		return err
	}
	eng.pushNumber(m)
	eng.pushNumber(q)
	return nil
}

// 1+ advances a number, or a variable ref's offset.
func execPlus1(eng *Forth, b *Builtin) error {
	return refAwareInc(eng, 1)
}

// 2+ advances by two.
func execPlus2(eng *Forth, b *Builtin) error {
	return refAwareInc(eng, 2)
}

func refAwareInc(eng *Forth, by int32) error {
	t, err := eng.pop()
	if err != nil {
		return errStackUnderflow
	}

	if isVarRef(t) {
		ref := t.(varBase)
		eng.push(ref.indexVar(int(by)))
		return nil
	}

	n, err := tokenToNumber(t)
	if err != nil {
		return err
	}
	eng.pushNumber(Plus(n, MakeInteger(by)))
	return nil
}

// */ multiplies the lower two and divides by the top, keeping the product
// wide through the intermediate.
func execMulDiv(eng *Forth, b *Builtin) error {
	n1, n2, n3, err := eng.popNumbers3()
	if err != nil {
		return err
	}
	if !n1.IsReal() && !n2.IsReal() && !n3.IsReal() {
		if n3.Integer() == 0 {
			return errDivByZero
		}
		p := int64(n1.Integer()) * int64(n2.Integer())
		eng.pushNumber(MakeInteger(int32(p / int64(n3.Integer()))))
		return nil
	}
	q, err := Divide(Times(n1, n2), n3)
	if err != nil {
		return err
	}
	eng.pushNumber(q)
	return nil
}

func execMax(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return err
	}
	eng.pushNumber(Max(n1, n2))
	return nil
}

func execMin(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popNumbers2()
	if err != nil {
		return err
	}
	eng.pushNumber(Min(n1, n2))
	return nil
}

func execAbs(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	eng.pushNumber(n.Abs())
	return nil
}

func execNegate(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	eng.pushNumber(n.Neg())
	return nil
}

func execAnd(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popBoolOrNumbers2()
	if err != nil {
		return err
	}
	eng.pushNumber(And(n1, n2))
	return nil
}

func execOr(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popBoolOrNumbers2()
	if err != nil {
		return err
	}
	eng.pushNumber(Or(n1, n2))
	return nil
}

func execXor(eng *Forth, b *Builtin) error {
	n1, n2, err := eng.popBoolOrNumbers2()
	if err != nil {
		return err
	}
	eng.pushNumber(Xor(n1, n2))
	return nil
}
