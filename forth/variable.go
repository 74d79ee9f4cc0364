package forth

import (
	"fmt"
	"io"
)

// varBase is the common face of Variable and Ref: an indexable run of cells
// with a synthetic address used for ordering comparisons.
type varBase interface {
	Token

	Name() string
	ind() int
	setInd(ind int)
	value() Token
	setValue(t Token) bool
	indValue(ind int) Token
	setIndValue(ind int, t Token) bool
	Len() int
	isConstant() bool
	addr() int64
	indexVar(ind int) *Ref
}

// Variable is a named owned array of cells with a current index. Variables
// live in the dictionary and are shared; they are not duplicated on DUP.
type Variable struct {
	name     string
	cells    []Token
	index    int
	constant bool

	// action body attached by DOES>, run whenever the variable is pushed
	// by name.
	actions []Token

	// id orders variables for ref comparisons. Object identity has no
	// portable meaning, so each variable takes the next slot of a
	// session-wide counter at definition time.
	id int64
}

func (v *Variable) kind() Kind { return KindVar }

func (v *Variable) Name() string { return v.name }

func (v *Variable) ind() int       { return v.index }
func (v *Variable) setInd(ind int) { v.index = ind }

func (v *Variable) value() Token { return v.indValue(v.index) }

func (v *Variable) setValue(t Token) bool { return v.setIndValue(v.index, t) }

func (v *Variable) indValue(ind int) Token {
	if ind >= 0 && ind < len(v.cells) {
		return v.cells[ind]
	}
	return nil
}

func (v *Variable) setIndValue(ind int, t Token) bool {
	if ind < 0 || ind >= len(v.cells) {
		return false
	}
	v.cells[ind] = t
	return true
}

// Len is the count of cells at or after the current index.
func (v *Variable) Len() int { return len(v.cells) - v.index }

func (v *Variable) isConstant() bool { return v.constant }

func (v *Variable) setConstant(constant bool) { v.constant = constant }

// addr spaces variable identities far enough apart that in-bounds offsets
// never collide across variables.
func (v *Variable) addr() int64 { return v.id + int64(v.index) }

func (v *Variable) indexVar(ind int) *Ref {
	return &Ref{v: v, index: ind + v.index}
}

func (v *Variable) allot(n int) {
	for i := 0; i < n; i++ {
		v.addValue(newIntegerToken(0))
	}
}

func (v *Variable) addValue(t Token) {
	v.cells = append(v.cells, t)
}

func (v *Variable) setIntegerValue(i int32) {
	v.setValue(newIntegerToken(i))
}

func (v *Variable) integerValue() (int32, bool) {
	nt, ok := v.value().(*NumberToken)
	if !ok {
		return 0, false
	}
	return nt.Number().Integer(), true
}

func (v *Variable) setActions(actions []Token) { v.actions = actions }

// runActions executes the DOES> body, if any.
func (v *Variable) runActions(eng *Forth) error {
	if len(v.actions) == 0 {
		return nil
	}
	if eng.tracing() {
		eng.traceTokens("does>", v.actions)
	}
	for _, t := range v.actions {
		if err := eng.execToken(t); err != nil {
			return err
		}
	}
	return nil
}

func (v *Variable) print(eng *Forth, w io.Writer) {
	if v.constant {
		if val := v.value(); val != nil {
			val.print(eng, w)
			return
		}
	}
	fmt.Fprintf(w, "$%s", v.name)
}

// Ref is a non-owning cursor into a Variable plus an offset. The offset may
// run outside the variable's cells; only reads and writes through it fail.
// Refs are mutable tokens: DUP clones the cursor, both clones share cells.
type Ref struct {
	v     varBase
	index int
}

func (r *Ref) kind() Kind { return KindVar }

func (r *Ref) dup() Token { return &Ref{v: r.v, index: r.index} }

func (r *Ref) Name() string { return r.v.Name() }

func (r *Ref) ind() int       { return r.index }
func (r *Ref) setInd(ind int) { r.index = ind }

func (r *Ref) value() Token { return r.v.indValue(r.index) }

func (r *Ref) setValue(t Token) bool { return r.v.setIndValue(r.index, t) }

func (r *Ref) indValue(ind int) Token { return r.v.indValue(r.index + ind) }

func (r *Ref) setIndValue(ind int, t Token) bool { return r.v.setIndValue(r.index+ind, t) }

func (r *Ref) Len() int { return r.v.Len() - r.index }

func (r *Ref) isConstant() bool { return false }

func (r *Ref) addr() int64 { return r.v.addr() + int64(r.index) }

func (r *Ref) indexVar(ind int) *Ref {
	return r.v.indexVar(ind + r.index)
}

func (r *Ref) print(eng *Forth, w io.Writer) {
	r.v.print(eng, w)
	fmt.Fprintf(w, "[%d]", r.index)
}

// isVarRef reports any non-constant variable-like token; a Variable pushed
// by name addresses its current cell just as a Ref does.
func isVarRef(t Token) bool {
	vb, ok := t.(varBase)
	return ok && !vb.isConstant()
}
