package forth

// Embedder surface: the handful of accessors external built-ins need to
// move data between the stacks and variable cells. The PLOT-style words of
// a canvas host and the strlib counted-string words are both written
// against this.

// NewIntegerToken makes an integer token for storing into variable cells.
func NewIntegerToken(i int32) Token { return newIntegerToken(i) }

// NewNumberTokenOf boxes an arbitrary number as a token.
func NewNumberTokenOf(n Number) Token { return newNumberToken(n) }

// IntegerValue unwraps an integer-valued token.
func IntegerValue(t Token) (int32, bool) {
	nt, ok := t.(*NumberToken)
	if !ok {
		return 0, false
	}
	return nt.Number().Integer(), true
}

// SetCurrent makes v the session's current variable, the target of `,`,
// ALLOT and DOES>.
func (eng *Forth) SetCurrent(v *Variable) { eng.currentVar = v }

// Allot extends v with n integer-zero cells.
func (v *Variable) Allot(n int) { v.allot(n) }

// AddCell appends one cell to v.
func (v *Variable) AddCell(t Token) { v.addValue(t) }

// Cell reads the i'th cell relative to the ref's cursor; nil when out of
// range.
func (r *Ref) Cell(i int) Token { return r.indValue(i) }

// SetCell writes the i'th cell relative to the ref's cursor, reporting
// false when out of range.
func (r *Ref) SetCell(i int, t Token) bool { return r.setIndValue(i, t) }

// Variable digs out the owning variable beneath a chain of refs.
func (r *Ref) Variable() (*Variable, bool) {
	switch v := r.v.(type) {
	case *Variable:
		return v, true
	case *Ref:
		return v.Variable()
	}
	return nil, false
}
