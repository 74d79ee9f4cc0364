package forth

import "io"

// Kind discriminates the token variants carried on the stacks.
type Kind uint8

const (
	KindNone Kind = iota
	KindBoolean
	KindNumber
	KindBuiltin
	KindVar
	KindProcedure
)

// Token is the polymorphic value carried on the data, return and execution
// stacks. The set of implementations is closed: Boolean, *NumberToken,
// *Builtin, *Variable, *Ref and *Procedure.
type Token interface {
	kind() Kind

	// print renders the token for program output and tracing. Number
	// rendering consults the session's BASE, so printing needs the engine.
	print(eng *Forth, w io.Writer)
}

// executable tokens run when resolved in interpret mode; everything else is
// pushed.
type executable interface {
	exec(eng *Forth) error
}

// mutable tokens are duplicated by DUP/OVER/PICK so that independent cursor
// updates do not alias.
type mutable interface {
	dup() Token
}

// blockToken marks tokens that park themselves on the execution stack while
// running, so LEAVE can find the enclosing loop.
type blockToken interface {
	isBlock() bool
}

// nullToken marks tokens that compile to nothing (comments).
type nullToken interface {
	isNull() bool
}

func isExecutable(t Token) bool {
	_, ok := t.(executable)
	return ok
}

func isBlock(t Token) bool {
	if b, ok := t.(blockToken); ok {
		return b.isBlock()
	}
	return false
}

func isNull(t Token) bool {
	if n, ok := t.(nullToken); ok {
		return n.isNull()
	}
	return false
}

// dupToken clones mutable tokens and shares immutable ones.
func dupToken(t Token) Token {
	if m, ok := t.(mutable); ok {
		return m.dup()
	}
	return t
}

// Boolean is a bare truth value token.
type Boolean bool

func (b Boolean) kind() Kind { return KindBoolean }

func (b Boolean) print(eng *Forth, w io.Writer) {
	if b {
		io.WriteString(w, "TRUE")
	} else {
		io.WriteString(w, "FALSE")
	}
}

// NumberToken boxes a Number. It is mutable: DO duplicates its start token
// and advances the copy in place each iteration.
type NumberToken struct {
	n Number
}

func newNumberToken(n Number) *NumberToken { return &NumberToken{n: n} }

func newIntegerToken(i int32) *NumberToken { return &NumberToken{n: MakeInteger(i)} }

func (t *NumberToken) kind() Kind { return KindNumber }

func (t *NumberToken) Number() Number { return t.n }

func (t *NumberToken) dup() Token { return &NumberToken{n: t.n} }

func (t *NumberToken) inc(by Number) { t.n.Inc(by) }

func (t *NumberToken) print(eng *Forth, w io.Writer) { t.n.print(eng, w) }

// cmpTokens orders two tokens: numbers by value, variables and refs by
// synthetic address. Mixed kinds cannot be ordered.
func cmpTokens(t1, t2 Token, res *int) error {
	switch a := t1.(type) {
	case *NumberToken:
		b, ok := t2.(*NumberToken)
		if !ok {
			return errCmpUnsupported
		}
		*res = Cmp(a.n, b.n)
		return nil
	case varBase:
		b, ok := t2.(varBase)
		if !ok {
			return errCmpUnsupported
		}
		switch p1, p2 := a.addr(), b.addr(); {
		case p1 > p2:
			*res = 1
		case p1 < p2:
			*res = -1
		default:
			*res = 0
		}
		return nil
	}
	return errCmpUnsupported
}

// incToken advances a loop counter token: numbers by value, refs by offset.
func incToken(t Token, by Number) error {
	switch a := t.(type) {
	case *NumberToken:
		a.inc(by)
		return nil
	case varBase:
		a.setInd(a.ind() + int(by.Integer()))
		return nil
	}
	return errIncUnsupported
}
