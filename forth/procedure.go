package forth

import (
	"fmt"
	"io"
)

// Procedure is a user-defined named sequence of tokens built by `:` ... `;`.
type Procedure struct {
	name   string
	tokens []Token
}

func (p *Procedure) kind() Kind { return KindProcedure }

func (p *Procedure) Name() string { return p.name }

func (p *Procedure) body() []Token { return p.tokens }

func (p *Procedure) exec(eng *Forth) error {
	for _, t := range p.tokens {
		if err := eng.execToken(t); err != nil {
			return err
		}
	}
	return nil
}

func (p *Procedure) print(eng *Forth, w io.Writer) {
	fmt.Fprintf(w, ": %s ", p.name)
	for _, t := range p.tokens {
		t.print(eng, w)
		io.WriteString(w, " ")
	}
	io.WriteString(w, ";")
}
