package forth

import (
	"fmt"
	"strings"
)

// Tracing mirrors every push, pop, peek, exec, define and forget to the
// trace sink. Token rendering under trace always uses decimal, whatever
// BASE holds, so a hex session still traces readably.

func (eng *Forth) tracing() bool { return eng.tracefn != nil }

func (eng *Forth) tracef(mess string, args ...interface{}) {
	if eng.tracefn != nil {
		eng.tracefn(mess, args...)
	}
}

func (eng *Forth) defaultTracef(mess string, args ...interface{}) {
	fmt.Fprintf(eng.out, mess, args...)
	fmt.Fprintln(eng.out)
}

// tokenString renders a token in decimal for trace output.
func (eng *Forth) tokenString(t Token) string {
	eng.ignoreBase = true
	defer func() { eng.ignoreBase = false }()

	var sb strings.Builder
	t.print(eng, &sb)
	return sb.String()
}

func (eng *Forth) traceTokens(mark string, tokens []Token) {
	if !eng.tracing() {
		return
	}
	var sb strings.Builder
	sb.WriteString(mark)
	for _, t := range tokens {
		sb.WriteByte(' ')
		sb.WriteString(eng.tokenString(t))
	}
	eng.tracef("%s", sb.String())
}

// traceStackEcho echoes the surviving data stack after a parsed source,
// matching the -debug behavior of the original driver.
func (eng *Forth) traceStackEcho() {
	if !eng.tracing() || len(eng.stack) == 0 {
		return
	}
	var sb strings.Builder
	for i, t := range eng.stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(eng.tokenString(t))
	}
	eng.tracef("%s", sb.String())
}
