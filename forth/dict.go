package forth

import "strings"

// Each name maps to a stack of definitions; lookup sees the most recent and
// FORGET peels one off, exposing any shadowed definition underneath.

func dictName(name string) string { return strings.ToUpper(name) }

// DefineVariable defines a fresh empty variable under name and returns it.
func (eng *Forth) DefineVariable(name string) *Variable {
	eng.varID += varAddrStride
	v := &Variable{name: dictName(name), id: eng.varID}
	eng.variables[v.name] = append(eng.variables[v.name], v)
	eng.tracef("Define Var: %s", v.name)
	return v
}

func (eng *Forth) defineVariableToken(name string, t Token) *Variable {
	v := eng.DefineVariable(name)
	v.addValue(t)
	return v
}

func (eng *Forth) defineVariableInteger(name string, i int32) *Variable {
	return eng.defineVariableToken(name, newIntegerToken(i))
}

func (eng *Forth) lookupVariable(name string) (*Variable, bool) {
	defs := eng.variables[dictName(name)]
	if len(defs) == 0 {
		return nil, false
	}
	return defs[len(defs)-1], true
}

func (eng *Forth) forgetVariable(name string) bool {
	key := dictName(name)
	defs := eng.variables[key]
	if len(defs) == 0 {
		return false
	}
	eng.variables[key] = defs[:len(defs)-1]
	eng.tracef("Forget Var: %s", key)
	return true
}

func (eng *Forth) defineProcedure(name string, tokens []Token) *Procedure {
	p := &Procedure{name: dictName(name), tokens: tokens}
	eng.procedures[p.name] = append(eng.procedures[p.name], p)
	if eng.tracing() {
		eng.tracef("Define Procedure %s", eng.tokenString(p))
	}
	return p
}

func (eng *Forth) lookupProcedure(name string) (*Procedure, bool) {
	defs := eng.procedures[dictName(name)]
	if len(defs) == 0 {
		return nil, false
	}
	return defs[len(defs)-1], true
}

func (eng *Forth) forgetProcedure(name string) bool {
	key := dictName(name)
	defs := eng.procedures[key]
	if len(defs) == 0 {
		return false
	}
	eng.procedures[key] = defs[:len(defs)-1]
	eng.tracef("Forget Procedure: %s", key)
	return true
}

// varAddrStride spaces variable identities so in-range cell offsets of
// distinct variables never compare equal.
const varAddrStride = 1 << 20

func (eng *Forth) lookupBuiltin(name string) (*Builtin, bool) {
	key := dictName(name)
	if b, ok := eng.userBuiltins[key]; ok {
		return b, true
	}
	b, ok := builtinTable()[key]
	return b, ok
}

// wordVariable is the shared scratch variable written by WORD and pushed by
// HERE, allocated on first use.
func (eng *Forth) wordVariable() *Variable {
	if eng.wordVar == nil {
		eng.varID += varAddrStride
		eng.wordVar = &Variable{name: "WORD", id: eng.varID}
	}
	return eng.wordVar
}
