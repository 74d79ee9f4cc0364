package forth

import (
	"io"
	"sort"

	"github.com/alecthomas/repr"
)

// Snapshot is a rendered view of session state: every token formatted in
// decimal, dictionaries keyed by name. Dump renders it on request; the
// -debug trace does not call it.
type Snapshot struct {
	Stack      []string
	RetStack   []string
	ExecDepth  int
	Variables  map[string][]string
	Procedures []string
	Current    string
}

func (eng *Forth) snapshot() Snapshot {
	snap := Snapshot{
		ExecDepth: len(eng.xstack),
		Variables: make(map[string][]string),
	}

	for _, t := range eng.stack {
		snap.Stack = append(snap.Stack, eng.tokenString(t))
	}
	for _, t := range eng.rstack {
		snap.RetStack = append(snap.RetStack, eng.tokenString(t))
	}

	for name, defs := range eng.variables {
		if len(defs) == 0 {
			continue
		}
		v := defs[len(defs)-1]
		cells := make([]string, 0, len(v.cells))
		for _, cell := range v.cells {
			cells = append(cells, eng.tokenString(cell))
		}
		snap.Variables[name] = cells
	}

	for _, defs := range eng.procedures {
		if len(defs) == 0 {
			continue
		}
		snap.Procedures = append(snap.Procedures, eng.tokenString(defs[len(defs)-1]))
	}
	sort.Strings(snap.Procedures)

	if eng.currentVar != nil {
		snap.Current = eng.currentVar.Name()
	}
	return snap
}

// Dump writes a snapshot of the session state.
func (eng *Forth) Dump(w io.Writer) {
	repr.New(w, repr.Indent("  ")).Println(eng.snapshot())
}
