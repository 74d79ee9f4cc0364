// Package strlib registers counted-string words with a forth session. It
// is written purely against the engine's embedder surface, the same way an
// external host registers its own primitives.
//
// The words store strings the way WORD does: a count cell followed by one
// character cell each.
//
//	3 STRING GREETING$          define a string variable
//	GREETING$ PUT$ hello        store the next source word into it
//	GREETING$ LEN$ .            5 ok
//	3 STRING OTHER$             a second string, still empty
//	GREETING$ OTHER$ $= .       FALSE ok
package strlib

import "github.com/forthlab/goforth/forth"

// Register adds the counted-string words to eng. Call before parsing
// begins.
func Register(eng *forth.Forth) {
	eng.Register("STRING", execString)
	eng.Register("PUT$", execPut)
	eng.Register("$=", execEqual)
	eng.Register("LEN$", execLen)
}

// n STRING name defines a string variable with room for an n-character
// counted string, and makes it current.
func execString(eng *forth.Forth) error {
	n, err := eng.PopNumber()
	if err != nil {
		return err
	}
	name, err := eng.ReadWord()
	if err != nil {
		return err
	}

	v := eng.DefineVariable(name)
	v.Allot(int(n.Integer()) + 1)
	eng.SetCurrent(v)
	return nil
}

// var PUT$ word stores the next source word into var as a counted string,
// growing the variable when the word is longer than its room.
func execPut(eng *forth.Forth) error {
	ref, err := eng.PopRef()
	if err != nil {
		return err
	}
	str, err := eng.ReadWord()
	if err != nil {
		return err
	}

	if ref.Len() < len(str)+1 {
		v, ok := ref.Variable()
		if !ok {
			return errBadString
		}
		v.Allot(len(str) + 1 - ref.Len())
	}

	ref.SetCell(0, forth.NewIntegerToken(int32(len(str))))
	for i := 0; i < len(str); i++ {
		ref.SetCell(i+1, forth.NewIntegerToken(int32(str[i])))
	}
	return nil
}

// a b $= pops two string refs and pushes whether their counted contents
// match.
func execEqual(eng *forth.Forth) error {
	ref2, err := eng.PopRef()
	if err != nil {
		return err
	}
	ref1, err := eng.PopRef()
	if err != nil {
		return err
	}

	s1, err := countedString(ref1)
	if err != nil {
		return err
	}
	s2, err := countedString(ref2)
	if err != nil {
		return err
	}

	eng.PushBoolean(s1 == s2)
	return nil
}

// var LEN$ pushes a counted string's length.
func execLen(eng *forth.Forth) error {
	ref, err := eng.PopRef()
	if err != nil {
		return err
	}
	n, err := countedLen(ref)
	if err != nil {
		return err
	}
	eng.PushInteger(n)
	return nil
}

func countedLen(ref *forth.Ref) (int32, error) {
	count := ref.Cell(0)
	if count == nil {
		return 0, errBadString
	}
	n, ok := forth.IntegerValue(count)
	if !ok {
		return 0, errBadString
	}
	return n, nil
}

func countedString(ref *forth.Ref) (string, error) {
	n, err := countedLen(ref)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, n)
	for i := 0; i < int(n); i++ {
		c, ok := forth.IntegerValue(ref.Cell(i + 1))
		if !ok {
			return "", errBadString
		}
		buf = append(buf, byte(c))
	}
	return string(buf), nil
}
