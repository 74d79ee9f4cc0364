/*
Command goforth is an interactive interpreter and incremental compiler
for a Forth-style stack language.

Program text is read from files given on the command line, or from an
interactive prompt when no files are given. Words execute against a shared
data stack; defining words build variables, constants, arrays and named
procedures into session dictionaries. Control structures (DO/LOOP,
IF/ELSE/THEN, BEGIN/UNTIL, BEGIN/WHILE/REPEAT) are compiled by sub-readers
into token bodies replayed by the interpreter, and CREATE ... DOES> attaches
deferred action bodies to variables.

Usage:

	goforth [-debug] [-no_init] [-h|-help] [files...]

With -debug the engine traces each push, pop, peek, exec, define and
forget. With -no_init the personal profile ($HOME/.CForth) is not read at
startup. At the prompt, the word "bye" ends the session; every successfully
parsed line is answered with "ok".

Number literals are read and printed in the dynamic BASE (2-36), seeded to
ten and settable by programs:

	> 255 16 BASE ! .
	FF ok

The engine itself lives in the forth package; embedders can register extra
built-in words before parsing begins, as the strlib package does for its
counted-string words.
*/
package main
