package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/forthlab/goforth/forth"
	"github.com/forthlab/goforth/internal/panicerr"
	"github.com/forthlab/goforth/strlib"
)

func main() {
	fs := flag.NewFlagSet("goforth", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "trace pushes, pops, execs, defines and forgets")
	noInit := fs.Bool("no_init", false, "skip reading $HOME/.CForth")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "goforth [-debug] [-no_init] [-h|-help] <filenames>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	err := panicerr.Recover("goforth", func() error {
		return run(*debug, *noInit, fs.Args())
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func run(debug, noInit bool, files []string) error {
	eng := forth.New(
		forth.WithInput(os.Stdin),
		forth.WithOutput(os.Stdout),
		forth.WithDebug(debug),
	)
	strlib.Register(eng)

	if !noInit {
		// profile errors are silent and non-fatal
		eng.Init()
	}

	if len(files) > 0 {
		for _, name := range files {
			if err := eng.ParseFile(name); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		return nil
	}

	return repl(eng)
}

func repl(eng *forth.Forth) error {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	for {
		text, err := rl.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(text) == "bye" {
			return nil
		}
		if text != "" {
			rl.AppendHistory(text)
		}

		if err := eng.ParseLine(text); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println("ok")
	}
}
