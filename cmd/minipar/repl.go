/*
File    : minipar/cmd/minipar/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Interactive REPL. Grounded on the teacher's repl/repl.go: a persistent
evaluator survives across lines, readline supplies history/editing, and
a per-line panic/recover reports the failure without exiting the
process (unlike file mode, which exits on first error).
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/minipar-lang/minipar/internal/eval"
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/logging"
	"github.com/minipar-lang/minipar/internal/parser"
)

const (
	replBanner = "Minipar REPL -- type 'exit' or Ctrl-D to quit"
	replPrompt = "minipar> "
)

func startRepl(log *logging.Logger) {
	cyanColor.Println(replBanner)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(exitUsageError)
	}
	defer rl.Close()

	ev := eval.New()
	ev.Log = log

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		evalLine(ev, line)
	}
}

// evalLine runs one line of input through the full pipeline, never
// letting a LexError/ParseError/RuntimeError escape to the caller.
func evalLine(ev *eval.Evaluator, line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Printf("[ERROR] %v\n", r)
		}
	}()

	module, perr := parser.Parse(line)
	if perr != nil {
		if _, ok := perr.(*lexer.LexError); ok {
			redColor.Printf("[LEX ERROR] %v\n", perr)
		} else {
			redColor.Printf("[PARSE ERROR] %v\n", perr)
		}
		return
	}

	ev.SetWriter(os.Stdout)
	if err := ev.Run(module); err != nil {
		redColor.Printf("[RUNTIME ERROR] %v\n", err)
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s/.minipar_history", home)
}
