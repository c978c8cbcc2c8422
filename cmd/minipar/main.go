/*
File    : minipar/cmd/minipar/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the Minipar CLI front-end: flag parsing, file reading,
token/AST dump, and exit-code mapping. This front-end is an explicit
external collaborator of the CORE per spec.md §1, grounded on the
teacher's main/main.go dispatch-and-color style, with raw os.Args
switches replaced by github.com/spf13/pflag.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/config"
	"github.com/minipar-lang/minipar/internal/eval"
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/logging"
	"github.com/minipar-lang/minipar/internal/parser"
)

const (
	exitOK          = 0
	exitLexError    = 1
	exitParseError  = 2
	exitRuntimeErr  = 3
	exitUsageError  = 64
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	var (
		showHelp   = flag.BoolP("help", "h", false, "show usage")
		showTokens = flag.Bool("tok", false, "print the token stream and exit")
		showAST    = flag.Bool("ast", false, "print the AST and exit")
		verbose    = flag.BoolP("verbose", "v", false, "enable verbose interpreter tracing")
		rawMode    = flag.BoolP("raw", "r", false, "disable example auto-detection")
		configPath = flag.String("config", "", "optional YAML configuration file")
	)
	// pflag reads a single-dash word as a cluster of one-letter flags, so
	// the single-dash long forms are rewritten to their double-dash names.
	for i, a := range os.Args[1:] {
		if a == "--" {
			break
		}
		if a == "-tok" || a == "-ast" || a == "-config" {
			os.Args[i+1] = "-" + a
		}
	}
	flag.Parse()
	_ = rawMode // has no effect beyond disabling the absent auto-detection mode

	if *showHelp {
		printUsage()
		os.Exit(exitOK)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
			os.Exit(exitUsageError)
		}
		cfg = loaded
	}
	if *verbose {
		cfg.Verbose = true
	}
	log := logging.New(cfg.Verbose)
	defer log.Sync()

	args := flag.Args()
	if len(args) == 0 {
		startRepl(log)
		return
	}
	if len(args) > 1 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] expected a single source file path\n")
		os.Exit(exitUsageError)
	}

	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(exitUsageError)
	}

	if *showTokens {
		toks, lexErr := lexer.Tokenize(string(src))
		if lexErr != nil {
			redColor.Fprintf(os.Stderr, "[LEX ERROR] %v\n", lexErr)
			os.Exit(exitLexError)
		}
		fmt.Print(lexer.Dump(toks))
		os.Exit(exitOK)
	}

	if *showAST {
		module, perr := parser.Parse(string(src))
		if perr != nil {
			reportCompileError(perr)
		}
		fmt.Print(ast.Dump(module))
		os.Exit(exitOK)
	}

	runFile(string(src), log)
}

func printUsage() {
	cyanColor.Println("Minipar - a small parallel, socket-aware imperative language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  minipar [flags] <path>     Execute a Minipar source file")
	yellowColor.Println("  minipar                    Start the interactive REPL")
	cyanColor.Println("")
	cyanColor.Println("FLAGS:")
	flag.PrintDefaults()
}

// runFile mirrors the teacher's executeFileWithRecovery: lex, parse,
// evaluate, mapping each failure kind to its spec.md §6 exit code.
func runFile(src string, log *logging.Logger) {
	module, perr := parser.Parse(src)
	if perr != nil {
		reportCompileError(perr)
	}

	ev := eval.New()
	ev.SetWriter(os.Stdout)
	ev.Log = log
	if err := ev.Run(module); err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		os.Exit(exitRuntimeErr)
	}
	os.Exit(exitOK)
}

// reportCompileError prints a Lex/ParseError and exits with the
// matching code; it never returns.
func reportCompileError(err error) {
	if _, ok := err.(*lexer.LexError); ok {
		redColor.Fprintf(os.Stderr, "[LEX ERROR] %v\n", err)
		os.Exit(exitLexError)
	}
	redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
	os.Exit(exitParseError)
}
