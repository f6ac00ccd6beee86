package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/evaluator"
	"github.com/quill-lang/quill/internal/history"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/native"
	"github.com/quill-lang/quill/internal/parser"
	"github.com/quill-lang/quill/internal/pipeline"
	"github.com/quill-lang/quill/internal/prettyprinter"
	"github.com/quill-lang/quill/internal/utils"
)

var (
	dumpTokens = flag.Bool("tokens", false, "print the token stream and exit")
	dumpAst    = flag.Bool("ast", false, "print the parsed AST and exit")
	trace      = flag.Bool("trace", false, "print a per-run trace line to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: quill [flags] [file%s]\n", config.SourceFileExt)
		fmt.Fprintf(os.Stderr, "With no file, quill starts a REPL.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	sourcePath := flag.Arg(0)
	if sourcePath != "" {
		sourcePath = utils.ResolveSourcePath(sourcePath)
	}
	opts, err := config.FindOptions(sourcePath)
	if err != nil {
		fatal(nil, err)
	}
	if *trace {
		opts.Trace = true
	}

	if sourcePath == "" {
		runRepl(opts)
		return
	}
	runFile(sourcePath, opts)
}

func runFile(path string, opts *config.Options) {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal(opts, err)
	}

	started := time.Now()
	stages := []pipeline.Processor{lexer.Processor{}, parser.Processor{}}
	if !*dumpTokens && !*dumpAst {
		stages = append(stages, evaluator.Processor{Scope: native.NewScope(os.Stdout)})
	}
	ctx := pipeline.New(stages...).Run(pipeline.NewContext(path, string(data)))
	if ctx.Err != nil {
		fatal(opts, ctx.Err)
	}

	if *dumpTokens {
		for _, tok := range ctx.Tokens {
			fmt.Printf("%s %q\n", tok.Type, tok.Literal)
		}
		return
	}
	if *dumpAst {
		fmt.Println(prettyprinter.Print(ctx.Root))
		return
	}
	if opts.Trace {
		fmt.Fprintf(os.Stderr, "trace: run=%s script=%s elapsed=%s\n",
			ctx.RunID, utils.ScriptName(path), time.Since(started))
	}
}

func runRepl(opts *config.Options) {
	historyPath := opts.HistoryFile
	if historyPath == "" {
		historyPath = history.DefaultPath()
	}
	store, err := history.Open(historyPath)
	if err != nil {
		// The REPL works without history; say so and move on.
		fmt.Fprintln(os.Stderr, err)
		store = nil
	} else {
		defer store.Close()
	}

	// One scope and session id for the whole session, so definitions
	// persist across lines.
	session := pipeline.NewContext("", "")
	eval := evaluator.New(native.NewScope(os.Stdout))

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if store != nil {
			if err := store.Append(session.RunID, line); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}

		ctx := pipeline.New(lexer.Processor{}, parser.Processor{}).Run(pipeline.NewContext("", line))
		if ctx.Err != nil {
			report(opts, ctx.Err)
			continue
		}
		value, err := eval.Evaluate(ctx.Root)
		if err != nil {
			report(opts, err)
			continue
		}
		fmt.Println(value.Inspect())
	}
}

func report(opts *config.Options, err error) {
	msg := err.Error()
	if useColor(opts) {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, msg)
}

func fatal(opts *config.Options, err error) {
	report(opts, err)
	os.Exit(1)
}

func useColor(opts *config.Options) bool {
	if opts == nil {
		return false
	}
	switch opts.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}
