package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/vegasq/tabcat/internal/logging"
	"github.com/vegasq/tabcat/output"
	"github.com/vegasq/tabcat/query"
	"github.com/vegasq/tabcat/reader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// listFlag collects comma separated values; repeating the flag appends
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		*l = append(*l, v)
	}
	return nil
}

// globalFlags are accepted before the subcommand
type globalFlags struct {
	delimiter  string
	inferTypes bool
	logLevel   string
	logFormat  string
}

// showFlags are accepted by the show subcommand
type showFlags struct {
	opts     query.Options
	columns  listFlag
	filterBy listFlag
	schema   bool
	maxWidth int
	color    string
}

func newGlobalFlagSet(g *globalFlags, stderr io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("tabcat", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&g.delimiter, "delimiter", ",", "Field delimiter (single character, or \\t)")
	flags.BoolVar(&g.inferTypes, "infer-types", false, "Infer column types and right-align numeric columns")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from $"+logging.EnvLevel+", else warn)")
	flags.StringVar(&g.logFormat, "log-format", "text", "Log format: text, json")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tabcat [global options] show [options] <file>\n\n")
		fmt.Fprintf(stderr, "Work with delimited and parquet files in the shell.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(stderr, "Global options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  tabcat show data.csv\n")
		fmt.Fprintf(stderr, "  tabcat -delimiter ';' show -c name,age -sort-key age -desc data.csv\n")
		fmt.Fprintf(stderr, "  tabcat show -f '^a' -fc name -sr data.csv.gz\n")
		fmt.Fprintf(stderr, "  tabcat show -sort-key date -dformat '%%d/%%m/%%Y' data.csv\n")
		fmt.Fprintf(stderr, "  tabcat show -schema data.parquet\n")
	}
	return flags
}

func newShowFlagSet(s *showFlags, stderr io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.BoolVar(&s.opts.Pretty, "pretty", true, "Pretty table output (the only implemented mode)")
	flags.IntVar(&s.opts.Start, "start", 0, "First row position to show, after sorting (inclusive)")
	flags.IntVar(&s.opts.Start, "s", 0, "Shorthand for -start")
	flags.IntVar(&s.opts.End, "end", math.MaxInt, "Last row position to show, after sorting (inclusive)")
	flags.IntVar(&s.opts.End, "e", math.MaxInt, "Shorthand for -end")
	flags.IntVar(&s.opts.Head, "head", 0, "Show only the first N rows of the range")
	flags.IntVar(&s.opts.Tail, "tail", 0, "Show only the last N rows of the range")
	flags.StringVar(&s.opts.SortKey, "sort-key", "", "Column (name or index) to sort by")
	flags.StringVar(&s.opts.DateFormat, "dformat", "", "strftime pattern; sorts the sort key as datetime")
	flags.Var(&s.columns, "columns", "Columns to show, in order (names or indices, comma separated)")
	flags.Var(&s.columns, "c", "Shorthand for -columns")
	flags.StringVar(&s.opts.Filter, "filter", "", "Regular expression rows must match")
	flags.StringVar(&s.opts.Filter, "f", "", "Shorthand for -filter")
	flags.Var(&s.filterBy, "filter-cols", "Columns the filter is matched against (default all)")
	flags.Var(&s.filterBy, "fc", "Shorthand for -filter-cols")
	flags.BoolVar(&s.opts.RowNumbers, "show-row-nums", false, "Prepend each row's original position as an index column")
	flags.BoolVar(&s.opts.RowNumbers, "sr", false, "Shorthand for -show-row-nums")
	flags.BoolVar(&s.opts.Descending, "descending", false, "Sort in descending order")
	flags.BoolVar(&s.opts.Descending, "desc", false, "Shorthand for -descending")
	flags.BoolVar(&s.schema, "schema", false, "Show inferred column types instead of data")
	flags.IntVar(&s.maxWidth, "max-width", 0, "Truncate cells wider than N characters (0 = unlimited)")
	flags.StringVar(&s.color, "color", "auto", "Colour header cells: auto, always, never")
	return flags
}

// run executes the CLI and returns the process exit status
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var g globalFlags
	global := newGlobalFlagSet(&g, stderr)
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	level := g.logLevel
	if level == "" {
		level = os.Getenv(logging.EnvLevel)
	}
	logging.Setup(stderr, level, g.logFormat)

	delimiter, err := parseDelimiter(g.delimiter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if global.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: missing command\n\n")
		global.Usage()
		return 1
	}
	if cmd := global.Arg(0); cmd != "show" {
		fmt.Fprintf(stderr, "Error: unknown command '%s'\n", cmd)
		fmt.Fprintf(stderr, "Supported commands: show\n")
		return 1
	}

	s := showFlags{opts: query.DefaultOptions()}
	show := newShowFlagSet(&s, stderr)
	if err := show.Parse(global.Args()[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if show.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: missing file argument\n\n")
		global.Usage()
		return 1
	}
	filename := show.Arg(0)

	s.opts.Columns = s.columns
	s.opts.FilterCols = s.filterBy
	s.opts.InferTypes = g.inferTypes

	if s.maxWidth < 0 {
		fmt.Fprintf(stderr, "Error: -max-width must be non-negative, got %d\n", s.maxWidth)
		return 1
	}
	color, err := useColor(s.color, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Fail on configuration before touching the file
	if !s.schema {
		if err := s.opts.Validate(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	renderer, err := output.New(s.opts.Pretty, stdout, output.TableOptions{Color: color, MaxWidth: s.maxWidth})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	table, err := reader.ReadFiles(filename, reader.Options{Delimiter: delimiter, Stdin: stdin})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	var view *query.View
	if s.schema {
		view = query.Describe(table)
	} else {
		view, err = query.Run(table, s.opts)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			if errors.Is(err, query.ErrUnknownColumn) {
				printAvailableColumns(stderr, table.Header, s.opts.RowNumbers)
			}
			return 1
		}
	}

	if err := renderer.Render(view); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}
	return 0
}

// parseDelimiter accepts a single character or the escape \t
func parseDelimiter(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// useColor decides whether header styles are emitted as ANSI codes
func useColor(mode string, stdout io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unsupported color mode '%s' (supported: auto, always, never)", mode)
	}
}

// printAvailableColumns lists column references to help the user
func printAvailableColumns(w io.Writer, header query.Header, rowNumbers bool) {
	offset := 0
	if rowNumbers {
		fmt.Fprintf(w, "\nAvailable columns: 0=%s", query.IndexColumn)
		offset = 1
	} else {
		fmt.Fprintf(w, "\nAvailable columns: ")
	}
	for i, col := range header {
		if i > 0 || rowNumbers {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "%d=%s", i+offset, col)
	}
	fmt.Fprintf(w, "\n")
}
