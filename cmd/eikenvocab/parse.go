package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Option structs for subcommands that have flags
type CountOptions struct {
	DocPath   string
	VocabPath string
	Annotator string
	Batch     int
	NProc     int
	Edges     bool
	Strict    bool
	NoColor   bool
	Format    string
	Limit     int
	Save      string
}

type DocOptions struct {
	Start   int
	Count   int
	DocPath string
}

type SentenceOptions struct {
	DocPath string
	Offset  *int // nil = not set
}

type StatOptions struct {
	DocPath string
}

type ImportOptions struct {
	From string
	To   string
}

type ExportOptions struct {
	From string
	To   string
}

type QueryOptions struct {
	VocabPath string
	NoColor   bool
	Limit     int
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// optionalInt implements flag.Value for optional integer flags
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("eikenvocab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseFlagSet(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseCountArgs(args []string, ui UI) (CountOptions, string, error) {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := CountOptions{Format: "text"}
	fs.StringVar(&opts.DocPath, "doc-path", os.Getenv("EIKEN_DOC_PATH"), "Path to annotated docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", os.Getenv("EIKEN_DOC_PATH"), "alias for -doc-path")
	fs.StringVar(&opts.VocabPath, "vocab-path", os.Getenv("EIKEN_VOCAB_PATH"), "Path to vocab results directory or SQLite file")
	fs.StringVar(&opts.Annotator, "annotator", "", "Annotator for raw text: \"shallow\" or the URL of an annotation server")
	fs.IntVar(&opts.Batch, "batch", 0, "Texts per annotator call")
	fs.IntVar(&opts.NProc, "n-process", 0, "Number of parallel scan workers")
	fs.BoolVar(&opts.Edges, "edges", false, "Also count every dependency edge into the phrase table (diagnostic)")
	fs.BoolVar(&opts.Strict, "strict", false, "Abort on the first malformed sentence instead of skipping it")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colors")
	fs.Var(&enumFlag{allowed: []string{"text", "json"}, value: &opts.Format}, "format", "Output format: text or json")
	fs.IntVar(&opts.Limit, "limit", 0, "Max rows per table in text output (0 = all)")
	fs.StringVar(&opts.Save, "save", "", "Persist the result under this run name")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s count [options] [text_file]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Count unigram and collocation frequencies over a corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Without a text file, counts the annotated docs under -doc-path.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  With a text file, texts are paragraphs and -annotator is required.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("count command accepts at most one argument")
	}

	textPath := fs.Arg(0)
	if textPath == "" && opts.DocPath == "" {
		return opts, "", errors.New("doc path must be specified via -d or EIKEN_DOC_PATH when no text file is given")
	}
	if textPath != "" && opts.Annotator == "" {
		return opts, "", errors.New("-annotator is required when counting raw text")
	}
	if opts.Save != "" && opts.VocabPath == "" {
		return opts, "", errors.New("vocab path must be specified via -vocab-path or EIKEN_VOCAB_PATH when saving")
	}

	return opts, textPath, nil
}

func parseDocArgs(args []string, ui UI) (DocOptions, string, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DocOptions
	fs.IntVar(&opts.Start, "start", 0, "Index of the first sentence to show")
	fs.IntVar(&opts.Count, "n", -1, "Number of sentences to show (-1 for all)")
	fs.StringVar(&opts.DocPath, "doc-path", os.Getenv("EIKEN_DOC_PATH"), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", os.Getenv("EIKEN_DOC_PATH"), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] [doc_id]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Without argument, list all docs. With a doc id, show its sentences.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("doc command accepts at most one argument")
	}

	if opts.DocPath == "" {
		return opts, "", errors.New("doc path must be specified via -d or EIKEN_DOC_PATH")
	}

	return opts, fs.Arg(0), nil
}

func parseSentenceArgs(args []string, ui UI) (SentenceOptions, int, int, error) {
	fs := flag.NewFlagSet("sentence", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SentenceOptions
	var offset optionalInt
	fs.StringVar(&opts.DocPath, "doc-path", os.Getenv("EIKEN_DOC_PATH"), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", os.Getenv("EIKEN_DOC_PATH"), "alias for -doc-path")
	fs.Var(&offset, "offset", "Index of the first token to dump")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s sentence [options] <doc_id> <sentence_id>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show the tokens of one sentence with POS, head and dependency data.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, 0, 0, err
	}

	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, 0, 0, errors.New("sentence command needs <doc_id> <sentence_id>")
	}

	docId, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return opts, 0, 0, fmt.Errorf("doc id: %w", err)
	}
	sentId, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return opts, 0, 0, fmt.Errorf("sentence id: %w", err)
	}

	if opts.DocPath == "" {
		return opts, 0, 0, errors.New("doc path must be specified via -d or EIKEN_DOC_PATH")
	}

	opts.Offset = offset.value
	return opts, docId, sentId, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, *int, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.DocPath, "doc-path", os.Getenv("EIKEN_DOC_PATH"), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", os.Getenv("EIKEN_DOC_PATH"), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] [doc_id]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Corpus statistics, over all docs or a single one.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("stat command accepts at most one argument")
	}

	if opts.DocPath == "" {
		return opts, nil, errors.New("doc path must be specified via -d or EIKEN_DOC_PATH")
	}

	var docId *int
	if fs.NArg() == 1 {
		id, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return opts, nil, fmt.Errorf("doc id: %w", err)
		}
		docId = &id
	}

	return opts, docId, nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	fs.StringVar(&opts.From, "from", "", "Source docs directory")
	fs.StringVar(&opts.To, "to", "", "Destination SQLite file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import -from <dir> -to <db>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Import annotated JSON docs into a SQLite database.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("both -from and -to are required")
	}

	return opts, nil
}

func parseExportArgs(args []string, ui UI) (ExportOptions, string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportOptions
	fs.StringVar(&opts.From, "from", "", "Source vocab results directory")
	fs.StringVar(&opts.To, "to", "", "Destination SQLite file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export -from <dir> -to <db> [run_name]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Export saved counting runs into a SQLite database, all of them\n")
		_, _ = fmt.Fprintf(fs.Output(), "  or a single named run.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("export command accepts at most one argument")
	}

	if opts.From == "" || opts.To == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("both -from and -to are required")
	}

	return opts, fs.Arg(0), nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, string, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := QueryOptions{Limit: 20}
	fs.StringVar(&opts.VocabPath, "vocab-path", os.Getenv("EIKEN_VOCAB_PATH"), "Path to vocab results directory or SQLite file")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colors")
	fs.IntVar(&opts.Limit, "limit", 20, "Max rows shown per lookup")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options] [run_name]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Without argument, list saved runs. With a run name, enter the\n")
		_, _ = fmt.Fprintf(fs.Output(), "  interactive frequency lookup.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("query command accepts at most one argument")
	}

	if opts.VocabPath == "" {
		return opts, "", errors.New("vocab path must be specified via -vocab-path or EIKEN_VOCAB_PATH")
	}

	return opts, fs.Arg(0), nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	// everything after "--" are the shell words
	for i, a := range args {
		if a == "--" {
			return args[i+1:], nil
		}
	}
	return args, nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Vocabulary and collocation mining over annotated English corpora\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  count     Count unigram and collocation frequencies.\n")
		_, _ = fmt.Fprintf(output, "  doc       List docs or show the sentences of one doc.\n")
		_, _ = fmt.Fprintf(output, "  sentence  Show a specific sentence's token details.\n")
		_, _ = fmt.Fprintf(output, "  stat      Corpus statistics.\n")
		_, _ = fmt.Fprintf(output, "  import    Import annotated JSON docs into SQLite.\n")
		_, _ = fmt.Fprintf(output, "  export    Export saved counting runs into SQLite.\n")
		_, _ = fmt.Fprintf(output, "  query     Interactive lookup over a saved counting run.\n")
		_, _ = fmt.Fprintf(output, "  bash      Print the bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
