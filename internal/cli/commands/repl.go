package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/term"
)

const replPrompt = "termsql> "

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	History string
}

// NewREPLCommand creates the interactive term compiler.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Compile terms interactively",
		Long: `Start an interactive session that compiles one term per line:

  column op [value] [options...]

List operators take comma separated values ("age in 1,2,3"). Trailing words
naming term options (reverse, startWith, endWith) set those options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.History, "history", ".termsql_history", "History file (empty disables history)")
	return cmd
}

// replSession is the mutable state of a REPL: the active dialect, alias
// and whether to show bound parameters.
type replSession struct {
	dialect *dialect.Dialect
	alias   string
	bind    bool
	out     io.Writer
	errOut  io.Writer
	count   int
}

func runREPL(cmd *cobra.Command, opts *REPLOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     opts.History,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cc.Out,
		Stderr:          cc.ErrOut,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s := &replSession{dialect: cc.Dialect, out: cc.Out, errOut: cc.ErrOut}
	_, _ = fmt.Fprintf(cc.Out, "termsql REPL (dialect: %s)\n", s.dialect.Name)
	_, _ = fmt.Fprintln(cc.Out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cc.Out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if s.eval(line) {
			break
		}
	}
	return nil
}

// eval handles one input line and reports whether the session should end.
func (s *replSession) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	spec, err := parseTermLine(s.dialect, line)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	spec.Prefix = fmt.Sprintf("p%d", s.count)
	s.count++

	comp, err := compileTerms(s.dialect, []termSpec{spec}, nil, s.alias)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	where := comp.Where()
	_, _ = fmt.Fprintln(s.out, where)
	if s.bind {
		bound, args, err := bind(s.dialect, where, comp.Bindings)
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		_, _ = fmt.Fprintf(s.out, "  %s  %v\n", bound, args)
	}
	return false
}

func (s *replSession) dotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".dialect":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(s.out, s.dialect.Name)
			return false
		}
		d, err := dialect.Lookup(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		s.dialect = d
		_, _ = fmt.Fprintf(s.out, "dialect: %s\n", d.Name)

	case ".dialects":
		_, _ = fmt.Fprintln(s.out, strings.Join(dialect.List(), ", "))

	case ".operators":
		_, _ = fmt.Fprintln(s.out, strings.Join(s.dialect.Operators(), ", "))

	case ".alias":
		s.alias = ""
		if len(parts) > 1 {
			s.alias = parts[1]
		}

	case ".bind":
		s.bind = !s.bind
		_, _ = fmt.Fprintf(s.out, "bind: %t\n", s.bind)

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

// parseTermLine parses "column op [value] [options...]". Trailing words
// that name term options are options; the rest is the value.
func parseTermLine(d *dialect.Dialect, line string) (termSpec, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return termSpec{}, errors.New("usage: column op [value] [options...]")
	}
	spec := termSpec{Column: fields[0], Op: fields[1]}

	rest := fields[2:]
	end := len(rest)
	for end > 0 {
		if _, err := term.ParseOptions(rest[end-1]); err != nil {
			break
		}
		end--
	}
	spec.Options = rest[end:]
	if end > 0 {
		spec.Value = parseValue(d, spec.Op, strings.Join(rest[:end], " "))
	}
	return spec, nil
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help             Show this help message
  .dialect [name]   Show or switch the dialect
  .dialects         List registered dialects
  .operators        List the dialect's operators
  .alias [name]     Set or clear the table alias
  .bind             Toggle printing bound parameters
  .quit / .exit     Exit the REPL

Terms:
  name eq bob
  age in 18,21,30
  age btw 18,30
  name like ann startWith
  deleted_at isnull
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes dot commands and dialect names.
func newREPLCompleter() *readline.PrefixCompleter {
	var dialects []readline.PrefixCompleterInterface
	for _, name := range dialect.List() {
		dialects = append(dialects, readline.PcItem(name))
	}

	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialects...),
		readline.PcItem(".dialects"),
		readline.PcItem(".operators"),
		readline.PcItem(".alias"),
		readline.PcItem(".bind"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	return readline.NewPrefixCompleter(items...)
}
