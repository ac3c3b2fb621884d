package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/mathexpr"
)

const prompt = "> "

const help = `Enter a formula to evaluate it.
  :set name value  set a parameter, declaring it if it is new
  :params          list parameters
  :tree formula    show how a formula parses
  :help            show this message
  exit             quit
`

// repl runs an interactive session with line editing, history, and tab
// completion.
func (s *session) repl(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)

	historyFile := filepath.Join(os.TempDir(), ".mathexpr_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, "mathexpr", version)
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit, ':help' for commands")
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out)
				return nil
			}
			return errors.Wrap(err, "reading input")
		}
		if !isBlank(input) {
			line.AppendHistory(input)
		}
		if s.exec(out, input) {
			return nil
		}
	}
}

// exec handles one line of input. It returns true if the session should end.
func (s *session) exec(out io.Writer, input string) bool {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
	case input == "exit" || input == "quit":
		return true
	case strings.HasPrefix(input, ":"):
		s.command(out, input)
	default:
		if err := s.print(out, input, false); err != nil {
			report(out, input, err)
		}
	}
	return false
}

func (s *session) command(out io.Writer, input string) {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case ":set":
		name, val, ok := strings.Cut(rest, " ")
		if strings.Contains(name, "=") {
			name, val, _ = splitParam(rest)
			ok = true
		}
		if !ok || isBlank(val) {
			fmt.Fprintln(out, "usage: :set name value")
			return
		}
		val = strings.TrimSpace(val)
		if err := s.set(name, val); err != nil {
			report(out, val, err)
		}
	case ":params":
		for i, name := range s.names {
			fmt.Fprintf(out, "%s = "+s.verb+"\n", name, s.values[i])
		}
	case ":tree":
		e, err := mathexpr.ParseString(rest, s.options()...)
		if err != nil {
			report(out, rest, err)
			return
		}
		fmt.Fprintln(out, e)
	case ":help":
		fmt.Fprint(out, help)
	default:
		fmt.Fprintf(out, "unknown command %s, try :help\n", cmd)
	}
}

// report writes an error, pointing at the position in src for input errors.
func report(out io.Writer, src string, err error) {
	var ierr mathexpr.InputError
	if errors.As(err, &ierr) {
		fmt.Fprintln(out, "  "+src)
		fmt.Fprintln(out, "  "+strings.Repeat(" ", ierr.Pos())+"^")
	}
	fmt.Fprintln(out, "error:", err)
}

// complete completes the identifier at the end of line with parameter and
// module names.
func (s *session) complete(line string) []string {
	start := len(line)
	for start > 0 {
		r, sz := utf8.DecodeLastRuneInString(line[:start])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		start -= sz
	}
	prefix := strings.ToLower(line[start:])
	if prefix == "" {
		return nil
	}
	var r []string
	for _, w := range s.names {
		if strings.HasPrefix(strings.ToLower(w), prefix) {
			r = append(r, line[:start]+w)
		}
	}
	for _, w := range s.words {
		if strings.HasPrefix(strings.ToLower(w), prefix) {
			r = append(r, line[:start]+w)
		}
	}
	sort.Strings(r)
	return r
}
