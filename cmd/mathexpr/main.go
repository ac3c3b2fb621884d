// Command mathexpr evaluates formulas.
package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var version = "dev"

const long = `Evaluate formulas given as arguments, or one per line of the input file.
With no arguments and no input file, formulas are read from stdin.

Parameters set with -p can be used in every formula, and in the values of
parameters set after them:

	mathexpr -p r=2 -p a='pi r^2' '2a'`

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mathexpr [formula...]",
		Short:        "Evaluate formulas",
		Long:         long,
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		RunE:         run,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringArrayP("param", "p", nil, "name=value parameter definition (any number of times)")
	root.PersistentFlags().StringArrayP("module", "m", nil, "YAML file of constants (any number of times)")
	root.PersistentFlags().Bool("precise", false, "evaluate with extended precision")
	root.PersistentFlags().Uint("prec", 0, "bits of precision for --precise (default 128)")
	root.PersistentFlags().String("fmt", "%g", "result formatting verb")
	root.Flags().String("in", "", "input file, one formula per line (- for stdin)")
	root.Flags().Bool("echo", false, "print parse trees")

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Evaluate formulas interactively",
		Args:  cobra.NoArgs,
		RunE:  repl,
	})
	return root
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// sessionFromFlags builds a session from the persistent flags.
func sessionFromFlags(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	precise, _ := flags.GetBool("precise")
	prec, _ := flags.GetUint("prec")
	verb, _ := flags.GetString("fmt")
	s := newSession(precise, prec, verb)

	mods, _ := flags.GetStringArray("module")
	for _, path := range mods {
		if err := s.load(path); err != nil {
			return nil, err
		}
	}
	params, _ := flags.GetStringArray("param")
	for _, p := range params {
		name, val, err := splitParam(p)
		if err != nil {
			return nil, err
		}
		if err := s.set(name, val); err != nil {
			return nil, errors.Wrapf(err, "setting %s", name)
		}
	}
	return s, nil
}

func run(cmd *cobra.Command, args []string) error {
	s, err := sessionFromFlags(cmd)
	if err != nil {
		return err
	}
	echo, _ := cmd.Flags().GetBool("echo")
	inname, _ := cmd.Flags().GetString("in")
	out := cmd.OutOrStdout()

	in, err := infile(inname, len(args) == 0, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if in != nil {
		defer in.Close()
		sc := bufio.NewScanner(in)
		for n := 1; sc.Scan(); n++ {
			if isBlank(sc.Text()) {
				continue
			}
			if err := s.print(out, sc.Text(), echo); err != nil {
				return errors.Wrapf(err, "line %d", n)
			}
		}
		if err := sc.Err(); err != nil {
			return errors.Wrap(err, "reading input")
		}
	}
	for _, arg := range args {
		if err := s.print(out, arg, echo); err != nil {
			return err
		}
	}
	return nil
}

func repl(cmd *cobra.Command, args []string) error {
	s, err := sessionFromFlags(cmd)
	if err != nil {
		return err
	}
	return s.repl(cmd.OutOrStdout())
}

// infile opens the input named by inname. If std is set and no input is
// named, it is stdin.
func infile(inname string, std bool, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(stdin), nil
	}
	return nil, nil
}
