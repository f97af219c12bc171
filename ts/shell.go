package main

import (
	"fmt"
	"io"

	"bitbucket.org/creachadair/stringset"
	"github.com/cockroachdb/errors"
	"github.com/creachadair/command"

	"github.com/creachadair/timestamper/timestamper"
)

// A Variant selects the help text and reporting behavior of the shell.
type Variant struct {
	Name string
	Help string

	// ConfirmVersion, if true, prints the generated-file confirmation after
	// the version string when the version is requested.
	ConfirmVersion bool

	// EchoSkipped, if true, prints the generated data when -so is given.
	// Otherwise the usual confirmation line is printed.
	EchoSkipped bool
}

var variants = map[string]Variant{
	"standard": {
		Name: "standard",
		Help: `Write a formatted timestamp into a template.

Options:
  -v         print the version and exit
  -l <tag>   locale for formatting the date and time, e.g. "en" or "fa" (default en)
  -o <file>  output file name where the result is saved (default info.json)
  -t <file>  template file
  -f <fmt>   format for the date and time (default "YYYYMMDDHHmm")
  -i <text>  inline template
  -so        skip generating the output file; print the result instead

The template must contain the placeholder {ts}, which is replaced by the
formatted timestamp. The default template is { "ts": "{ts}" }.

Examples:
  ts
  ts -l en -o result.json -t template.txt -f YYYYMMDDHHmmss
  ts -l fa -o result.json -i "{ hash: '{ts}' }"`,
		EchoSkipped: true,
	},
	"compat": {
		Name: "compat",
		Help: `Options:
  -v     version
  -l     locale to use for formatting the date/time, e.g. 'en' or 'fa' (default en)
  -o     output file name where the result will be saved (default info.json)
  -t     template file
  -f     format string for the date/time (default "YYYYMMDDHHmm")
  -i     inline template string
  -so    skip generating output file`,
		ConfirmVersion: true,
	},
}

// helpArgs are the arguments that request usage text, wherever they appear.
var helpArgs = stringset.New("--help", "-?", "/?")

// A shell runs the pipeline for a command line and reports the outcome.
type shell struct {
	Variant
	Env    timestamper.Env
	Stdout io.Writer
}

// command returns the root command for s. Flags such as -so and -? are not
// Go-style flags, so the command parses its own arguments.
func (s *shell) command() *command.C {
	return &command.C{
		Name:  command.ProgramName(),
		Usage: "[options]",
		Help:  fmt.Sprintf("Timestamper %s\n\n%s", timestamper.VersionString(), s.Help),

		CustomFlags: true,
		Run:         s.run,
	}
}

// run executes the command line in env.Args. An unrecognized argument is
// reported as a usage error.
func (s *shell) run(env *command.Env) error {
	if helpArgs.ContainsAny(env.Args...) {
		env.Command.HelpInfo(0).WriteLong(s.Stdout)
		return nil
	}
	res := timestamper.Run(s.Env, env.Args)
	if !res.OK() {
		s.logHints(res.Err)
		if res.Kind() == timestamper.KindInvalidArgument {
			return env.Usagef("%v", res.Err)
		}
		return res.Err
	}

	cfg := res.Config
	switch {
	case cfg.Version:
		fmt.Fprintln(s.Stdout, timestamper.VersionString())
		if s.ConfirmVersion {
			s.confirm(cfg)
		}
	case cfg.SkipOutput && s.EchoSkipped:
		fmt.Fprintln(s.Stdout, res.Data)
	default:
		s.confirm(cfg)
	}
	return nil
}

func (s *shell) confirm(cfg timestamper.Config) {
	fmt.Fprintf(s.Stdout, "File %s generated at %s\n", cfg.OutputFileName, cfg.OutputPath)
}

func (s *shell) logHints(err error) {
	if lg := s.Env.Log; lg != nil {
		for _, hint := range errors.GetAllHints(err) {
			lg.Info(hint, "kind", timestamper.KindOf(err))
		}
	}
}
