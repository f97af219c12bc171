package timestamper

import (
	"bitbucket.org/creachadair/stringset"

	"github.com/creachadair/timestamper/paths"
)

// knownFlags lists the flags understood by ParseArgs.
var knownFlags = stringset.New("-o", "-t", "-l", "-f", "-i", "-so", "-v")

// ParseArgs parses a command line into overrides. Relative -o and -t paths
// are resolved against dir, which should be the absolute path of the working
// directory.
//
// Each value flag consumes the following argument, whatever it is. A value
// flag at the end of args, or an -o or -t flag with an empty value, is
// recorded as missing and left for Validate to report. Any unrecognized
// argument is an error of kind invalid_argument. When a flag is repeated,
// the last occurrence wins.
func ParseArgs(args []string, dir string) (Overrides, error) {
	var o Overrides
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !knownFlags.Contains(arg) {
			return Overrides{}, newError(KindInvalidArgument, nil, "Invalid argument provided: %s", arg)
		}

		var s *Setting
		switch arg {
		case "-so":
			o.SkipOutput = true
			continue
		case "-v":
			o.Version = true
			continue
		case "-o":
			s = &o.Output
		case "-t":
			s = &o.Template
		case "-l":
			s = &o.Locale
		case "-f":
			s = &o.Format
		case "-i":
			s = &o.Inline
		}

		if i+1 == len(args) {
			s.missing()
		} else {
			i++
			s.set(args[i])
		}

		// Paths are resolved while the working directory is known.
		switch arg {
		case "-o":
			o.OutputPath = paths.Resolve(dir, s.Value)
		case "-t":
			o.TemplatePath = paths.Resolve(dir, s.Value)
		}
		if (arg == "-o" || arg == "-t") && s.Value == "" {
			s.missing()
		}
	}
	return o, nil
}
