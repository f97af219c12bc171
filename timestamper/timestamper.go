// Package timestamper implements a pipeline that renders the current time,
// substitutes it into a template, and writes the result to a file.
//
// A run proceeds in stages, each of which may fail with an *Error:
//
//	ParseArgs → Overrides.Apply(Defaults) → Validate → format → ResolveTemplate → Substitute → WriteOutput
//
// Run executes the whole pipeline. Each call builds its configuration from
// scratch, so repeated calls in one process do not influence each other.
package timestamper

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/creachadair/timestamper/moment"
)

// Result is the outcome of a run. A successful Result has a nil Err and
// carries the final configuration and generated data; a failed Result
// carries only the error.
type Result struct {
	Config Config
	Data   string
	Err    error
}

// OK reports whether r is a successful result.
func (r Result) OK() bool { return r.Err == nil }

// Kind reports the kind of the failure in r, or "" if r is successful.
func (r Result) Kind() Kind { return KindOf(r.Err) }

func failed(err error) Result { return Result{Err: err} }

// Env is the environment in which Run operates.
type Env struct {
	// Dir is the absolute path of the working directory. Relative paths on
	// the command line and the default output file are resolved against it.
	Dir string

	// Now, if set, reports the current time. If nil, time.Now is used.
	Now func() time.Time

	// Log, if set, receives diagnostic logs. If nil, logs are discarded.
	Log *log.Logger
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Env) logger() *log.Logger {
	if e.Log != nil {
		return e.Log
	}
	return log.New(io.Discard)
}

// Run parses args and executes the pipeline they describe. If the version
// is requested, Run stops after parsing and the Result has no data.
func Run(env Env, args []string) Result {
	lg := env.logger()

	over, err := ParseArgs(args, env.Dir)
	if err != nil {
		return failed(err)
	}
	res := Validate(over.Apply(Defaults(env.Dir)))
	if !res.OK() {
		return res
	}
	cfg := res.Config
	if cfg.Version {
		lg.Debug("version requested; skipping generation")
		return res
	}

	fm := moment.New(cfg.Locale)
	if !fm.Matched() {
		lg.Warn("Unsupported locale, using fallback", "locale", cfg.Locale, "fallback", fm.Locale())
	}
	ts, err := fm.Format(env.now(), cfg.Format)
	if err != nil {
		return failed(newError(KindInvalidFormat, err, "Please enter a valid format: %v", err))
	}
	lg.Debug("generated timestamp", "locale", fm.Locale(), "calendar", fm.Calendar(), "format", cfg.Format, "ts", ts)

	text, err := ResolveTemplate(cfg)
	if err != nil {
		return failed(err)
	}
	data := Substitute(text, ts)

	if cfg.SkipOutput {
		lg.Debug("skipping output", "path", cfg.OutputPath)
	} else if err := WriteOutput(data, cfg.OutputPath); err != nil {
		return failed(err)
	} else {
		lg.Debug("wrote output", "path", cfg.OutputPath, "bytes", len(data))
	}
	return Result{Config: cfg, Data: data}
}
