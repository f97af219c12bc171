package timestamper

import (
	"bitbucket.org/creachadair/stringset"

	"github.com/creachadair/timestamper/paths"
)

// Default settings, used for anything not given on the command line.
const (
	DefaultLocale         = "en"
	DefaultOutputFileName = "info.json"
	DefaultTemplate       = `{ "ts": "` + Placeholder + `" }`
	DefaultFormat         = "YYYYMMDDHHmm"

	// Placeholder is replaced by the timestamp wherever it occurs in the
	// template.
	Placeholder = "{ts}"
)

// Names of the fields that may be reported as required, in the order they
// are checked.
const (
	FieldLocale         = "locale"
	FieldOutputFileName = "outputFileName"
	FieldTemplate       = "template"
	FieldFormat         = "format"
	FieldInlineTemplate = "inlineTemplate"
)

var requiredOrder = []string{
	FieldLocale, FieldOutputFileName, FieldTemplate, FieldFormat, FieldInlineTemplate,
}

// flagFor maps each field to the flag that sets it.
var flagFor = map[string]string{
	FieldLocale:         "-l",
	FieldOutputFileName: "-o",
	FieldTemplate:       "-t",
	FieldFormat:         "-f",
	FieldInlineTemplate: "-i",
}

// Config is the complete configuration of a single invocation. A Config is
// built fresh for each invocation by Overrides.Apply and is not modified
// after validation.
type Config struct {
	Locale         string // locale tag for date formatting
	OutputFileName string // output file name, as given
	OutputPath     string // absolute output path
	Template       string // the effective template text or template path, as given
	TemplatePath   string // absolute template file path, or ""
	Format         string // moment-style format pattern

	InlineTemplate    string
	HasInlineTemplate bool

	SkipOutput bool // do not write an output file
	Version    bool // report the version instead of generating output

	// Missing holds the names of fields whose flag was given without a value.
	Missing stringset.Set
}

// Defaults returns a new Config holding the default settings, with the
// output path rooted at dir.
func Defaults(dir string) Config {
	return Config{
		Locale:         DefaultLocale,
		OutputFileName: DefaultOutputFileName,
		OutputPath:     paths.Resolve(dir, DefaultOutputFileName),
		Template:       DefaultTemplate,
		Format:         DefaultFormat,
		Missing:        stringset.New(),
	}
}

// A Setting records the appearance of a value flag on the command line.
type Setting struct {
	Present bool   // the flag appeared
	Missing bool   // the flag appeared without a usable value
	Value   string // the value given, if any
}

func (s *Setting) set(v string) { *s = Setting{Present: true, Value: v} }

func (s *Setting) missing() { *s = Setting{Present: true, Missing: true} }

// Overrides are the settings parsed from a command line.
type Overrides struct {
	Locale   Setting // -l
	Output   Setting // -o
	Template Setting // -t
	Format   Setting // -f
	Inline   Setting // -i

	OutputPath   string // -o resolved to an absolute path
	TemplatePath string // -t resolved to an absolute path

	SkipOutput bool // -so
	Version    bool // -v
}

// Apply returns a copy of base with the settings of o applied.
// The base value is not modified.
func (o Overrides) Apply(base Config) Config {
	cfg := base
	cfg.Missing = stringset.New()
	cfg.Missing.Update(base.Missing)

	apply := func(s Setting, field string, dst *string) {
		if !s.Present {
			return
		} else if s.Missing {
			cfg.Missing.Add(field)
		}
		*dst = s.Value
	}
	apply(o.Locale, FieldLocale, &cfg.Locale)
	apply(o.Format, FieldFormat, &cfg.Format)

	if o.Output.Present {
		apply(o.Output, FieldOutputFileName, &cfg.OutputFileName)
		cfg.OutputPath = o.OutputPath
	}
	if o.Template.Present {
		apply(o.Template, FieldTemplate, &cfg.Template)
		cfg.TemplatePath = o.TemplatePath
	}
	if o.Inline.Present {
		apply(o.Inline, FieldInlineTemplate, &cfg.InlineTemplate)
		cfg.Template = cfg.InlineTemplate
		cfg.HasInlineTemplate = true
	}
	cfg.SkipOutput = cfg.SkipOutput || o.SkipOutput
	cfg.Version = cfg.Version || o.Version
	return cfg
}
