package timestamper_test

import (
	"path/filepath"
	"testing"

	"bitbucket.org/creachadair/shell"
	"bitbucket.org/creachadair/stringset"
	"github.com/google/go-cmp/cmp"

	"github.com/creachadair/timestamper/timestamper"
)

var workDir = filepath.FromSlash("/work/dir")

func work(name string) string { return filepath.Join(workDir, name) }

func value(v string) timestamper.Setting {
	return timestamper.Setting{Present: true, Value: v}
}

var missing = timestamper.Setting{Present: true, Missing: true}

func splitArgs(t *testing.T, cmd string) []string {
	t.Helper()
	args, ok := shell.Split(cmd)
	if !ok {
		t.Fatalf("Invalid test command line: %q", cmd)
	}
	return args
}

func TestParseArgs(t *testing.T) {
	abs := filepath.FromSlash("/abs/out.json")
	tests := []struct {
		cmd  string
		want timestamper.Overrides
	}{
		{"", timestamper.Overrides{}},
		{"-o out.json", timestamper.Overrides{
			Output: value("out.json"), OutputPath: work("out.json"),
		}},
		{"-o " + abs, timestamper.Overrides{
			Output: value(abs), OutputPath: abs,
		}},
		{"-t tpl/ts.txt -l fa -f YYYY", timestamper.Overrides{
			Template:     value("tpl/ts.txt"),
			TemplatePath: work("tpl/ts.txt"),
			Locale:       value("fa"),
			Format:       value("YYYY"),
		}},
		{"-so -v", timestamper.Overrides{SkipOutput: true, Version: true}},
		{`-i "{ts}-build" -so`, timestamper.Overrides{
			Inline: value("{ts}-build"), SkipOutput: true,
		}},

		// The last occurrence of a flag wins.
		{"-l en -l fa", timestamper.Overrides{Locale: value("fa")}},

		// A value flag consumes the next argument, even if it looks like a flag.
		{"-o -so", timestamper.Overrides{Output: value("-so"), OutputPath: work("-so")}},

		// Values missing at the end of the line are deferred to validation.
		{"-o", timestamper.Overrides{Output: missing}},
		{"-so -l", timestamper.Overrides{Locale: missing, SkipOutput: true}},
		{"-f YYYY -i", timestamper.Overrides{Format: value("YYYY"), Inline: missing}},

		// Empty paths are treated as missing; other empty values are kept.
		{"-o '' -t ''", timestamper.Overrides{Output: missing, Template: missing}},
		{"-l '' -i ''", timestamper.Overrides{Locale: value(""), Inline: value("")}},
	}
	for _, test := range tests {
		got, err := timestamper.ParseArgs(splitArgs(t, test.cmd), workDir)
		if err != nil {
			t.Errorf("ParseArgs(%q): unexpected error: %v", test.cmd, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseArgs(%q): (-want, +got)\n%s", test.cmd, diff)
		}
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		cmd, msg string
	}{
		{"-z", "Invalid argument provided: -z"},
		{"positional", "Invalid argument provided: positional"},
		{"-o out.json --output x", "Invalid argument provided: --output"},
		{"-so -so -V", "Invalid argument provided: -V"},
	}
	for _, test := range tests {
		got, err := timestamper.ParseArgs(splitArgs(t, test.cmd), workDir)
		if err == nil {
			t.Errorf("ParseArgs(%q): got %+v, want error", test.cmd, got)
			continue
		}
		if kind := timestamper.KindOf(err); kind != timestamper.KindInvalidArgument {
			t.Errorf("ParseArgs(%q): got kind %q, want %q", test.cmd, kind, timestamper.KindInvalidArgument)
		}
		if err.Error() != test.msg {
			t.Errorf("ParseArgs(%q): got message %q, want %q", test.cmd, err.Error(), test.msg)
		}
	}
}

func TestApply(t *testing.T) {
	base := timestamper.Defaults(workDir)
	if diff := cmp.Diff(timestamper.Config{
		Locale:         "en",
		OutputFileName: "info.json",
		OutputPath:     work("info.json"),
		Template:       `{ "ts": "{ts}" }`,
		Format:         "YYYYMMDDHHmm",
		Missing:        stringset.New(),
	}, base); diff != "" {
		t.Errorf("Defaults: (-want, +got)\n%s", diff)
	}

	tests := []struct {
		cmd  string
		want func(*timestamper.Config)
	}{
		{"", func(*timestamper.Config) {}},
		{"-o out.json -l fa", func(c *timestamper.Config) {
			c.OutputFileName = "out.json"
			c.OutputPath = work("out.json")
			c.Locale = "fa"
		}},
		{"-t tpl.txt", func(c *timestamper.Config) {
			c.Template = "tpl.txt"
			c.TemplatePath = work("tpl.txt")
		}},
		{"-i x{ts}x -so -v", func(c *timestamper.Config) {
			c.Template = "x{ts}x"
			c.InlineTemplate = "x{ts}x"
			c.HasInlineTemplate = true
			c.SkipOutput = true
			c.Version = true
		}},
		{"-so -o", func(c *timestamper.Config) {
			c.OutputFileName = ""
			c.OutputPath = ""
			c.SkipOutput = true
			c.Missing = stringset.New("outputFileName")
		}},
		{"-f", func(c *timestamper.Config) {
			c.Format = ""
			c.Missing = stringset.New("format")
		}},
	}
	for _, test := range tests {
		over, err := timestamper.ParseArgs(splitArgs(t, test.cmd), workDir)
		if err != nil {
			t.Fatalf("ParseArgs(%q): unexpected error: %v", test.cmd, err)
		}
		want := timestamper.Defaults(workDir)
		test.want(&want)
		if diff := cmp.Diff(want, over.Apply(base)); diff != "" {
			t.Errorf("Apply(%q): (-want, +got)\n%s", test.cmd, diff)
		}
	}

	// Applying overrides must not disturb the base configuration.
	if diff := cmp.Diff(timestamper.Defaults(workDir), base); diff != "" {
		t.Errorf("Base config was modified: (-want, +got)\n%s", diff)
	}
}
