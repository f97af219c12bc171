package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/creachadair/command"

	"github.com/creachadair/timestamper/timestamper"
)

type testShell struct {
	*shell
	dir         string
	stdout, log bytes.Buffer
}

func newTestShell(t *testing.T, variant string) *testShell {
	t.Helper()
	v, ok := variants[variant]
	if !ok {
		t.Fatalf("No variant named %q", variant)
	}
	ts := &testShell{dir: t.TempDir()}
	ts.shell = &shell{
		Variant: v,
		Env: timestamper.Env{
			Dir: ts.dir,
			Now: func() time.Time { return time.Date(2024, 3, 20, 14, 5, 9, 0, time.UTC) },
			Log: log.New(&ts.log),
		},
		Stdout: &ts.stdout,
	}
	return ts
}

// exec runs args through the root command, as main does.
func (ts *testShell) exec(args ...string) error {
	return command.Run(ts.command().NewEnv(nil), args)
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{
		{"--help"}, {"-?"}, {"/?"}, {"-l", "fa", "--help"}, {"-z", "/?"},
	} {
		ts := newTestShell(t, "standard")
		if err := ts.exec(args...); err != nil {
			t.Errorf("exec(%q): unexpected error: %v", args, err)
		}
		got := ts.stdout.String()
		for _, want := range []string{"Timestamper " + timestamper.VersionString(), "[options]", "-so"} {
			if !strings.Contains(got, want) {
				t.Errorf("exec(%q): help text does not contain %q:\n%s", args, want, got)
			}
		}
		if _, err := os.Stat(filepath.Join(ts.dir, "info.json")); err == nil {
			t.Errorf("exec(%q): help request generated an output file", args)
		}
	}
}

func TestGenerate(t *testing.T) {
	ts := newTestShell(t, "standard")
	if err := ts.exec("-o", "out.json"); err != nil {
		t.Fatalf("exec: unexpected error: %v", err)
	}
	path := filepath.Join(ts.dir, "out.json")
	if got, want := ts.stdout.String(), "File out.json generated at "+path+"\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output: %v", err)
	}
	if got, want := string(data), `{ "ts": "202403201405" }`; got != want {
		t.Errorf("Output file: got %q, want %q", got, want)
	}
}

func TestSkipOutput(t *testing.T) {
	tests := []struct {
		variant, want string
	}{
		{"standard", "202403201405-build\n"},
		{"compat", "File info.json generated at {dir}\n"},
	}
	for _, test := range tests {
		ts := newTestShell(t, test.variant)
		if err := ts.exec("-i", "{ts}-build", "-so"); err != nil {
			t.Fatalf("%s: unexpected error: %v", test.variant, err)
		}
		want := strings.ReplaceAll(test.want, "{dir}", filepath.Join(ts.dir, "info.json"))
		if got := ts.stdout.String(); got != want {
			t.Errorf("%s: got output %q, want %q", test.variant, got, want)
		}
		if _, err := os.Stat(filepath.Join(ts.dir, "info.json")); err == nil {
			t.Errorf("%s: -so generated an output file", test.variant)
		}
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		variant string
		confirm bool
	}{
		{"standard", false},
		{"compat", true},
	}
	for _, test := range tests {
		ts := newTestShell(t, test.variant)
		if err := ts.exec("-v"); err != nil {
			t.Fatalf("%s: unexpected error: %v", test.variant, err)
		}
		out := ts.stdout.String()
		if !strings.HasPrefix(out, timestamper.VersionString()+"\n") {
			t.Errorf("%s: output %q does not begin with the version", test.variant, out)
		}
		if got := strings.Contains(out, "generated at"); got != test.confirm {
			t.Errorf("%s: confirmation printed=%v, want %v", test.variant, got, test.confirm)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		args []string
		msg  string
		kind timestamper.Kind // "" for a usage error
	}{
		{[]string{"-z"}, "Invalid argument provided: -z", ""},
		{[]string{"-o"}, "outputFileName is required after -o", "outputFileName_required"},
		{[]string{"-so", "-o"}, "Please make up your mind", timestamper.KindOutputConfusion},
		{[]string{"-t", "missing-file.txt"}, "missing-file.txt does not exist", timestamper.KindTemplateNotExists},
		{[]string{"-i", "no placeholder", "-so"}, "Template does not contain {ts} placeholder", timestamper.KindPlaceholderNotFound},
	}
	for _, test := range tests {
		ts := newTestShell(t, "standard")
		err := ts.exec(test.args...)
		if err == nil {
			t.Errorf("exec(%q): got no error, want %q", test.args, test.msg)
			continue
		}
		if !strings.Contains(err.Error(), test.msg) {
			t.Errorf("exec(%q): got error %q, want %q", test.args, err, test.msg)
		}

		// Pipeline failures keep their kind; an invalid argument becomes a
		// usage error, which carries none.
		if got := timestamper.KindOf(err); got != test.kind {
			t.Errorf("exec(%q): got kind %q, want %q", test.args, got, test.kind)
		}
		if ts.stdout.Len() != 0 {
			t.Errorf("exec(%q): unexpected output %q", test.args, ts.stdout.String())
		}
	}
}

func TestHintsLogged(t *testing.T) {
	ts := newTestShell(t, "standard")
	if err := ts.exec("-so", "-o"); err == nil {
		t.Fatal("exec: got no error, want output_confusion")
	}
	if got := ts.log.String(); !strings.Contains(got, "-so skips the output file") {
		t.Errorf("Hint not logged; log is:\n%s", got)
	}
}
