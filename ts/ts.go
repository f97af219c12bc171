// Program ts writes a formatted timestamp into a template and saves the
// result to a file, for use as a build or version marker.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/creachadair/command"

	"github.com/creachadair/timestamper/timestamper"
)

// variantName selects the behavior of the shell. It may be set at build time:
//
//	go build -ldflags "-X main.variantName=compat" ./ts
var variantName = "standard"

func main() {
	v, ok := variants[variantName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantName)
		os.Exit(1)
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sh := &shell{
		Variant: v,
		Env: timestamper.Env{
			Dir: dir,
			Log: log.NewWithOptions(os.Stderr, log.Options{
				Prefix: "ts",
				Level:  log.InfoLevel,
			}),
		},
		Stdout: os.Stdout,
	}
	command.RunOrFail(sh.command().NewEnv(nil), os.Args[1:])
}
