package timestamper

import "runtime/debug"

// Version is the release version, normally set by the linker:
//
//	go build -ldflags "-X github.com/creachadair/timestamper/timestamper.Version=v1.2.3"
var Version string

// VersionString reports the version of the program. If Version is not set,
// it uses the module version recorded in the binary, or "devel".
func VersionString() string {
	if Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}
