// Package paths provides helpers for resolving file paths named on a
// command line.
package paths

import "path/filepath"

// Resolve returns name as an absolute, cleaned path. If name is relative it
// is joined to dir, which should itself be absolute. An empty name yields "".
func Resolve(dir, name string) string {
	if name == "" {
		return ""
	} else if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, name)
}
