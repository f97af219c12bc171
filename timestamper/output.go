package timestamper

import "github.com/creachadair/atomicfile"

// WriteOutput replaces the contents of the file at path with data. The file
// is written to a temporary name and renamed into place, so a failed write
// leaves any previous file intact.
func WriteOutput(data, path string) error {
	if err := atomicfile.WriteData(path, []byte(data), 0644); err != nil {
		return newError(KindWriteFailed, err, "Failed to write output file at %s", path)
	}
	return nil
}
