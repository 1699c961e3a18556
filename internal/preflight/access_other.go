//go:build !unix

package preflight

import "os"

// checkWritable creates and removes a scratch file since access(2) is unavailable.
func checkWritable(path string) error {
	f, err := os.CreateTemp(path, ".srtslicer-write-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
