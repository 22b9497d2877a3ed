package file

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
)

// Copy copies <src> file path to <dst> file path. Returns true if <dst> was created and false if it was overwritten.
//
// New <dst> gets permission bits of <src>, existing <dst> is truncated. Parent directory of <dst> is not created.
func Copy(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		return false, errors.Wrap(err, "Stat source file")
	}
	input, err := os.ReadFile(src)
	if err != nil {
		return false, errors.Wrap(err, "Read source file")
	}

	created := true
	output, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if errors.Is(err, fs.ErrExist) {
		created = false
		output, err = os.OpenFile(dst, os.O_WRONLY|os.O_TRUNC, 0)
	}
	if err != nil {
		return created, errors.Wrap(err, "Open destination file")
	}
	defer output.Close()

	if _, err = output.Write(input); err != nil {
		return created, errors.Wrap(err, "Write destination file")
	}
	return created, errors.Wrap(output.Close(), "Close destination file")
}

// IsDir returns true if <path> exists and is a directory.
//
// Returns false and error wrapping fs.ErrNotExist if <path> does not exist.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrap(err, "Stat path")
	}
	return info.IsDir(), nil
}
