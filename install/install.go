package install

import (
	"fmt"
	"path/filepath"

	"moonly_copy/deps"
	"moonly_copy/util/file"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ScriptsDirName represents name of MoonLoader scripts directory inside of GTA San Andreas directory
const ScriptsDirName = "moonloader"

// NotDirError represents error thrown if destination path exists but is not a directory
type NotDirError struct {
	Path string
}

// Error is used to satisfy golang error interface
func (e NotDirError) Error() string {
	return fmt.Sprintf("Destination %v is not a directory", e.Path)
}

// DestDir returns MoonLoader scripts directory inside of GTA San Andreas directory taken from config of <d>.
//
// Path is concatenated as is, without lexical cleaning, so symbolic links followed by ".." are resolved by the OS.
func DestDir(d deps.Global) string {
	return d.Cfg().GTASADir + "/" + ScriptsDirName
}

// Install copies <srcPath> file into MoonLoader scripts directory, keeping its name. Returns destination file path.
//
// Scripts directory must exist, it is never created. Existing destination file is overwritten.
//
// Can return errors defined in this package: NotDirError.
func (r repo) Install(srcPath string) (string, error) {
	dstDir := DestDir(r)
	dstPath := dstDir + "/" + filepath.Base(srcPath)
	r.log.Infof("Copying %v to %v", srcPath, dstDir)

	isDir, err := file.IsDir(dstDir)
	if err != nil {
		return dstPath, errors.Wrap(err, "Check destination directory")
	}
	if !isDir {
		return dstPath, errors.Wrap(NotDirError{Path: dstDir}, "Check destination directory")
	}

	created, err := file.Copy(srcPath, dstPath)
	if err != nil {
		return dstPath, errors.Wrap(err, "Copy script")
	}
	r.log.Debugf("%v %v", lo.Ternary(created, "Created", "Overwrote"), dstPath)

	return dstPath, nil
}
