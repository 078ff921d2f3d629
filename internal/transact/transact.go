// Package transact replaces output files atomically at the directory level:
// results are staged in a temporary directory and only copied over the
// destination once every destination file has been checked for writability.
// A failed run therefore never leaves partially written output behind.
package transact

import (
	"io"
	"os"
	"path/filepath"

	"github.com/geostation/locmap/pkg/constants"
	"github.com/geostation/locmap/pkg/errors"
	"github.com/geostation/locmap/pkg/logging"
)

// Copy moves every regular file at the top level of srcDir into destDir.
// All destination paths are verified writable before the first byte is
// copied; any precheck failure aborts the whole copy.
func Copy(srcDir, destDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return errors.WrapIO("read", srcDir, err)
	}
	if err := os.MkdirAll(destDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", destDir, err)
	}

	type pending struct {
		src, dest string
		replacing bool
	}
	var files []pending
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		dest := filepath.Join(destDir, entry.Name())
		replacing, err := checkWritable(dest)
		if err != nil {
			return err
		}
		files = append(files, pending{src: src, dest: dest, replacing: replacing})
	}

	for _, f := range files {
		if f.replacing {
			logging.Info().Str("file", f.dest).Msg("Replacing file")
		} else {
			logging.Info().Str("file", f.dest).Msg("Creating file")
		}
		if err := copyFile(f.src, f.dest); err != nil {
			return err
		}
	}
	return nil
}

// checkWritable verifies dest either does not exist or is a regular file
// that can be opened for writing. Reports whether an existing file will be
// replaced.
func checkWritable(dest string) (replacing bool, err error) {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapIO("write", dest, err)
	}
	if !info.Mode().IsRegular() {
		return false, errors.NewIOError("write", dest, errors.New("destination is not a regular file"))
	}
	f, err := os.OpenFile(dest, os.O_WRONLY, 0)
	if err != nil {
		return false, errors.WrapIO("write", dest, err)
	}
	_ = f.Close()
	return true, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.WrapIO("read", src, err)
	}
	defer in.Close() //nolint:errcheck // read-only file

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("write", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.WrapIO("copy", dest, err)
	}
	if err := out.Close(); err != nil {
		return errors.WrapIO("write", dest, err)
	}
	return nil
}
