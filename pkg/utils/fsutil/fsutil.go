package fsutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/pgzip"
	"github.com/m-mizutani/goerr/v2"
)

// MovePath moves src to dest, creating dest's parent directories as needed.
// An existing destination is overwritten. Rename is attempted first and
// falls back to copy+remove when src and dest are on different filesystems.
func MovePath(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return goerr.Wrap(err, "failed to create destination directory",
			goerr.V("dir", filepath.Dir(dest)))
	}

	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	if err := copyFile(src, dest); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return goerr.Wrap(err, "failed to remove source after copy", goerr.V("src", src))
	}
	return nil
}

// CompressFile writes a gzip-compressed copy of src at dest and removes src.
// Parent directories of dest are created as needed.
func CompressFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open source file", goerr.V("src", src))
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return goerr.Wrap(err, "failed to create destination directory",
			goerr.V("dir", filepath.Dir(dest)))
	}

	out, err := os.Create(dest)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dest", dest))
	}

	zw, err := pgzip.NewWriterLevel(out, pgzip.DefaultCompression)
	if err != nil {
		_ = out.Close()
		return goerr.Wrap(err, "failed to create gzip writer", goerr.V("dest", dest))
	}

	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return goerr.Wrap(err, "failed to compress file", goerr.V("src", src))
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return goerr.Wrap(err, "failed to finalize gzip stream", goerr.V("dest", dest))
	}
	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("dest", dest))
	}

	if err := os.Remove(src); err != nil {
		return goerr.Wrap(err, "failed to remove source after compression", goerr.V("src", src))
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open source file", goerr.V("src", src))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return goerr.Wrap(err, "failed to stat source file", goerr.V("src", src))
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dest", dest))
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return goerr.Wrap(err, "failed to copy file content", goerr.V("dest", dest))
	}
	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("dest", dest))
	}
	return nil
}
