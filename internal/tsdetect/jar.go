package tsdetect

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ExtractedJarName is the name the jar is copied to in the output directory.
const ExtractedJarName = "tsDetect-extracted.jar"

// ExtractJar copies the tsDetect jar at src into outputDir, replacing any
// earlier copy, and returns the absolute path of the copy. When src already
// is that copy it is left untouched.
func ExtractJar(src, outputDir string) (string, error) {
	if src == "" {
		return "", fmt.Errorf("%w: set --jar, the jar config key, or SMELLSCAN_JAR", ErrJarNotFound)
	}
	info, err := FS.Stat(src)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrJarNotFound, src)
	}

	dst, err := FS.Abs(filepath.Join(outputDir, ExtractedJarName))
	if err != nil {
		return "", fmt.Errorf("resolve jar destination: %w", err)
	}
	if prev, err := FS.Stat(dst); err == nil && os.SameFile(info, prev) {
		slog.Debug("tsDetect jar already in place", "jar", dst)
		return dst, nil
	}
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("extract tsDetect jar: %w", err)
	}
	return dst, nil
}

// copyFile copies src over dst. Both handles are closed on every path.
func copyFile(src, dst string) (err error) {
	in, err := FS.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only file

	out, err := FS.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// moveFile renames src to dst, replacing dst. When rename is not possible
// (for example across devices) it copies and removes src instead.
func moveFile(src, dst string) error {
	if err := FS.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := FS.Remove(src); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func joinDir(dir, name string) string {
	return filepath.Join(dir, filepath.FromSlash(name))
}
