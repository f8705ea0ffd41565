package tsdetect

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/dfpello/smellscan/internal/testable"
)

// LookupJava resolves the java launcher. An explicit path wins, then
// $JAVA_HOME/bin/java, then java on PATH.
func LookupJava(e testable.CommandExecutor, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if e == nil {
		e = testable.DefaultExecutor()
	}

	bin := "java"
	if runtime.GOOS == "windows" {
		bin = "java.exe"
	}

	if home := e.Getenv("JAVA_HOME"); home != "" {
		candidate := filepath.Join(home, "bin", bin)
		if _, err := FS.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	path, err := e.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w (JAVA_HOME is unset or invalid): %w", ErrJavaNotFound, err)
	}
	return path, nil
}
