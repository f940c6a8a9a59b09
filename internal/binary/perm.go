package binary

import (
	"fmt"
	"os"
)

// ownerExecute is the owner-execute permission bit
const ownerExecute os.FileMode = 0o100

// SetExecutable ORs the owner-execute bit into the file's existing mode.
func SetExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("set executable: %w", err)
	}

	if err := os.Chmod(path, info.Mode().Perm()|ownerExecute); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}

// isExecutable reports whether the owner-execute bit is set.
func isExecutable(info os.FileInfo) bool {
	return info.Mode().Perm()&ownerExecute != 0
}
