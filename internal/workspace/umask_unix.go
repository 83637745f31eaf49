//go:build unix

package workspace

import (
	"os"

	"golang.org/x/sys/unix"
)

// processUmask returns the file mode creation mask of the process.
func processUmask() os.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return os.FileMode(mask)
}
