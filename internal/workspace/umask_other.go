//go:build !unix

package workspace

import "os"

func processUmask() os.FileMode {
	return 0
}
