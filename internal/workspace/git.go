package workspace

import (
	"github.com/go-git/go-git/v5"
)

// GitInitializer initializes git repositories on the host filesystem.
type GitInitializer struct{}

// Init runs the equivalent of `git init path`. The directory and its
// parents are created if missing.
func (GitInitializer) Init(path string) error {
	_, err := git.PlainInit(path, false)
	return err
}
