package walker

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Filesystem is the part of a go-billy filesystem the walker uses: ReadDir for the
// directory-stat stage, Open (through util.ReadFile) for the read stage and Join to
// build child paths. Any billy.Filesystem satisfies it.
type Filesystem interface {
	billy.Basic
	billy.Dir
}

// defaultFilesystem resolves paths exactly as the operating system does, so
// relative roots are relative to the working directory.
func defaultFilesystem() Filesystem { return osfs.Default }

func readFile(fsys Filesystem, name string) ([]byte, error) {
	return util.ReadFile(fsys, name)
}
