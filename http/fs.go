package httpx

import (
	"os"

	"github.com/go-git/go-billy/v5"
)

// openIndex opens the index page and stats it for ServeContent's modtime.
// The caller owns the returned file.
func openIndex(fsys billy.Filesystem) (billy.File, os.FileInfo, error) {
	fi, err := fsys.Stat(indexPage)
	if err != nil {
		return nil, nil, err
	}
	f, err := fsys.Open(indexPage)
	if err != nil {
		return nil, nil, err
	}
	return f, fi, nil
}
