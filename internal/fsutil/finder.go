// Package fsutil provides small file system helpers.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ProcedureExt is the file extension for procedure files.
const ProcedureExt = ".hcl"

// FindProcedureFiles recursively collects every procedure file under
// rootPath. The result is sorted so load order is deterministic.
func FindProcedureFiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ProcedureExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
