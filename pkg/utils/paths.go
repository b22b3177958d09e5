package utils

import "path/filepath"

// ResolveSource cleans a source path into its absolute form and the
// directory compiled artifacts should be written next to.
func ResolveSource(relPath string) (fullPath string, outDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	return fullPath, filepath.Dir(fullPath), nil
}
