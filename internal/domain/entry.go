package domain

import (
	"path/filepath"
	"strings"
)

// FileEntry is a candidate file discovered while walking the source tree.
type FileEntry struct {
	SourcePath string
	RelPath    string
	Name       string
	Ext        string
}

func NewFileEntry(sourcePath, relPath string) FileEntry {
	name := filepath.Base(sourcePath)

	return FileEntry{
		SourcePath: sourcePath,
		RelPath:    relPath,
		Name:       name,
		Ext:        strings.ToLower(filepath.Ext(name)),
	}
}
