package app

import "io/fs"

// FileSystem abstracts the OS calls the scanner and copier need, so
// the core stays testable without touching a real disk.
type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
}
