package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"fex/internal/domain"
)

type mockFS struct {
	entries  []mockEntry
	exists   map[string]bool
	copied   []string
	mkdirs   []string
	copyErr  map[string]error
	mkdirErr map[string]error
}

type mockEntry struct {
	path    string
	isDir   bool
	walkErr error
}

func (m *mockFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	for _, entry := range m.entries {
		dirEntry := mockDirEntry{name: filepath.Base(entry.path), isDir: entry.isDir}
		if err := fn(entry.path, dirEntry, entry.walkErr); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	for _, entry := range m.entries {
		if entry.path == path {
			return mockFileInfo{name: filepath.Base(path), isDir: entry.isDir}, nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) Exists(path string) (bool, error) {
	return m.exists[path], nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := m.mkdirErr[path]; err != nil {
		return err
	}
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if err := m.copyErr[src]; err != nil {
		return err
	}
	m.copied = append(m.copied, src+" -> "+dst)
	if m.exists == nil {
		m.exists = map[string]bool{}
	}
	m.exists[dst] = true
	return nil
}

type mockDirEntry struct {
	name  string
	isDir bool
}

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name  string
	isDir bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }

func sourceTree(sourceDir string) []mockEntry {
	return []mockEntry{
		{path: sourceDir, isDir: true},
		{path: filepath.Join(sourceDir, "docs"), isDir: true},
		{path: filepath.Join(sourceDir, "docs", "a.pdf")},
		{path: filepath.Join(sourceDir, "docs", "b.txt")},
		{path: filepath.Join(sourceDir, "images"), isDir: true},
		{path: filepath.Join(sourceDir, "images", "c.jpg")},
	}
}

func TestScannerFiltersByExtension(t *testing.T) {
	sourceDir := filepath.Join("/", "source")
	destDir := filepath.Join("/", "dest")
	mock := &mockFS{entries: sourceTree(sourceDir)}

	scanner := Scanner{
		FS:         mock,
		Extensions: domain.ParseExtensions(".pdf,.jpg"),
		Preserve:   true,
	}

	plan, err := scanner.Scan(context.Background(), sourceDir, destDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(plan.Items))
	}
	if plan.Items[0].Entry.RelPath != filepath.Join("docs", "a.pdf") {
		t.Fatalf("unexpected rel path: %s", plan.Items[0].Entry.RelPath)
	}
	if plan.Items[0].TargetPath != filepath.Join(destDir, "docs", "a.pdf") {
		t.Fatalf("unexpected target: %s", plan.Items[0].TargetPath)
	}
	if plan.Items[1].TargetPath != filepath.Join(destDir, "images", "c.jpg") {
		t.Fatalf("unexpected target: %s", plan.Items[1].TargetPath)
	}
}

func TestScannerFlattensTargets(t *testing.T) {
	sourceDir := filepath.Join("/", "source")
	destDir := filepath.Join("/", "dest")
	mock := &mockFS{entries: sourceTree(sourceDir)}

	scanner := Scanner{
		FS:         mock,
		Extensions: domain.ParseExtensions(".pdf,.jpg"),
		Preserve:   false,
	}

	plan, err := scanner.Scan(context.Background(), sourceDir, destDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Items[0].TargetPath != filepath.Join(destDir, "a.pdf") {
		t.Fatalf("unexpected target: %s", plan.Items[0].TargetPath)
	}
	if plan.Items[1].TargetPath != filepath.Join(destDir, "c.jpg") {
		t.Fatalf("unexpected target: %s", plan.Items[1].TargetPath)
	}
}

func TestScannerMatchesCaseInsensitively(t *testing.T) {
	sourceDir := filepath.Join("/", "source")
	mock := &mockFS{entries: []mockEntry{
		{path: sourceDir, isDir: true},
		{path: filepath.Join(sourceDir, "REPORT.PDF")},
	}}

	scanner := Scanner{FS: mock, Extensions: domain.ParseExtensions(".pdf")}

	plan, err := scanner.Scan(context.Background(), sourceDir, filepath.Join("/", "dest"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(plan.Items))
	}
	if plan.Items[0].Entry.Ext != ".pdf" {
		t.Fatalf("expected normalized ext, got %q", plan.Items[0].Entry.Ext)
	}
}

func TestScannerWarnsOnUnreadableDirectory(t *testing.T) {
	sourceDir := filepath.Join("/", "source")
	mock := &mockFS{entries: []mockEntry{
		{path: sourceDir, isDir: true},
		{path: filepath.Join(sourceDir, "locked"), isDir: true, walkErr: errors.New("permission denied")},
		{path: filepath.Join(sourceDir, "a.pdf")},
	}}

	scanner := Scanner{FS: mock, Extensions: domain.ParseExtensions(".pdf")}

	plan, err := scanner.Scan(context.Background(), sourceDir, filepath.Join("/", "dest"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(plan.Warnings))
	}
	if len(plan.Items) != 1 {
		t.Fatalf("expected scan to continue past the bad directory, got %d items", len(plan.Items))
	}
}

func TestScannerKeepsUnreadableMatchesAsFailedCandidates(t *testing.T) {
	sourceDir := filepath.Join("/", "source")
	mock := &mockFS{entries: []mockEntry{
		{path: sourceDir, isDir: true},
		{path: filepath.Join(sourceDir, "broken.pdf"), walkErr: errors.New("stale link")},
		{path: filepath.Join(sourceDir, "fine.pdf")},
	}}

	scanner := Scanner{FS: mock, Extensions: domain.ParseExtensions(".pdf")}

	plan, err := scanner.Scan(context.Background(), sourceDir, filepath.Join("/", "dest"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Items) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(plan.Items))
	}
	if plan.Items[0].ScanErr == nil {
		t.Fatalf("expected first candidate to carry its scan error")
	}
	if plan.Items[1].ScanErr != nil {
		t.Fatalf("expected second candidate to be clean")
	}
}

func TestScannerReportsRunningMatchCount(t *testing.T) {
	sourceDir := filepath.Join("/", "source")
	mock := &mockFS{entries: sourceTree(sourceDir)}

	var counts []int
	scanner := Scanner{
		FS:         mock,
		Extensions: domain.ParseExtensions(".pdf,.jpg"),
		OnMatch:    func(found int) { counts = append(counts, found) },
	}

	if _, err := scanner.Scan(context.Background(), sourceDir, filepath.Join("/", "dest")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 2 || counts[0] != 1 || counts[1] != 2 {
		t.Fatalf("unexpected match counts: %v", counts)
	}
}

func TestScannerStopsOnCancelledContext(t *testing.T) {
	sourceDir := filepath.Join("/", "source")
	mock := &mockFS{entries: sourceTree(sourceDir)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := Scanner{FS: mock, Extensions: domain.ParseExtensions(".pdf")}
	if _, err := scanner.Scan(ctx, sourceDir, filepath.Join("/", "dest")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
