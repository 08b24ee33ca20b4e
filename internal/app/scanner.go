package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"fex/internal/domain"
	"fex/internal/logging"
)

// MatchFunc is called during scanning with the running match count.
type MatchFunc func(found int)

type Scanner struct {
	FS         FileSystem
	Logger     logging.Logger
	Extensions domain.ExtensionSet
	Preserve   bool
	OnMatch    MatchFunc
}

// Scan walks the source tree and builds the copy plan. Walk errors
// never abort the scan: unreadable directories become plan warnings,
// and an unreadable entry whose name matches the filter is kept as a
// failed candidate so the run can account for it.
func (s *Scanner) Scan(ctx context.Context, sourceDir, destDir string) (domain.CopyPlan, error) {
	if s.FS == nil {
		return domain.CopyPlan{}, errors.New("scanner requires FS")
	}

	stop := s.Logger.Measure("Scanning source directory")
	defer stop()

	var plan domain.CopyPlan
	err := s.FS.WalkDir(sourceDir, func(path string, d fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if d != nil && !d.IsDir() && s.Extensions.MatchName(d.Name()) {
				item := s.newItem(sourceDir, destDir, path)
				item.ScanErr = walkErr
				plan.Items = append(plan.Items, item)
				s.reportMatch(len(plan.Items))
				return nil
			}
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("cannot read %s: %v", path, walkErr))
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !s.Extensions.MatchName(d.Name()) {
			return nil
		}

		plan.Items = append(plan.Items, s.newItem(sourceDir, destDir, path))
		s.reportMatch(len(plan.Items))
		return nil
	})
	if err != nil {
		return domain.CopyPlan{}, err
	}

	s.Logger.Verbosef("Matched %d files under %s (%d warnings)", len(plan.Items), sourceDir, len(plan.Warnings))
	return plan, nil
}

func (s *Scanner) newItem(sourceDir, destDir, path string) domain.CopyItem {
	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	entry := domain.NewFileEntry(path, rel)

	return domain.CopyItem{
		Entry:      entry,
		TargetPath: ResolveTarget(destDir, entry, s.Preserve),
	}
}

func (s *Scanner) reportMatch(found int) {
	if s.OnMatch != nil {
		s.OnMatch(found)
	}
}

// ResolveTarget computes the destination path for a matched entry.
// Preserve keeps the source-relative layout, otherwise entries land
// flat under the destination root.
func ResolveTarget(destDir string, entry domain.FileEntry, preserve bool) string {
	if preserve {
		return filepath.Join(destDir, entry.RelPath)
	}
	return filepath.Join(destDir, entry.Name)
}
