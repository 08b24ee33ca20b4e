package app

import (
	"context"
	"errors"
	"path/filepath"

	"fex/internal/domain"
	appErrors "fex/internal/errors"
	"fex/internal/logging"
)

// ProgressFunc is called after each processed item with the running
// count and the plan total.
type ProgressFunc func(current, total int)

// ResultFunc receives the outcome of each processed item.
type ResultFunc func(result domain.Result)

type Copier struct {
	FS         FileSystem
	Logger     logging.Logger
	Overwrite  bool
	OnProgress ProgressFunc
	OnResult   ResultFunc
}

// Run processes the plan in order and returns the outcome counters.
// Per-file errors are recorded as failed outcomes and never abort the
// run; only context cancellation cuts it short.
func (c *Copier) Run(ctx context.Context, plan domain.CopyPlan) (domain.Summary, error) {
	if c.FS == nil {
		return domain.Summary{}, errors.New("copier requires FS")
	}

	stop := c.Logger.Measure("Copying files")
	defer stop()

	var summary domain.Summary
	total := plan.Total()

	for i, item := range plan.Items {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		result := c.copyItem(item)
		summary.Record(result)

		if c.OnResult != nil {
			c.OnResult(result)
		}
		if c.OnProgress != nil {
			c.OnProgress(i+1, total)
		}
	}

	c.Logger.Verbosef("Processed %d files: %d copied, %d overwritten, %d skipped, %d failed",
		summary.Total(), summary.Copied, summary.Overwritten, summary.Skipped, summary.Failed)

	return summary, nil
}

// copyItem applies the duplicate policy and copies a single item. The
// existence check happens here rather than at plan time so a flattened
// run sees files written earlier in the same run.
func (c *Copier) copyItem(item domain.CopyItem) domain.Result {
	if item.ScanErr != nil {
		return failed(item, appErrors.Wrap(appErrors.Copy, "scan", item.Entry.SourcePath, item.ScanErr))
	}

	exists, err := c.FS.Exists(item.TargetPath)
	if err != nil {
		return failed(item, appErrors.Wrap(appErrors.Copy, "stat", item.TargetPath, err))
	}
	if exists && !c.Overwrite {
		return domain.Result{Item: item, Outcome: domain.OutcomeSkipped}
	}

	targetDir := filepath.Dir(item.TargetPath)
	if err := c.FS.MkdirAll(targetDir, 0o755); err != nil {
		return failed(item, appErrors.Wrap(appErrors.DirCreate, "mkdir", targetDir, err))
	}

	if err := c.FS.CopyFile(item.Entry.SourcePath, item.TargetPath); err != nil {
		return failed(item, appErrors.Wrap(appErrors.Copy, "copy", item.Entry.SourcePath, err))
	}

	if exists {
		return domain.Result{Item: item, Outcome: domain.OutcomeOverwritten}
	}
	return domain.Result{Item: item, Outcome: domain.OutcomeCopied}
}

func failed(item domain.CopyItem, err error) domain.Result {
	return domain.Result{Item: item, Outcome: domain.OutcomeFailed, Err: err}
}
