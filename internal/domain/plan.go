package domain

type CopyItem struct {
	Entry      FileEntry
	TargetPath string
	// ScanErr marks a candidate the walk could not inspect. Such items
	// are counted as failed without touching the filesystem again.
	ScanErr error
}

type CopyPlan struct {
	Items    []CopyItem
	Warnings []string
}

func (p CopyPlan) Total() int {
	return len(p.Items)
}
