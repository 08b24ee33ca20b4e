package domain

// DuplicatePolicyLabel names the duplicate handling choice for display.
func DuplicatePolicyLabel(overwrite bool) string {
	if overwrite {
		return "overwrite"
	}
	return "skip"
}

// LayoutLabel names the destination layout choice for display.
func LayoutLabel(preserve bool) string {
	if preserve {
		return "preserve structure"
	}
	return "flatten"
}
