package config

// mergeable reports whether an incoming optional scalar is eligible to
// override the current one. Incoming wins whenever it is set; an unset
// incoming value never clears a set current value. Assigning an equal value
// is suppressed only to keep the override a no-op, the observable result is
// identical.
func mergeable[T comparable](incoming, current *T) bool {
	if incoming == nil {
		return false
	}
	if current == nil {
		return true
	}
	return *incoming != *current
}

// mergeableList reports whether an incoming collection replaces the current
// one wholesale. A non-nil empty list still replaces; there is no
// element-wise merging.
func mergeableList[T any](incoming []T) bool {
	return incoming != nil
}
