package history

// SelectTail keeps the last numPoints values and, out of those, only the values whose 1-based position is an
// exact multiple of interval. The chronological order is preserved. Callers must provide numPoints >= 1 and
// interval >= 1
func SelectTail(values []string, numPoints int, interval int) []string {
	if len(values) > numPoints {
		values = values[len(values)-numPoints:]
	}

	selected := make([]string, 0, len(values)/interval)
	for i := interval; i <= len(values); i += interval {
		selected = append(selected, values[i-1])
	}

	return selected
}
