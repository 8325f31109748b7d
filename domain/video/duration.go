package video

// TotalDuration sums the durations of every clip in the set.
// An empty or nil set yields 00:00:00.
func TotalDuration(set *ClipSet) Timestamp {
	total := 0
	for _, c := range set.Clips() {
		total += c.DurationSeconds()
	}
	return FromSeconds(total)
}

// FormatSeconds renders a second count as zero-padded HH:MM:SS
func FormatSeconds(total int) string {
	return FromSeconds(total).String()
}
