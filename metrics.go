package arena

// Utilization returns the ratio of bytes claimed to total capacity
// (0.0 to 1.0). Returns 0.0 for an empty arena.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.pos) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Used:        a.Used(),
		Capacity:    a.Capacity(),
		Available:   a.Available(),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
// Used + Available == Capacity always holds in a snapshot.
type Metrics struct {
	Used        int     // Bytes claimed, including alignment padding
	Capacity    int     // Total block size in bytes
	Available   int     // Bytes remaining
	Utilization float64 // Ratio of claimed to total capacity (0.0-1.0)
}
