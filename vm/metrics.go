package vm

// Metrics is a snapshot of the performance counters of a Directory. Rates
// and utilization are percentages.
type Metrics struct {
	HitRate         float64
	MissRate        float64
	FaultCount      uint64
	HitCount        uint64
	TotalReferences uint64
	Utilization     float64
}

// Metrics returns the current snapshot. Rates are 0 before the first
// reference.
func (d *directory) Metrics() Metrics {
	m := Metrics{
		FaultCount:      d.faults,
		HitCount:        d.hits,
		TotalReferences: d.totalReferences,
	}

	if d.totalReferences > 0 {
		m.HitRate = float64(d.hits) / float64(d.totalReferences) * 100.0
		m.MissRate = float64(d.faults) / float64(d.totalReferences) * 100.0
	}

	m.Utilization = float64(len(d.owners)) / float64(d.frameCount) * 100.0

	return m
}
