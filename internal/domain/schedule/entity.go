package schedule

import "time"

// StandardSchedule holds a company's expected shift times, stored as minutes
// of day. It is the per-company source for lateness thresholds; the calculator
// itself never hard-codes cutoffs.
type StandardSchedule struct {
	ID        string
	CompanyID string

	MorningInMinute    int
	MorningOutMinute   int
	AfternoonInMinute  int
	AfternoonOutMinute int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Thresholds are the lateness cutoffs used by the metrics calculator,
// expressed as minutes of day.
type Thresholds struct {
	MorningLateMinute   int
	AfternoonLateMinute int
}
