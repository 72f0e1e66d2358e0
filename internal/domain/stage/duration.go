package stage

import "time"

const (
	secondsPerHour = 60 * 60
	secondsPerDay  = 24 * secondsPerHour
	daysPerWeek    = 7
)

// ComputeDuration derives a stage duration from its date range. It returns
// nil when either date is missing.
//
// The difference is taken in whole calendar units of elapsed UTC time:
// HOURS is days*24 plus the leftover whole hours, DAYS drops any partial day,
// and WEEKS is the whole-day count divided by seven without rounding.
// An unrecognized unit is treated as DefaultUnit.
func ComputeDuration(start, end *time.Time, unit DurationUnit) *float64 {
	if start == nil || end == nil {
		return nil
	}

	// Unix seconds rather than time.Duration: year 1000 to 2999 spans
	// overflow the int64 nanosecond range.
	diff := end.Unix() - start.Unix()
	if diff < 0 {
		diff = -diff
	}
	days := diff / secondsPerDay
	hours := (diff % secondsPerDay) / secondsPerHour

	var d float64
	switch unit.OrDefault() {
	case UnitHours:
		d = float64(days*24 + hours)
	case UnitWeeks:
		d = float64(days) / daysPerWeek
	default:
		d = float64(days)
	}
	return &d
}
