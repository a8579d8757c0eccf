package schedule

import (
	"time"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/holiday"
)

// GenerateDates lists, in chronological order, every occurrence of
// `weekday` within [start, end] that does not fall inside a holiday.
// A start date already on the weekday is included. An empty result is a
// valid outcome (e.g. the whole range is one holiday), not an error.
func GenerateDates(start, end time.Time, weekday time.Weekday, idx *holiday.Index) []time.Time {
	first := core.Day(start)
	last := core.Day(end)

	// advance to the first occurrence of weekday on or after start
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	first = first.AddDate(0, 0, offset)

	dates := make([]time.Time, 0, 53)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 7) {
		if idx.IsHoliday(d) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
