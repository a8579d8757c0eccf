package holiday

import "time"

// Index answers day-granularity holiday queries over a fixed set of
// holidays. A nil or empty Index excludes nothing.
type Index struct {
	holidays []Holiday
}

func NewIndex(holidays []Holiday) *Index {
	return &Index{holidays: holidays}
}

// IsHoliday reports whether `date` falls inside any holiday interval.
func (idx *Index) IsHoliday(date time.Time) bool {
	if idx == nil {
		return false
	}
	for _, h := range idx.holidays {
		if h.Contains(date) {
			return true
		}
	}
	return false
}

// Overlapping returns every holiday whose interval intersects
// [start, end], in load order.
func (idx *Index) Overlapping(start, end time.Time) []Holiday {
	if idx == nil {
		return nil
	}
	overlapping := make([]Holiday, 0, len(idx.holidays))
	for _, h := range idx.holidays {
		if h.Overlaps(start, end) {
			overlapping = append(overlapping, h)
		}
	}
	return overlapping
}

// Holidays returns the indexed holidays in load order.
func (idx *Index) Holidays() []Holiday {
	if idx == nil {
		return nil
	}
	return idx.holidays
}
