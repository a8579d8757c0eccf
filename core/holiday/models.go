package holiday

import (
	"time"

	"github.com/trezcool/ratiba/core"
)

// Holiday is a named, inclusive date interval during which no rotation
// takes place. Holidays are loaded once per school year and treated as
// read-only for the rest of the planning session.
type Holiday struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"` // inclusive
	EndDate   time.Time `json:"end_date"`   // inclusive
}

// Contains reports whether `date` falls within the holiday, compared at
// day granularity.
func (h Holiday) Contains(date time.Time) bool {
	d := core.Day(date)
	return !d.Before(core.Day(h.StartDate)) && !d.After(core.Day(h.EndDate))
}

// Overlaps reports whether the holiday intersects [start, end], both
// bounds inclusive, at day granularity.
func (h Holiday) Overlaps(start, end time.Time) bool {
	s, e := core.Day(start), core.Day(end)
	return !(core.Day(h.EndDate).Before(s) || e.Before(core.Day(h.StartDate)))
}

// MultiDay reports whether the holiday spans more than one calendar day.
func (h Holiday) MultiDay() bool {
	return core.Day(h.EndDate).After(core.Day(h.StartDate))
}

// NewHoliday contains information needed to record a new Holiday.
type NewHoliday struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

func (nh *NewHoliday) Validate() error {
	nh.Name = core.CleanString(nh.Name)
	if err := core.Validate.Struct(nh); err != nil {
		return err
	}
	if core.Day(nh.EndDate).Before(core.Day(nh.StartDate)) {
		return core.NewValidationError(nil, core.FieldError{Field: "end_date", Error: "end date cannot precede start date"})
	}
	return nil
}
