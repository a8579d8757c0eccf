package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/holiday"
)

// Session identifies the half-day a rotation assignment belongs to.
type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
)

var Sessions = []Session{SessionMorning, SessionAfternoon}

// TeacherRef is an externally owned teacher record; the engine only
// needs identity plus contact for publish notifications.
type TeacherRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionAssignment is the static per-session, per-group assignment
// (who teaches which group, not yet rotated across terms).
type SessionAssignment struct {
	Session           Session `json:"session"`
	GroupID           int     `json:"group_id"`
	TeacherID         int     `json:"teacher_id"`
	SubjectID         int     `json:"subject_id"`
	LearningContentID int     `json:"learning_content_id"`
	RoomID            int     `json:"room_id"`
}

// Term is one rotation period: a contiguous run of eligible rotation
// dates, annotated with the holidays skipped inside its span.
type Term struct {
	Index           int               `json:"index"` // 1-based
	Dates           []time.Time       `json:"dates"`
	SkippedHolidays []holiday.Holiday `json:"skipped_holidays"`
}

// Allocation is the result of partitioning the eligible dates into
// terms. A mis-allocation is reported via Error, never panicked: the
// terms still carry whatever chunking was possible and the caller
// decides whether to block saving.
type Allocation struct {
	Terms []Term `json:"terms"`
	Error string `json:"error,omitempty"`
}

func (a Allocation) Mismatched() bool { return a.Error != "" }

// RotationCell pairs one teacher with one group for one term of a
// session; the derived output of the rotation assigner.
type RotationCell struct {
	TermIndex int `json:"term_index"` // 1-based
	GroupID   int `json:"group_id"`
	TeacherID int `json:"teacher_id"`
}

// Plan is the persisted artifact: the full derived schedule for one
// class and school year.
type Plan struct {
	ID              uuid.UUID                  `json:"id"`
	ClassID         int                        `json:"class_id"`
	Year            int                        `json:"year"`
	Input           PlanInput                  `json:"input"`
	Terms           []Term                     `json:"terms"`
	Cells           map[Session][]RotationCell `json:"cells"`
	AllocationError string                     `json:"allocation_error,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"` // UTC
}

// PlanInput carries the user-entered scheduling scalars.
type PlanInput struct {
	ClassID   int       `json:"class_id" validate:"required"`
	Year      int       `json:"year" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	Weekday   int       `json:"weekday" validate:"required,min=1,max=5"` // Monday..Friday
	TermCount int       `json:"term_count" validate:"required,min=1,max=8"`
	// Overrides maps 1-based term indexes to a manual week count.
	Overrides map[int]int `json:"overrides"`
}

func (pi *PlanInput) Validate() error {
	if err := core.Validate.Struct(pi); err != nil {
		return err
	}
	for idx, weeks := range pi.Overrides {
		if idx < 1 || idx > pi.TermCount {
			return core.NewValidationError(nil, core.FieldError{Field: "overrides", Error: "override term index out of range"})
		}
		if weeks < 1 {
			return core.NewValidationError(nil, core.FieldError{Field: "overrides", Error: "override week count must be positive"})
		}
	}
	return nil
}
