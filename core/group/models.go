package group

import (
	"sort"
	"strings"

	"github.com/trezcool/ratiba/core"
)

// UnassignedID is the id of the permanent unassigned pool. The pool
// always exists (even empty), is never counted toward the max group
// size, and is always sorted first.
const UnassignedID = 0

// Student is an externally owned roster record; the scheduling core
// treats it as an opaque value compared by ID.
type Student struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Group holds the students placed together for the rotation activity.
type Group struct {
	ID       int       `json:"id"`
	Students []Student `json:"students"`
}

func (g Group) IsUnassigned() bool { return g.ID == UnassignedID }

// clone returns a deep copy; partition operations never mutate their
// inputs.
func (g Group) clone() Group {
	students := make([]Student, len(g.Students))
	copy(students, g.Students)
	return Group{ID: g.ID, Students: students}
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.clone())
	}
	return out
}

// sortStudents orders students by last name then first name, ascending
// and case-insensitive, for a stable, human-predictable split.
func sortStudents(students []Student) []Student {
	out := make([]Student, len(students))
	copy(out, students)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].LastName), strings.ToLower(out[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(out[i].FirstName) < strings.ToLower(out[j].FirstName)
	})
	return out
}

// ResizeGroups is the user-entered input for a group-count change.
type ResizeGroups struct {
	GroupCount int `json:"group_count" validate:"required,min=2,max=4"`
}

func (rg ResizeGroups) Validate() error { return core.Validate.Struct(rg) }

// MoveStudentInput is the user-entered input for a single drag/move.
type MoveStudentInput struct {
	StudentID     int `json:"student_id" validate:"required"`
	TargetGroupID int `json:"target_group_id" validate:"required,min=1"`
}

func (mi MoveStudentInput) Validate() error { return core.Validate.Struct(mi) }

// RemoveStudentInput is the user-entered input for an explicit removal
// to the unassigned pool.
type RemoveStudentInput struct {
	StudentID int `json:"student_id" validate:"required"`
}

func (ri RemoveStudentInput) Validate() error { return core.Validate.Struct(ri) }
