package schedule

import (
	"github.com/trezcool/ratiba/core/group"
)

// Assign pairs teachers with groups for every term of a session via
// cyclic rotation: for 1-based term index t, the teacher list is
// rotated left by t-1 positions and paired with the groups index-wise.
// Over teachers-many terms each teacher visits each group exactly once
// (a Latin square when counts match). When group and teacher counts
// differ, the excess on either side is simply left unpaired for that
// term.
//
// `groups` must exclude the unassigned pool and be in id order;
// `teachers` must be deduplicated and in their session order.
func Assign(groups []group.Group, teachers []TeacherRef, termCount int) []RotationCell {
	if len(teachers) == 0 || len(groups) == 0 {
		return nil
	}

	pairs := len(groups)
	if len(teachers) < pairs {
		pairs = len(teachers)
	}

	cells := make([]RotationCell, 0, termCount*pairs)
	for t := 1; t <= termCount; t++ {
		for i := 0; i < pairs; i++ {
			cells = append(cells, RotationCell{
				TermIndex: t,
				GroupID:   groups[i].ID,
				TeacherID: teachers[(i+t-1)%len(teachers)].ID,
			})
		}
	}
	return cells
}

// RegularGroups filters out the unassigned pool.
func RegularGroups(groups []group.Group) []group.Group {
	regular := make([]group.Group, 0, len(groups))
	for _, g := range groups {
		if !g.IsUnassigned() {
			regular = append(regular, g)
		}
	}
	return regular
}

// SessionTeachers derives the ordered, deduplicated teacher id list for
// one session from the static assignments (first appearance wins).
func SessionTeachers(assignments []SessionAssignment, session Session) []TeacherRef {
	seen := make(map[int]bool)
	teachers := make([]TeacherRef, 0, len(assignments))
	for _, a := range assignments {
		if a.Session != session || seen[a.TeacherID] {
			continue
		}
		seen[a.TeacherID] = true
		teachers = append(teachers, TeacherRef{ID: a.TeacherID})
	}
	return teachers
}
