package group

import (
	"errors"
	"sort"
)

var (
	// errors
	ErrGroupFull       = errors.New("group is at maximum capacity")
	ErrGroupNotFound   = errors.New("group not found")
	ErrStudentNotFound = errors.New("student not found in any group")
	ErrUnassignedMove  = errors.New("students can only be removed to the unassigned pool, not moved into it")
)

// Initialize splits the roster into groupCount groups plus the empty
// unassigned pool, groupCount+1 groups in total. Students are sorted by
// (last name, first name) and sliced sequentially: every group except
// possibly the last gets exactly ceil(n/groupCount) students, the last
// gets the remainder.
func Initialize(students []Student, groupCount int) []Group {
	if groupCount < 1 {
		panic("group.Initialize: groupCount must be >= 1")
	}

	sorted := sortStudents(students)
	perGroup := (len(sorted) + groupCount - 1) / groupCount // ceil

	groups := make([]Group, 0, groupCount+1)
	groups = append(groups, Group{ID: UnassignedID, Students: []Student{}})

	for i := 1; i <= groupCount; i++ {
		start := (i - 1) * perGroup
		if start > len(sorted) {
			start = len(sorted)
		}
		end := start + perGroup
		if end > len(sorted) {
			end = len(sorted)
		}
		members := make([]Student, end-start)
		copy(members, sorted[start:end])
		groups = append(groups, Group{ID: i, Students: members})
	}
	return groups
}

// Rebalance redistributes every student currently placed anywhere
// (unassigned pool included) across newGroupCount groups, using the same
// split as Initialize. Only used while no manual assignment has been
// persisted yet; once a user has placed students by hand, a count change
// goes through Renumber instead.
func Rebalance(current []Group, newGroupCount int) []Group {
	var all []Student
	for _, g := range current {
		all = append(all, g.Students...)
	}
	return Initialize(all, newGroupCount)
}

// MoveStudent moves one student into the target group, leaving every
// other group's membership and the target's pre-existing order intact.
// Moving into a group already holding maxGroupSize students fails with
// ErrGroupFull and disturbs nothing. The unassigned pool is not a valid
// target; RemoveToUnassigned is the only way in.
func MoveStudent(current []Group, studentID, targetGroupID, maxGroupSize int) ([]Group, error) {
	if targetGroupID == UnassignedID {
		return nil, ErrUnassignedMove
	}

	target := -1
	for i, g := range current {
		if g.ID == targetGroupID {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, ErrGroupNotFound
	}
	if len(current[target].Students) >= maxGroupSize {
		return nil, ErrGroupFull
	}
	return relocate(current, studentID, target)
}

// RemoveToUnassigned moves one student back into the uncapped unassigned
// pool. It always succeeds for a placed student.
func RemoveToUnassigned(current []Group, studentID int) ([]Group, error) {
	target := -1
	for i, g := range current {
		if g.ID == UnassignedID {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, ErrGroupNotFound
	}
	return relocate(current, studentID, target)
}

// relocate detaches the student from whichever group holds them and
// appends them to groups[target]. Exactly-one-membership is the standing
// invariant; a student found nowhere is a programming error upstream,
// reported as ErrStudentNotFound.
func relocate(current []Group, studentID, target int) ([]Group, error) {
	groups := cloneGroups(current)

	var student *Student
	for i := range groups {
		for j, s := range groups[i].Students {
			if s.ID == studentID {
				if i == target {
					return groups, nil // already there
				}
				st := s
				student = &st
				groups[i].Students = append(groups[i].Students[:j], groups[i].Students[j+1:]...)
				break
			}
		}
		if student != nil {
			break
		}
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	groups[target].Students = append(groups[target].Students, *student)
	return groups, nil
}

// Renumber restores the dense 1..N id sequence after a count change that
// must preserve manual placement: regular groups are kept in prior-id
// order and renumbered consecutively; the unassigned pool is preserved
// as-is and sorted first.
func Renumber(current []Group) []Group {
	groups := cloneGroups(current)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })

	pool := Group{ID: UnassignedID, Students: []Student{}}
	regular := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.IsUnassigned() {
			pool = g
			continue
		}
		regular = append(regular, g)
	}

	out := make([]Group, 0, len(regular)+1)
	out = append(out, pool)
	for i, g := range regular {
		g.ID = i + 1
		out = append(out, g)
	}
	return out
}

// Resize adjusts a manually assigned group list to newGroupCount regular
// groups: excess groups are dissolved into the unassigned pool, missing
// groups are added empty, and ids are renumbered densely.
func Resize(current []Group, newGroupCount int) []Group {
	groups := Renumber(current)

	// after Renumber, ids are dense and ascending: groups beyond the new
	// count form the tail; dissolve them into the pool
	cut := len(groups)
	for i, g := range groups {
		if g.ID > newGroupCount {
			cut = i
			break
		}
	}
	for _, g := range groups[cut:] {
		groups[0].Students = append(groups[0].Students, g.Students...)
	}
	groups = groups[:cut]

	// top up with empty groups
	for i := len(groups); i <= newGroupCount; i++ {
		groups = append(groups, Group{ID: i, Students: []Student{}})
	}
	return groups
}

// Validate checks the exactly-one-membership invariant: every student
// appears in exactly one group, unassigned pool included. A violation is
// a programming error, not a user condition.
func Validate(groups []Group) error {
	seen := make(map[int]bool)
	for _, g := range groups {
		for _, s := range g.Students {
			if seen[s.ID] {
				return errors.New("group invariant violated: duplicate student membership")
			}
			seen[s.ID] = true
		}
	}
	return nil
}
