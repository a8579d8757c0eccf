package group

import (
	"reflect"
	"testing"
)

func roster(n int) []Student {
	// last names in reverse so the sort is actually exercised
	names := []string{
		"Zuberi", "Yusuf", "Wanjiru", "Toure", "Sow", "Otieno", "Njoroge",
		"Mwangi", "Kamau", "Juma", "Diallo", "Chikelu", "Abara", "Abara",
	}
	students := make([]Student, 0, n)
	for i := 0; i < n; i++ {
		students = append(students, Student{ID: i + 1, FirstName: string(rune('A' + i)), LastName: names[i%len(names)]})
	}
	return students
}

func groupSizes(groups []Group) []int {
	sizes := make([]int, 0, len(groups))
	for _, g := range groups {
		sizes = append(sizes, len(g.Students))
	}
	return sizes
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		students   int
		groupCount int
		wantSizes  []int // pool first
	}{
		{name: "13 students in 2 groups", students: 13, groupCount: 2, wantSizes: []int{0, 7, 6}},
		{name: "12 students in 3 groups", students: 12, groupCount: 3, wantSizes: []int{0, 4, 4, 4}},
		{name: "10 students in 4 groups", students: 10, groupCount: 4, wantSizes: []int{0, 3, 3, 3, 1}},
		{name: "empty roster", students: 0, groupCount: 3, wantSizes: []int{0, 0, 0, 0}},
		{name: "fewer students than groups", students: 2, groupCount: 4, wantSizes: []int{0, 1, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := Initialize(roster(tt.students), tt.groupCount)
			if got := groupSizes(groups); !reflect.DeepEqual(got, tt.wantSizes) {
				t.Errorf("Initialize() sizes = %v, want %v", got, tt.wantSizes)
			}
			if groups[0].ID != UnassignedID {
				t.Errorf("Initialize() first group id = %d, want unassigned pool", groups[0].ID)
			}
			for i := 1; i < len(groups); i++ {
				if groups[i].ID != i {
					t.Errorf("Initialize() group ids not dense: got %d at position %d", groups[i].ID, i)
				}
			}
			if err := Validate(groups); err != nil {
				t.Errorf("Initialize() %v", err)
			}
		})
	}
}

func TestInitializeSortsByName(t *testing.T) {
	students := []Student{
		{ID: 1, FirstName: "Binta", LastName: "Toure"},
		{ID: 2, FirstName: "Ayo", LastName: "Abara"},
		{ID: 3, FirstName: "Chi", LastName: "Abara"},
		{ID: 4, FirstName: "Dada", LastName: "Juma"},
	}
	groups := Initialize(students, 2)

	wantFirst := []int{2, 3} // Abara Ayo, Abara Chi
	wantSecond := []int{4, 1}
	gotFirst := []int{groups[1].Students[0].ID, groups[1].Students[1].ID}
	gotSecond := []int{groups[2].Students[0].ID, groups[2].Students[1].ID}
	if !reflect.DeepEqual(gotFirst, wantFirst) || !reflect.DeepEqual(gotSecond, wantSecond) {
		t.Errorf("Initialize() order = %v %v, want %v %v", gotFirst, gotSecond, wantFirst, wantSecond)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	students := roster(13)
	first := Initialize(students, 3)
	second := Rebalance(first, 3)
	third := Rebalance(second, 3)
	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(second, third) {
		t.Error("Initialize()+Rebalance() with unchanged count should be idempotent")
	}
}

func TestRebalanceIncludesUnassigned(t *testing.T) {
	groups := Initialize(roster(10), 2)
	groups, err := RemoveToUnassigned(groups, groups[1].Students[0].ID)
	if err != nil {
		t.Fatalf("RemoveToUnassigned() failed: %v", err)
	}

	rebalanced := Rebalance(groups, 3)
	if got := len(rebalanced[0].Students); got != 0 {
		t.Errorf("Rebalance() left %d students in the pool, want 0", got)
	}
	total := 0
	for _, g := range rebalanced[1:] {
		total += len(g.Students)
	}
	if total != 10 {
		t.Errorf("Rebalance() placed %d students, want 10", total)
	}
}

func TestMoveStudent(t *testing.T) {
	groups := Initialize(roster(6), 2) // [0 | 3 | 3]
	moved, err := MoveStudent(groups, groups[1].Students[0].ID, 2, 12)
	if err != nil {
		t.Fatalf("MoveStudent() failed: %v", err)
	}
	if got := groupSizes(moved); !reflect.DeepEqual(got, []int{0, 2, 4}) {
		t.Errorf("MoveStudent() sizes = %v, want [0 2 4]", got)
	}
	// moved student lands at the end, target's prior order untouched
	last := moved[2].Students[len(moved[2].Students)-1]
	if last.ID != groups[1].Students[0].ID {
		t.Errorf("MoveStudent() appended student %d, want %d", last.ID, groups[1].Students[0].ID)
	}
	for i, s := range moved[2].Students[:3] {
		if s.ID != groups[2].Students[i].ID {
			t.Error("MoveStudent() disturbed the target group's pre-existing order")
			break
		}
	}
	if err := Validate(moved); err != nil {
		t.Errorf("MoveStudent() %v", err)
	}
}

func TestMoveStudentMaxSize(t *testing.T) {
	groups := Initialize(roster(6), 2) // groups of 3
	before := cloneGroups(groups)

	if _, err := MoveStudent(groups, groups[1].Students[0].ID, 2, 3); err != ErrGroupFull {
		t.Fatalf("MoveStudent() error = %v, want ErrGroupFull", err)
	}
	if !reflect.DeepEqual(groups, before) {
		t.Error("MoveStudent() must not disturb state on a capacity failure")
	}
}

func TestMoveStudentErrors(t *testing.T) {
	groups := Initialize(roster(4), 2)

	if _, err := MoveStudent(groups, groups[1].Students[0].ID, UnassignedID, 12); err != ErrUnassignedMove {
		t.Errorf("MoveStudent() into pool error = %v, want ErrUnassignedMove", err)
	}
	if _, err := MoveStudent(groups, groups[1].Students[0].ID, 9, 12); err != ErrGroupNotFound {
		t.Errorf("MoveStudent() into unknown group error = %v, want ErrGroupNotFound", err)
	}
	if _, err := MoveStudent(groups, 999, 2, 12); err != ErrStudentNotFound {
		t.Errorf("MoveStudent() of unknown student error = %v, want ErrStudentNotFound", err)
	}
}

func TestRemoveToUnassigned(t *testing.T) {
	groups := Initialize(roster(4), 2)
	sid := groups[2].Students[0].ID

	removed, err := RemoveToUnassigned(groups, sid)
	if err != nil {
		t.Fatalf("RemoveToUnassigned() failed: %v", err)
	}
	if got := groupSizes(removed); !reflect.DeepEqual(got, []int{1, 2, 1}) {
		t.Errorf("RemoveToUnassigned() sizes = %v, want [1 2 1]", got)
	}
	if removed[0].Students[0].ID != sid {
		t.Errorf("RemoveToUnassigned() pooled student %d, want %d", removed[0].Students[0].ID, sid)
	}
	if err := Validate(removed); err != nil {
		t.Errorf("RemoveToUnassigned() %v", err)
	}
}

func TestRenumber(t *testing.T) {
	groups := []Group{
		{ID: 4, Students: []Student{{ID: 1}}},
		{ID: UnassignedID, Students: []Student{{ID: 2}}},
		{ID: 2, Students: []Student{{ID: 3}}},
	}
	got := Renumber(groups)

	if got[0].ID != UnassignedID || got[0].Students[0].ID != 2 {
		t.Error("Renumber() must keep the unassigned pool first and untouched")
	}
	if got[1].ID != 1 || got[1].Students[0].ID != 3 {
		t.Errorf("Renumber() group[1] = %+v, want old group 2 renumbered to 1", got[1])
	}
	if got[2].ID != 2 || got[2].Students[0].ID != 1 {
		t.Errorf("Renumber() group[2] = %+v, want old group 4 renumbered to 2", got[2])
	}
}

func TestResize(t *testing.T) {
	groups := Initialize(roster(9), 3) // [0 | 3 | 3 | 3]

	shrunk := Resize(groups, 2)
	if got := groupSizes(shrunk); !reflect.DeepEqual(got, []int{3, 3, 3}) {
		t.Errorf("Resize() down sizes = %v, want dissolved third group in pool", got)
	}
	grown := Resize(groups, 4)
	if got := groupSizes(grown); !reflect.DeepEqual(got, []int{0, 3, 3, 3, 0}) {
		t.Errorf("Resize() up sizes = %v, want an extra empty group", got)
	}
	if err := Validate(shrunk); err != nil {
		t.Errorf("Resize() %v", err)
	}
}
