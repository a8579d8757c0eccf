package schedule

import (
	"strings"
	"testing"
	"time"
)

func testPlan(teacherOffset int) Plan {
	groups := testGroups(2)
	teachers := testTeachers(10+teacherOffset, 20+teacherOffset)
	return Plan{
		ClassID: 1,
		Year:    2020,
		Terms: []Term{
			{Index: 1, Dates: mondays(date(2020, 9, 7), 2)},
			{Index: 2, Dates: mondays(date(2020, 9, 21), 2)},
		},
		Cells: map[Session][]RotationCell{
			SessionMorning: Assign(groups, teachers, 2),
		},
	}
}

func TestPlanChanged(t *testing.T) {
	a, b := testPlan(0), testPlan(0)
	if PlanChanged(a, b) {
		t.Error("PlanChanged() = true for identical plans")
	}

	c := testPlan(1)
	if !PlanChanged(a, c) {
		t.Error("PlanChanged() = false for different teacher sets")
	}

	// a term date change alone is a change
	d := testPlan(0)
	d.Terms[1].Dates = append([]time.Time{}, d.Terms[1].Dates...)
	d.Terms[1].Dates[1] = d.Terms[1].Dates[1].AddDate(0, 0, 7)
	if !PlanChanged(a, d) {
		t.Error("PlanChanged() = false for shifted term dates")
	}
}

func TestPlanDiff(t *testing.T) {
	diff := PlanDiff(testPlan(0), testPlan(1))
	if diff == "" {
		t.Fatal("PlanDiff() returned empty diff for differing plans")
	}
	if !strings.Contains(diff, "teacher 10") || !strings.Contains(diff, "teacher 11") {
		t.Errorf("PlanDiff() does not mention the changed teachers:\n%s", diff)
	}
}
