package schedule

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// renderRotation flattens a plan's rotation matrix into canonical,
// sorted lines so two plans can be compared (and diffed) textually.
func renderRotation(p Plan) []string {
	var lines []string
	for session, cells := range p.Cells {
		for _, c := range cells {
			lines = append(lines, fmt.Sprintf("%s term %d: group %d -> teacher %d", session, c.TermIndex, c.GroupID, c.TeacherID))
		}
	}
	for _, t := range p.Terms {
		for _, d := range t.Dates {
			lines = append(lines, fmt.Sprintf("term %d: %s", t.Index, d.Format("2006-01-02")))
		}
	}
	sort.Strings(lines)
	return lines
}

// PlanChanged reports whether the two plans' derived schedules (term
// dates and rotation cells) differ. The save workflow uses it to decide
// whether an overwrite warning is due before persisting.
func PlanChanged(old, new Plan) bool {
	a, b := renderRotation(old), renderRotation(new)
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// PlanDiff renders a unified diff of the two plans' schedules for the
// overwrite warning.
func PlanDiff(old, new Plan) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(renderRotation(old)),
		B:        withNewlines(renderRotation(new)),
		FromFile: "saved plan",
		ToFile:   "new plan",
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return diff
}

// difflib expects newline-terminated lines
func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
