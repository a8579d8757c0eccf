package schedule

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/group"
	"github.com/trezcool/ratiba/core/holiday"
)

var (
	// errors
	ErrPlanNotFound = errors.New("no plan saved for this class and year")
)

// OverwriteWarning is returned by Save when a differing plan already
// exists and the caller did not force the overwrite. It carries the
// unified diff for the UI to surface.
type OverwriteWarning struct {
	Diff string
}

func (w *OverwriteWarning) Error() string {
	return "a differing plan is already saved for this class and year"
}

type (
	Repository interface {
		SavePlan(p Plan) (Plan, error)
		GetLatestPlan(classID, year int) (Plan, error)
	}

	// RosterRepository reads the externally owned teacher data the
	// rotation needs: static session assignments and teacher contacts.
	RosterRepository interface {
		QuerySessionAssignments(classID int) ([]SessionAssignment, error)
		QueryTeachersByID(ids ...int) ([]TeacherRef, error)
	}

	Service struct {
		repo      Repository
		holidays  holiday.Repository
		roster    RosterRepository
		groups    group.Repository
		mailSvc   core.EmailService
		logger    core.Logger
		nowFunc   func() time.Time // mockable
		newIDFunc func() uuid.UUID // mockable
	}
)

func NewService(repo Repository, holidays holiday.Repository, roster RosterRepository, groups group.Repository, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{
		repo:      repo,
		holidays:  holidays,
		roster:    roster,
		groups:    groups,
		mailSvc:   mailSvc,
		logger:    logger,
		nowFunc:   time.Now,
		newIDFunc: uuid.New,
	}
}

// Preview derives the full plan (rotation dates, term allocation,
// rotation matrix per session) from the input without persisting
// anything. Re-running it with the same inputs always yields the same
// output.
func (svc *Service) Preview(input PlanInput) (Plan, error) {
	holidays, err := svc.holidays.QueryHolidaysByYear(input.Year)
	if err != nil {
		return Plan{}, pkgerrors.Wrap(err, "querying holidays")
	}
	idx := holiday.NewIndex(holidays)

	weekday := time.Weekday(input.Weekday)
	dates := GenerateDates(input.StartDate, input.EndDate, weekday, idx)
	alloc := AllocateTerms(dates, input.TermCount, input.Overrides, holidays, weekday)

	groups, err := svc.groups.QueryGroupsByClass(input.ClassID)
	if err != nil && err != group.ErrNoGroups {
		return Plan{}, pkgerrors.Wrap(err, "querying groups")
	}
	regular := RegularGroups(groups)

	assignments, err := svc.roster.QuerySessionAssignments(input.ClassID)
	if err != nil {
		return Plan{}, pkgerrors.Wrap(err, "querying session assignments")
	}

	cells := make(map[Session][]RotationCell, len(Sessions))
	for _, session := range Sessions {
		cells[session] = Assign(regular, SessionTeachers(assignments, session), input.TermCount)
	}

	return Plan{
		ClassID:         input.ClassID,
		Year:            input.Year,
		Input:           input,
		Terms:           alloc.Terms,
		Cells:           cells,
		AllocationError: alloc.Error,
	}, nil
}

// Save derives the plan and persists it. When a differing plan already
// exists and force is false, nothing is written and an
// *OverwriteWarning carrying the diff is returned for the caller to
// surface ("warn before overwrite"). Conflicting concurrent saves are
// last-write-wins at the storage layer.
func (svc *Service) Save(input PlanInput, force bool) (Plan, error) {
	plan, err := svc.Preview(input)
	if err != nil {
		return Plan{}, err
	}

	old, err := svc.repo.GetLatestPlan(input.ClassID, input.Year)
	switch err {
	case nil:
		if !force && PlanChanged(old, plan) {
			return Plan{}, &OverwriteWarning{Diff: PlanDiff(old, plan)}
		}
	case ErrPlanNotFound:
		// first save, nothing to warn about
	default:
		return Plan{}, pkgerrors.Wrap(err, "querying saved plan")
	}

	plan.ID = svc.newIDFunc()
	plan.CreatedAt = svc.nowFunc().UTC()
	saved, err := svc.repo.SavePlan(plan)
	if err != nil {
		return Plan{}, pkgerrors.Wrap(err, "saving plan")
	}

	svc.notifyTeachers(saved)
	return saved, nil
}

// Latest returns the saved plan for the class and year.
func (svc *Service) Latest(classID, year int) (Plan, error) {
	return svc.repo.GetLatestPlan(classID, year)
}

// notifyTeachers emails every teacher appearing in the saved rotation.
func (svc *Service) notifyTeachers(plan Plan) {
	seen := make(map[int]bool)
	var ids []int
	for _, cells := range plan.Cells {
		for _, c := range cells {
			if !seen[c.TeacherID] {
				seen[c.TeacherID] = true
				ids = append(ids, c.TeacherID)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	teachers, err := svc.roster.QueryTeachersByID(ids...)
	if err != nil {
		svc.logger.Error("querying teachers for plan notification", err)
		return
	}
	to := make([]mail.Address, 0, len(teachers))
	for _, t := range teachers {
		if t.Email != "" {
			to = append(to, mail.Address{Name: t.Name, Address: t.Email})
		}
	}
	if len(to) == 0 {
		return
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("Rotation schedule published for %d/%d", plan.Year, plan.Year+1),
		BodyStr: planSummary(plan),
	})
}

func planSummary(plan Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new rotation schedule was published for class %d.\n\n", plan.ClassID)
	for _, term := range plan.Terms {
		if len(term.Dates) == 0 {
			fmt.Fprintf(&b, "Term %d: no rotation dates\n", term.Index)
			continue
		}
		fmt.Fprintf(&b, "Term %d: %d weeks, %s to %s\n",
			term.Index, len(term.Dates),
			term.Dates[0].Format("Jan 2 2006"),
			term.Dates[len(term.Dates)-1].Format("Jan 2 2006"),
		)
	}
	if plan.AllocationError != "" {
		fmt.Fprintf(&b, "\nWarning: %s\n", plan.AllocationError)
	}
	return b.String()
}
