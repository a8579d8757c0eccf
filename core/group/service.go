package group

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var ErrNoGroups = errors.New("no groups for this class")

type (
	Repository interface {
		QueryGroupsByClass(classID int) ([]Group, error)
		// SaveGroups replaces the class's group list atomically. `manual`
		// records whether the list contains hand-made placements; once set
		// it sticks until the next full (re)initialization.
		SaveGroups(classID int, groups []Group, manual bool) error
		HasManualAssignment(classID int) (bool, error)
	}

	RosterRepository interface {
		QueryStudentsByClass(classID int) ([]Student, error)
	}

	Service struct {
		repo         Repository
		roster       RosterRepository
		maxGroupSize int
	}
)

func NewService(repo Repository, roster RosterRepository, maxGroupSize int) *Service {
	return &Service{repo: repo, roster: roster, maxGroupSize: maxGroupSize}
}

func (svc *Service) MaxGroupSize() int { return svc.maxGroupSize }

func (svc *Service) Groups(classID int) ([]Group, error) {
	return svc.repo.QueryGroupsByClass(classID)
}

// Initialize splits the class roster evenly into groupCount groups and
// persists the result, dropping any previous (manual or not) placement.
func (svc *Service) Initialize(classID, groupCount int) ([]Group, error) {
	students, err := svc.roster.QueryStudentsByClass(classID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying class roster")
	}
	groups := Initialize(students, groupCount)
	if err := svc.repo.SaveGroups(classID, groups, false); err != nil {
		return nil, pkgerrors.Wrap(err, "saving groups")
	}
	return groups, nil
}

// ChangeCount is the single entry point for a group-count change: it
// rebalances evenly while no manual placement exists, and otherwise
// preserves manual placement, dissolving excess groups into the
// unassigned pool. Renumbering to a dense 1..N sequence happens in both
// paths.
func (svc *Service) ChangeCount(classID, newGroupCount int) ([]Group, error) {
	current, err := svc.repo.QueryGroupsByClass(classID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying groups")
	}
	manual, err := svc.repo.HasManualAssignment(classID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying assignment state")
	}

	var groups []Group
	if manual {
		groups = Resize(current, newGroupCount)
	} else {
		groups = Rebalance(current, newGroupCount)
	}
	if err := svc.repo.SaveGroups(classID, groups, manual); err != nil {
		return nil, pkgerrors.Wrap(err, "saving groups")
	}
	return groups, nil
}

// Move places one student into a target group; ErrGroupFull and
// ErrUnassignedMove pass through untouched for the caller to surface.
func (svc *Service) Move(classID int, mv MoveStudentInput) ([]Group, error) {
	current, err := svc.repo.QueryGroupsByClass(classID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying groups")
	}
	groups, err := MoveStudent(current, mv.StudentID, mv.TargetGroupID, svc.maxGroupSize)
	if err != nil {
		return nil, err
	}
	if err := svc.repo.SaveGroups(classID, groups, true); err != nil {
		return nil, pkgerrors.Wrap(err, "saving groups")
	}
	return groups, nil
}

// Remove sends one student back to the unassigned pool.
func (svc *Service) Remove(classID, studentID int) ([]Group, error) {
	current, err := svc.repo.QueryGroupsByClass(classID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying groups")
	}
	groups, err := RemoveToUnassigned(current, studentID)
	if err != nil {
		return nil, err
	}
	if err := svc.repo.SaveGroups(classID, groups, true); err != nil {
		return nil, pkgerrors.Wrap(err, "saving groups")
	}
	return groups, nil
}
