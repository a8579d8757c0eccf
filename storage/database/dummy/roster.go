package dummydb

import (
	"github.com/trezcool/ratiba/core/group"
	"github.com/trezcool/ratiba/core/schedule"
)

type rosterRepository struct {
	db *rosterTable
}

var (
	_ group.RosterRepository    = (*rosterRepository)(nil) // interface compliance check
	_ schedule.RosterRepository = (*rosterRepository)(nil)
)

func NewRosterRepository(db *DB) *rosterRepository {
	return &rosterRepository{db: db.roster}
}

func (repo *rosterRepository) QueryStudentsByClass(classID int) ([]group.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]group.Student, len(repo.db.students[classID]))
	copy(students, repo.db.students[classID])
	return students, nil
}

func (repo *rosterRepository) QuerySessionAssignments(classID int) ([]schedule.SessionAssignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	assignments := make([]schedule.SessionAssignment, len(repo.db.assignments[classID]))
	copy(assignments, repo.db.assignments[classID])
	return assignments, nil
}

func (repo *rosterRepository) QueryTeachersByID(ids ...int) ([]schedule.TeacherRef, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	teachers := make([]schedule.TeacherRef, 0, len(ids))
	for _, id := range ids {
		if t, ok := repo.db.teachers[id]; ok {
			teachers = append(teachers, *t)
		}
	}
	return teachers, nil
}

// SetStudents seeds a class roster; fixtures and dev only.
func (repo *rosterRepository) SetStudents(classID int, students []group.Student) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.students[classID] = students
}

// SetTeacher seeds a teacher record; fixtures and dev only.
func (repo *rosterRepository) SetTeacher(t schedule.TeacherRef) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.teachers[t.ID] = &t
}

// SetAssignments seeds a class's static session assignments; fixtures and dev only.
func (repo *rosterRepository) SetAssignments(classID int, assignments []schedule.SessionAssignment) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.assignments[classID] = assignments
}
