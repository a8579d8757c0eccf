package sqlxrepos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/ratiba/core/group"
	"github.com/trezcool/ratiba/core/schedule"
)

type rosterRepository struct {
	db *sqlx.DB
}

var (
	_ group.RosterRepository    = (*rosterRepository)(nil) // interface compliance check
	_ schedule.RosterRepository = (*rosterRepository)(nil)
)

func NewRosterRepository(db *sqlx.DB) *rosterRepository {
	return &rosterRepository{db: db}
}

type (
	studentRow struct {
		ID        int    `db:"id"`
		ClassID   int    `db:"class_id"`
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
	}

	teacherRow struct {
		ID    int         `db:"id"`
		Name  null.String `db:"name"`
		Email null.String `db:"email"`
	}

	assignmentRow struct {
		ID                int      `db:"id"`
		ClassID           int      `db:"class_id"`
		Session           string   `db:"session"`
		GroupID           int      `db:"group_id"`
		TeacherID         int      `db:"teacher_id"`
		SubjectID         null.Int `db:"subject_id"`
		LearningContentID null.Int `db:"learning_content_id"`
		RoomID            null.Int `db:"room_id"`
	}
)

func (repo *rosterRepository) QueryStudentsByClass(classID int) ([]group.Student, error) {
	var rows []studentRow
	err := repo.db.Select(&rows,
		`SELECT * FROM student WHERE class_id = $1 ORDER BY last_name, first_name`, classID)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}

	students := make([]group.Student, 0, len(rows))
	for _, r := range rows {
		students = append(students, group.Student{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName})
	}
	return students, nil
}

func (repo *rosterRepository) QuerySessionAssignments(classID int) ([]schedule.SessionAssignment, error) {
	var rows []assignmentRow
	err := repo.db.Select(&rows,
		`SELECT * FROM session_assignment WHERE class_id = $1 ORDER BY session, group_id`, classID)
	if err != nil {
		return nil, errors.Wrap(err, "querying session assignments")
	}

	assignments := make([]schedule.SessionAssignment, 0, len(rows))
	for _, r := range rows {
		assignments = append(assignments, schedule.SessionAssignment{
			Session:           schedule.Session(r.Session),
			GroupID:           r.GroupID,
			TeacherID:         r.TeacherID,
			SubjectID:         int(r.SubjectID.Int),
			LearningContentID: int(r.LearningContentID.Int),
			RoomID:            int(r.RoomID.Int),
		})
	}
	return assignments, nil
}

func (repo *rosterRepository) QueryTeachersByID(ids ...int) ([]schedule.TeacherRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM teacher WHERE id IN (?)`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "building teacher query")
	}

	var rows []teacherRow
	if err := repo.db.Select(&rows, repo.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "querying teachers")
	}

	teachers := make([]schedule.TeacherRef, 0, len(rows))
	for _, r := range rows {
		teachers = append(teachers, schedule.TeacherRef{ID: r.ID, Name: r.Name.String, Email: r.Email.String})
	}
	return teachers, nil
}
