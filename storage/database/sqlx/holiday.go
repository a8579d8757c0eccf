package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/holiday"
)

type holidayRepository struct {
	db *sqlx.DB
}

var _ holiday.Repository = (*holidayRepository)(nil) // interface compliance check

func NewHolidayRepository(db *sqlx.DB) *holidayRepository {
	return &holidayRepository{db: db}
}

type holidayRow struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

func (r holidayRow) unmap() holiday.Holiday {
	return holiday.Holiday{ID: r.ID, Name: r.Name, StartDate: r.StartDate, EndDate: r.EndDate}
}

func unmapHolidays(rows []holidayRow) []holiday.Holiday {
	holidays := make([]holiday.Holiday, 0, len(rows))
	for _, r := range rows {
		holidays = append(holidays, r.unmap())
	}
	return holidays
}

func (repo *holidayRepository) CreateHoliday(h holiday.Holiday) (holiday.Holiday, error) {
	err := repo.db.QueryRow(
		`INSERT INTO holiday (name, start_date, end_date) VALUES ($1, $2, $3) RETURNING id`,
		h.Name, h.StartDate, h.EndDate,
	).Scan(&h.ID)
	if err != nil {
		return holiday.Holiday{}, errors.Wrap(err, "inserting holiday")
	}
	return h, nil
}

func (repo *holidayRepository) QueryAllHolidays() ([]holiday.Holiday, error) {
	var rows []holidayRow
	if err := repo.db.Select(&rows, `SELECT * FROM holiday ORDER BY start_date`); err != nil {
		return nil, errors.Wrap(err, "querying holidays")
	}
	return unmapHolidays(rows), nil
}

func (repo *holidayRepository) QueryHolidaysByYear(year int) ([]holiday.Holiday, error) {
	var rows []holidayRow
	err := repo.db.Select(&rows,
		`SELECT * FROM holiday
		 WHERE end_date >= make_date($1, 1, 1) AND start_date <= make_date($2, 12, 31)
		 ORDER BY start_date`,
		year, year+1,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying holidays by year")
	}
	return unmapHolidays(rows), nil
}

func (repo *holidayRepository) GetHolidayByID(id int) (holiday.Holiday, error) {
	var row holidayRow
	if err := repo.db.Get(&row, `SELECT * FROM holiday WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return holiday.Holiday{}, holiday.ErrNotFound
		}
		return holiday.Holiday{}, errors.Wrap(err, "querying holiday")
	}
	return row.unmap(), nil
}
