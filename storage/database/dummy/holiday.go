package dummydb

import (
	"sort"

	"github.com/trezcool/ratiba/core/holiday"
)

var holidayPKCount int

type holidayRepository struct {
	db *holidayTable
}

var _ holiday.Repository = (*holidayRepository)(nil) // interface compliance check

func NewHolidayRepository(db *DB) holiday.Repository {
	return &holidayRepository{db: db.holiday}
}

func (repo *holidayRepository) query() []holiday.Holiday {
	holidays := make([]holiday.Holiday, 0, len(repo.db.table))
	for _, h := range repo.db.table {
		holidays = append(holidays, *h)
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].StartDate.Before(holidays[j].StartDate) })
	return holidays
}

func (repo *holidayRepository) CreateHoliday(h holiday.Holiday) (holiday.Holiday, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	holidayPKCount++
	h.ID = holidayPKCount
	repo.db.table[h.ID] = &h
	return h, nil
}

func (repo *holidayRepository) QueryAllHolidays() ([]holiday.Holiday, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *holidayRepository) QueryHolidaysByYear(year int) ([]holiday.Holiday, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// school year: Aug 1 of `year` through Jul 31 of the next
	holidays := make([]holiday.Holiday, 0)
	for _, h := range repo.query() {
		if h.EndDate.Year() < year || h.StartDate.Year() > year+1 {
			continue
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

func (repo *holidayRepository) GetHolidayByID(id int) (holiday.Holiday, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if h, ok := repo.db.table[id]; ok {
		return *h, nil
	}
	return holiday.Holiday{}, holiday.ErrNotFound
}
