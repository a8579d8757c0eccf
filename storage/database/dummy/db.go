package dummydb

import (
	"sync"

	"github.com/trezcool/ratiba/core/group"
	"github.com/trezcool/ratiba/core/holiday"
	"github.com/trezcool/ratiba/core/schedule"
)

type (
	DB struct {
		holiday *holidayTable
		roster  *rosterTable
		groups  *groupTable
		plan    *planTable
	}

	holidayTable struct {
		sync.RWMutex
		table map[int]*holiday.Holiday
	}

	rosterTable struct {
		sync.RWMutex
		students    map[int][]group.Student // by class id
		teachers    map[int]*schedule.TeacherRef
		assignments map[int][]schedule.SessionAssignment // by class id
	}

	groupTable struct {
		sync.RWMutex
		table  map[int][]group.Group // by class id
		manual map[int]bool
	}

	planTable struct {
		sync.RWMutex
		table []schedule.Plan // in save order
	}
)

func Open() (*DB, error) {
	db := &DB{
		holiday: &holidayTable{table: make(map[int]*holiday.Holiday)},
		roster: &rosterTable{
			students:    make(map[int][]group.Student),
			teachers:    make(map[int]*schedule.TeacherRef),
			assignments: make(map[int][]schedule.SessionAssignment),
		},
		groups: &groupTable{table: make(map[int][]group.Group), manual: make(map[int]bool)},
		plan:   &planTable{},
	}
	return db, nil
}
