package dummydb

import (
	"github.com/trezcool/ratiba/core/schedule"
)

type planRepository struct {
	db *planTable
}

var _ schedule.Repository = (*planRepository)(nil) // interface compliance check

func NewPlanRepository(db *DB) schedule.Repository {
	return &planRepository{db: db.plan}
}

func (repo *planRepository) SavePlan(p schedule.Plan) (schedule.Plan, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = append(repo.db.table, p)
	return p, nil
}

func (repo *planRepository) GetLatestPlan(classID, year int) (schedule.Plan, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for i := len(repo.db.table) - 1; i >= 0; i-- {
		p := repo.db.table[i]
		if p.ClassID == classID && p.Year == year {
			return p, nil
		}
	}
	return schedule.Plan{}, schedule.ErrPlanNotFound
}
