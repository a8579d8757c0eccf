package sqlxrepos

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/ratiba/core/schedule"
)

type planRepository struct {
	db *sqlx.DB
}

var _ schedule.Repository = (*planRepository)(nil) // interface compliance check

func NewPlanRepository(db *sqlx.DB) *planRepository {
	return &planRepository{db: db}
}

func (repo *planRepository) SavePlan(p schedule.Plan) (schedule.Plan, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return schedule.Plan{}, errors.Wrap(err, "encoding plan")
	}
	_, err = repo.db.Exec(
		`INSERT INTO plan (id, class_id, year, payload, allocation_error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.ClassID, p.Year, payload, null.NewString(p.AllocationError, p.AllocationError != ""), p.CreatedAt,
	)
	if err != nil {
		return schedule.Plan{}, errors.Wrap(err, "inserting plan")
	}
	return p, nil
}

func (repo *planRepository) GetLatestPlan(classID, year int) (schedule.Plan, error) {
	var payload []byte
	err := repo.db.QueryRow(
		`SELECT payload FROM plan WHERE class_id = $1 AND year = $2 ORDER BY created_at DESC LIMIT 1`,
		classID, year,
	).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return schedule.Plan{}, schedule.ErrPlanNotFound
		}
		return schedule.Plan{}, errors.Wrap(err, "querying plan")
	}

	var p schedule.Plan
	if err := json.Unmarshal(payload, &p); err != nil {
		return schedule.Plan{}, errors.Wrap(err, "decoding plan")
	}
	return p, nil
}
