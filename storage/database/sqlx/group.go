package sqlxrepos

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/group"
)

type groupRepository struct {
	db *sqlx.DB
}

var _ group.Repository = (*groupRepository)(nil) // interface compliance check

func NewGroupRepository(db *sqlx.DB) *groupRepository {
	return &groupRepository{db: db}
}

func (repo *groupRepository) QueryGroupsByClass(classID int) ([]group.Group, error) {
	var payload []byte
	err := repo.db.QueryRow(`SELECT payload FROM class_groups WHERE class_id = $1`, classID).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrNoGroups
		}
		return nil, errors.Wrap(err, "querying groups")
	}

	var groups []group.Group
	if err := json.Unmarshal(payload, &groups); err != nil {
		return nil, errors.Wrap(err, "decoding groups")
	}
	return groups, nil
}

func (repo *groupRepository) SaveGroups(classID int, groups []group.Group, manual bool) error {
	payload, err := json.Marshal(groups)
	if err != nil {
		return errors.Wrap(err, "encoding groups")
	}
	_, err = repo.db.Exec(
		`INSERT INTO class_groups (class_id, payload, manual) VALUES ($1, $2, $3)
		 ON CONFLICT (class_id) DO UPDATE SET payload = EXCLUDED.payload, manual = EXCLUDED.manual`,
		classID, payload, manual,
	)
	return errors.Wrap(err, "saving groups")
}

func (repo *groupRepository) HasManualAssignment(classID int) (bool, error) {
	var manual bool
	err := repo.db.QueryRow(`SELECT manual FROM class_groups WHERE class_id = $1`, classID).Scan(&manual)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, errors.Wrap(err, "querying assignment state")
	}
	return manual, nil
}
