package dummydb

import (
	"github.com/trezcool/ratiba/core/group"
)

type groupRepository struct {
	db *groupTable
}

var _ group.Repository = (*groupRepository)(nil) // interface compliance check

func NewGroupRepository(db *DB) group.Repository {
	return &groupRepository{db: db.groups}
}

func (repo *groupRepository) QueryGroupsByClass(classID int) ([]group.Group, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	groups, ok := repo.db.table[classID]
	if !ok {
		return nil, group.ErrNoGroups
	}
	out := make([]group.Group, len(groups))
	copy(out, groups)
	return out, nil
}

func (repo *groupRepository) SaveGroups(classID int, groups []group.Group, manual bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[classID] = groups
	repo.db.manual[classID] = manual
	return nil
}

func (repo *groupRepository) HasManualAssignment(classID int) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.manual[classID], nil
}
