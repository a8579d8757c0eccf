package holiday

import "errors"

var (
	// errors
	ErrNotFound = errors.New("holiday not found")
)

type (
	Repository interface {
		CreateHoliday(h Holiday) (Holiday, error)
		QueryAllHolidays() ([]Holiday, error)
		// QueryHolidaysByYear returns holidays intersecting the school year
		// starting in `year`, ordered by start date.
		QueryHolidaysByYear(year int) ([]Holiday, error)
		GetHolidayByID(id int) (Holiday, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nh NewHoliday) (Holiday, error) {
	h := Holiday{
		Name:      nh.Name,
		StartDate: nh.StartDate,
		EndDate:   nh.EndDate,
	}
	return svc.repo.CreateHoliday(h)
}

func (svc *Service) QueryAll() ([]Holiday, error) {
	return svc.repo.QueryAllHolidays()
}

func (svc *Service) QueryByYear(year int) ([]Holiday, error) {
	return svc.repo.QueryHolidaysByYear(year)
}

func (svc *Service) GetByID(id int) (Holiday, error) {
	return svc.repo.GetHolidayByID(id)
}

// IndexByYear loads the year's holidays into an Index for calendar queries.
func (svc *Service) IndexByYear(year int) (*Index, error) {
	holidays, err := svc.repo.QueryHolidaysByYear(year)
	if err != nil {
		return nil, err
	}
	return NewIndex(holidays), nil
}
