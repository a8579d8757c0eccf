package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/holiday"
)

var readFileFunc = ioutil.ReadFile // mockable

// loadHolidays loads a JSON list of holidays into the database.
// File format: [{"name": "...", "start_date": "...", "end_date": "..."}, ...]
// with dates in RFC 3339.
func (cli *commandLine) loadHolidays(path string) error {
	data, err := readFileFunc(path)
	if err != nil {
		return errors.Wrap(err, "reading holidays file")
	}

	var entries []holiday.NewHoliday
	if err := json.Unmarshal(data, &entries); err != nil {
		return errors.Wrap(err, "parsing holidays file")
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return errors.Wrapf(err, "invalid holiday at index %d", i)
		}
	}
	for _, entry := range entries {
		if _, err := cli.holidayRepo.CreateHoliday(holiday.Holiday{
			Name:      entry.Name,
			StartDate: entry.StartDate,
			EndDate:   entry.EndDate,
		}); err != nil {
			return errors.Wrapf(err, "creating holiday %q", entry.Name)
		}
	}

	fmt.Printf("loaded %d holidays\n", len(entries))
	return nil
}
