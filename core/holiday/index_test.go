package holiday

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIndexIsHoliday(t *testing.T) {
	idx := NewIndex([]Holiday{
		{ID: 1, Name: "Christmas Break", StartDate: date(2020, 12, 23), EndDate: date(2020, 12, 31)},
		{ID: 2, Name: "Labour Day", StartDate: date(2021, 5, 1), EndDate: date(2021, 5, 1)},
	})

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "before interval", date: date(2020, 12, 22), want: false},
		{name: "interval start", date: date(2020, 12, 23), want: true},
		{name: "inside interval", date: date(2020, 12, 28), want: true},
		{name: "interval end", date: date(2020, 12, 31), want: true},
		{name: "after interval", date: date(2021, 1, 1), want: false},
		{name: "single day holiday", date: date(2021, 5, 1), want: true},
		{name: "time of day is ignored", date: time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIndexIsHolidayEmpty(t *testing.T) {
	if NewIndex(nil).IsHoliday(date(2021, 1, 1)) {
		t.Error("IsHoliday() on empty index should always be false")
	}
	var idx *Index
	if idx.IsHoliday(date(2021, 1, 1)) {
		t.Error("IsHoliday() on nil index should always be false")
	}
}

func TestIndexOverlapping(t *testing.T) {
	xmas := Holiday{ID: 1, Name: "Christmas Break", StartDate: date(2020, 12, 23), EndDate: date(2020, 12, 31)}
	easter := Holiday{ID: 2, Name: "Easter Break", StartDate: date(2021, 4, 2), EndDate: date(2021, 4, 11)}
	labour := Holiday{ID: 3, Name: "Labour Day", StartDate: date(2021, 5, 1), EndDate: date(2021, 5, 1)}
	idx := NewIndex([]Holiday{xmas, easter, labour})

	tests := []struct {
		name       string
		start, end time.Time
		want       []Holiday
	}{
		{name: "no overlap", start: date(2021, 1, 4), end: date(2021, 3, 31), want: []Holiday{}},
		{name: "range inside interval", start: date(2020, 12, 24), end: date(2020, 12, 28), want: []Holiday{xmas}},
		{name: "interval inside range", start: date(2021, 3, 1), end: date(2021, 6, 30), want: []Holiday{easter, labour}},
		{name: "touching at range end", start: date(2020, 12, 1), end: date(2020, 12, 23), want: []Holiday{xmas}},
		{name: "touching at range start", start: date(2020, 12, 31), end: date(2021, 1, 15), want: []Holiday{xmas}},
		{name: "whole year", start: date(2020, 9, 1), end: date(2021, 6, 30), want: []Holiday{xmas, easter, labour}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Overlapping(tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("Overlapping() returned %d holidays, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i].ID {
					t.Errorf("Overlapping()[%d] = %q, want %q", i, got[i].Name, tt.want[i].Name)
				}
			}
		})
	}
}
