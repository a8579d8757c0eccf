package schedule

import (
	"fmt"
	"time"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/holiday"
)

// AllocateTerms partitions the eligible rotation dates into termCount
// consecutive, non-overlapping terms. Terms with a manual override
// reserve their week count first; the remaining weeks are spread over
// the remaining terms by largest remainder, front-loaded: the first
// `weeksLeft mod termsLeft` unfilled terms each get one extra week.
// Whenever no override exceeds the pool, the term week counts sum to
// len(dates) exactly (coverage invariant); otherwise the mismatch is
// reported via Allocation.Error and the chunking is clipped, never
// silently truncated.
//
// Each term is annotated with the holidays skipped inside its date
// span: every holiday intersecting the span that is either multi-day or
// a single day falling on the rotation weekday. Single-day holidays on
// another weekday never cost a rotation date and are left out.
func AllocateTerms(dates []time.Time, termCount int, overrides map[int]int, holidays []holiday.Holiday, weekday time.Weekday) Allocation {
	if termCount < 1 {
		panic("schedule.AllocateTerms: termCount must be >= 1")
	}

	total := len(dates)
	weeks := make([]int, termCount+1) // 1-based
	overridden := make([]bool, termCount+1)

	weeksLeft := total
	termsLeft := termCount
	for i := 1; i <= termCount; i++ {
		if ov, ok := overrides[i]; ok && ov > 0 {
			weeks[i] = ov
			overridden[i] = true
			weeksLeft -= ov
			termsLeft--
		}
	}

	if termsLeft > 0 {
		pool := weeksLeft
		if pool < 0 {
			pool = 0 // overrides already exceed the total; reported below
		}
		base, extra := pool/termsLeft, pool%termsLeft
		for i := 1; i <= termCount; i++ {
			if overridden[i] {
				continue
			}
			weeks[i] = base
			if extra > 0 {
				weeks[i]++
				extra--
			}
		}
	}

	sum := 0
	for i := 1; i <= termCount; i++ {
		sum += weeks[i]
	}

	idx := holiday.NewIndex(holidays)
	terms := make([]Term, 0, termCount)
	cursor := 0
	for i := 1; i <= termCount; i++ {
		end := cursor + weeks[i]
		if end > total {
			end = total
		}
		if cursor > end {
			cursor = end
		}
		chunk := make([]time.Time, end-cursor)
		copy(chunk, dates[cursor:end])
		cursor = end

		terms = append(terms, Term{
			Index:           i,
			Dates:           chunk,
			SkippedHolidays: skippedInSpan(idx, chunk, weekday),
		})
	}

	alloc := Allocation{Terms: terms}
	switch {
	case sum > total:
		alloc.Error = fmt.Sprintf("over-allocation: %d weeks assigned across %d terms but only %d rotation dates are available", sum, termCount, total)
	case sum < total:
		alloc.Error = fmt.Sprintf("under-allocation: %d weeks assigned across %d terms but %d rotation dates are available", sum, termCount, total)
	}
	return alloc
}

func skippedInSpan(idx *holiday.Index, dates []time.Time, weekday time.Weekday) []holiday.Holiday {
	skipped := []holiday.Holiday{}
	if len(dates) == 0 {
		return skipped
	}
	first, last := dates[0], dates[len(dates)-1]
	for _, h := range idx.Overlapping(first, last) {
		if h.MultiDay() || core.Day(h.StartDate).Weekday() == weekday {
			skipped = append(skipped, h)
		}
	}
	return skipped
}

// TermDates concatenates the terms' date slices in term order; with a
// clean allocation this reproduces the generator's output exactly.
func TermDates(terms []Term) []time.Time {
	var dates []time.Time
	for _, t := range terms {
		dates = append(dates, t.Dates...)
	}
	return dates
}
