// Package timegen generates causally consistent timestamps for entities
// linked in a parent→child dependency chain: creation instants biased toward
// weekdays and business hours, due dates spread over a researched horizon
// distribution, and completion instants drawn from a log-normal cycle time
// and clamped against the due date.
package timegen

import (
	"time"

	"github.com/SyedTasneemKousar/asana/internal/dist"
)

// Window bounds every instant generated within a run (or a sub-window
// anchored to a parent's own instant).
type Window struct {
	Start time.Time
	End   time.Time
}

// HourProfile selects the intra-day hour distribution.
type HourProfile int

const (
	// BusinessHours draws from [9,17] with probability 0.70 and from
	// [0,23] otherwise.
	BusinessHours HourProfile = iota
	// UniformHours draws uniformly from [0,23].
	UniformHours
)

// maxDayAttempts bounds the weekday/weekend redraw loops so termination
// never depends on the random stream.
const maxDayAttempts = 8

const (
	weekdayBias    = 0.85
	businessBias   = 0.70
	weekendAdvance = 0.85

	cycleMeanLog = 1.5
	cycleStdLog  = 0.5
	cycleMinDays = 1
)

// CreationTime samples a creation instant inside w. With preferWeekdays the
// day lands on a weekday with probability 0.85 (weekend days are advanced to
// the next weekday, retrying with a fresh draw when that would leave the
// window) and is forced onto a weekend otherwise. The returned instant is
// always within w.
func CreationTime(s *dist.Sampler, w Window, preferWeekdays bool, hours HourProfile) time.Time {
	days := int(w.End.Sub(w.Start).Hours() / 24)
	if days < 0 {
		days = 0
	}

	var day time.Time
	switch {
	case preferWeekdays && s.Chance(weekdayBias):
		day = weekdayWithin(s, w, days)
	case preferWeekdays:
		day = weekendWithin(s, w, days)
	default:
		day = w.Start.AddDate(0, 0, s.IntRange(0, days))
	}

	var hour int
	if hours == BusinessHours && s.Chance(businessBias) {
		hour = s.IntRange(9, 17)
	} else {
		hour = s.IntRange(0, 23)
	}

	t := time.Date(day.Year(), day.Month(), day.Day(),
		hour, s.IntRange(0, 59), s.IntRange(0, 59), 0, w.Start.Location())

	// The hour draw can push past a window that ends mid-day; clamp so the
	// containment contract holds unconditionally.
	if t.After(w.End) {
		t = w.End
	}
	if t.Before(w.Start) {
		t = w.Start
	}
	return t
}

func weekdayWithin(s *dist.Sampler, w Window, days int) time.Time {
	var day time.Time
	for attempt := 0; attempt < maxDayAttempts; attempt++ {
		day = w.Start.AddDate(0, 0, s.IntRange(0, days))
		adv := day
		for isWeekend(adv) {
			adv = adv.AddDate(0, 0, 1)
		}
		if !adv.After(w.End) {
			return adv
		}
	}
	// No weekday ahead of the last draw fits the window; walk backward and
	// accept whatever day the window still contains.
	for isWeekend(day) && day.After(w.Start) {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

func weekendWithin(s *dist.Sampler, w Window, days int) time.Time {
	day := w.Start.AddDate(0, 0, s.IntRange(0, days))
	for attempt := 0; attempt < maxDayAttempts && !isWeekend(day); attempt++ {
		day = w.Start.AddDate(0, 0, s.IntRange(0, days))
	}
	// A window with no weekend keeps the last (weekday) draw.
	return day
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DueDate samples a due date for an entity created at createdAt:
//
//	10%  none
//	 5%  "overdue": creation day or the next day
//	25%  1–7 days ahead
//	40%  8–30 days ahead
//	20%  31–90 days ahead
//
// Weekend due dates are advanced to the next weekday with probability 0.85.
// The result is never before createdAt's date; the overdue branch can only
// approximate overdue-ness with due == created date, so callers must not
// read due == created as a guarantee.
func DueDate(s *dist.Sampler, createdAt time.Time) *Date {
	r := s.Float64()
	created := DateOf(createdAt)

	if r < 0.10 {
		return nil
	}
	if r < 0.15 {
		due := created.AddDays(s.IntRange(0, 1))
		if s.Chance(weekendAdvance) {
			due = nextWeekday(due)
		}
		return &due
	}

	var horizon int
	switch {
	case r < 0.40:
		horizon = s.IntRange(1, 7)
	case r < 0.80:
		horizon = s.IntRange(8, 30)
	default:
		horizon = s.IntRange(31, 90)
	}

	due := created.AddDays(horizon)
	if s.Chance(weekendAdvance) {
		due = nextWeekday(due)
	}
	return &due
}

func nextWeekday(d Date) Date {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDays(1)
	}
	return d
}

// CompletionTime samples a completion instant, or nil with probability
// 1-completionRate. Completed entities finish a log-normal cycle time after
// creation; when that overshoots the due date the instant is pulled back to
// 1–24 hours before the due instant (80%) or pushed 1–3 days past it (20%,
// "slightly late"). A non-nil result is always strictly after createdAt.
func CompletionTime(s *dist.Sampler, createdAt time.Time, due *Date, completionRate float64) *time.Time {
	if !s.Chance(completionRate) {
		return nil
	}

	cycle := s.LogNormalCycleTime(cycleMeanLog, cycleStdLog, cycleMinDays)
	candidate := createdAt.AddDate(0, 0, cycle)

	if due != nil {
		// Realize the due date as midnight in createdAt's location so the
		// comparison never mixes instants of different awareness.
		dueInstant := due.Time(createdAt.Location())
		if candidate.After(dueInstant) {
			if s.Chance(0.80) {
				candidate = dueInstant.Add(-time.Duration(s.IntRange(1, 24)) * time.Hour)
			} else {
				candidate = dueInstant.AddDate(0, 0, s.IntRange(1, 3))
			}
		}
	}

	if !candidate.After(createdAt) {
		candidate = createdAt.Add(time.Duration(s.IntRange(1, 24)) * time.Hour)
	}
	return &candidate
}

// ModifiedTime samples a modification instant between createdAt and the
// entity's completion (when completed) or the window end. The result is
// never before createdAt.
func ModifiedTime(s *dist.Sampler, createdAt time.Time, completedAt *time.Time, w Window) time.Time {
	end := w.End
	if completedAt != nil {
		end = *completedAt
	}
	if !end.After(createdAt) {
		return createdAt
	}
	return CreationTime(s, Window{Start: createdAt, End: end}, true, BusinessHours)
}
