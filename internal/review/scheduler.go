// Package review schedules people for memory review with an SM-2 style
// interval and ease factor.
package review

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultEase     = 2.5
	MinEase         = 1.3
	MaxEase         = 3.0
	EaseIncrement   = 0.1
	EaseDecrement   = 0.2
	DefaultInterval = 1

	DefaultQueueLimit = 5
	NearDueDays       = 2
)

// Record is the review state stored with each person.
type Record struct {
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextDueAt      time.Time  `json:"next_due_at"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
}

// NewRecord returns a record that is due immediately.
func NewRecord(now time.Time) Record {
	return Record{
		NextDueAt:    now,
		EaseFactor:   DefaultEase,
		IntervalDays: DefaultInterval,
	}
}

// IsDue reports whether the record's next review is at or before now.
func (r Record) IsDue(now time.Time) bool {
	return !r.NextDueAt.After(now)
}

// UpdateReviewState applies one review outcome. A recall multiplies the
// interval by the old ease and raises the ease. A miss resets the interval
// to one day and lowers the ease. The next due date is now plus the interval
// in calendar days.
func UpdateReviewState(r *Record, recalled bool, now time.Time) {
	reviewed := now
	r.LastReviewedAt = &reviewed

	if recalled {
		r.IntervalDays = max(1, int(math.Round(float64(r.IntervalDays)*r.EaseFactor)))
		r.EaseFactor = min(MaxEase, r.EaseFactor+EaseIncrement)
	} else {
		r.IntervalDays = 1
		r.EaseFactor = max(MinEase, r.EaseFactor-EaseDecrement)
	}

	r.NextDueAt = now.AddDate(0, 0, r.IntervalDays)
}

// DueCount counts records due at now.
func DueCount(records []Record, now time.Time) int {
	n := 0
	for _, r := range records {
		if r.IsDue(now) {
			n++
		}
	}
	return n
}

// Item pairs a person ID with its review record for queue building.
type Item struct {
	ID     uuid.UUID
	Record Record
}

// BuildReviewQueue returns up to limit IDs: overdue items first, most overdue
// at the front, then items due within the next NearDueDays days. A limit of
// zero or less uses DefaultQueueLimit.
func BuildReviewQueue(items []Item, now time.Time, limit int) []uuid.UUID {
	return BuildReviewQueueWindow(items, now, limit, NearDueDays)
}

// BuildReviewQueueWindow is BuildReviewQueue with a custom near-due window.
func BuildReviewQueueWindow(items []Item, now time.Time, limit, nearDueDays int) []uuid.UUID {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	horizon := now.AddDate(0, 0, nearDueDays)

	var due, near []Item
	for _, it := range items {
		switch {
		case it.Record.IsDue(now):
			due = append(due, it)
		case !it.Record.NextDueAt.After(horizon):
			near = append(near, it)
		}
	}

	byDue := func(a, b Item) int {
		return a.Record.NextDueAt.Compare(b.Record.NextDueAt)
	}
	slices.SortStableFunc(due, byDue)
	slices.SortStableFunc(near, byDue)

	queue := make([]uuid.UUID, 0, limit)
	seen := make(map[uuid.UUID]struct{}, limit)
	take := func(list []Item) {
		for _, it := range list {
			if len(queue) >= limit {
				return
			}
			if _, ok := seen[it.ID]; ok {
				continue
			}
			seen[it.ID] = struct{}{}
			queue = append(queue, it.ID)
		}
	}
	take(due)
	take(near)

	return queue
}
