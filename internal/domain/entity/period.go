package entity

import (
	"fmt"
	"time"
)

// Period is a closed time window covering one calendar month
type Period struct {
	Oldest time.Time
	Latest time.Time
}

// MonthPeriod returns the calendar month containing now, evaluated in loc.
// Oldest is the first second of day 1, Latest the last second of the final day.
func MonthPeriod(now time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	// day 0 of next month is the last day of this one
	last := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, loc)

	return Period{Oldest: first, Latest: last}
}

// Label formats the period as YYYY-MM
func (p Period) Label() string {
	return p.Oldest.Format("2006-01")
}

// OldestUnix returns the lower bound as a Slack API timestamp
func (p Period) OldestUnix() string {
	return fmt.Sprintf("%d", p.Oldest.Unix())
}

// LatestUnix returns the upper bound as a Slack API timestamp
func (p Period) LatestUnix() string {
	return fmt.Sprintf("%d", p.Latest.Unix())
}
