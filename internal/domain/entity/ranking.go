package entity

import "github.com/samber/lo"

// RankingEntry is one line of the attendance ranking
type RankingEntry struct {
	Rank  int
	Name  string
	Count int
}

// Report is the result of tallying one period of channel history
type Report struct {
	ChannelID      string
	Period         Period
	Entries        []RankingEntry
	Text           string
	UnknownUserIDs []string
}

// HasAttendance reports whether anyone reacted with the attendance marker
func (r *Report) HasAttendance() bool {
	return r != nil && len(r.Entries) > 0
}

// Total returns the sum of all counts in the report
func (r *Report) Total() int {
	return lo.SumBy(r.Entries, func(e RankingEntry) int {
		return e.Count
	})
}
