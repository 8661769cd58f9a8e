package entity

import "time"

// ReportRun is the archived record of one posted ranking
type ReportRun struct {
	ID             int64
	SlackChannelID string
	Period         string
	TotalCount     int
	Entries        []RankingEntry
	PostedAt       time.Time
}
