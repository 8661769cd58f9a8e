package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
	"github.com/samber/lo"
)

// parseSlackTimestamp converts a Slack "seconds.micros" ts into a time.
// Malformed values yield the zero time.
func parseSlackTimestamp(ts string) time.Time {
	sec, frac, _ := strings.Cut(ts, ".")

	s, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return time.Time{}
	}

	var micros int64
	if frac != "" {
		micros, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			micros = 0
		}
	}

	return time.Unix(s, micros*int64(time.Microsecond))
}

// messageSpan returns the oldest and newest timestamps among messages,
// ignoring ones whose ts could not be parsed
func messageSpan(messages []entity.Message) (first, last time.Time, ok bool) {
	stamped := lo.Filter(messages, func(m entity.Message, _ int) bool {
		return !m.Timestamp.IsZero()
	})
	if len(stamped) == 0 {
		return time.Time{}, time.Time{}, false
	}

	first = lo.MinBy(stamped, func(a, b entity.Message) bool {
		return a.Timestamp.Before(b.Timestamp)
	}).Timestamp
	last = lo.MaxBy(stamped, func(a, b entity.Message) bool {
		return a.Timestamp.After(b.Timestamp)
	}).Timestamp

	return first, last, true
}
