package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

type attendanceCount struct {
	name  string
	count int
}

// countAttendance tallies marker reactions per display name, keeping names in
// first-appearance order. User IDs missing from the directory are skipped and
// returned once each.
func countAttendance(messages []entity.Message, users entity.UserDirectory, marker string) ([]attendanceCount, []string) {
	var counts []attendanceCount
	index := make(map[string]int)
	var unknown []string
	seenUnknown := make(map[string]bool)

	for _, msg := range messages {
		for _, reaction := range msg.Reactions {
			if reaction.Name != marker {
				continue
			}

			for _, userID := range reaction.Users {
				name, ok := users.Lookup(userID).Get()
				if !ok {
					if !seenUnknown[userID] {
						seenUnknown[userID] = true
						unknown = append(unknown, userID)
					}
					continue
				}

				if i, exists := index[name]; exists {
					counts[i].count++
					continue
				}
				index[name] = len(counts)
				counts = append(counts, attendanceCount{name: name, count: 1})
			}
		}
	}

	return counts, unknown
}

// rankAttendance sorts counts descending and assigns dense ranks: equal counts
// share a rank and each lower count advances the rank by one (1, 1, 2).
func rankAttendance(counts []attendanceCount) []entity.RankingEntry {
	if len(counts) == 0 {
		return nil
	}

	sorted := make([]attendanceCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].count > sorted[j].count
	})

	entries := make([]entity.RankingEntry, 0, len(sorted))
	rank := 0
	prev := math.MaxInt
	for _, c := range sorted {
		if c.count < prev {
			rank++
			prev = c.count
		}
		entries = append(entries, entity.RankingEntry{Rank: rank, Name: c.name, Count: c.count})
	}

	return entries
}

// CalculateRanking returns the attendance ranking for messages. An empty
// result means nobody reacted with marker. The second value lists reacting
// user IDs that were not in the directory.
func CalculateRanking(messages []entity.Message, users entity.UserDirectory, marker string) ([]entity.RankingEntry, []string) {
	counts, unknown := countAttendance(messages, users, marker)
	return rankAttendance(counts), unknown
}

// FormatRanking renders entries as "{rank}位\t{name}\t{count}回" lines
func FormatRanking(entries []entity.RankingEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%d位\t%s\t%d回", e.Rank, e.Name, e.Count))
	}
	return strings.Join(lines, "\n")
}
