package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthPeriod(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name       string
		now        time.Time
		loc        *time.Location
		wantOldest time.Time
		wantLatest time.Time
		wantLabel  string
	}{
		{
			name:       "Should cover a 31 day month",
			now:        time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			loc:        time.UTC,
			wantOldest: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantLatest: time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
			wantLabel:  "2024-01",
		},
		{
			name:       "Should handle leap year February",
			now:        time.Date(2024, 2, 29, 3, 0, 0, 0, time.UTC),
			loc:        time.UTC,
			wantOldest: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantLatest: time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
			wantLabel:  "2024-02",
		},
		{
			name:       "Should handle December rollover",
			now:        time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
			loc:        time.UTC,
			wantOldest: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			wantLatest: time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			wantLabel:  "2023-12",
		},
		{
			name:       "Should evaluate the month in the given location",
			now:        time.Date(2024, 4, 30, 16, 0, 0, 0, time.UTC), // May 1st 01:00 in Tokyo
			loc:        tokyo,
			wantOldest: time.Date(2024, 5, 1, 0, 0, 0, 0, tokyo),
			wantLatest: time.Date(2024, 5, 31, 23, 59, 59, 0, tokyo),
			wantLabel:  "2024-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthPeriod(tt.now, tt.loc)

			assert.True(t, tt.wantOldest.Equal(got.Oldest), "oldest: want %v, got %v", tt.wantOldest, got.Oldest)
			assert.True(t, tt.wantLatest.Equal(got.Latest), "latest: want %v, got %v", tt.wantLatest, got.Latest)
			assert.Equal(t, tt.wantLabel, got.Label())
		})
	}
}

func TestPeriod_UnixBounds(t *testing.T) {
	p := MonthPeriod(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.UTC)

	assert.Equal(t, "1704067200", p.OldestUnix())
	assert.Equal(t, "1706745599", p.LatestUnix())
}
