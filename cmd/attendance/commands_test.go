package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
	"github.com/diegoclair/slack-attendance-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrintHistory(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(repo *mocks.MockReportRepo)
		contains  []string
		wantErr   bool
	}{
		{
			name: "Should print one row per entry",
			buildMock: func(repo *mocks.MockReportRepo) {
				repo.EXPECT().ListRuns("C1", 5).Return([]*entity.ReportRun{
					{ID: 7, SlackChannelID: "C1", Period: "2024-01", TotalCount: 3, PostedAt: time.Date(2024, 1, 31, 3, 0, 0, 0, time.UTC)},
				}, nil)
				repo.EXPECT().GetEntries(int64(7)).Return([]entity.RankingEntry{
					{Rank: 1, Name: "Alice", Count: 2},
					{Rank: 2, Name: "Bob", Count: 1},
				}, nil)
			},
			contains: []string{"PERIOD", "2024-01", "Alice", "Bob", "2024-01-31T03:00:00Z"},
		},
		{
			name: "Should say when the archive is empty",
			buildMock: func(repo *mocks.MockReportRepo) {
				repo.EXPECT().ListRuns("C1", 5).Return(nil, nil)
			},
			contains: []string{"No archived rankings."},
		},
		{
			name: "Should return list errors",
			buildMock: func(repo *mocks.MockReportRepo) {
				repo.EXPECT().ListRuns("C1", 5).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "Should return entry errors",
			buildMock: func(repo *mocks.MockReportRepo) {
				repo.EXPECT().ListRuns("C1", 5).Return([]*entity.ReportRun{{ID: 7}}, nil)
				repo.EXPECT().GetEntries(int64(7)).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockReportRepo(ctrl)
			tt.buildMock(repo)

			var buf bytes.Buffer
			err := printHistory(&buf, repo, "C1", 5)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
