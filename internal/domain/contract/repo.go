package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Report() ReportRepo
}

// ReportRepo defines the contract for the report archive
type ReportRepo interface {
	CreateRun(run *entity.ReportRun) error
	CreateEntries(runID int64, entries []entity.RankingEntry) error
	ListRuns(slackChannelID string, limit int) ([]*entity.ReportRun, error)
	GetEntries(runID int64) ([]entity.RankingEntry, error)
}
