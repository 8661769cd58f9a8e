package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

type ReportService interface {
	Run(ctx context.Context) (entity.Response, error)
	Preview(ctx context.Context) (*entity.Report, error)
}
