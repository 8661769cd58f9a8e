package handlers

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

// LambdaHandler adapts the report service to the Lambda runtime. It serves
// both the monthly EventBridge rule and manual RequestResponse invocations.
type LambdaHandler struct {
	reportService contract.ReportService
}

func NewLambdaHandler(reportService contract.ReportService) *LambdaHandler {
	return &LambdaHandler{reportService: reportService}
}

func (h *LambdaHandler) Handle(ctx context.Context, event events.CloudWatchEvent) (entity.Response, error) {
	if event.Source != "" {
		log.Printf("Invoked by %s (%s)", event.Source, event.DetailType)
	} else {
		log.Println("Invoked manually")
	}

	return h.reportService.Run(ctx)
}
