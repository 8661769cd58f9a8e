package service

import (
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
)

// Options carries the settings shared by all services
type Options struct {
	Reaction   string
	ReportTime string
	Location   *time.Location
}

type Instance struct {
	Report    *reportService
	Scheduler *scheduler
}

// NewInstance wires the report service and its monthly scheduler. dm may be nil
// when no archive is configured.
func NewInstance(secrets contract.SecretStore, newSlack contract.SlackClientFactory, dm contract.DataManager, opts Options) *Instance {
	reportService := newReport(secrets, newSlack, dm, ReportOptions{
		Reaction: opts.Reaction,
		Location: opts.Location,
	})

	return &Instance{
		Report:    reportService,
		Scheduler: newScheduler(reportService, opts.ReportTime, opts.Location),
	}
}
