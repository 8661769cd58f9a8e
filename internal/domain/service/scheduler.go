package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
)

// refire guard after a run, so the same minute is not processed twice
const cooldown = 1 * time.Minute

type scheduler struct {
	report     contract.ReportService
	reportTime string
	location   *time.Location

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func newScheduler(report contract.ReportService, reportTime string, location *time.Location) *scheduler {
	if location == nil {
		location = time.Local
	}

	return &scheduler{
		report:     report,
		reportTime: reportTime,
		location:   location,
		stopChan:   make(chan struct{}),
		running:    false,
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	// a previous Stop closed the old channel
	s.stopChan = make(chan struct{})
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop(s.stopChan)
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop(stop <-chan struct{}) {
	for {
		nextTime := s.calculateNextRun(time.Now())
		if nextTime.IsZero() {
			log.Printf("Invalid report time %q, scheduler disabled", s.reportTime)
			return
		}

		log.Printf("Next attendance report at %s", nextTime.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			s.runReport()

			log.Println("Report sent, waiting 1 minute to prevent re-processing...")
			select {
			case <-time.After(cooldown):
			case <-stop:
				return
			}

		case <-stop:
			timer.Stop()
			return
		}
	}
}

func (s *scheduler) runReport() {
	resp, err := s.report.Run(context.Background())
	if err != nil {
		log.Printf("Failed to run attendance report: %v", err)
		return
	}
	log.Printf("Attendance report finished: status=%d body=%s", resp.StatusCode, resp.Body)
}

// calculateNextRun returns the first report time strictly after now. Reports
// run on the last day of each month at reportTime (HH:MM) in the scheduler's
// location. A zero time means reportTime is invalid.
func (s *scheduler) calculateNextRun(now time.Time) time.Time {
	hour, minute, ok := parseClock(s.reportTime)
	if !ok {
		return time.Time{}
	}

	now = now.In(s.location)

	// day 0 of the following month is the last day of the current one
	candidate := time.Date(now.Year(), now.Month()+1, 0, hour, minute, 0, 0, s.location)
	if candidate.After(now) {
		return candidate
	}

	return time.Date(now.Year(), now.Month()+2, 0, hour, minute, 0, 0, s.location)
}

func parseClock(value string) (hour, minute int, ok bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
