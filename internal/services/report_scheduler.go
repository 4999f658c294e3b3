package services

import (
	"context"
	"sync"
	"time"

	"github.com/avoronin9/ironlog/internal/logger"
)

// ReportScheduler mails the weekly report to every opted-in user once per
// week, on Sunday evenings.
type ReportScheduler struct {
	reports *ReportService
	log     *logger.Logger

	mu           sync.Mutex
	lastSentWeek string
}

func NewReportScheduler(reports *ReportService, log *logger.Logger) *ReportScheduler {
	return &ReportScheduler{reports: reports, log: log}
}

// Start launches the scheduler goroutine. It stops when ctx is cancelled.
func (scheduler *ReportScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	go func() {
		defer ticker.Stop()

		scheduler.tick(ctx, time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				scheduler.tick(ctx, now)
			}
		}
	}()
}

func (scheduler *ReportScheduler) tick(ctx context.Context, now time.Time) {
	if now.Weekday() != time.Sunday || now.Hour() < 18 {
		return
	}

	start, _ := WeekRange(now)
	week := start.Format("2006-01-02")

	scheduler.mu.Lock()
	alreadySent := scheduler.lastSentWeek == week
	if !alreadySent {
		scheduler.lastSentWeek = week
	}
	scheduler.mu.Unlock()
	if alreadySent {
		return
	}

	if err := scheduler.reports.SendWeeklyToAll(ctx, now); err != nil {
		scheduler.log.Error().Err(err).Msg("weekly report run failed")
	}
}
