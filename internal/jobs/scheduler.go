// Package jobs runs background work on a cron schedule.
package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/limbo/agencydesk/internal/service"
)

type Scheduler struct {
	cron    *cron.Cron
	loc     *time.Location
	spec    string
	digest  service.DigestServiceI
	timeout time.Duration
}

// NewScheduler prepares the daily digest job. spec is a standard five field cron expression
// evaluated in loc.
func NewScheduler(digest service.DigestServiceI, spec string, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		loc:     loc,
		spec:    spec,
		digest:  digest,
		timeout: 10 * time.Minute,
	}
}

// Start registers the jobs and starts the cron loop. Jobs stop picking up work once ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.digest == nil {
		return errors.New("digest service is not provided")
	}
	_, err := s.cron.AddFunc(s.spec, func() {
		s.RunDigest(ctx)
	})
	if err != nil {
		return errors.New("scheduling digest error: " + err.Error())
	}
	s.cron.Start()
	log.WithFields(log.Fields{
		"spec":     s.spec,
		"timezone": s.loc.String(),
	}).Info("scheduler started")
	return nil
}

// RunDigest sends the digest for the current day in the scheduler's timezone.
func (s *Scheduler) RunDigest(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	now := time.Now().In(s.loc)
	sent, err := s.digest.SendDaily(ctx, now)
	logger := log.WithFields(log.Fields{
		"day":  service.Day(now).Format(service.DayLayout),
		"sent": sent,
	})
	if err != nil {
		logger.WithError(err).Error("[CRON] digest failed")
		return
	}
	logger.Info("[CRON] digest sent")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("scheduler stopped")
}
