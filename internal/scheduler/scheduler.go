package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// purgeTimeout bounds a single purge run.
const purgeTimeout = 5 * time.Minute

// Purger deletes calculations past their retention window
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron   *cron.Cron
	purger Purger
}

// New registers the purge job on a seconds-resolution cron schedule such as
// "0 0 3 * * *" evaluated in loc.
func New(purger Purger, schedule string, loc *time.Location) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		purger: purger,
	}

	if _, err := s.cron.AddFunc(schedule, s.RunPurge); err != nil {
		return nil, fmt.Errorf("schedule purge job %q: %w", schedule, err)
	}

	return s, nil
}

// RunPurge runs one purge immediately
func (s *Scheduler) RunPurge() {
	log.Println("Running calculation retention purge...")

	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	deleted, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		log.Printf("Calculation purge failed: %v", err)
		return
	}

	log.Printf("Calculation purge removed %d records", deleted)
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("Scheduler started successfully")
}

// Stop waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("Scheduler stopped")
}

// Next returns when the purge job will next run
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Schedule.Next(time.Now())
}
