// internal/scheduler/scheduler.go
package scheduler

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler re-runs a job on a fixed interval with at most one execution
// in flight. A tick that arrives while the previous run is still going
// is skipped, and a failed run is skipped until the next tick.
type Scheduler struct {
	interval time.Duration
	job      func() error
	mu       sync.Mutex
	stop     chan struct{}
	done     chan struct{}
}

func New(interval time.Duration, job func() error) *Scheduler {
	return &Scheduler{
		interval: interval,
		job:      job,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	go s.loop()
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunNow()
		case <-s.stop:
			return
		}
	}
}

// RunNow executes the job immediately unless a run is already in flight.
func (s *Scheduler) RunNow() {
	if !s.mu.TryLock() {
		logrus.Warn("Generation already in progress, skipping run")
		return
	}
	defer s.mu.Unlock()

	if err := s.job(); err != nil {
		logrus.WithError(err).Error("Scheduled generation failed")
	}
}

// Stop terminates the loop and waits for it to exit. A run already in
// flight is allowed to finish.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}
