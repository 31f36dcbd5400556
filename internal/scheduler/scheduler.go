// Package scheduler runs periodic maintenance jobs on top of robfig/cron.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// TaskFunc is a scheduled job.
type TaskFunc func(ctx context.Context) error

// Scheduler manages interval tasks.
type Scheduler struct {
	cron    *cron.Cron
	tasks   map[string]cron.EntryID
	timeout time.Duration
	mu      sync.Mutex
	running bool
}

// New creates a scheduler whose task runs are bounded by timeout.
func New(timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		tasks:   make(map[string]cron.EntryID),
		timeout: timeout,
	}
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.cron.Start()
	s.running = true
	slog.Info("scheduler started", "tasks", len(s.tasks))
}

// Stop waits for running tasks to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	select {
	case <-s.cron.Stop().Done():
		slog.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddIntervalTask runs task every interval. A task with the same name is replaced.
func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, task TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.tasks[name]; ok {
		s.cron.Remove(entryID)
		delete(s.tasks, name)
	}

	entryID, err := s.cron.AddFunc("@every "+interval.String(), func() {
		s.runTask(name, task)
	})
	if err != nil {
		return err
	}

	s.tasks[name] = entryID
	slog.Info("added interval task", "name", name, "interval", interval.String())

	return nil
}

func (s *Scheduler) runTask(name string, task TaskFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := task(ctx); err != nil {
		slog.Error("scheduled task failed", "name", name, "error", err)
		return
	}

	slog.Debug("scheduled task completed", "name", name, "duration_ms", time.Since(start).Milliseconds())
}
