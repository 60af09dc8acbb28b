package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
	"github.com/mborisov/betpool/internal/metrics"
	"go.uber.org/zap"
)

var (
	ErrEmptyJobID      = errors.New("job id must not be empty")
	ErrInvalidInterval = errors.New("job interval must be positive")
)

type JobFunc func(ctx context.Context) error

type JobInfo struct {
	ID       string        `json:"id"`
	Interval time.Duration `json:"interval"`
	Running  bool          `json:"running"`
}

type job struct {
	id       string
	interval time.Duration
	fn       JobFunc
	running  atomic.Bool
	cancel   context.CancelFunc
}

// Scheduler drives registered jobs on their own tickers. Executions
// share a bounded worker pool and at most one run per job is in
// flight: a tick that lands while the previous run is still going is
// dropped, not queued.
type Scheduler struct {
	mu      sync.Mutex
	jobs    map[string]*job
	pool    WorkerPoolI
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	wg      sync.WaitGroup
}

func New(poolSize int) *Scheduler {
	return &Scheduler{
		jobs: make(map[string]*job),
		pool: NewWorkerPool(poolSize),
	}
}

// Register adds a job or replaces the one already registered under the
// same id. Replacement takes effect immediately even on a started
// scheduler.
func (s *Scheduler) Register(jobID string, interval time.Duration, fn JobFunc) error {
	if jobID == "" {
		return ErrEmptyJobID
	}
	if interval <= 0 {
		return ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.jobs[jobID]; ok {
		if existing.cancel != nil {
			existing.cancel()
		}
		zap.L().Info("replacing job", zap.String("jobID", jobID))
	}

	j := &job{id: jobID, interval: interval, fn: fn}
	s.jobs[jobID] = j
	if s.started {
		s.launch(j)
	}
	return nil
}

// Remove stops and deletes a job, reporting whether it existed.
func (s *Scheduler) Remove(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return false
	}
	if j.cancel != nil {
		j.cancel()
	}
	delete(s.jobs, jobID)
	zap.L().Info("job removed", zap.String("jobID", jobID))
	return true
}

func (s *Scheduler) List() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]JobInfo, 0, len(s.jobs))
	for _, j := range s.jobs {
		infos = append(infos, JobInfo{
			ID:       j.id,
			Interval: j.interval,
			Running:  j.running.Load(),
		})
	}
	return infos
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.started = true
	for _, j := range s.jobs {
		s.launch(j)
	}
	zap.L().Info("scheduler started", zap.Int("jobs", len(s.jobs)))
}

// Stop cancels every job loop and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	s.pool.Close()
	zap.L().Info("scheduler stopped")
}

// launch starts the ticker loop for one job. Caller holds s.mu.
func (s *Scheduler) launch(j *job) {
	ctx, cancel := context.WithCancel(s.ctx)
	j.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.dispatch(ctx, j)
			}
		}
	}()
}

func (s *Scheduler) dispatch(ctx context.Context, j *job) {
	if !j.running.CompareAndSwap(false, true) {
		zap.L().Debug("skipping tick, job still running", zap.String("jobID", j.id))
		metrics.JobRuns.WithLabelValues(j.id, "skipped").Inc()
		return
	}

	s.wg.Add(1)
	err := s.pool.AddTask(ctx, func() error {
		defer s.wg.Done()
		defer j.running.Store(false)
		s.run(ctx, j)
		return nil
	})
	if err != nil {
		j.running.Store(false)
		s.wg.Done()
	}
}

// run executes one job invocation with panic containment. Every run
// gets a correlation id so its log lines can be grouped.
func (s *Scheduler) run(ctx context.Context, j *job) {
	runID, _ := uuid.NewV4()
	log := zap.L().With(zap.String("jobID", j.id), zap.String("runID", runID.String()))

	defer func() {
		if r := recover(); r != nil {
			metrics.JobRuns.WithLabelValues(j.id, "panic").Inc()
			log.Error("job panicked", zap.Any("panic", r))
		}
	}()

	start := time.Now()
	if err := j.fn(ctx); err != nil {
		metrics.JobRuns.WithLabelValues(j.id, "error").Inc()
		log.Error("job run failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return
	}
	metrics.JobRuns.WithLabelValues(j.id, "success").Inc()
	log.Info("job run complete", zap.Duration("elapsed", time.Since(start)))
}
