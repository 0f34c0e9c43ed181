package worker

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kacperjurak/godielectric"
	"github.com/kacperjurak/godielectric/pkg/models"
)

// Pool evaluates dispersion models on concurrent workers
type Pool struct {
	jobs       chan models.WorkItem
	results    chan models.WorkResult
	workers    int
	bufferPool sync.Pool
	shutdown   chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
	processor  ProcessorFunc
}

// ProcessorFunc turns one model and its sweep into a spectrum. omega is a
// scratch buffer already holding the angular frequencies of freqs and must
// not be retained.
type ProcessorFunc func(m godielectric.Model, freqs, omega []float64) (models.Spectrum, error)

// Options holds configuration for creating a new worker pool
type Options struct {
	Workers   int
	Processor ProcessorFunc
}

// New creates a new worker pool and starts its workers
func New(opts Options) *Pool {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}

	// jobs/results buffered x2 so submitting does not block while workers are busy
	pool := &Pool{
		jobs:      make(chan models.WorkItem, opts.Workers*2),
		results:   make(chan models.WorkResult, opts.Workers*2),
		workers:   opts.Workers,
		shutdown:  make(chan struct{}),
		processor: opts.Processor,
		bufferPool: sync.Pool{
			New: func() interface{} {
				return &models.BufferSet{Omega: make([]float64, 0, 128)}
			},
		},
	}

	pool.start()
	return pool
}

func (p *Pool) start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	logrus.Debugf("worker pool started with %d workers", p.workers)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobs:
			result := p.processJob(job)
			logrus.WithFields(logrus.Fields{
				"worker": id,
				"model":  job.Model.Name,
				"took":   result.ProcessingTime,
			}).Trace("model evaluated")
			select {
			case p.results <- result:
			case <-p.shutdown:
				return
			}

		case <-p.shutdown:
			return
		}
	}
}

// processJob evaluates one item with a pooled omega buffer
func (p *Pool) processJob(job models.WorkItem) models.WorkResult {
	buffers := p.bufferPool.Get().(*models.BufferSet)
	defer p.bufferPool.Put(buffers)

	fillOmega(buffers, job.Freqs)

	startTime := time.Now()
	spectrum, err := p.processor(job.Model, job.Freqs, buffers.Omega)
	return models.WorkResult{
		ID:             job.ID,
		Spectrum:       spectrum,
		ProcessingTime: time.Since(startTime),
		Err:            err,
	}
}

// fillOmega converts freqs into the pooled buffer, growing it only when needed
func fillOmega(buffers *models.BufferSet, freqs []float64) {
	n := len(freqs)
	if cap(buffers.Omega) < n {
		buffers.Omega = make([]float64, n, n+(n>>2))
	} else {
		buffers.Omega = buffers.Omega[:n]
	}
	for i, f := range freqs {
		buffers.Omega[i] = 2 * math.Pi * f
	}
}

// Submit queues a job, blocking while the queue is full
func (p *Pool) Submit(ctx context.Context, job models.WorkItem) error {
	select {
	case p.jobs <- job:
		return nil
	default:
		logrus.Debugf("worker pool queue full, waiting to submit %q", job.Model.Name)
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Results exposes the result channel
func (p *Pool) Results() <-chan models.WorkResult {
	return p.results
}

// EvaluateAll runs every item through the pool and returns the results
// ordered by item ID.
func (p *Pool) EvaluateAll(ctx context.Context, items []models.WorkItem) ([]models.WorkResult, error) {
	errc := make(chan error, 1)
	go func() {
		for _, item := range items {
			if err := p.Submit(ctx, item); err != nil {
				errc <- err
				return
			}
		}
		errc <- nil
	}()

	res := make([]models.WorkResult, 0, len(items))
	for len(res) < len(items) {
		select {
		case r := <-p.results:
			res = append(res, r)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := <-errc; err != nil {
		return nil, err
	}

	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// Shutdown stops all workers and waits for them to exit
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
		p.wg.Wait()
		logrus.Debug("worker pool shut down")
	})
}
