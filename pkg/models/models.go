package models

import (
	"time"

	"github.com/kacperjurak/godielectric"
)

// Spectrum holds a model evaluated over a frequency sweep
type Spectrum struct {
	Model     string    `json:"model"`
	Kind      string    `json:"kind"`
	Freqs     []float64 `json:"frequencies"`
	EpsR      []float64 `json:"relative_permittivity"`
	Sigma     []float64 `json:"conductivity"`
	LossRatio []float64 `json:"loss_ratio"`
}

// WorkItem represents a single model evaluation task
type WorkItem struct {
	ID        int
	Model     godielectric.Model
	Freqs     []float64
	StartTime time.Time
}

// WorkResult contains the result of a model evaluation
type WorkResult struct {
	ID             int
	Spectrum       Spectrum
	ProcessingTime time.Duration
	Err            error
}

// BufferSet contains reusable buffers to reduce allocations
type BufferSet struct {
	Omega []float64
}
