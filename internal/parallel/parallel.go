// Package parallel provides chunked worker execution for kernels that
// iterate independent rows or flat positions of an array.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too
// small. f must be safe to call from multiple goroutines on distinct i.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForRows executes f(i, j) over an rows-by-cols grid, splitting whole rows
// across workers so each goroutine walks its rows left to right. Used by the
// strided matrix kernels, where every (i, j) cell is independent.
func ForRows(rows, cols int, f func(i, j int), cfg Config) {
	if cols == 0 {
		return
	}
	if !cfg.Enabled || rows*cols < cfg.MinChunkSize {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				f(i, j)
			}
		}
		return
	}
	// Rescale the chunk floor to rows: one chunk should still cover at
	// least MinChunkSize cells.
	rowCfg := cfg
	rowCfg.MinChunkSize = max(1, cfg.MinChunkSize/cols)
	For(rows, func(i int) {
		for j := 0; j < cols; j++ {
			f(i, j)
		}
	}, rowCfg)
}
