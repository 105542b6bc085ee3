package cpu

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Amr-9/CKBHunter/pkg/generator"
	"github.com/Amr-9/CKBHunter/pkg/generator/ckb"
)

const (
	// SyncInterval is how many local attempts a worker batches before
	// publishing them and checking whether the search is over.
	SyncInterval = 10000
	// LogInterval is how many local attempts worker 0 makes between
	// progress reports.
	LogInterval = 100000
)

var _ generator.Generator = (*CPUGenerator)(nil)

// ErrStopped is returned by Search when the workers exit without a result.
var ErrStopped = errors.New("search stopped before a match was found")

// CPUGenerator implements the Generator interface using CPU-based goroutines.
// Workers share only two atomics: the published attempt count and the
// found flag that moves the search from SEARCHING to FOUND exactly once.
type CPUGenerator struct {
	attempts  atomic.Uint64 // Attempts published at sync points
	found     atomic.Bool   // Set by the first worker to match
	startTime time.Time     // When generation started
	workers   int           // Number of concurrent workers
	reporter  generator.Reporter

	// limit caps the attempts of each worker so tests can run a search
	// that never matches. Production code leaves it at 0 (unbounded).
	limit uint64
}

// DefaultWorkers returns half the available hardware parallelism, at least 1.
func DefaultWorkers() int {
	if n := runtime.NumCPU() / 2; n > 0 {
		return n
	}
	return 1
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to DefaultWorkers.
func NewCPUGenerator(workers int) *CPUGenerator {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &CPUGenerator{
		workers: workers,
	}
}

// SetReporter sets where progress and the result are printed.
func (g *CPUGenerator) SetReporter(r generator.Reporter) {
	g.reporter = r
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Workers returns the default worker count of this generator.
func (g *CPUGenerator) Workers() int {
	return g.workers
}

// Stats returns the current performance statistics.
func (g *CPUGenerator) Stats() generator.Stats {
	attempts := g.attempts.Load()
	elapsed := time.Since(g.startTime).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Start validates the prefix and launches the workers. The returned channel
// yields the winning result and is closed after every worker has exited.
func (g *CPUGenerator) Start(ctx context.Context, config *generator.Config) (<-chan generator.Result, error) {
	prefix, err := ckb.ValidatePrefix(config.Prefix)
	if err != nil {
		return nil, err
	}

	resultChan := make(chan generator.Result, 1)
	g.startTime = time.Now()
	g.attempts.Store(0)
	g.found.Store(false)

	workers := g.workers
	if config.Workers > 0 {
		workers = config.Workers
	}

	matcher := ckb.NewCKBMatcher(prefix)
	expected := ckb.ExpectedAttempts(matcher.Prefix())

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go g.worker(ctx, i, matcher, expected, resultChan, &wg)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	return resultChan, nil
}

// Search runs Start and blocks until every worker has exited.
func (g *CPUGenerator) Search(ctx context.Context, config *generator.Config) (generator.Result, error) {
	resultChan, err := g.Start(ctx, config)
	if err != nil {
		return generator.Result{}, err
	}

	result, ok := <-resultChan
	// Drain so the caller returns only after the join.
	for range resultChan {
	}
	if !ok {
		if err := ctx.Err(); err != nil {
			return generator.Result{}, err
		}
		return generator.Result{}, ErrStopped
	}
	return result, nil
}

// worker generates keys until it finds a match or sees the found flag.
func (g *CPUGenerator) worker(ctx context.Context, id int, matcher *ckb.CKBMatcher, expected float64, resultChan chan<- generator.Result, wg *sync.WaitGroup) {
	defer wg.Done()

	var local uint64
	for {
		privKey, pubKey, err := ckb.GenerateKeyPair()
		if err != nil {
			continue // RNG failure, just retry
		}

		address := ckb.DeriveAddress(pubKey)
		if matcher.Matches(address) {
			// Only the worker that flips the flag reports; a concurrent
			// second match is dropped.
			if g.found.CompareAndSwap(false, true) {
				result := generator.Result{
					Address:    address,
					PrivateKey: ckb.PrivateKeyToHex(privKey),
				}
				if g.reporter != nil {
					g.reporter.Found(result)
				}
				resultChan <- result
			}
			return
		}

		local++
		if local%SyncInterval == 0 {
			g.attempts.Add(SyncInterval)
			if g.found.Load() || ctx.Err() != nil {
				return
			}
		}

		if id == 0 && local%LogInterval == 0 && g.reporter != nil {
			g.reporter.Progress(generator.NewProgress(g.Stats(), expected))
		}

		// Test seam, see limit.
		if g.limit > 0 && local >= g.limit {
			return
		}
	}
}
