// Package generator defines the interface for CKB vanity address generation.
// Backends receive a validated Config and report the first matching key pair
// on a channel while exposing live statistics.
package generator

import (
	"context"
	"math"
)

// Config holds the configuration for vanity address generation.
type Config struct {
	Prefix  string // Validated address prefix, including the fixed "ckb1qyq" part
	Workers int    // Number of concurrent workers (0 = backend default)
}

// Result contains a successfully found vanity address and its private key.
type Result struct {
	Address    string // Full bech32 address (ckb1...)
	PrivateKey string // Private key as 0x-prefixed lowercase hex
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of addresses generated
	HashRate    float64 // Addresses per second since start
	ElapsedSecs float64 // Time elapsed since start
}

// Progress is a heuristic view of a running search. The expected attempt
// count is a crude estimate, so Percent can exceed 100 and LeftSecs can go
// negative once a run deviates from it.
type Progress struct {
	Stats
	Expected float64 // Estimated total attempts for the target
	Percent  float64 // Attempts / Expected * 100
	LeftSecs float64 // (Expected - Attempts) / HashRate
}

// NewProgress derives the estimate fields from a stats snapshot.
func NewProgress(stats Stats, expected float64) Progress {
	p := Progress{Stats: stats, Expected: expected}
	if expected > 0 {
		p.Percent = float64(stats.Attempts) / expected * 100
	}
	if stats.HashRate > 0 {
		p.LeftSecs = (expected - float64(stats.Attempts)) / stats.HashRate
	} else {
		p.LeftSecs = math.Inf(1)
	}
	return p
}

// Reporter receives output from a running search. Progress is only called
// from a single designated worker and Found at most once per search, so
// implementations need no locking of their own.
type Reporter interface {
	Progress(p Progress)
	Found(r Result)
}

// Generator defines the contract for address generation backends.
type Generator interface {
	// Start begins the vanity address search with the given configuration.
	// It returns a channel that receives the single result and is closed
	// once every worker has exited.
	Start(ctx context.Context, config *Config) (<-chan Result, error)

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name.
	Name() string
}
