package engine

import (
	"golang.org/x/time/rate"
)

// Governor bounds how many solver passes — each MCI/PHE alternative
// re-solve, each MEDEVAC hop search — an engine will run per second. The
// primary MCI/PHE solve is not governed. It never blocks a caller: a denied pass simply stops
// enumerating further alternatives/hops early, the same code path a
// solver-side INFEASIBLE takes, so a decision call never suspends.
type Governor struct {
	limiter *rate.Limiter
}

// NewGovernor builds a Governor. A non-positive solvesPerSecond means
// unlimited.
func NewGovernor(solvesPerSecond float64, burst int) *Governor {
	if solvesPerSecond <= 0 {
		return &Governor{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Governor{limiter: rate.NewLimiter(rate.Limit(solvesPerSecond), burst)}
}

// Allow reports whether another solver pass may run right now.
func (g *Governor) Allow() bool {
	if g == nil {
		return true
	}
	return g.limiter.Allow()
}
