package debugutils

import (
	"context"
	"math/rand"
	"sync"
	"time"

	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/config"
)

// Simulator reproduces a slow or flaky product source: a random delay in
// [SimulateDelayMinMs, SimulateDelayMaxMs] and a failure with
// SimulateErrorChance probability.
type Simulator struct {
	delayEnabled bool
	minDelay     int
	maxDelay     int
	errorChance  float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulator(cfg *config.Config) *Simulator {
	return &Simulator{
		delayEnabled: cfg.SimulateDelayEnabled,
		minDelay:     cfg.SimulateDelayMinMs,
		maxDelay:     cfg.SimulateDelayMaxMs,
		errorChance:  cfg.SimulateErrorChance,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Simulate returns nil, or an AppError when a failure was drawn or ctx ended during the delay.
// A nil Simulator does nothing.
func (s *Simulator) Simulate(ctx context.Context) *apierrors.AppError {
	if s == nil {
		return nil
	}

	if delay := s.nextDelay(); delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, "Request was canceled during simulated delay", ctx.Err())
		}
	}

	if s.errorChance <= 0 {
		return nil
	}
	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()
	if roll < s.errorChance {
		return apierrors.NewApplicationError(apierrors.ErrCodeSourceUnavailable, "Simulated product source failure from debug utils", nil)
	}
	return nil
}

func (s *Simulator) nextDelay() time.Duration {
	if !s.delayEnabled || s.maxDelay <= 0 || s.minDelay < 0 || s.minDelay > s.maxDelay {
		return 0
	}
	s.mu.Lock()
	ms := s.rng.Intn(s.maxDelay-s.minDelay+1) + s.minDelay
	s.mu.Unlock()
	return time.Duration(ms) * time.Millisecond
}
