package service

import (
	"context"
	"fmt"
	"time"

	"ovenpanel/internal/models"
	"ovenpanel/internal/repository"

	"github.com/google/uuid"
)

// ----------- Sweep constants -----------
const (
	DefaultSweepRatePerSec = 2.0 // °C per second when sweeping

	dirUp   = 1.0
	dirDown = -1.0
)

// SweepService is a background input source: it drags the dial up and down
// across its range at a fixed rate, standing in for a hand on the slider.
type SweepService struct {
	guard     *dialGuard
	eventRepo repository.EventRepo

	ratePerSec float64
	dir        float64
	last       time.Time
}

// NewSweepService returns a sweep with defaults.
func NewSweepService(guard *dialGuard, eventRepo repository.EventRepo, ratePerSec float64) *SweepService {
	if ratePerSec <= 0 {
		ratePerSec = DefaultSweepRatePerSec
	}
	return &SweepService{
		guard:      guard,
		eventRepo:  eventRepo,
		ratePerSec: ratePerSec,
		dir:        dirUp,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SweepService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.step(ctx, now)
		}
	}
}

// step advances the dial by rate*elapsed in the current direction, reversing
// at the range bounds. State is persisted every step; an event is appended
// only on reversal to keep the log readable.
func (s *SweepService) step(ctx context.Context, now time.Time) {
	if s.last.IsZero() {
		s.last = now
		return
	}
	elapsed := now.Sub(s.last).Seconds()
	if elapsed <= 0 {
		return
	}
	s.last = now

	s.guard.mu.Lock()
	defer s.guard.mu.Unlock()

	if err := s.guard.restoreLocked(ctx); err != nil {
		return
	}

	minC, maxC := s.guard.dial.Range()
	next := s.guard.dial.Temperature() + s.dir*s.ratePerSec*elapsed

	reversed := false
	if next >= maxC {
		next = maxC
		s.dir = dirDown
		reversed = true
	} else if next <= minC {
		next = minC
		s.dir = dirUp
		reversed = true
	}

	s.guard.dial.SetTemperature(next)
	s.guard.updatedAt = now.UTC()
	_ = s.guard.persistLocked(ctx, now)

	if reversed {
		_ = s.eventRepo.Append(ctx, models.PanelEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  now.UTC(),
			Type:        EventSweep,
			Description: fmt.Sprintf("Sweep reversed at %.2f °C", next),
			Metadata:    map[string]any{"temp_c": next, "direction": s.dir},
		})
	}
}
