package service

import (
	"context"
	"errors"
	"math"
	"time"

	"ovenpanel/internal/models"
	"ovenpanel/internal/repository"

	"github.com/google/uuid"
)

// -------- Implementation --------

type PanelService struct {
	guard     *dialGuard
	eventRepo repository.EventRepo
}

func NewPanelService(guard *dialGuard, eventRepo repository.EventRepo) *PanelService {
	return &PanelService{guard: guard, eventRepo: eventRepo}
}

var errNotFinite = errors.New("temperature must be a finite number")

// SetTemperature applies a new dial value, clamping it into the configured
// range, persists the snapshot and logs TEMP_CHANGE. The clamped-or-not raw
// input is kept in the event metadata.
func (s *PanelService) SetTemperature(ctx context.Context, tempC float64) (models.PanelReadout, error) {
	if math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		return models.PanelReadout{}, errNotFinite
	}

	now := time.Now().UTC()

	s.guard.mu.Lock()
	defer s.guard.mu.Unlock()

	if err := s.guard.restoreLocked(ctx); err != nil {
		return models.PanelReadout{}, err
	}

	minC, maxC := s.guard.dial.Range()
	clamped := tempC < minC || tempC > maxC

	r := s.guard.dial.SetTemperature(tempC)
	s.guard.updatedAt = now

	if err := s.guard.persistLocked(ctx, now); err != nil {
		return models.PanelReadout{}, err
	}

	if err := s.eventRepo.Append(ctx, models.PanelEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        EventTempChange,
		Description: "Temperature set to " + r.Celsius,
		Metadata: map[string]any{
			"requested_c":    tempC,
			"applied_c":      r.TempC,
			"clamped":        clamped,
			"recommendation": r.Recommendation,
		},
	}); err != nil {
		return models.PanelReadout{}, err
	}

	r.UpdatedAt = now
	return r, nil
}

// Calibrate wires the real Fahrenheit/Kelvin converters and the oven food
// recommender into the dial, refreshes the readout immediately, persists the
// snapshot and logs CALIBRATE. Calibrating an already calibrated panel is a
// no-op for the readout but is still recorded.
func (s *PanelService) Calibrate(ctx context.Context) (models.PanelReadout, error) {
	now := time.Now().UTC()

	s.guard.mu.Lock()
	defer s.guard.mu.Unlock()

	if err := s.guard.restoreLocked(ctx); err != nil {
		return models.PanelReadout{}, err
	}

	r := s.guard.dial.Calibrate()
	s.guard.updatedAt = now

	if err := s.guard.persistLocked(ctx, now); err != nil {
		return models.PanelReadout{}, err
	}

	if err := s.eventRepo.Append(ctx, models.PanelEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        EventCalibrate,
		Description: "Converters calibrated",
		Metadata: map[string]any{
			"temp_c":     r.TempC,
			"fahrenheit": r.Fahrenheit,
			"kelvin":     r.Kelvin,
		},
	}); err != nil {
		return models.PanelReadout{}, err
	}

	r.UpdatedAt = now
	return r, nil
}
