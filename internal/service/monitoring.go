package service

import (
	"context"

	"ovenpanel/internal/models"
)

type MonitoringService struct {
	guard *dialGuard
}

func NewMonitoringService(guard *dialGuard) *MonitoringService {
	return &MonitoringService{guard: guard}
}

// GetReadout returns the current rendered display state. On the first call
// after boot the persisted snapshot is restored; with an empty database the
// dial reports its baseline (range minimum, uncalibrated unless configured).
func (s *MonitoringService) GetReadout(ctx context.Context) (models.PanelReadout, error) {
	s.guard.mu.Lock()
	defer s.guard.mu.Unlock()

	if err := s.guard.restoreLocked(ctx); err != nil {
		return models.PanelReadout{}, err
	}
	return s.guard.readoutLocked(), nil
}
