package service

import (
	"context"
	"time"

	"ovenpanel/internal/models"
	"ovenpanel/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Panel exposes control operations: set the dial temperature and wire the
// real unit converters in.
type Panel interface {
	SetTemperature(ctx context.Context, tempC float64) (models.PanelReadout, error)
	Calibrate(ctx context.Context) (models.PanelReadout, error)
}

// Monitoring exposes the read-only rendered readout.
type Monitoring interface {
	GetReadout(ctx context.Context) (models.PanelReadout, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.PanelEvent, error)
}

// Sweep runs the background loop that drags the dial across its range,
// emulating a hand on the slider. Stop via context cancellation in main()
// for graceful shutdown.
type Sweep interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Panel
	Monitoring
	EventLog
	Sweep
	Authorization
}

// NewService wires the repository layer into concrete services. All services
// touching the dial share one guarded panel core so HTTP handlers, the
// websocket stream and the sweep loop observe the same state.
func NewService(repos *repository.Repository, cfg PanelConfig) *Service {
	cfg = cfg.withDefaults()
	guard := newDialGuard(cfg, repos.StateRepo)
	return &Service{
		Panel:         NewPanelService(guard, repos.EventRepo),
		Monitoring:    NewMonitoringService(guard),
		EventLog:      NewEventLogService(repos.EventRepo),
		Sweep:         NewSweepService(guard, repos.EventRepo, cfg.SweepRatePerSec),
		Authorization: NewAuthService(repos.Auth),
	}
}
