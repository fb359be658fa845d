package service

import (
	"context"
	"sync"
	"time"

	"ovenpanel/internal/models"
	"ovenpanel/internal/panel"
	"ovenpanel/internal/repository"
)

// dialGuard owns the in-memory panel core shared by the panel, monitoring
// and sweep services. The core itself is single-threaded; the mutex here is
// the only place concurrency is confined.
type dialGuard struct {
	mu        sync.Mutex
	dial      *panel.Panel
	stateRepo repository.StateRepo
	restored  bool
	updatedAt time.Time
}

func newDialGuard(cfg PanelConfig, stateRepo repository.StateRepo) *dialGuard {
	var d *panel.Panel
	if cfg.Calibrated {
		d = panel.NewCalibrated(cfg.MinC, cfg.MaxC)
	} else {
		d = panel.New(cfg.MinC, cfg.MaxC)
	}
	return &dialGuard{dial: d, stateRepo: stateRepo}
}

// restoreLocked applies the persisted snapshot on first access, so the dial
// survives restarts. Requires g.mu held.
func (g *dialGuard) restoreLocked(ctx context.Context) error {
	if g.restored {
		return nil
	}
	st, err := g.stateRepo.Load(ctx)
	if err != nil {
		return err
	}
	if st.ID != 0 {
		if st.Calibrated && !g.dial.Calibrated() {
			g.dial.Calibrate()
		}
		g.dial.SetTemperature(st.TempC)
		g.updatedAt = st.UpdatedAt
	}
	g.restored = true
	return nil
}

// persistLocked writes the current dial snapshot to the single state row.
// Requires g.mu held.
func (g *dialGuard) persistLocked(ctx context.Context, now time.Time) error {
	return g.stateRepo.Save(ctx, models.PanelState{
		ID:         1,
		TempC:      g.dial.Temperature(),
		Calibrated: g.dial.Calibrated(),
		UpdatedAt:  now.UTC(),
	})
}

// readoutLocked returns the rendered readout stamped with the last change
// time. Requires g.mu held.
func (g *dialGuard) readoutLocked() models.PanelReadout {
	r := g.dial.Readout()
	r.UpdatedAt = g.updatedAt
	if r.UpdatedAt.IsZero() {
		// nothing persisted yet: baseline snapshot
		r.UpdatedAt = time.Now().UTC()
	}
	return r
}
