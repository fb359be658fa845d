package service

import (
	"time"

	"ovenpanel/internal/panel"
)

// PanelConfig carries the dial settings resolved from configuration.
type PanelConfig struct {
	MinC            float64 // dial minimum, °C
	MaxC            float64 // dial maximum, °C
	Calibrated      bool    // boot with real converters pre-wired
	SweepRatePerSec float64 // °C per second for the demo sweep
}

// withDefaults fills unset fields with the stock oven dial values.
func (c PanelConfig) withDefaults() PanelConfig {
	if c.MinC == 0 && c.MaxC == 0 {
		c.MinC = panel.MinDialC
		c.MaxC = panel.MaxDialC
	}
	if c.SweepRatePerSec <= 0 {
		c.SweepRatePerSec = DefaultSweepRatePerSec
	}
	return c
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "TEMP_CHANGE", "CALIBRATE", "SWEEP", "ERROR"
}

// Event types appended by the panel services.
const (
	EventTempChange = "TEMP_CHANGE"
	EventCalibrate  = "CALIBRATE"
	EventSweep      = "SWEEP"
)
