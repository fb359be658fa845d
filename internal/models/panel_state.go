package models

import "time"

// PanelState is the persisted snapshot of the oven dial.
// A single row (id=1) mirrors the in-memory panel across restarts.
type PanelState struct {
	ID         int       `json:"id"`
	TempC      float64   `json:"temp_c"`     // °C, clamped to the configured dial range
	Calibrated bool      `json:"calibrated"` // true once real converters are wired
	UpdatedAt  time.Time `json:"updated_at"`
}

// PanelReadout is the rendered display state: the raw Celsius value plus the
// four text outputs the panel keeps consistent with it.
type PanelReadout struct {
	TempC          float64   `json:"temp_c"`
	Celsius        string    `json:"celsius"`        // e.g. "100.00 °C"
	Fahrenheit     string    `json:"fahrenheit"`     // e.g. "212.00 °F"
	Kelvin         string    `json:"kelvin"`         // e.g. "373.15 °K"
	Recommendation string    `json:"recommendation"` // "Suitable for <food>." or ""
	Calibrated     bool      `json:"calibrated"`
	UpdatedAt      time.Time `json:"updated_at"`
}
