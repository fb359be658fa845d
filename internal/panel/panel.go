// Package panel implements the oven control panel core: a single Celsius
// scalar plus four derived display outputs kept consistent with it through
// injectable converter and recommender functions.
//
// The panel is synchronous and single-threaded; callers that share one
// instance across goroutines must serialize access themselves.
package panel

import "ovenpanel/internal/models"

// Panel holds the current dial temperature and its rendered readout.
// Converters default to Identity and the recommender to NoRecommendation,
// so a freshly constructed panel shows "broken" Fahrenheit/Kelvin outputs
// until it is calibrated.
type Panel struct {
	minC, maxC float64
	tempC      float64

	toFahrenheit ConvertFunc
	toKelvin     ConvertFunc
	recommend    RecommendFunc
	calibrated   bool

	readout models.PanelReadout
}

// New returns an uncalibrated panel for the given dial range, with the dial
// resting at minC. Callers passing an inverted range get it normalized.
func New(minC, maxC float64) *Panel {
	if maxC < minC {
		minC, maxC = maxC, minC
	}
	p := &Panel{
		minC:         minC,
		maxC:         maxC,
		tempC:        minC,
		toFahrenheit: Identity,
		toKelvin:     Identity,
		recommend:    NoRecommendation,
	}
	p.recompute()
	return p
}

// NewCalibrated returns a panel pre-wired with the real unit converters and
// the oven food recommender, with an immediate recompute. This replaces the
// original's "corrected" subclass variant with a named factory.
func NewCalibrated(minC, maxC float64) *Panel {
	p := New(minC, maxC)
	p.Calibrate()
	return p
}

// SetTemperature stores the new dial value, clamping it into the configured
// range, and synchronously recomputes all four outputs. The updated readout
// is returned. Setting the same value twice produces identical readouts.
func (p *Panel) SetTemperature(c float64) models.PanelReadout {
	p.tempC = clamp(c, p.minC, p.maxC)
	p.recompute()
	return p.readout
}

// SetFahrenheitConverter replaces the Fahrenheit converter. The new function
// takes effect on the next recompute; the current readout is left as is.
// A nil fn restores the identity default.
func (p *Panel) SetFahrenheitConverter(fn ConvertFunc) {
	if fn == nil {
		fn = Identity
	}
	p.toFahrenheit = fn
}

// SetKelvinConverter replaces the Kelvin converter; same contract as
// SetFahrenheitConverter.
func (p *Panel) SetKelvinConverter(fn ConvertFunc) {
	if fn == nil {
		fn = Identity
	}
	p.toKelvin = fn
}

// SetRecommender replaces the food recommender, effective on the next
// recompute. A nil fn restores the no-recommendation default.
func (p *Panel) SetRecommender(fn RecommendFunc) {
	if fn == nil {
		fn = NoRecommendation
	}
	p.recommend = fn
}

// Calibrate wires the real converters and the oven recommender in and
// refreshes the readout immediately.
func (p *Panel) Calibrate() models.PanelReadout {
	p.toFahrenheit = CelsiusToFahrenheit
	p.toKelvin = CelsiusToKelvin
	p.recommend = RecommendOvenFood
	p.calibrated = true
	p.recompute()
	return p.readout
}

// Readout returns the last computed display state.
func (p *Panel) Readout() models.PanelReadout { return p.readout }

// Temperature returns the current dial value in Celsius.
func (p *Panel) Temperature() float64 { return p.tempC }

// Calibrated reports whether the real converters have been wired in.
func (p *Panel) Calibrated() bool { return p.calibrated }

// Range returns the configured dial bounds.
func (p *Panel) Range() (minC, maxC float64) { return p.minC, p.maxC }

func (p *Panel) recompute() {
	p.readout = models.PanelReadout{
		TempC:          p.tempC,
		Celsius:        FormatCelsius(p.tempC),
		Fahrenheit:     FormatFahrenheit(p.toFahrenheit(p.tempC)),
		Kelvin:         FormatKelvin(p.toKelvin(p.tempC)),
		Recommendation: FormatRecommendation(p.recommend(p.tempC)),
		Calibrated:     p.calibrated,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
