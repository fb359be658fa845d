package panel

import "fmt"

// ConvertFunc maps a Celsius temperature to another unit. Converters must be
// pure: the panel recomputes its outputs on every temperature change and does
// not cache results across changes.
type ConvertFunc func(c float64) float64

// RecommendFunc maps a Celsius temperature to a food-suitability label.
// An empty string means no recommendation for that temperature.
type RecommendFunc func(c float64) string

// Identity returns c unchanged. It is the default converter of an
// uncalibrated panel, so Fahrenheit/Kelvin outputs mirror the Celsius
// value until real converters are assigned.
func Identity(c float64) float64 { return c }

// NoRecommendation is the default recommender.
func NoRecommendation(float64) string { return "" }

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 { return c*1.8 + 32 }

// CelsiusToKelvin converts °C to °K.
func CelsiusToKelvin(c float64) float64 { return c + 273.15 }

// Default dial range of the oven control.
const (
	MinDialC = 60.0
	MaxDialC = 300.0
)

// ovenBands maps closed Celsius intervals to the food suited for them.
// Values falling between two bands (e.g. 120.5) yield no recommendation.
var ovenBands = []struct {
	lo, hi float64
	food   string
}{
	{60, 120, "Vegetables"},
	{121, 180, "Beef Steak"},
	{181, 240, "Fish Fillets"},
	{241, 300, "Cookies and Cake"},
}

// RecommendOvenFood returns the food label for the given Celsius temperature,
// or "" when the temperature falls outside every band.
func RecommendOvenFood(c float64) string {
	for _, b := range ovenBands {
		if c >= b.lo && c <= b.hi {
			return b.food
		}
	}
	return ""
}

// FormatCelsius renders a Celsius value for display, e.g. "100.00 °C".
func FormatCelsius(v float64) string { return fmt.Sprintf("%.2f °C", v) }

// FormatFahrenheit renders a Fahrenheit value for display, e.g. "212.00 °F".
func FormatFahrenheit(v float64) string { return fmt.Sprintf("%.2f °F", v) }

// FormatKelvin renders a Kelvin value for display, e.g. "373.15 °K".
func FormatKelvin(v float64) string { return fmt.Sprintf("%.2f °K", v) }

// FormatRecommendation renders the recommendation line, e.g.
// "Suitable for Beef Steak.", or "" when there is no recommendation.
func FormatRecommendation(food string) string {
	if food == "" {
		return ""
	}
	return "Suitable for " + food + "."
}
