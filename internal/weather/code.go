package weather

// Code is a WMO weather interpretation code as returned by Open-Meteo.
type Code int

// Condition buckets the code. Bounds are inclusive and checked in
// ascending order; anything outside 0-99 is unknown.
func (c Code) Condition() Condition {
	switch {
	case c < 0:
		return ConditionUnknown
	case c == 0:
		return ConditionClear
	case c <= 3:
		return ConditionPartlyCloudy
	case c <= 49:
		return ConditionFog
	case c <= 69:
		return ConditionRain
	case c <= 79:
		return ConditionSnow
	case c <= 99:
		return ConditionStorm
	default:
		return ConditionUnknown
	}
}

// Description returns the human-readable text for the code.
func (c Code) Description() string {
	switch c.Condition() {
	case ConditionClear:
		return "Clear sky"
	case ConditionPartlyCloudy:
		return "Partly cloudy"
	case ConditionFog:
		return "Foggy"
	case ConditionRain:
		return "Rainy"
	case ConditionSnow:
		return "Snowy"
	case ConditionStorm:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}

// Emoji returns the glyph shown next to the temperature.
func (c Code) Emoji() string {
	switch c.Condition() {
	case ConditionClear:
		return "☀️"
	case ConditionPartlyCloudy:
		return "⛅"
	case ConditionFog:
		return "🌫️"
	case ConditionRain:
		return "🌧️"
	case ConditionSnow:
		return "❄️"
	case ConditionStorm:
		return "⛈️"
	default:
		return "🌡️"
	}
}
