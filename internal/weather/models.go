package weather

import (
	"strconv"
	"strings"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown      Condition = "unknown"
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly-cloudy"
	ConditionFog          Condition = "fog"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionStorm        Condition = "storm"
)

// Location is the fixed place the dashboard reports on.
type Location struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Lon  float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Key returns a canonical string key for this location.
func (l Location) Key() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lon, 'f', -1, 64)
}

// Default current-condition fields requested from the forecast API.
const (
	FieldTemperature = "temperature_2m"
	FieldHumidity    = "relative_humidity_2m"
	FieldWeatherCode = "weather_code"
	FieldWindSpeed   = "wind_speed_10m"
)

// DefaultFields lists the fields a Snapshot is decoded from, in request order.
func DefaultFields() []string {
	return []string{FieldTemperature, FieldHumidity, FieldWeatherCode, FieldWindSpeed}
}

// Query is what the fetch step sends upstream.
type Query struct {
	Location Location
	Fields   []string `validate:"required,min=1,dive,required"`
}

// FieldList returns the comma separated field list used in the request URL.
func (q Query) FieldList() string {
	return strings.Join(q.Fields, ",")
}

// Settings bundles everything that used to be hardcoded in the page.
type Settings struct {
	Query    Query
	Locale   string `validate:"required"`
	Greeting string
}

// DefaultSettings returns Amsterdam with the four current-condition fields.
func DefaultSettings() Settings {
	return Settings{
		Query: Query{
			Location: Location{Name: "Amsterdam", Lat: 52.3676, Lon: 4.9041},
			Fields:   DefaultFields(),
		},
		Locale:   "en",
		Greeting: "Marciano",
	}
}

// Snapshot is the decoded current-conditions record.
type Snapshot struct {
	Temperature float64 `json:"temperatureC"`
	Humidity    float64 `json:"humidityPercent"`
	WeatherCode Code    `json:"weatherCode"`
	WindSpeed   float64 `json:"windSpeedKmh"`
}
