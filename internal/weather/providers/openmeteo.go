package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultOpenMeteoURL is the forecast endpoint serving current conditions.
const DefaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

var (
	errMissingCurrent = errors.New("response has no current conditions")
	errIncomplete     = errors.New("incomplete current conditions")
)

var validate = validator.New()

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider builds a provider against baseURL; an empty baseURL
// selects DefaultOpenMeteoURL.
func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// RequestURL renders the exact URL issued for q. Query parameters keep the
// latitude, longitude, current order and the field list is not escaped.
func (p *OpenMeteoProvider) RequestURL(q weather.Query) string {
	return fmt.Sprintf("%s?latitude=%s&longitude=%s&current=%s",
		p.baseURL,
		strconv.FormatFloat(q.Location.Lat, 'f', -1, 64),
		strconv.FormatFloat(q.Location.Lon, 'f', -1, 64),
		q.FieldList(),
	)
}

type currentPayload struct {
	Current *struct {
		Temperature *float64 `json:"temperature_2m" validate:"required"`
		Humidity    *float64 `json:"relative_humidity_2m" validate:"required"`
		WeatherCode *int     `json:"weather_code" validate:"required"`
		WindSpeed   *float64 `json:"wind_speed_10m" validate:"required"`
	} `json:"current"`
}

func (p *OpenMeteoProvider) FetchCurrent(ctx context.Context, q weather.Query) (weather.Snapshot, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, p.RequestURL(q), nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.Snapshot{}, err
	}
	defer resp.Body.Close()

	var payload currentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode openmeteo response: %w", err)
	}
	if payload.Current == nil {
		return weather.Snapshot{}, errMissingCurrent
	}
	if err := validate.Struct(payload.Current); err != nil {
		return weather.Snapshot{}, fmt.Errorf("%w: %v", errIncomplete, err)
	}

	c := payload.Current
	return weather.Snapshot{
		Temperature: *c.Temperature,
		Humidity:    *c.Humidity,
		WeatherCode: weather.Code(*c.WeatherCode),
		WindSpeed:   *c.WindSpeed,
	}, nil
}
