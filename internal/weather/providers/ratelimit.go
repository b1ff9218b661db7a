package providers

import (
	"context"
	"fmt"

	"github.com/i474232898/weather-dashboard/internal/weather"
	"golang.org/x/time/rate"
)

// RateLimited wraps a weather.Provider with an outbound rate limit shared by
// every dashboard.
type RateLimited struct {
	provider weather.Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimited creates a rate limited provider.
// rps may be fractional; burst is the maximum burst size allowed.
func NewRateLimited(provider weather.Provider, rps float64, burst int) *RateLimited {
	return &RateLimited{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [rate limited]", provider.Name()),
	}
}

func (r *RateLimited) FetchCurrent(ctx context.Context, q weather.Query) (weather.Snapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.Snapshot{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchCurrent(ctx, q)
}

func (r *RateLimited) Name() string {
	return r.name
}

var (
	_ weather.Provider = (*RateLimited)(nil)
	_ weather.Provider = (*OpenMeteoProvider)(nil)
)
