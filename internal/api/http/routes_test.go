package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

type stubProvider struct {
	snap weather.Snapshot
	err  error
}

func (p stubProvider) Name() string { return "stub" }

func (p stubProvider) FetchCurrent(ctx context.Context, q weather.Query) (weather.Snapshot, error) {
	return p.snap, p.err
}

func newTestApp(p weather.Provider) (*fiber.App, *weather.Service) {
	app := fiber.New()
	memStore := store.NewMemoryStore(10, time.Hour)
	svc := weather.NewService(memStore, p, weather.DefaultSettings(), 0)
	RegisterRoutes(app, svc)
	return app, svc
}

func mustDo(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func mountAndSettle(t *testing.T, app *fiber.App, svc *weather.Service) string {
	t.Helper()
	resp := mustDo(t, app, http.MethodGet, "/")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	id := strings.TrimPrefix(loc, "/dashboards/")
	if id == loc || id == "" {
		t.Fatalf("unexpected redirect %q", loc)
	}

	d, err := svc.Dashboard(id)
	if err != nil {
		t.Fatalf("mounted dashboard not found: %v", err)
	}
	select {
	case <-d.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("dashboard did not settle")
	}
	return id
}

func TestDashboardPageLoaded(t *testing.T) {
	app, svc := newTestApp(stubProvider{snap: weather.Snapshot{Temperature: 15.6, Humidity: 81, WeatherCode: 0, WindSpeed: 12.3}})
	id := mountAndSettle(t, app, svc)

	resp := mustDo(t, app, http.MethodGet, "/dashboards/"+id)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := readBody(t, resp)
	for _, want := range []string{"Clear sky", "16°C", "81%", "12.3 km/h", "Hello Marciano"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page is missing %q", want)
		}
	}

	resp = mustDo(t, app, http.MethodGet, "/api/v1/dashboards/"+id)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var state struct {
		Phase       string `json:"phase"`
		Description string `json:"description"`
		Temperature int    `json:"temperatureRounded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Phase != "loaded" || state.Description != "Clear sky" || state.Temperature != 16 {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestDashboardCardError(t *testing.T) {
	app, svc := newTestApp(stubProvider{err: context.DeadlineExceeded})
	id := mountAndSettle(t, app, svc)

	resp := mustDo(t, app, http.MethodGet, "/dashboards/"+id+"/card")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if got := resp.Header.Get(PhaseHeader); got != "error" {
		t.Fatalf("expected error phase header, got %q", got)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "Failed to fetch weather data") || strings.Contains(body, "spinner") {
		t.Fatalf("unexpected card %q", body)
	}
}

func TestDashboardParamValidation(t *testing.T) {
	app, _ := newTestApp(stubProvider{})

	resp := mustDo(t, app, http.MethodGet, "/dashboards/not-a-uuid")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	resp = mustDo(t, app, http.MethodGet, "/api/v1/dashboards/3f1c2f7e-8a4b-4c1d-9e2f-1a2b3c4d5e6f")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestDashboardUnmount(t *testing.T) {
	app, svc := newTestApp(stubProvider{})
	id := mountAndSettle(t, app, svc)

	resp := mustDo(t, app, http.MethodDelete, "/api/v1/dashboards/"+id)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}

	resp = mustDo(t, app, http.MethodGet, "/dashboards/"+id)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	resp = mustDo(t, app, http.MethodDelete, "/api/v1/dashboards/"+id)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}
