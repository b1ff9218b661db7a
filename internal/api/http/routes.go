package httpapi

import (
	"bytes"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/view"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// PhaseHeader carries the dashboard phase on card fragment responses.
const PhaseHeader = "X-Dashboard-Phase"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Get("/", func(c *fiber.Ctx) error {
		d := service.Mount()
		return c.Redirect("/dashboards/"+d.ID, fiber.StatusSeeOther)
	})

	app.Get("/dashboards/:id", func(c *fiber.Ctx) error {
		d, err := lookupDashboard(c, service)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := view.RenderPage(&buf, view.NewPage(service.Settings(), d.State())); err != nil {
			return err
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	})

	app.Get("/dashboards/:id/card", func(c *fiber.Ctx) error {
		d, err := lookupDashboard(c, service)
		if err != nil {
			return err
		}

		state := d.State()
		card := view.NewCard(state, view.ParseLocale(service.Settings().Locale))

		var buf bytes.Buffer
		if err := view.RenderCard(&buf, card); err != nil {
			return err
		}
		c.Set(PhaseHeader, state.Phase().String())
		c.Set(fiber.HeaderCacheControl, "no-store")
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	})

	v1 := app.Group("/api/v1")

	v1.Get("/dashboards/:id", func(c *fiber.Ctx) error {
		d, err := lookupDashboard(c, service)
		if err != nil {
			return err
		}
		return c.JSON(newStateResponse(d))
	})

	v1.Delete("/dashboards/:id", func(c *fiber.Ctx) error {
		req, err := parseDashboardParam(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := service.Unmount(req.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "dashboard not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to unmount dashboard")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// dashboardParam identifies a mounted dashboard.
type dashboardParam struct {
	ID string `validate:"required,uuid4"`
}

func parseDashboardParam(c *fiber.Ctx) (dashboardParam, error) {
	p := dashboardParam{ID: c.Params("id")}
	if err := validate.Struct(p); err != nil {
		return p, err
	}
	return p, nil
}

func lookupDashboard(c *fiber.Ctx, service *weather.Service) (*weather.Dashboard, error) {
	req, err := parseDashboardParam(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	d, err := service.Dashboard(req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "dashboard not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	return d, nil
}

// stateResponse is the JSON view of a dashboard.
type stateResponse struct {
	ID          string            `json:"id"`
	Phase       string            `json:"phase"`
	Message     string            `json:"message,omitempty"`
	Snapshot    *weather.Snapshot `json:"snapshot,omitempty"`
	Description string            `json:"description,omitempty"`
	Emoji       string            `json:"emoji,omitempty"`
	Temperature *int              `json:"temperatureRounded,omitempty"`
}

func newStateResponse(d *weather.Dashboard) stateResponse {
	state := d.State()
	resp := stateResponse{
		ID:      d.ID,
		Phase:   state.Phase().String(),
		Message: state.Message(),
	}
	if snap, ok := state.Snapshot(); ok {
		rounded := view.RoundTemperature(snap.Temperature)
		resp.Snapshot = &snap
		resp.Description = snap.WeatherCode.Description()
		resp.Emoji = snap.WeatherCode.Emoji()
		resp.Temperature = &rounded
	}
	return resp
}
