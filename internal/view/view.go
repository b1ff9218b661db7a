// Package view renders dashboard states as HTML. Every function here is a
// pure function of its arguments.
package view

import (
	"embed"
	"html/template"
	"io"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// LoadingRefreshSeconds is how often a loading page asks the browser to reload.
const LoadingRefreshSeconds = 1

const (
	subtitle = "Welcome to your weather dashboard"
	footer   = "Data from Open-Meteo API • Updated in real-time"
)

// Card is the view model for the body of the weather card.
type Card struct {
	Phase       string
	Message     string
	Emoji       string
	Temperature string
	Description string
	Humidity    string
	Wind        string
}

// NewCard maps a UI state onto its card. Numbers are printed in locale.
func NewCard(state weather.UIState, locale language.Tag) Card {
	c := Card{Phase: state.Phase().String()}

	switch state.Phase() {
	case weather.PhaseError:
		c.Message = state.Message()
	case weather.PhaseLoaded:
		snap, _ := state.Snapshot()
		p := message.NewPrinter(locale)
		c.Emoji = snap.WeatherCode.Emoji()
		c.Temperature = FormatTemperature(snap.Temperature)
		c.Description = snap.WeatherCode.Description()
		c.Humidity = formatDecimal(p, snap.Humidity) + "%"
		c.Wind = formatDecimal(p, snap.WindSpeed) + " km/h"
	}
	return c
}

// Page is the view model for the full dashboard page.
type Page struct {
	Lang           string
	Title          string
	Subtitle       string
	Heading        string
	Footer         string
	RefreshSeconds int
	Card           Card
}

// NewPage builds the page for settings and the current state.
func NewPage(settings weather.Settings, state weather.UIState) Page {
	tag := ParseLocale(settings.Locale)

	title := "Hello"
	if settings.Greeting != "" {
		title += " " + settings.Greeting
	}

	page := Page{
		Lang:     tag.String(),
		Title:    title,
		Subtitle: subtitle,
		Heading:  "Current Weather in " + settings.Query.Location.Name,
		Footer:   footer,
		Card:     NewCard(state, tag),
	}
	if state.Phase() == weather.PhaseLoading {
		page.RefreshSeconds = LoadingRefreshSeconds
	}
	return page
}

// RenderPage writes the full HTML document.
func RenderPage(w io.Writer, p Page) error {
	return tmpl.ExecuteTemplate(w, "page", p)
}

// RenderCard writes only the card body.
func RenderCard(w io.Writer, c Card) error {
	return tmpl.ExecuteTemplate(w, "card", c)
}

// ParseLocale falls back to English for anything it cannot parse.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// RoundTemperature rounds half up, so 15.5 is 16 and -2.5 is -2.
func RoundTemperature(c float64) int {
	return int(math.Floor(c + 0.5))
}

// FormatTemperature renders a temperature as a whole number of degrees Celsius.
func FormatTemperature(c float64) string {
	return strconv.Itoa(RoundTemperature(c)) + "°C"
}

func formatDecimal(p *message.Printer, v float64) string {
	return p.Sprintf("%v", number.Decimal(v, number.NoSeparator()))
}
