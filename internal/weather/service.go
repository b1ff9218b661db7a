package weather

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Service mounts dashboards against a provider and keeps them in a store.
type Service struct {
	store        Store
	provider     Provider
	settings     Settings
	fetchTimeout time.Duration
}

// NewService creates a new Service. fetchTimeout <= 0 disables the per-fetch timeout.
func NewService(store Store, provider Provider, settings Settings, fetchTimeout time.Duration) *Service {
	return &Service{
		store:        store,
		provider:     provider,
		settings:     settings,
		fetchTimeout: fetchTimeout,
	}
}

// Settings returns the display and query settings the service was built with.
func (s *Service) Settings() Settings {
	return s.settings
}

// Mount creates a dashboard in the Loading state and starts its one fetch.
func (s *Service) Mount() *Dashboard {
	d := NewDashboard(uuid.NewString(), time.Now().UTC())
	s.store.Save(d)

	log.Printf("DEBUG: mounted dashboard %s for %s", d.ID, s.settings.Query.Location.Key())
	d.start(s.provider, s.settings.Query, s.fetchTimeout)
	return d
}

// Dashboard delegates to the underlying store.
func (s *Service) Dashboard(id string) (*Dashboard, error) {
	return s.store.Get(id)
}

// Unmount removes the dashboard and tears it down.
func (s *Service) Unmount(id string) error {
	d, err := s.store.Delete(id)
	if err != nil {
		return err
	}
	d.Close()
	return nil
}

// Sweep unmounts every dashboard older than the store's retention.
func (s *Service) Sweep(now time.Time) int {
	return s.store.Expire(now)
}
