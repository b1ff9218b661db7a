package weather

import (
	"context"
	"time"
)

// Provider abstracts the upstream weather source.
type Provider interface {
	Name() string
	FetchCurrent(ctx context.Context, q Query) (Snapshot, error)
}

// Store is the contract the in-memory dashboard registry must satisfy.
type Store interface {
	Save(d *Dashboard)
	Get(id string) (*Dashboard, error)
	Delete(id string) (*Dashboard, error)
	// Expire removes and tears down dashboards mounted before now minus the
	// retention age, returning how many were removed.
	Expire(now time.Time) int
}
