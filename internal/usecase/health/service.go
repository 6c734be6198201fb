package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the catalog is served but a dependency failed.
	Degraded Status = "degraded"
	// Unhealthy indicates no catalog can be served.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status       Status
	Checks       map[string]CheckResult
	CatalogItems int
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogState
	db      DBPinger
}

// New creates a Service. db can be nil when running without a store.
func New(catalog CatalogState, db DBPinger) *Service {
	return &Service{catalog: catalog, db: db}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Status: Healthy, Checks: make(map[string]CheckResult)}

	if c, ok := s.catalog.Snapshot(); ok {
		r.Checks["catalog"] = CheckOK
		r.CatalogItems = c.Len()
	} else {
		r.Checks["catalog"] = CheckError
		r.Status = Unhealthy
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			r.Checks["database"] = CheckError
			if r.Status == Healthy {
				r.Status = Degraded
			}
		} else {
			r.Checks["database"] = CheckOK
		}
	}

	return r
}
