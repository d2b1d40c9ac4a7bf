package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates every check failed.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckEmpty indicates the store is reachable but holds no FAQ items.
	CheckEmpty CheckResult = "empty"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status    Status
	Checks    map[string]CheckResult
	Timestamp time.Time
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	catalog CatalogCounter
	now     func() time.Time
}

// New creates a Service. catalog can be nil.
func New(db DBPinger, catalog CatalogCounter) *Service {
	return &Service{db: db, catalog: catalog, now: func() time.Time { return time.Now().UTC() }}
}

// Check pings the database and verifies that FAQ items are present.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 2)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	if s.catalog != nil {
		switch n, err := s.catalog.Count(ctx, ""); {
		case err != nil:
			checks["catalog"] = CheckError
		case n == 0:
			checks["catalog"] = CheckEmpty
		default:
			checks["catalog"] = CheckOK
		}
	}

	failed := 0
	for _, v := range checks {
		if v != CheckOK {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks, Timestamp: s.now()}
}
