package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	// Stats aggregates directory, attendance, leave and payroll counts
	// as of the given instant.
	Stats(ctx context.Context, companyID string, now time.Time) (DashboardStatsResponse, error)
}
