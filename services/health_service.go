package services

import (
	"context"
	"time"

	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/gruhahomes/gruha-backend/types"
	"go.uber.org/zap"
)

// Pinger is the database capability the health service needs. Satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports the readiness of the service and its database.
type HealthService struct {
	db        Pinger
	version   string
	startTime time.Time
	log       *zap.SugaredLogger
}

func NewHealthService(db Pinger, version string) *HealthService {
	return &HealthService{
		db:        db,
		version:   version,
		startTime: time.Now(),
		log:       logger.GetLogger(),
	}
}

// CheckHealth pings the database and aggregates component statuses.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	dbStatus := h.checkDatabase(ctx)
	components["database"] = dbStatus
	if dbStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	if err := h.db.Ping(ctx); err != nil {
		h.log.Errorw("Database health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Database connection failed",
		}
	}
	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
