package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/cache"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
)

// HealthcheckHandler responde a sondagem de vida com o estado das dependências.
// Banco fora do ar derruba o serviço; Redis fora do ar só degrada, porque a
// camada durável do cache continua atendendo.
func HealthcheckHandler(conn *postgres.Connection, reportCache cache.ReportCache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		health := map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		statusCode := http.StatusOK

		if err := conn.Ping(r.Context()); err != nil {
			logrus.WithError(err).Error("healthcheck: database ping failed")
			health["status"] = "error"
			health["database"] = "error"
			statusCode = http.StatusServiceUnavailable
		} else {
			health["database"] = "ok"
		}

		if err := reportCache.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("healthcheck: hot cache ping failed")
			if health["status"] == "ok" {
				health["status"] = "degraded"
			}
			health["cache"] = "degraded"
		} else {
			health["cache"] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(health); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
