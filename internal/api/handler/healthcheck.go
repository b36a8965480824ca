package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reports-api/pkg/utils"
)

// StatusReporter é implementado pelos agendadores que expõem seu estado
type StatusReporter interface {
	GetStatus() map[string]any
}

func HealthcheckHandler(cachePurge StatusReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if cachePurge != nil {
			body["cache_purge"] = cachePurge.GetStatus()
		}

		if err := utils.WriteJSON(w, http.StatusOK, body); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
