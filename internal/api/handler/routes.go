package handler

import (
	"net/http"

	"github.com/vfg2006/sales-reports-api/internal/api/handler/router"
	"github.com/vfg2006/sales-reports-api/internal/usecases/reporting"
)

func Healthcheck(cachePurge StatusReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cachePurge),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/last-transactions",
			Method:  http.MethodGet,
			Handler: GetLastTransactions(service),
		},
		{
			Path:    "/v1/reports/overall-deals",
			Method:  http.MethodGet,
			Handler: GetOverallDeals(service),
		},
	}
}
