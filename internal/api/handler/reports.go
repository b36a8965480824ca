package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-reports-api/pkg/apiErrors"
	"github.com/vfg2006/sales-reports-api/pkg/log"
	"github.com/vfg2006/sales-reports-api/pkg/utils"
)

type reportFunc func(r *http.Request) (*reporting.Report, error)

// GetLastTransactions retorna o último negócio fechado de cada agente de vendas
func GetLastTransactions(service reporting.Reporter) http.HandlerFunc {
	return serveReport("last_transactions", func(r *http.Request) (*reporting.Report, error) {
		return service.LastTransactions(r.Context())
	})
}

// GetOverallDeals retorna os 10 negócios mais recentes. Sem negócios responde 204.
func GetOverallDeals(service reporting.Reporter) http.HandlerFunc {
	return serveReport("overall_deals", func(r *http.Request) (*reporting.Report, error) {
		return service.OverallDeals(r.Context())
	})
}

func serveReport(name string, build reportFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method Not Allowed", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithField("report", name)

		report, err := build(r)
		if err != nil {
			if errors.Is(err, reporting.ErrNoDealsFound) {
				apiErrors.WriteError(w, apiErrors.ErrNoContent, "No Deals Found", nil)
				return
			}

			logger.WithError(err).Error("Erro ao gerar relatório")
			apiErr := apiErrors.FromError(err, apiErrors.ErrExternalService)
			apiErrors.WriteError(w, apiErr.Code, "Erro ao consultar o CRM", nil)
			return
		}

		if report.FromCache {
			w.Header().Set("X-Cache", "HIT")
		} else {
			w.Header().Set("X-Cache", "MISS")
		}

		if err := utils.WriteRawJSON(w, http.StatusOK, report.Body); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta do relatório")
		}
	}
}
