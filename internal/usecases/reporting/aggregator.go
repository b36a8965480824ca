package reporting

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reports-api/internal/domain"
	"github.com/vfg2006/sales-reports-api/pkg/utils"
)

// datedDeal guarda a data de fechamento já interpretada para ordenar uma vez só
type datedDeal struct {
	deal      domain.Deal
	closedAt  time.Time
	parsedErr error
}

// BuildLastTransactions monta uma linha por agente com pelo menos um negócio,
// na ordem da lista de agentes, a partir do negócio com a maior data de fechamento.
func BuildLastTransactions(employees []domain.Employee, deals []domain.Deal, today time.Time) []domain.LastTransaction {
	rows := make([]domain.LastTransaction, 0, len(employees))
	if len(deals) == 0 {
		return rows
	}

	dealsByEmployee := groupByAssignee(deals)

	for _, emp := range employees {
		employeeDeals := dealsByEmployee[emp.ID]
		if len(employeeDeals) == 0 {
			continue
		}

		rows = append(rows, toLastTransaction(emp, latestDeal(employeeDeals), today))
	}

	return rows
}

// groupByAssignee agrupa os negócios por responsável mantendo a ordem recebida
func groupByAssignee(deals []domain.Deal) map[int][]datedDeal {
	grouped := make(map[int][]datedDeal)
	for _, deal := range deals {
		closedAt, err := utils.ParseCRMDate(deal.CloseDate)
		grouped[deal.AssignedByID] = append(grouped[deal.AssignedByID], datedDeal{
			deal:      deal,
			closedAt:  closedAt,
			parsedErr: err,
		})
	}
	return grouped
}

// latestDeal ordena por data de fechamento decrescente e devolve o primeiro.
// Datas inválidas valem como a data mais antiga; empates mantêm a ordem do CRM.
func latestDeal(deals []datedDeal) datedDeal {
	sorted := slices.Clone(deals)
	slices.SortStableFunc(sorted, func(a, b datedDeal) int {
		return b.closedAt.Compare(a.closedAt)
	})
	return sorted[0]
}

func toLastTransaction(emp domain.Employee, last datedDeal, today time.Time) domain.LastTransaction {
	months := 0
	if last.parsedErr != nil {
		logrus.WithFields(logrus.Fields{
			"employee_id": emp.ID,
			"deal_id":     last.deal.ID,
			"close_date":  last.deal.CloseDate,
		}).Warn("Data de fechamento inválida, meses sem fechar considerado 0")
	} else {
		months = utils.MonthsBetween(last.closedAt, today)
	}

	amount := last.deal.Amount()

	return domain.LastTransaction{
		Agent:                emp.FullName(),
		JoiningDate:          emp.EmploymentDate,
		LastDealDate:         last.deal.CloseDate,
		Project:              last.deal.Project,
		Amount:               amount,
		GrossComms:           amount * last.deal.CommissionPercent / 100,
		MonthsWithoutClosing: months,
	}
}
