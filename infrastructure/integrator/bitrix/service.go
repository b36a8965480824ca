package bitrix

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/bitrixclient"
	bitrixdomain "github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/domain"
	"github.com/vfg2006/sales-reports-api/internal/domain"
	"github.com/vfg2006/sales-reports-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// UserFilter restringe a busca de usuários aos departamentos informados
type UserFilter struct {
	Departments []int
}

// DealQuery descreve uma consulta a crm.deal.list
type DealQuery struct {
	Filter map[string]interface{}
	Select []string
	Order  map[string]string
	Limit  int
}

type CRMIntegrator interface {
	ListUsers(ctx context.Context, filter UserFilter, fields []string) ([]domain.Employee, error)
	ListDeals(ctx context.Context, query DealQuery) ([]domain.Deal, error)
}

type BitrixService struct {
	Client bitrixclient.Client
}

func New(client bitrixclient.Client) CRMIntegrator {
	return &BitrixService{
		Client: client,
	}
}

func (s *BitrixService) ListUsers(ctx context.Context, filter UserFilter, fields []string) ([]domain.Employee, error) {
	params := bitrixclient.UsersParams{
		Filter: map[string]interface{}{
			bitrixdomain.UserFieldDepartment: filter.Departments,
		},
		Select: fields,
	}

	users, err := s.Client.GetUsers(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuários no Bitrix")
	}

	employees := make([]domain.Employee, 0, len(users))
	for _, user := range users {
		employees = append(employees, toEmployee(user))
	}

	return employees, nil
}

func (s *BitrixService) ListDeals(ctx context.Context, query DealQuery) ([]domain.Deal, error) {
	params := bitrixclient.DealsParams{
		Filter: query.Filter,
		Select: query.Select,
		Order:  query.Order,
		Limit:  query.Limit,
	}

	deals, err := s.Client.GetDeals(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar negócios no Bitrix")
	}

	result := make([]domain.Deal, 0, len(deals))
	for _, deal := range deals {
		result = append(result, toDeal(deal))
	}

	return result, nil
}

func toEmployee(user bitrixdomain.User) domain.Employee {
	return domain.Employee{
		ID:             user.ID,
		Name:           user.Name,
		LastName:       user.LastName,
		WorkPosition:   user.WorkPosition,
		Departments:    user.Departments,
		EmploymentDate: user.EmploymentDate,
	}
}

func toDeal(deal bitrixdomain.Deal) domain.Deal {
	result := domain.Deal{
		ID:                deal.ID,
		AssignedByID:      deal.AssignedByID,
		Title:             deal.Title,
		StageID:           deal.StageID,
		TypeID:            deal.TypeID,
		CloseDate:         deal.CloseDate,
		DateCreate:        deal.DateCreate,
		Project:           deal.Project,
		UnitNo:            deal.UnitNo,
		DeveloperName:     deal.DeveloperName,
		ClientName:        deal.ClientName,
		PropertyTypeCode:  toCode(deal.PropertyType),
		BedroomCode:       toCode(deal.Bedrooms),
		SourceID:          deal.SourceID,
		CommissionPercent: utils.ToFloat(deal.CommissionPercent),
		GrossCommission:   utils.ToFloat(deal.GrossCommission),
		VAT:               utils.ToFloat(deal.VAT),
		AgentCommission:   utils.ToFloat(deal.AgentCommission),
	}

	if deal.Opportunity != nil {
		amount := utils.ToFloat(deal.Opportunity)
		result.Opportunity = &amount
	}

	return result
}

// toCode lê o ID de um item de lista do Bitrix. Campos múltiplos usam o primeiro item.
func toCode(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		code, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return code
	case []interface{}:
		if len(v) == 0 {
			return 0
		}
		return toCode(v[0])
	default:
		return 0
	}
}
