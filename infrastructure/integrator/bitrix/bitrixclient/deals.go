package bitrixclient

import (
	"context"

	bitrixdomain "github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/domain"
)

type DealsParams struct {
	Filter map[string]interface{}
	Select []string
	Order  map[string]string
	Limit  int // 0 busca todas as páginas
}

// GetDeals busca negócios do CRM respeitando filtro, ordenação e limite
func (c *BitrixClient) GetDeals(ctx context.Context, params DealsParams) ([]bitrixdomain.Deal, error) {
	payload := map[string]interface{}{
		"filter": params.Filter,
		"select": params.Select,
	}
	if len(params.Order) > 0 {
		payload["order"] = params.Order
	}

	records, err := c.fetchAll(ctx, methodCrmDealList, payload, params.Limit)
	if err != nil {
		return nil, err
	}

	deals := make([]bitrixdomain.Deal, 0, len(records))
	if err := decodeRecords(records, &deals); err != nil {
		return nil, err
	}

	return deals, nil
}
