package bitrixclient

import (
	"context"

	bitrixdomain "github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/domain"
)

type UsersParams struct {
	Filter map[string]interface{}
	Select []string
}

// GetUsers busca todos os usuários que atendem ao filtro
func (c *BitrixClient) GetUsers(ctx context.Context, params UsersParams) ([]bitrixdomain.User, error) {
	payload := map[string]interface{}{
		"FILTER": params.Filter,
	}
	if len(params.Select) > 0 {
		payload["SELECT"] = params.Select
	}

	records, err := c.fetchAll(ctx, methodUserGet, payload, 0)
	if err != nil {
		return nil, err
	}

	users := make([]bitrixdomain.User, 0, len(records))
	if err := decodeRecords(records, &users); err != nil {
		return nil, err
	}

	return users, nil
}
