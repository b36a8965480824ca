package bitrixclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	bitrixdomain "github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/domain"
	"github.com/vfg2006/sales-reports-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	methodUserGet      = "user.get"
	methodCrmDealList  = "crm.deal.list"
	defaultMaxPages    = 200
	defaultHTTPTimeout = 30 * time.Second
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

var ErrTooManyPages = errors.New("limite de páginas do Bitrix atingido")

type Client interface {
	GetUsers(ctx context.Context, params UsersParams) ([]bitrixdomain.User, error)
	GetDeals(ctx context.Context, params DealsParams) ([]bitrixdomain.Deal, error)
}

type BitrixClient struct {
	httpClient *http.Client
	webhookURL string
	maxPages   int
}

// NewClient cria o cliente do webhook REST do Bitrix24
func NewClient(cfg *config.Config) Client {
	return newClient(cfg.Bitrix, &http.Client{})
}

func newClient(cfg config.Bitrix, httpClient *http.Client) *BitrixClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	httpClient.Timeout = timeout

	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	return &BitrixClient{
		httpClient: httpClient,
		webhookURL: strings.TrimRight(cfg.WebhookURL, "/"),
		maxPages:   maxPages,
	}
}

// call executa um método REST e devolve o envelope já decodificado
func (c *BitrixClient) call(ctx context.Context, method string, payload map[string]interface{}) (*bitrixdomain.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar parâmetros")
	}

	endpoint := c.webhookURL + "/" + method + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar a requisição %s", method)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	var response bitrixdomain.Response
	if err := json.Unmarshal(data, &response); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("requisição %s falhou com status: %s", method, resp.Status)
		}
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if response.Error != "" || resp.StatusCode != http.StatusOK {
		bitrixErr := &bitrixdomain.ErrorResponse{
			Code:        response.Error,
			Description: response.ErrorDescription,
			StatusCode:  resp.StatusCode,
		}
		if bitrixErr.IsQueryLimitExceeded() {
			logrus.WithField("method", method).Warn("Bitrix limitou a taxa de requisições")
		}
		return nil, errors.WithStack(bitrixErr)
	}

	return &response, nil
}

// fetchAll percorre as páginas seguindo o cursor "next" até acabar ou atingir o limite
func (c *BitrixClient) fetchAll(ctx context.Context, method string, payload map[string]interface{}, limit int) ([]map[string]interface{}, error) {
	var (
		records []map[string]interface{}
		start   = 0
	)

	for page := 0; ; page++ {
		if page >= c.maxPages {
			return nil, errors.Wrapf(ErrTooManyPages, "%s após %d páginas", method, page)
		}

		payload["start"] = start

		response, err := c.call(ctx, method, payload)
		if err != nil {
			return nil, err
		}

		records = append(records, response.Result...)

		if limit > 0 && len(records) >= limit {
			return records[:limit], nil
		}

		if response.Next == nil || *response.Next <= start {
			break
		}
		start = *response.Next
	}

	logrus.WithFields(logrus.Fields{
		"method":  method,
		"records": len(records),
	}).Debug("Consulta ao Bitrix concluída")

	return records, nil
}

// decodeRecords converte os mapas crus do Bitrix nas structs tipadas
func decodeRecords(records []map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar decoder")
	}

	if err := decoder.Decode(records); err != nil {
		return errors.Wrap(err, "registro do Bitrix em formato inesperado")
	}

	return nil
}
