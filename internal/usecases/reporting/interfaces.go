package reporting

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporter.go -package=mocks

// Report é o corpo JSON pronto para ser enviado ao cliente
type Report struct {
	Body      []byte
	FromCache bool
}

// Reporter gera os relatórios de vendas do dashboard
type Reporter interface {
	// LastTransactions retorna o último negócio fechado de cada agente de vendas
	LastTransactions(ctx context.Context) (*Report, error)

	// OverallDeals retorna os negócios mais recentes com rótulos legíveis.
	// Sem negócios, retorna ErrNoDealsFound.
	OverallDeals(ctx context.Context) (*Report, error)
}
