package domain

// LastTransaction é a linha do relatório de últimas transações, uma por agente
type LastTransaction struct {
	Agent                string  `json:"agent"`
	JoiningDate          *string `json:"joiningDate"`
	LastDealDate         string  `json:"lastDealDate"`
	Project              string  `json:"project"`
	Amount               float64 `json:"amount"`
	GrossComms           float64 `json:"grossComms"`
	MonthsWithoutClosing int     `json:"monthsWithoutClosing"`
}

// OverallDeal é a linha do relatório de negócios recentes
type OverallDeal struct {
	Date                   string       `json:"date"`
	DealType               string       `json:"dealType"`
	ProjectName            string       `json:"projectName"`
	UnitNo                 string       `json:"unitNo"`
	DeveloperName          string       `json:"developerName"`
	PropertyType           string       `json:"propertyType"`
	NoOfBr                 BedroomLabel `json:"noOfBr"`
	ClientName             string       `json:"clientName"`
	AgentName              string       `json:"agentName"`
	PropertyPrice          float64      `json:"propertyPrice"`
	GrossCommissionInclVAT float64      `json:"grossCommissionInclVAT"`
	GrossCommission        float64      `json:"grossCommission"`
	VAT                    float64      `json:"vat"`
	AgentCommission        float64      `json:"agentCommission"`
	LeadSource             string       `json:"leadSource"`
}
