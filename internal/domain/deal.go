package domain

// Deal é um negócio do CRM com os campos personalizados já resolvidos
type Deal struct {
	ID           int
	AssignedByID int
	Title        string
	StageID      string
	TypeID       string
	CloseDate    string
	DateCreate   string
	Opportunity  *float64

	Project       string
	UnitNo        string
	DeveloperName string
	ClientName    string

	PropertyTypeCode int
	BedroomCode      int
	SourceID         string

	CommissionPercent float64
	GrossCommission   float64
	VAT               float64
	AgentCommission   float64
}

// Amount retorna o valor da oportunidade ou zero quando ausente
func (d Deal) Amount() float64 {
	if d.Opportunity == nil {
		return 0
	}
	return *d.Opportunity
}
