package bitrixdomain

// Campos padrão e personalizados de crm.deal.list usados pelos relatórios
const (
	DealFieldID           = "ID"
	DealFieldTitle        = "TITLE"
	DealFieldStageID      = "STAGE_ID"
	DealFieldTypeID       = "TYPE_ID"
	DealFieldAssignedByID = "ASSIGNED_BY_ID"
	DealFieldCloseDate    = "CLOSEDATE"
	DealFieldDateCreate   = "DATE_CREATE"
	DealFieldOpportunity  = "OPPORTUNITY"
	DealFieldSourceID     = "SOURCE_ID"

	DealFieldProject           = "UF_CRM_67F77CCBC7132"
	DealFieldCommissionPercent = "UF_CRM_1727626089404"
	DealFieldUnitNo            = "UF_CRM_1727625804043"
	DealFieldDeveloperName     = "UF_CRM_1727625822094"
	DealFieldPropertyType      = "UF_CRM_66E3D8D1A13F7"
	DealFieldBedrooms          = "UF_CRM_1727854068559"
	DealFieldClientName        = "UF_CRM_1727854143005"
	DealFieldLeadSourceDetail  = "UF_CRM_1727854555607"
	DealFieldGrossCommission   = "UF_CRM_1727871887978"
	DealFieldVAT               = "UF_CRM_1727871911878"
	DealFieldAgentCommission   = "UF_CRM_1727871937052"
)

// Deal é o registro cru devolvido por crm.deal.list. Valores numéricos e listas
// ficam como interface{} porque o Bitrix devolve string, número, false ou nulo.
type Deal struct {
	ID           int    `mapstructure:"ID"`
	Title        string `mapstructure:"TITLE"`
	StageID      string `mapstructure:"STAGE_ID"`
	TypeID       string `mapstructure:"TYPE_ID"`
	AssignedByID int    `mapstructure:"ASSIGNED_BY_ID"`
	CloseDate    string `mapstructure:"CLOSEDATE"`
	DateCreate   string `mapstructure:"DATE_CREATE"`
	SourceID     string `mapstructure:"SOURCE_ID"`

	Opportunity interface{} `mapstructure:"OPPORTUNITY"`

	Project       string `mapstructure:"UF_CRM_67F77CCBC7132"`
	UnitNo        string `mapstructure:"UF_CRM_1727625804043"`
	DeveloperName string `mapstructure:"UF_CRM_1727625822094"`
	ClientName    string `mapstructure:"UF_CRM_1727854143005"`

	PropertyType interface{} `mapstructure:"UF_CRM_66E3D8D1A13F7"`
	Bedrooms     interface{} `mapstructure:"UF_CRM_1727854068559"`

	CommissionPercent interface{} `mapstructure:"UF_CRM_1727626089404"`
	GrossCommission   interface{} `mapstructure:"UF_CRM_1727871887978"`
	VAT               interface{} `mapstructure:"UF_CRM_1727871911878"`
	AgentCommission   interface{} `mapstructure:"UF_CRM_1727871937052"`
}
