package bitrixdomain

// User é o registro cru devolvido por user.get
type User struct {
	ID             int     `mapstructure:"ID"`
	Name           string  `mapstructure:"NAME"`
	LastName       string  `mapstructure:"LAST_NAME"`
	WorkPosition   string  `mapstructure:"WORK_POSITION"`
	Departments    []int   `mapstructure:"UF_DEPARTMENT"`
	EmploymentDate *string `mapstructure:"UF_EMPLOYMENT_DATE"`
}

const (
	UserFieldID             = "ID"
	UserFieldName           = "NAME"
	UserFieldLastName       = "LAST_NAME"
	UserFieldWorkPosition   = "WORK_POSITION"
	UserFieldDepartment     = "UF_DEPARTMENT"
	UserFieldEmploymentDate = "UF_EMPLOYMENT_DATE"
)

// UserFields é a lista de campos pedida nos dois relatórios
var UserFields = []string{
	UserFieldID,
	UserFieldName,
	UserFieldLastName,
	UserFieldWorkPosition,
	UserFieldDepartment,
	UserFieldEmploymentDate,
}
