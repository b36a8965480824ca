// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// Employee é um funcionário do CRM já filtrado pelos departamentos de vendas
type Employee struct {
	ID             int
	Name           string
	LastName       string
	WorkPosition   string
	Departments    []int
	EmploymentDate *string
}

// FullName retorna "Nome Sobrenome" sem espaços nas pontas
func (e Employee) FullName() string {
	return strings.TrimSpace(e.Name + " " + e.LastName)
}

// DisplayName retorna "Nome Sobrenome" sem aparar, como é exibido no relatório de negócios
func (e Employee) DisplayName() string {
	return e.Name + " " + e.LastName
}

func EmployeeIDs(employees []Employee) []int {
	ids := make([]int, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	return ids
}
