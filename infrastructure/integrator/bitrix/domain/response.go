package bitrixdomain

import "fmt"

// Response é o envelope padrão das chamadas REST do Bitrix24
type Response struct {
	Result           []map[string]interface{} `json:"result"`
	Next             *int                     `json:"next,omitempty"`
	Total            int                      `json:"total"`
	Error            string                   `json:"error,omitempty"`
	ErrorDescription string                   `json:"error_description,omitempty"`
}

// ErrorResponse representa o erro devolvido pelo Bitrix
type ErrorResponse struct {
	Code        string
	Description string
	StatusCode  int
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("bitrix: %s (%d): %s", e.Code, e.StatusCode, e.Description)
}

// IsQueryLimitExceeded indica que o portal limitou a taxa de requisições
func (e *ErrorResponse) IsQueryLimitExceeded() bool {
	return e.Code == "QUERY_LIMIT_EXCEEDED"
}
