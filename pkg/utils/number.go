package utils

import (
	"strconv"
	"strings"
)

// ToFloat converte valores monetários do CRM (string, número ou nil) para float64.
// Valores ausentes ou inválidos viram 0.
func ToFloat(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
