package utils

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDate = errors.New("data vazia")

// Formatos que o Bitrix devolve em CLOSEDATE, DATE_CREATE e UF_EMPLOYMENT_DATE
var crmDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
	"02.01.2006 15:04:05",
	"02.01.2006",
}

// ParseCRMDate converte uma data vinda do CRM. Quem chama decide o que fazer
// com o erro; o relatório de últimas transações ordena falhas como a data mais antiga.
func ParseCRMDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	var lastErr error
	for _, layout := range crmDateLayouts {
		parsed, err := time.Parse(layout, dateStr)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// FormatDate devolve a data no formato YYYY-MM-DD ou "" quando não for possível interpretá-la
func FormatDate(dateStr string) string {
	parsed, err := ParseCRMDate(dateStr)
	if err != nil {
		return ""
	}
	return parsed.Format(time.DateOnly)
}

// MonthsBetween retorna a quantidade de meses completos entre duas datas,
// considerando apenas o dia do calendário (anos*12 + meses).
func MonthsBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	if ey < sy || (ey == sy && em < sm) || (ey == sy && em == sm && ed < sd) {
		sy, sm, sd, ey, em, ed = ey, em, ed, sy, sm, sd
	}

	months := (ey-sy)*12 + int(em-sm)
	if ed < sd {
		months--
	}

	return months
}
