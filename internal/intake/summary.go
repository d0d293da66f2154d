package intake

import (
	"fmt"
	"strings"
)

// summaryFields fixes the label order of the rendered summary. The
// fallbacks keep the historical gendered forms per field.
var summaryFields = []struct {
	label    string
	fallback string
	value    func(*Session) string
}{
	{"Имя", "Не указано", func(s *Session) string { return s.Name }},
	{"Категория", "Не указана", func(s *Session) string { return s.Category }},
	{"Площадка", "Не указана", func(s *Session) string { return s.Platform }},
	{"Номер заказа", "Не указан", func(s *Session) string { return s.OrderNumber }},
	{"Контакт", "Не указан", func(s *Session) string { return s.Contact }},
	{"Email", "Не указан", func(s *Session) string { return s.Email }},
	{"Дата рождения", "Не указана", func(s *Session) string { return s.Birthday }},
}

// FormatSummary renders the seven collected fields as labeled lines in
// fixed order. Pure function of the session; empty fields fall back to
// their "not provided" form.
func FormatSummary(s *Session) string {
	var b strings.Builder
	for _, f := range summaryFields {
		v := f.value(s)
		if v == "" {
			v = f.fallback
		}
		fmt.Fprintf(&b, "%s: %s\n", f.label, v)
	}
	return b.String()
}
