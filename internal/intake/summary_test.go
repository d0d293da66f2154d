package intake

import (
	"strings"
	"testing"
)

func TestFormatSummaryFallbacks(t *testing.T) {
	summary := FormatSummary(&Session{})
	for _, line := range []string{
		"Имя: Не указано",
		"Категория: Не указана",
		"Площадка: Не указана",
		"Номер заказа: Не указан",
		"Контакт: Не указан",
		"Email: Не указан",
		"Дата рождения: Не указана",
	} {
		if !strings.Contains(summary, line) {
			t.Fatalf("summary missing %q:\n%s", line, summary)
		}
	}
	if got := strings.Count(summary, "\n"); got != 7 {
		t.Fatalf("expected 7 lines, got %d", got)
	}
}

func TestFormatSummaryFieldOrder(t *testing.T) {
	s := &Session{
		Name:        "Иван",
		Category:    "Пледы",
		Platform:    "Ozon",
		OrderNumber: "42",
		Contact:     "+79991234567",
		Email:       "ivan@example.com",
		Birthday:    "01.01.1990",
	}
	summary := FormatSummary(s)
	labels := []string{"Имя:", "Категория:", "Площадка:", "Номер заказа:", "Контакт:", "Email:", "Дата рождения:"}
	pos := -1
	for _, label := range labels {
		idx := strings.Index(summary, label)
		if idx == -1 || idx < pos {
			t.Fatalf("label %q out of order in:\n%s", label, summary)
		}
		pos = idx
	}
}
