package intake

import "testing"

func TestIsCyrillic(t *testing.T) {
	valid := []string{"Иван", "Ёлка", "мария", "АННА"}
	for _, name := range valid {
		if !IsCyrillic(name) {
			t.Fatalf("IsCyrillic(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "Ivan", "Иван Петров", "Иван1", "Иван-Петр", "Иvan"}
	for _, name := range invalid {
		if IsCyrillic(name) {
			t.Fatalf("IsCyrillic(%q) = true, want false", name)
		}
	}
}

func TestIsEmail(t *testing.T) {
	valid := []string{"a@b.ru", "user@mail.example.com", "имя@домен.рф"}
	for _, email := range valid {
		if !IsEmail(email) {
			t.Fatalf("IsEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "user", "user@", "@mail.ru", "user@mail", "a@b@c.ru"}
	for _, email := range invalid {
		if IsEmail(email) {
			t.Fatalf("IsEmail(%q) = true, want false", email)
		}
	}
}

func TestIsBirthday(t *testing.T) {
	valid := []string{"01.01.1990", "31.12.2000", "15.06.1900", "29.02.2100"}
	for _, date := range valid {
		if !IsBirthday(date) {
			t.Fatalf("IsBirthday(%q) = false, want true", date)
		}
	}

	// Month length is not checked on purpose.
	if !IsBirthday("31.02.2024") {
		t.Fatal("IsBirthday(31.02.2024) = false, permissive check expected")
	}

	invalid := []string{"", "1990-01-01", "32.01.1990", "01.13.1990", "01.01.1899", "01.01.2101", "аа.бб.вввв", "01.01"}
	for _, date := range invalid {
		if IsBirthday(date) {
			t.Fatalf("IsBirthday(%q) = true, want false", date)
		}
	}
}

func TestCategoryFromCode(t *testing.T) {
	cases := map[string]string{
		"bed_linen": "Постельное белье",
		"towel":     "Полотенца",
		"blanket":   "Пледы",
		"":          CategoryUnknown,
		"pillow":    CategoryUnknown,
	}
	for code, want := range cases {
		if got := CategoryFromCode(code); got != want {
			t.Fatalf("CategoryFromCode(%q) = %q, want %q", code, got, want)
		}
	}
}
