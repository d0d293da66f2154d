package intake

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	cyrillicRe = regexp.MustCompile(`^[А-Яа-яЁё]+$`)
	emailRe    = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// IsCyrillic reports whether text is a single unbroken run of Cyrillic
// letters. Spaces, digits, and Latin letters all fail the check.
func IsCyrillic(text string) bool {
	return cyrillicRe.MatchString(text)
}

// IsEmail reports whether text has a local@domain.tld shape: exactly one
// at-sign with a dot somewhere after it.
func IsEmail(text string) bool {
	return emailRe.MatchString(text)
}

// IsBirthday validates a DD.MM.YYYY date with day 1..31, month 1..12, and
// year 1900..2100. Month length is deliberately not checked, so 31.02
// passes; the flow has always been permissive here.
func IsBirthday(text string) bool {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return false
	}
	return day >= 1 && day <= 31 && month >= 1 && month <= 12 && year >= 1900 && year <= 2100
}

// CategoryUnknown is reported for deep-link codes the bot does not know.
const CategoryUnknown = "Unknown category"

var categoryNames = map[string]string{
	"bed_linen": "Постельное белье",
	"towel":     "Полотенца",
	"blanket":   "Пледы",
}

// CategoryFromCode resolves a deep-link category code to its display name.
// Unrecognized codes resolve to CategoryUnknown; the lookup never fails.
func CategoryFromCode(code string) string {
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return CategoryUnknown
}
