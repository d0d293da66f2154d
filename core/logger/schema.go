package logger

import "strings"

// defaultKeyOrder fixes the position of known keys in every log line so that
// lines stay scannable; unknown keys follow alphabetically.
var defaultKeyOrder = []string{
	"ts",
	"level",
	"component",
	"event",
	"status",
	"rid",
	"update_id",
	"user_id",
	"chat_id",
	"handler",
	"stage",
	"from_stage",
	"to_stage",
	"cb_key",
	"platform",
	"category",
	"outcome",
	"messages",
	"attempt",
	"backoff_ms",
	"duration_ms",
	"payload",
	"err",
}

var statusValues = map[string]string{
	"ok":      "ok",
	"success": "ok",
	"fail":    "fail",
	"failed":  "fail",
	"error":   "fail",
	"skip":    "skip",
	"skipped": "skip",
	"retry":   "retry",
	"drop":    "drop",
	"dropped": "drop",
}

var outcomeValues = map[string]string{
	"advance":  "advance",
	"stay":     "stay",
	"reprompt": "reprompt",
	"rollback": "rollback",
	"ignored":  "ignored",
}

func normalizeLevel(level string) string {
	normalized := strings.ToUpper(strings.TrimSpace(level))
	switch normalized {
	case "DEBUG", "INFO", "WARN", "ERROR":
		return normalized
	case "WARNING":
		return "WARN"
	case "ERR":
		return "ERROR"
	default:
		return "INFO"
	}
}

func normalizeStatus(status string) (string, bool) {
	normalized, ok := statusValues[strings.ToLower(strings.TrimSpace(status))]
	return normalized, ok
}

func normalizeOutcome(outcome string) (string, bool) {
	normalized, ok := outcomeValues[strings.ToLower(strings.TrimSpace(outcome))]
	return normalized, ok
}
