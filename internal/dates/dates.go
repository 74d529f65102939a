// Package dates converts the heterogeneous date representations found in
// stored documents into the canonical YYYY-MM-DD wire format and renders
// canonical dates for display.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/svitanok-centre/site/internal/domain"
)

// CanonicalLayout is the only date format the mappers are allowed to
// persist: zero-padded ASCII digits, hyphen separated, UTC calendar date.
const CanonicalLayout = "2006-01-02"

// Placeholder is rendered in place of an invalid or missing display date.
const Placeholder = "—"

var canonicalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02.01.2006",
}

// ToCanonicalYMD normalises input into a canonical date string. Accepted
// shapes: canonical strings (passed through untouched so a reparse can
// never shift the day under a timezone), time.Time values, maps exposing a
// numeric "seconds" field, and parseable date strings. Anything else
// yields an empty string; the function never fails.
func ToCanonicalYMD(input any) string {
	switch value := input.(type) {
	case nil:
		return ""
	case string:
		return canonicalFromString(value)
	case time.Time:
		if value.IsZero() {
			return ""
		}
		return value.UTC().Format(CanonicalLayout)
	case map[string]any:
		if secs, ok := numericField(value, "seconds"); ok {
			return time.Unix(secs, 0).UTC().Format(CanonicalLayout)
		}
		return ""
	default:
		return ""
	}
}

func canonicalFromString(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonicalPattern.MatchString(trimmed) {
		return trimmed
	}
	for _, layout := range parseLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC().Format(CanonicalLayout)
		}
	}
	return ""
}

func numericField(values map[string]any, key string) (int64, bool) {
	raw, ok := values[key]
	if !ok {
		return 0, false
	}
	switch n := raw.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// Ukrainian month names in the genitive case used for "2 січня 2026" style
// display dates.
var monthsUA = [...]string{
	"січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

// FormatDisplay renders a canonical date in the target language's locale
// convention. Invalid or empty input renders the placeholder, never an
// error or an "Invalid Date" artefact.
func FormatDisplay(ymd string, lang domain.Lang) string {
	parsed, err := time.ParseInLocation(CanonicalLayout, strings.TrimSpace(ymd), time.UTC)
	if err != nil {
		return Placeholder
	}
	if lang == domain.LangUA {
		return fmt.Sprintf("%d %s %d", parsed.Day(), monthsUA[parsed.Month()-1], parsed.Year())
	}
	return parsed.Format("January 2, 2006")
}

// FormatRange renders a single date when present, both endpoints as
// "start – end" when a full range exists, or whichever endpoint is set.
func FormatRange(singleYMD, startYMD, endYMD string, lang domain.Lang) string {
	switch {
	case singleYMD != "":
		return FormatDisplay(singleYMD, lang)
	case startYMD != "" && endYMD != "":
		return FormatDisplay(startYMD, lang) + " – " + FormatDisplay(endYMD, lang)
	case startYMD != "":
		return FormatDisplay(startYMD, lang)
	case endYMD != "":
		return FormatDisplay(endYMD, lang)
	default:
		return Placeholder
	}
}
