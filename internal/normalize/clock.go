// ABOUTME: Time-of-day and duration coercion for sleep export fields.
// ABOUTME: Clock values become "H:MM AM/PM"; durations become hours plus "Hh Mm".
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var clockFormats = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"15:04:05",
	"15:04",
}

// ParseClock takes the time component of a datetime string and re-expresses
// it as a 12-hour clock string, e.g. "22:45:00" -> "10:45 PM". Raw
// fractional-hour representations never survive past this stage.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range clockFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format("3:04 PM"), nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("parse clock %q: %w", s, lastErr)
}

// ParseHours parses a duration value into fractional hours plus an "Hh Mm"
// display title. Accepts "H:MM", "H:MM:SS", and plain fractional hours
// ("7.35").
func ParseHours(s string) (hours float64, title string, err error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, "", fmt.Errorf("parse duration %q: %w", s, err)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 0 || m > 59 {
			return 0, "", fmt.Errorf("parse duration %q: bad minutes", s)
		}
		hours = float64(h) + float64(m)/60
		return hours, fmt.Sprintf("%dh %dm", h, m), nil
	}

	hours, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse duration %q: %w", s, err)
	}
	return hours, DurationTitle(hours), nil
}

// DurationTitle renders fractional hours as "Hh Mm".
func DurationTitle(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%dh %dm", h, m)
}
