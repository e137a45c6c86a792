package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockFormatError reports clock text that is not in "HH:MM" form.
type ClockFormatError struct{ Text string }

func (e *ClockFormatError) Error() string {
	return fmt.Sprintf("invalid clock text %q: want HH:MM", e.Text)
}

// ParseClockToMinutes converts "HH:MM" clock text to minutes since midnight.
// The text must be exactly two colon-separated integer fields; the values are
// not range-checked, timetable sources are trusted.
func ParseClockToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &ClockFormatError{Text: s}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &ClockFormatError{Text: s}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &ClockFormatError{Text: s}
	}
	return h*60 + m, nil
}

// FormatMinutesToClock converts minutes since midnight to zero-padded "HH:MM".
// There is no wraparound at 24 hours: 1445 renders as "24:05".
func FormatMinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
