package extraction

import (
	"fmt"
	"strconv"
	"strings"
)

var dayAbbreviations = map[string]string{
	"Monday":    "Mon",
	"Tuesday":   "Tue",
	"Wednesday": "Wed",
	"Thursday":  "Thu",
	"Friday":    "Fri",
	"Saturday":  "Sat",
	"Sunday":    "Sun",
}

// To12Hour converts a 24-hour "HH:MM" string to "h:mm AM/PM" for display.
// Inputs that do not look like HH:MM come back unchanged.
func To12Hour(t string) string {
	hourStr, minutes, ok := strings.Cut(t, ":")
	if !ok {
		return t
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return t
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, minutes, suffix)
}

// DayAbbrev returns the 3-letter code for a weekday name. Unrecognized input
// falls back to its first three characters.
func DayAbbrev(day string) string {
	if abbr, ok := dayAbbreviations[day]; ok {
		return abbr
	}
	if len(day) > 3 {
		return day[:3]
	}
	return day
}
