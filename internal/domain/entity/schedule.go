package entity

// ExtractedClass is one class meeting on one day of the week. A class that
// meets on several days is represented as one entry per day.
type ExtractedClass struct {
	Name        string `json:"name"`
	DayOfWeek   string `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Instructor  string `json:"instructor,omitempty"`
	Location    string `json:"location,omitempty"`
	Level       string `json:"level,omitempty"`
	MaxCapacity int    `json:"maxCapacity,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ScheduleExtractionResult is the outcome of one extraction call. Constructed
// once, never mutated after return. RawText is set only on the text-input
// path, as an audit echo of the input.
type ScheduleExtractionResult struct {
	Success    bool             `json:"success"`
	Classes    []ExtractedClass `json:"classes"`
	Confidence float64          `json:"confidence"`
	Warnings   []string         `json:"warnings,omitempty"`
	RawText    string           `json:"rawText,omitempty"`
	Error      string           `json:"error,omitempty"`
}

var weekdays = map[string]struct{}{
	"Monday":    {},
	"Tuesday":   {},
	"Wednesday": {},
	"Thursday":  {},
	"Friday":    {},
	"Saturday":  {},
	"Sunday":    {},
}

// IsWeekday reports whether day is a full English weekday name.
func IsWeekday(day string) bool {
	_, ok := weekdays[day]
	return ok
}
