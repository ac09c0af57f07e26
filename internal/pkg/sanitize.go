package pkg

import (
	"regexp"
	"strings"
	"time"
)

const (
	NoticeTitleMax  = 120
	WorryTitleMax   = 120
	MeetingTitleMax = 200
	WorryContentMax = 1200
)

// markupPattern matches <...> tag-like substrings. This is a deliberately
// permissive regex strip, not an HTML parser: an unclosed "<" survives.
var markupPattern = regexp.MustCompile(`<[^>]*>`)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

var durationHours = map[string]float64{
	"1 hour":    1,
	"1.5 hours": 1.5,
	"2 hours":   2,
	"2.5 hours": 2.5,
}

// SanitizeText strips tag-like substrings and trims surrounding whitespace.
// Inner spacing is preserved.
func SanitizeText(s string) string {
	return strings.TrimSpace(markupPattern.ReplaceAllString(s, ""))
}

// ValidateTitle checks a sanitized title against a per-form rune limit.
func ValidateTitle(title string, max int) error {
	if title == "" {
		return TagNoTitle
	}
	if len([]rune(title)) > max {
		return TagTitleTooLong
	}
	return nil
}

// ValidateContent checks sanitized free text. max <= 0 means unbounded.
func ValidateContent(content string, max int, required bool) error {
	if content == "" {
		if required {
			return TagNoContent
		}
		return nil
	}
	if max > 0 && len([]rune(content)) > max {
		return TagContentTooLong
	}
	return nil
}

func ValidateCategory(category string) error {
	switch category {
	case "General", "Maintenance", "Safety":
		return nil
	}
	return TagInvalidCategory
}

func ValidateDuration(label string) error {
	if _, ok := durationHours[label]; !ok {
		return TagInvalidDuration
	}
	return nil
}

// DurationHours resolves a duration label to hours.
func DurationHours(label string) (float64, bool) {
	h, ok := durationHours[label]
	return h, ok
}

func ValidateDate(date string) error {
	if date == "" {
		return TagMissingDate
	}
	if !datePattern.MatchString(date) {
		return TagInvalidDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return TagInvalidDate
	}
	return nil
}

func ValidateTime(hhmm string) error {
	if hhmm == "" {
		return TagMissingTime
	}
	if !timePattern.MatchString(hhmm) {
		return TagInvalidTime
	}
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return TagInvalidTime
	}
	return nil
}

// CombineDateTime joins a validated date and time into one instant and
// requires it to be strictly after now. An instant equal to now is rejected.
func CombineDateTime(date, hhmm string, now time.Time) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, now.Location())
	if err != nil {
		return time.Time{}, TagInvalidDate
	}
	if !t.After(now) {
		return time.Time{}, TagMeetingInPast
	}
	return t, nil
}
