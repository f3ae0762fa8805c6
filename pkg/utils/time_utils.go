// utils/timeutil.go
package utils

import "time"

// DateLayout is the calendar date format used by the web client and the
// search provider.
const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, InvalidInputf("date %q must be formatted YYYY-MM-DD", value)
	}
	return t, nil
}

// AddDays shifts a YYYY-MM-DD date by whole calendar days.
func AddDays(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}
