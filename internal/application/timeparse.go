package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var timeParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

var absoluteLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime reads a timestamp given on the command line.
// Empty input means now. Absolute layouts are tried first, in local time, then
// natural phrases such as "yesterday 5pm" relative to now.
func ParseTime(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now, nil
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}

	r, err := timeParser.Parse(input, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %q: %w", input, err)
	}
	if r == nil {
		return time.Time{}, &ValidationError{
			Field:   "time",
			Message: fmt.Sprintf("unrecognised time: %s", input),
		}
	}
	return r.Time, nil
}
