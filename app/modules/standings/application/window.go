package standingsservice

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var windowParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseWindowArg turns a user-supplied window boundary into a time. It
// accepts RFC3339, a plain date, or natural language ("last month",
// "3 weeks ago"). A plain date used as the end of a window extends to the end
// of that day so the boundary is inclusive.
func ParseWindowArg(input string, ref time.Time, endOfWindow bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}

	if t, err := time.Parse("2006-01-02", input); err == nil {
		if endOfWindow {
			return t.Add(24*time.Hour - time.Nanosecond), nil
		}
		return t, nil
	}

	result, err := windowParser.Parse(input, ref)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse window boundary %q: %w", input, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("could not understand window boundary %q", input)
	}
	return result.Time, nil
}
