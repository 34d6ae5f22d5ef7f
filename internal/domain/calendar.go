package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// CalendarEntry is one annual-calendar day for a user and theme.
// The natural key is (user name, user email, theme, task date).
type CalendarEntry struct {
	ID          int64
	UserName    string
	UserEmail   string
	Theme       string
	TaskDate    time.Time
	TaskType    int
	Description string
	ColorCode   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// colorCodePattern is the canonical shape of a calendar color code.
var colorCodePattern = regexp.MustCompile(`^selected-color-(\d+)$`)

// NormalizeColor repairs the (color_code, task_type) pair so the two stay
// mutually consistent:
//
//   - a color code that is not of the form "selected-color-<N>" is rewritten
//     to "selected-color-<task_type>";
//   - otherwise, when the embedded number disagrees with task_type, the type
//     is corrected to the color code's number (the color code wins).
//
// The repair is deterministic and idempotent: applying it twice yields the
// same result as once. It runs on every read and on every compatibility-path
// write.
func (e *CalendarEntry) NormalizeColor() {
	m := colorCodePattern.FindStringSubmatch(e.ColorCode)
	if m == nil {
		e.ColorCode = fmt.Sprintf("selected-color-%d", e.TaskType)
		return
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		// digits only per the pattern; Atoi can still overflow
		e.ColorCode = fmt.Sprintf("selected-color-%d", e.TaskType)
		return
	}

	if n != e.TaskType {
		e.TaskType = n
	}
}
