package dtpattern

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// cases.Caser keeps internal state and must not be shared between goroutines.
type folder struct {
	caser cases.Caser
}

var folderPool = sync.Pool{
	New: func() any {
		return &folder{caser: cases.Fold()}
	},
}

// matchName returns the length of the first name in names that prefixes
// input, ignoring case. names must be lower-case.
func matchName(input string, names []string) (int, bool) {
	f := folderPool.Get().(*folder)
	defer folderPool.Put(f)

	for _, name := range names {
		if len(input) < len(name) {
			continue
		}
		f.caser.Reset()
		if f.caser.String(input[:len(name)]) == name {
			return len(name), true
		}
	}
	return 0, false
}

// leadingDigits returns the length of the run of ASCII digits at the start of
// input, stopping after limit digits. A limit <= 0 means unbounded.
func leadingDigits(input string, limit int) int {
	n := 0
	for n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
		if n == limit {
			break
		}
	}
	return n
}

// numberInRange reads up to width digits and checks the value against
// [lower, upper].
func numberInRange(input string, field string, width, lower, upper int) (int, *rejection) {
	n := leadingDigits(input, width)
	if n == 0 {
		return 0, reject(ErrInvalidNumber, "expected %s, found no digits", field)
	}
	v, err := strconv.Atoi(input[:n])
	if err != nil {
		return 0, reject(ErrInvalidNumber, "invalid %s %q: %v", field, input[:n], err)
	}
	if v < lower || v > upper {
		return 0, reject(ErrOutOfRange, "invalid %s %d", field, v)
	}
	return n, nil
}

func digitRun(input string, field string) (int, *rejection) {
	if n := leadingDigits(input, 0); n > 0 {
		return n, nil
	}
	return 0, reject(ErrInvalidNumber, "expected %s, found no digits", field)
}

func (Era) recognize(input string) (int, *rejection) {
	if n, ok := matchName(input, eraNames); ok {
		return n, nil
	}
	return 0, reject(ErrNoAlternative, "expected era AD or BC")
}

func (Year) recognize(input string) (int, *rejection) {
	return digitRun(input, "year")
}

func (Month) recognize(input string) (int, *rejection) {
	if n, ok := matchName(input, monthNames); ok {
		return n, nil
	}
	if leadingDigits(input, 1) == 0 {
		return 0, reject(ErrNoAlternative, "expected month name or number")
	}
	return numberInRange(input, "month", 2, 1, 12)
}

func (WeekInYear) recognize(input string) (int, *rejection) {
	return numberInRange(input, "week in year", 2, 1, 56)
}

func (WeekInMonth) recognize(input string) (int, *rejection) {
	return numberInRange(input, "week in month", 2, 1, 5)
}

func (DayInYear) recognize(input string) (int, *rejection) {
	return numberInRange(input, "day in year", 2, 1, 356)
}

func (DayInMonth) recognize(input string) (int, *rejection) {
	return numberInRange(input, "day in month", 2, 1, 31)
}

func (DayOfWeekInMonth) recognize(input string) (int, *rejection) {
	return digitRun(input, "day of week in month")
}

func (DayName) recognize(input string) (int, *rejection) {
	if n, ok := matchName(input, dayNames); ok {
		return n, nil
	}
	return 0, reject(ErrNoAlternative, "expected day name")
}

func (DayOfWeek) recognize(input string) (int, *rejection) {
	return numberInRange(input, "day of week", 1, 1, 7)
}

func (AmPm) recognize(input string) (int, *rejection) {
	if n, ok := matchName(input, ampmNames); ok {
		return n, nil
	}
	return 0, reject(ErrNoAlternative, "expected AM or PM marker")
}

func (HourOfDay) recognize(input string) (int, *rejection) {
	return numberInRange(input, "hour of day", 2, 0, 23)
}

func (ClockHourOfDay) recognize(input string) (int, *rejection) {
	return numberInRange(input, "clock hour of day", 2, 1, 24)
}

func (HourOfAmPm) recognize(input string) (int, *rejection) {
	return numberInRange(input, "hour of am/pm", 2, 0, 11)
}

func (ClockHourOfAmPm) recognize(input string) (int, *rejection) {
	return numberInRange(input, "clock hour of am/pm", 2, 1, 12)
}

func (MinuteOfHour) recognize(input string) (int, *rejection) {
	return numberInRange(input, "minute", 2, 0, 59)
}

func (SecondOfMinute) recognize(input string) (int, *rejection) {
	return numberInRange(input, "second", 2, 0, 59)
}

func (Millisecond) recognize(input string) (int, *rejection) {
	return numberInRange(input, "millisecond", 3, 0, 999)
}

func (t Text) recognize(input string) (int, *rejection) {
	if strings.HasPrefix(input, t.Literal) {
		return len(t.Literal), nil
	}
	return 0, reject(ErrTextMismatch, "expected %q", t.Literal)
}
