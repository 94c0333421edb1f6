package dtpattern

import "strconv"

// Token is one compiled unit of a pattern: either a date field or a run of
// literal text.
//
// The set of tokens is closed. Every implementation must provide recognize,
// which is unexported, so a new token kind cannot be added without also
// giving it a recognizer.
type Token interface {
	String() string

	// recognize consumes a matching prefix of input and returns its length
	// in bytes.
	recognize(input string) (int, *rejection)
}

// Era matches "ad" or "bc".
type Era struct{}

// Year matches one or more digits.
type Year struct{}

// Month matches a month name, its abbreviation or a number in 1..12.
type Month struct{}

// WeekInYear matches a number in 1..56.
type WeekInYear struct{}

// WeekInMonth matches a number in 1..5.
type WeekInMonth struct{}

// DayInYear matches a number in 1..356.
type DayInYear struct{}

// DayInMonth matches a number in 1..31.
type DayInMonth struct{}

// DayOfWeekInMonth matches one or more digits without a range check.
type DayOfWeekInMonth struct{}

// DayName matches a weekday name or its abbreviation.
type DayName struct{}

// DayOfWeek matches a single digit in 1..7.
type DayOfWeek struct{}

// AmPm matches "am" or "pm".
type AmPm struct{}

// HourOfDay matches a number in 0..23.
type HourOfDay struct{}

// ClockHourOfDay matches a number in 1..24.
type ClockHourOfDay struct{}

// HourOfAmPm matches a number in 0..11.
type HourOfAmPm struct{}

// ClockHourOfAmPm matches a number in 1..12.
type ClockHourOfAmPm struct{}

// MinuteOfHour matches a number in 0..59.
type MinuteOfHour struct{}

// SecondOfMinute matches a number in 0..59.
type SecondOfMinute struct{}

// Millisecond matches up to three digits.
type Millisecond struct{}

// Text matches Literal exactly, case included.
type Text struct {
	Literal string
}

func (Era) String() string              { return "Era" }
func (Year) String() string             { return "Year" }
func (Month) String() string            { return "Month" }
func (WeekInYear) String() string       { return "WeekInYear" }
func (WeekInMonth) String() string      { return "WeekInMonth" }
func (DayInYear) String() string        { return "DayInYear" }
func (DayInMonth) String() string       { return "DayInMonth" }
func (DayOfWeekInMonth) String() string { return "DayOfWeekInMonth" }
func (DayName) String() string          { return "DayName" }
func (DayOfWeek) String() string        { return "DayOfWeek" }
func (AmPm) String() string             { return "AmPm" }
func (HourOfDay) String() string        { return "HourOfDay" }
func (ClockHourOfDay) String() string   { return "ClockHourOfDay" }
func (HourOfAmPm) String() string       { return "HourOfAmPm" }
func (ClockHourOfAmPm) String() string  { return "ClockHourOfAmPm" }
func (MinuteOfHour) String() string     { return "MinuteOfHour" }
func (SecondOfMinute) String() string   { return "SecondOfMinute" }
func (Millisecond) String() string      { return "Millisecond" }
func (t Text) String() string           { return "Text(" + strconv.Quote(t.Literal) + ")" }
