package dtpattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dtmatch/pkg/dtpattern"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    []dtpattern.Token
	}{
		{"single era", "G", []dtpattern.Token{dtpattern.Era{}}},
		{"era run", "GGGGG", []dtpattern.Token{dtpattern.Era{}}},
		{"single year", "y", []dtpattern.Token{dtpattern.Year{}}},
		{"four year letters", "yyyy", []dtpattern.Token{dtpattern.Year{}}},
		{"mixed year letters", "YYyy", []dtpattern.Token{dtpattern.Year{}}},
		{"month", "MM", []dtpattern.Token{dtpattern.Month{}}},
		{"standalone month", "LLL", []dtpattern.Token{dtpattern.Month{}}},
		{"mixed month letters", "ML", []dtpattern.Token{dtpattern.Month{}}},
		{"week in year and month", "wW", []dtpattern.Token{dtpattern.WeekInYear{}, dtpattern.WeekInMonth{}}},
		{"week in year run", "www", []dtpattern.Token{dtpattern.WeekInYear{}}},
		{"week in month run", "WW", []dtpattern.Token{dtpattern.WeekInMonth{}}},
		{"day in month and year", "dD", []dtpattern.Token{dtpattern.DayInMonth{}, dtpattern.DayInYear{}}},
		{"day in year run", "DDD", []dtpattern.Token{dtpattern.DayInYear{}}},
		{"day of week in month", "F", []dtpattern.Token{dtpattern.DayOfWeekInMonth{}}},
		{"day name", "EE", []dtpattern.Token{dtpattern.DayName{}}},
		{"day of week", "u", []dtpattern.Token{dtpattern.DayOfWeek{}}},
		{"plain text", "ello", []dtpattern.Token{dtpattern.Text{Literal: "ello"}}},
		{"quoted text", "'dd-MM-yyyy'", []dtpattern.Token{dtpattern.Text{Literal: "dd-MM-yyyy"}}},
		{"bare doubled quote", "''", []dtpattern.Token{dtpattern.Text{Literal: "'"}}},
		{"escaped quotes inside literal", "'dd-''MM''-yyyy'", []dtpattern.Token{dtpattern.Text{Literal: "dd-'MM'-yyyy"}}},
		{"literal ending with escaped quote", "'a'''", []dtpattern.Token{dtpattern.Text{Literal: "a'"}}},
		{
			"iso date",
			"yyyy-MM-dd",
			[]dtpattern.Token{
				dtpattern.Year{}, dtpattern.Text{Literal: "-"},
				dtpattern.Month{}, dtpattern.Text{Literal: "-"},
				dtpattern.DayInMonth{},
			},
		},
		{
			"day name with quoted year",
			"EEE, MMM d, ''yy",
			[]dtpattern.Token{
				dtpattern.DayName{}, dtpattern.Text{Literal: ", "},
				dtpattern.Month{}, dtpattern.Text{Literal: " "},
				dtpattern.DayInMonth{}, dtpattern.Text{Literal: ", "},
				dtpattern.Text{Literal: "'"}, dtpattern.Year{},
			},
		},
		{
			"time of day",
			"HH:mm:ss.SSS",
			[]dtpattern.Token{
				dtpattern.HourOfDay{}, dtpattern.Text{Literal: ":"},
				dtpattern.MinuteOfHour{}, dtpattern.Text{Literal: ":"},
				dtpattern.SecondOfMinute{}, dtpattern.Text{Literal: "."},
				dtpattern.Millisecond{},
			},
		},
		{
			"clock hour with quoted word",
			"hh 'o''clock' a",
			[]dtpattern.Token{
				dtpattern.ClockHourOfAmPm{}, dtpattern.Text{Literal: " "},
				dtpattern.Text{Literal: "o'clock"}, dtpattern.Text{Literal: " "},
				dtpattern.AmPm{},
			},
		},
		{"hour variants", "kK", []dtpattern.Token{dtpattern.ClockHourOfDay{}, dtpattern.HourOfAmPm{}}},
		{"time zone letters are text", "zZX", []dtpattern.Token{dtpattern.Text{Literal: "zZX"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := dtpattern.Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompile_Empty(t *testing.T) {
	t.Parallel()

	tokens, err := dtpattern.Compile("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestCompile_UnterminatedQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		offset  int
	}{
		{"opening quote only", "'", 0},
		{"unclosed literal", "'abc", 0},
		{"unclosed literal after fields", "yyyy 'at", 5},
		{"escaped quote never closed", "'ab''", 0},
		{"three quotes", "'''", 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := dtpattern.Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.ErrorIs(t, err, dtpattern.ErrUnterminatedQuote)

			var ce *dtpattern.CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.pattern, ce.Pattern)
			assert.Equal(t, tt.offset, ce.Offset)
		})
	}
}

func TestToken_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Era", dtpattern.Era{}.String())
	assert.Equal(t, "DayOfWeekInMonth", dtpattern.DayOfWeekInMonth{}.String())
	assert.Equal(t, `Text("o'clock")`, dtpattern.Text{Literal: "o'clock"}.String())
}
