package services

import (
	"time"

	"github.com/rickar/cal/v2"
)

// ResponseScheduler computes the date by which the editing team promises
// to reply to a new lead. The office works Monday through Saturday;
// Sundays and Nigerian public holidays are skipped. Movable religious
// holidays are announced year by year and are not modeled.
type ResponseScheduler struct {
	calendar *cal.BusinessCalendar
}

func NewResponseScheduler() *ResponseScheduler {
	c := cal.NewBusinessCalendar()
	c.Name = "Nigeria"
	c.SetWorkday(time.Saturday, true)

	c.AddHoliday(
		&cal.Holiday{Name: "New Year's Day", Month: time.January, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Workers' Day", Month: time.May, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Democracy Day", Month: time.June, Day: 12, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Independence Day", Month: time.October, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Christmas Day", Month: time.December, Day: 25, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Boxing Day", Month: time.December, Day: 26, Func: cal.CalcDayOfMonth},
	)

	return &ResponseScheduler{calendar: c}
}

// NextBusinessDay returns the first workday strictly after from.
func (s *ResponseScheduler) NextBusinessDay(from time.Time) time.Time {
	day := from.AddDate(0, 0, 1)
	for !s.calendar.IsWorkday(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// ExpectedResponseDate formats the next business day after from as a
// calendar-day string, matching the date format used on lead records.
func (s *ResponseScheduler) ExpectedResponseDate(from time.Time) string {
	return s.NextBusinessDay(from).Format("2006-01-02")
}
