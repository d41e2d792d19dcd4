package holidays

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

type holidayRule struct {
	name   string
	option rrule.ROption
	// follow names a holiday on the day after each occurrence.
	follow string
}

var federalRules = []holidayRule{
	{name: "New Year's Day", option: rrule.ROption{Bymonth: []int{1}, Bymonthday: []int{1}}},
	{name: "Martin Luther King Jr. Day", option: rrule.ROption{Bymonth: []int{1}, Byweekday: []rrule.Weekday{rrule.MO.Nth(3)}}},
	{name: "Presidents' Day", option: rrule.ROption{Bymonth: []int{2}, Byweekday: []rrule.Weekday{rrule.MO.Nth(3)}}},
	{name: "Memorial Day", option: rrule.ROption{Bymonth: []int{5}, Byweekday: []rrule.Weekday{rrule.MO.Nth(-1)}}},
	{name: "Independence Day", option: rrule.ROption{Bymonth: []int{7}, Bymonthday: []int{4}}},
	{name: "Labor Day", option: rrule.ROption{Bymonth: []int{9}, Byweekday: []rrule.Weekday{rrule.MO.Nth(1)}}},
	{name: "Thanksgiving Day", option: rrule.ROption{Bymonth: []int{11}, Byweekday: []rrule.Weekday{rrule.TH.Nth(4)}}, follow: "Day after Thanksgiving"},
	{name: "Christmas Eve", option: rrule.ROption{Bymonth: []int{12}, Bymonthday: []int{24}}},
	{name: "Christmas Day", option: rrule.ROption{Bymonth: []int{12}, Bymonthday: []int{25}}},
	{name: "New Year's Eve", option: rrule.ROption{Bymonth: []int{12}, Bymonthday: []int{31}}},
}

// NewRuleCalendar computes the federal holiday set for firstYear through
// lastYear from recurrence rules instead of a hand-maintained table.
func NewRuleCalendar(firstYear, lastYear int) (*Set, error) {
	if firstYear <= 0 || lastYear < firstYear {
		return nil, fmt.Errorf("invalid rule calendar range %d-%d", firstYear, lastYear)
	}

	start := time.Date(firstYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(lastYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	var entries []Holiday
	for _, rule := range federalRules {
		opt := rule.option
		opt.Freq = rrule.YEARLY
		opt.Interval = 1
		opt.Dtstart = start
		opt.Until = until

		r, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, fmt.Errorf("holiday rule %q: %w", rule.name, err)
		}
		for _, day := range r.All() {
			entries = append(entries, Holiday{Date: day.Format(DateLayout), Name: rule.name})
			if rule.follow != "" {
				next := day.AddDate(0, 0, 1)
				entries = append(entries, Holiday{Date: next.Format(DateLayout), Name: rule.follow})
			}
		}
	}
	return FromHolidays(entries)
}
