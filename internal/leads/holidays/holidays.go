// Package holidays provides the holiday calendars used to exclude dates from
// appointment scheduling. A calendar only knows the years it covers: dates
// outside its coverage are never holidays, so callers should check Coverage
// against the range they scan.
package holidays

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// DateLayout is the ISO calendar date format used for holiday keys.
const DateLayout = "2006-01-02"

// Holiday is a single named closure date.
type Holiday struct {
	Date string `yaml:"date" json:"date"`
	Name string `yaml:"name" json:"name"`
}

// Calendar reports holidays and the years it covers.
type Calendar interface {
	IsHoliday(day time.Time) bool
	Coverage() (firstYear, lastYear int)
}

// Namer is implemented by calendars that can name their holidays.
type Namer interface {
	Name(day time.Time) (string, bool)
}

// Lister is implemented by calendars that can enumerate a year.
type Lister interface {
	List(year int) []Holiday
}

// Set is an immutable set of holiday dates. Days are matched by their
// calendar date in the location of the time value passed in.
type Set struct {
	names     map[string]string
	firstYear int
	lastYear  int
}

// NewSet builds a set from ISO dates.
func NewSet(dates ...string) (*Set, error) {
	entries := make([]Holiday, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, Holiday{Date: d})
	}
	return FromHolidays(entries)
}

// FromHolidays builds a set from named entries. A repeated date keeps the
// last name given.
func FromHolidays(entries []Holiday) (*Set, error) {
	s := &Set{names: make(map[string]string, len(entries))}
	for _, h := range entries {
		day, err := time.Parse(DateLayout, h.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: invalid date: %w", h.Date, err)
		}
		s.names[h.Date] = h.Name

		year := day.Year()
		if s.firstYear == 0 || year < s.firstYear {
			s.firstYear = year
		}
		if year > s.lastYear {
			s.lastYear = year
		}
	}
	return s, nil
}

// IsHoliday reports whether day's calendar date is in the set.
func (s *Set) IsHoliday(day time.Time) bool {
	_, ok := s.names[day.Format(DateLayout)]
	return ok
}

// Name returns the holiday name for day, if any.
func (s *Set) Name(day time.Time) (string, bool) {
	name, ok := s.names[day.Format(DateLayout)]
	return name, ok
}

// Coverage returns the first and last year that have at least one entry.
// An empty set returns zeros.
func (s *Set) Coverage() (int, int) {
	return s.firstYear, s.lastYear
}

// Len returns the number of dates in the set.
func (s *Set) Len() int {
	return len(s.names)
}

// List returns the holidays in year in date order.
func (s *Set) List(year int) []Holiday {
	prefix := fmt.Sprintf("%04d-", year)
	var out []Holiday
	for _, date := range slices.Sorted(maps.Keys(s.names)) {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			out = append(out, Holiday{Date: date, Name: s.names[date]})
		}
	}
	return out
}

func mustSet(entries []Holiday) *Set {
	s, err := FromHolidays(entries)
	if err != nil {
		panic(err)
	}
	return s
}

type union []Calendar

// Union combines calendars: a day is a holiday when any member says so, and
// coverage spans the widest range of the members.
func Union(calendars ...Calendar) Calendar {
	return union(slices.Clone(calendars))
}

func (u union) IsHoliday(day time.Time) bool {
	for _, c := range u {
		if c.IsHoliday(day) {
			return true
		}
	}
	return false
}

func (u union) Coverage() (int, int) {
	first, last := 0, 0
	for _, c := range u {
		f, l := c.Coverage()
		if f == 0 && l == 0 {
			continue
		}
		if first == 0 || f < first {
			first = f
		}
		if l > last {
			last = l
		}
	}
	return first, last
}

func (u union) Name(day time.Time) (string, bool) {
	for _, c := range u {
		if n, ok := c.(Namer); ok {
			if name, found := n.Name(day); found {
				return name, true
			}
		}
	}
	return "", false
}

func (u union) List(year int) []Holiday {
	byDate := make(map[string]string)
	for _, c := range u {
		l, ok := c.(Lister)
		if !ok {
			continue
		}
		for _, h := range l.List(year) {
			if existing, seen := byDate[h.Date]; !seen || existing == "" {
				byDate[h.Date] = h.Name
			}
		}
	}

	out := make([]Holiday, 0, len(byDate))
	for _, date := range slices.Sorted(maps.Keys(byDate)) {
		out = append(out, Holiday{Date: date, Name: byDate[date]})
	}
	return out
}
