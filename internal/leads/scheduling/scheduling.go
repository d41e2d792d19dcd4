// Package scheduling generates candidate appointment dates for an
// availability window. Dates are weekdays that are not holidays, offered in
// the business time zone and starting a window-specific number of days out.
//
// Holiday exclusion is only as good as the injected calendar: weekdays past
// the calendar's last covered year are offered even if they are holidays.
// Use Scan to learn how far a request reached and compare it to Coverage.
package scheduling

import (
	"slices"
	"time"
	_ "time/tzdata"

	"fence_estimate_backend/internal/leads/holidays"
	"fence_estimate_backend/internal/leads/scoring"
)

const (
	// MaxScanDays bounds how many calendar days are examined from the first
	// candidate day, so a stale or saturated calendar cannot loop forever.
	MaxScanDays = 60

	// DefaultTimezone is the business time zone used when none is configured.
	DefaultTimezone = "America/New_York"

	slotDateLayout = "Mon, Jan 2"
)

var timeSlots = [...]string{
	"8:00 AM - 10:00 AM",
	"10:00 AM - 12:00 PM",
	"1:00 PM - 3:00 PM",
	"3:00 PM - 5:00 PM",
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// HolidayProvider decides which dates are closed.
type HolidayProvider interface {
	IsHoliday(day time.Time) bool
	Coverage() (firstYear, lastYear int)
}

// Plan is where a window starts and how many dates it offers.
type Plan struct {
	StartOffsetDays int
	TargetCount     int
}

// PlanFor returns the plan for a window. Unknown windows get the two_weeks
// plan, the least urgent one.
func PlanFor(window scoring.AvailabilityWindow) Plan {
	switch window.Normalize() {
	case scoring.WindowThisWeek:
		return Plan{StartOffsetDays: 1, TargetCount: 5}
	case scoring.WindowNextWeek:
		return Plan{StartOffsetDays: 5, TargetCount: 8}
	default:
		return Plan{StartOffsetDays: 14, TargetCount: 10}
	}
}

// ScanResult describes one slot generation run.
type ScanResult struct {
	Slots []time.Time
	// From and Through are the first and last calendar days examined.
	From    time.Time
	Through time.Time
}

// Generator produces candidate appointment dates. It is immutable and safe
// for concurrent use.
type Generator struct {
	clock    Clock
	holidays HolidayProvider
	location *time.Location
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithHolidays sets the holiday calendar.
func WithHolidays(h HolidayProvider) Option {
	return func(g *Generator) {
		if h != nil {
			g.holidays = h
		}
	}
}

// WithLocation sets the business time zone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.location = loc
		}
	}
}

// NewGenerator creates a generator using the system clock, the built-in
// federal holiday table and the default time zone unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:    SystemClock{},
		holidays: holidays.Federal(),
		location: defaultLocation(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Location returns the business time zone.
func (g *Generator) Location() *time.Location {
	return g.location
}

// Holidays returns the calendar in use.
func (g *Generator) Holidays() HolidayProvider {
	return g.holidays
}

// Today returns midnight of the current date in the business time zone.
func (g *Generator) Today() time.Time {
	return startOfDay(g.clock.Now(), g.location)
}

// AvailableSlots returns the candidate dates for window, counted from today.
func (g *Generator) AvailableSlots(window scoring.AvailabilityWindow) []time.Time {
	return g.Scan(g.Today(), window).Slots
}

// Scan generates candidate dates for window counted from the given day.
func (g *Generator) Scan(today time.Time, window scoring.AvailabilityWindow) ScanResult {
	plan := PlanFor(window)
	base := startOfDay(today, g.location)
	y, m, d := base.Date()

	result := ScanResult{
		Slots: make([]time.Time, 0, plan.TargetCount),
		From:  time.Date(y, m, d+plan.StartOffsetDays, 0, 0, 0, 0, g.location),
	}

	for i := 0; i < MaxScanDays && len(result.Slots) < plan.TargetCount; i++ {
		day := time.Date(y, m, d+plan.StartOffsetDays+i, 0, 0, 0, 0, g.location)
		result.Through = day
		if !IsWeekday(day) || g.holidays.IsHoliday(day) {
			continue
		}
		result.Slots = append(result.Slots, day)
	}
	return result
}

// CoverageGap reports whether a scan examined days past the last year the
// holiday calendar covers, and that year.
func (g *Generator) CoverageGap(scan ScanResult) (lastCovered int, gap bool) {
	_, last := g.holidays.Coverage()
	return last, scan.Through.Year() > last
}

// TimeSlots returns the fixed appointment windows in display order.
func (g *Generator) TimeSlots() []string {
	return GetTimeSlots()
}

// IsWeekday reports whether t falls Monday through Friday.
func IsWeekday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// IsTimeSlot reports whether s is one of the fixed appointment windows.
func IsTimeSlot(s string) bool {
	return slices.Contains(timeSlots[:], s)
}

// GetTimeSlots returns the fixed appointment windows in display order.
func GetTimeSlots() []string {
	return slices.Clone(timeSlots[:])
}

// FormatSlotDate renders a date like "Mon, Jan 15".
func FormatSlotDate(t time.Time) string {
	return t.Format(slotDateLayout)
}

var defaultGenerator = NewGenerator()

// GetAvailableSlots returns candidate dates for window using the system
// clock and the built-in holiday table.
func GetAvailableSlots(window scoring.AvailabilityWindow) []time.Time {
	return defaultGenerator.AvailableSlots(window)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
