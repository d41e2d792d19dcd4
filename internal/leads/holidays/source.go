package holidays

import (
	"fmt"

	"fence_estimate_backend/platform/config"
)

// FromConfig builds the calendar selected by HOLIDAY_SOURCE.
func FromConfig(cfg config.SchedulingConfig) (Calendar, error) {
	first, last := cfg.GetHolidayRulesYears()

	switch cfg.GetHolidaySource() {
	case config.HolidaySourceStatic, "":
		return Federal(), nil
	case config.HolidaySourceFile:
		return LoadFile(cfg.GetHolidayFile())
	case config.HolidaySourceRules:
		return NewRuleCalendar(first, last)
	case config.HolidaySourceUnion:
		rules, err := NewRuleCalendar(first, last)
		if err != nil {
			return nil, err
		}
		members := []Calendar{Federal(), rules}
		if path := cfg.GetHolidayFile(); path != "" {
			file, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			members = append(members, file)
		}
		return Union(members...), nil
	default:
		return nil, fmt.Errorf("unknown holiday source %q", cfg.GetHolidaySource())
	}
}
