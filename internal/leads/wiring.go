package leads

import (
	"fmt"
	"time"

	"fence_estimate_backend/internal/leads/holidays"
	"fence_estimate_backend/internal/leads/scheduling"
	"fence_estimate_backend/platform/config"
)

// NewGenerator builds the slot generator from scheduling configuration.
func NewGenerator(cfg config.SchedulingConfig, opts ...scheduling.Option) (*scheduling.Generator, error) {
	loc, err := time.LoadLocation(cfg.GetBusinessTimezone())
	if err != nil {
		return nil, fmt.Errorf("load business timezone: %w", err)
	}

	calendar, err := holidays.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build holiday calendar: %w", err)
	}

	base := []scheduling.Option{
		scheduling.WithLocation(loc),
		scheduling.WithHolidays(calendar),
	}
	return scheduling.NewGenerator(append(base, opts...)...), nil
}
