package cli

import (
	"fmt"
	"strings"
	"time"

	"fence_estimate_backend/internal/leads/holidays"
	"fence_estimate_backend/internal/leads/scoring"
	"fence_estimate_backend/platform/apperr"

	"github.com/spf13/cobra"
)

var (
	slotsWindow string
	slotsFrom   string
)

var slotsCmd = &cobra.Command{
	Use:     "slots",
	Short:   "List appointment dates offered for an availability window",
	Example: "  leadctl slots --window next_week --from 2026-10-19",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		from := a.Today()
		if slotsFrom != "" {
			from, err = time.ParseInLocation(holidays.DateLayout, slotsFrom, a.Location)
			if err != nil {
				return fmt.Errorf("invalid --from %q: expected YYYY-MM-DD", slotsFrom)
			}
		}

		resp, err := a.Service.SlotsFrom(cmd.Context(), slotsWindow, from)
		if apperr.Is(err, apperr.KindBadRequest) {
			return fmt.Errorf("%w (choose one of: %s)", err, windowList())
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Window %s from %s (%s)\n", resp.AvailabilityWindow, from.Format(holidays.DateLayout), resp.Timezone)
		if len(resp.Slots) == 0 {
			fmt.Fprintln(out, "No dates available.")
		}
		for _, s := range resp.Slots {
			fmt.Fprintf(out, "  %s  %s\n", s.Date, s.Label)
		}
		fmt.Fprintf(out, "Times: %s\n", strings.Join(resp.TimeSlots, " | "))
		return nil
	},
}

func windowList() string {
	windows := scoring.Windows()
	names := make([]string, len(windows))
	for i, w := range windows {
		names[i] = string(w)
	}
	return strings.Join(names, ", ")
}

func init() {
	slotsCmd.Flags().StringVar(&slotsWindow, "window", "this_week", "availability window (this_week, next_week, two_weeks)")
	slotsCmd.Flags().StringVar(&slotsFrom, "from", "", "count from this date instead of today (YYYY-MM-DD)")
}
