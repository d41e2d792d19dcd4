package cli

import (
	"fmt"

	"fence_estimate_backend/internal/leads/holidays"

	"github.com/spf13/cobra"
)

var (
	coverageHorizonDays int
	listYear            int
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Inspect the holiday calendar",
}

var holidaysCoverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Check that the holiday calendar reaches far enough ahead",
	Long: `Reports the years the configured holiday calendar covers and fails when
the calendar ends before today plus the horizon. Dates past the last covered
year are offered for booking even when they are holidays.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		first, last := a.Holidays.Coverage()
		horizon := a.Today().AddDate(0, 0, coverageHorizonDays)

		out := cmd.OutOrStdout()
		if last == 0 {
			return fmt.Errorf("holiday calendar is empty")
		}
		fmt.Fprintf(out, "Holiday calendar covers %d-%d\n", first, last)
		if horizon.Year() > last {
			return fmt.Errorf("holiday calendar ends in %d but the %d day horizon reaches %s",
				last, coverageHorizonDays, horizon.Format(holidays.DateLayout))
		}
		fmt.Fprintf(out, "OK through %s\n", horizon.Format(holidays.DateLayout))
		return nil
	},
}

var holidaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the holidays of a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		lister, ok := a.Holidays.(holidays.Lister)
		if !ok {
			return fmt.Errorf("holiday calendar cannot list dates")
		}

		year := listYear
		if year == 0 {
			year = a.Today().Year()
		}

		out := cmd.OutOrStdout()
		entries := lister.List(year)
		if len(entries) == 0 {
			fmt.Fprintf(out, "No holidays known for %d\n", year)
			return nil
		}
		for _, h := range entries {
			name := h.Name
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(out, "%s  %s\n", h.Date, name)
		}
		return nil
	},
}

func init() {
	holidaysCoverageCmd.Flags().IntVar(&coverageHorizonDays, "horizon-days", 365, "days ahead the calendar must cover")
	holidaysListCmd.Flags().IntVar(&listYear, "year", 0, "year to list (default current year)")
	holidaysCmd.AddCommand(holidaysCoverageCmd)
	holidaysCmd.AddCommand(holidaysListCmd)
}
