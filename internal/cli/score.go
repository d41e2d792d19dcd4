package cli

import (
	"fmt"
	"sort"

	"fence_estimate_backend/internal/leads/transport"

	"github.com/spf13/cobra"
)

var (
	scoreProperty string
	scoreFence    []string
	scoreLength   string
	scoreTimeline string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an estimate intake",
	Example: `  leadctl score --property commercial --fence farm --length xlarge --timeline asap
  leadctl score --property residential --fence wood,privacy --length medium --timeline month`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		req := transport.IntakeRequest{
			PropertyType: scoreProperty,
			FenceLength:  scoreLength,
			Timeline:     scoreTimeline,
		}
		if len(scoreFence) == 1 {
			req.FenceType = scoreFence[0]
		} else {
			req.FenceTypes = scoreFence
		}

		result := a.Service.Score(cmd.Context(), req)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Score:           %d\n", result.Score)
		fmt.Fprintf(out, "Priority:        %s\n", result.Priority)
		fmt.Fprintf(out, "Window:          %s\n", result.AvailabilityWindow)
		fmt.Fprintf(out, "Estimated value: %s\n", result.EstimatedValue)

		keys := make([]string, 0, len(result.Factors))
		for k := range result.Factors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %-14s %d\n", k, result.Factors[k])
		}
		for _, k := range result.UnknownAnswers {
			fmt.Fprintf(out, "warning: %s not recognized, fallback weight used\n", k)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreProperty, "property", "", "property type (residential, commercial, farm)")
	scoreCmd.Flags().StringSliceVar(&scoreFence, "fence", nil, "fence type, repeat or comma-separate for several")
	scoreCmd.Flags().StringVar(&scoreLength, "length", "", "fence length (small, medium, large, xlarge, unsure)")
	scoreCmd.Flags().StringVar(&scoreTimeline, "timeline", "", "timeline (asap, month, 3months, planning)")
}
