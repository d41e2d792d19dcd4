package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fence_estimate_backend/internal/leads/scheduling"
	"fence_estimate_backend/internal/leads/transport"
	"fence_estimate_backend/platform/apperr"
	"fence_estimate_backend/platform/logger"
)

func newTestService(t *testing.T, now time.Time) (*Service, *bytes.Buffer) {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	var buf bytes.Buffer
	gen := scheduling.NewGenerator(
		scheduling.WithClock(scheduling.ClockFunc(func() time.Time { return now.In(loc) })),
		scheduling.WithLocation(loc),
	)
	return New(gen, logger.NewWithWriter("production", &buf)), &buf
}

// Sunday 2026-10-18, 10:00 in New York.
var sunday = time.Date(2026, time.October, 18, 14, 0, 0, 0, time.UTC)

var (
	highIntake   = transport.IntakeRequest{PropertyType: "commercial", FenceType: "farm", FenceLength: "xlarge", Timeline: "asap"}
	mediumIntake = transport.IntakeRequest{PropertyType: "residential", FenceType: "wood", FenceLength: "medium", Timeline: "month"}
	lowIntake    = transport.IntakeRequest{PropertyType: "residential", FenceType: "repair", FenceLength: "small", Timeline: "planning"}
)

func TestScore(t *testing.T) {
	svc, _ := newTestService(t, sunday)

	got := svc.Score(context.Background(), highIntake)
	if got.Score != 100 || got.Priority != "high" || got.AvailabilityWindow != "this_week" || got.EstimatedValue != "$5,000+" {
		t.Fatalf("unexpected score response %+v", got)
	}
	if len(got.UnknownAnswers) != 0 {
		t.Fatalf("expected no unknown answers, got %v", got.UnknownAnswers)
	}

	fuzzy := svc.Score(context.Background(), transport.IntakeRequest{PropertyType: "barn", FenceTypes: []string{"wood", "laser"}, FenceLength: "large", Timeline: "asap"})
	if fuzzy.Score != 10+18+25+15 {
		t.Fatalf("expected multi-select score 68, got %d", fuzzy.Score)
	}
	if strings.Join(fuzzy.UnknownAnswers, ",") != "property_type,fence_type" {
		t.Fatalf("unexpected unknown answers %v", fuzzy.UnknownAnswers)
	}
}

func TestOptions(t *testing.T) {
	svc, _ := newTestService(t, sunday)

	got := svc.Options(context.Background(), mediumIntake)
	if got.LeadScore.Score != 53 || got.AvailabilityWindow != "next_week" {
		t.Fatalf("unexpected options %+v", got)
	}
	if len(got.Slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(got.Slots))
	}
	if got.Slots[0].Date != "2026-10-23" || got.Slots[0].Label != "Fri, Oct 23" {
		t.Fatalf("unexpected first slot %+v", got.Slots[0])
	}
	if len(got.TimeSlots) != 4 || got.Timezone != "America/New_York" || got.HolidaysCoveredThrough != 2028 {
		t.Fatalf("unexpected slot metadata %+v", got.SlotsResponse)
	}
}

func TestSlotsRejectsUnknownWindow(t *testing.T) {
	svc, _ := newTestService(t, sunday)

	_, err := svc.Slots(context.Background(), "someday")
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}

	resp, err := svc.Slots(context.Background(), "This_Week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AvailabilityWindow != "this_week" || len(resp.Slots) != 5 {
		t.Fatalf("unexpected slots %+v", resp)
	}
}

func TestSlotsFromLogsCoverageGap(t *testing.T) {
	svc, buf := newTestService(t, sunday)

	from := time.Date(2028, time.December, 20, 12, 0, 0, 0, time.UTC)
	resp, err := svc.SlotsFrom(context.Background(), "two_weeks", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Slots) != 10 || resp.Slots[0].Date != "2029-01-03" {
		t.Fatalf("unexpected slots %+v", resp.Slots)
	}
	if !strings.Contains(buf.String(), "holiday_coverage_gap") {
		t.Fatalf("expected coverage gap warning, got %q", buf.String())
	}

	buf.Reset()
	if _, err := svc.Slots(context.Background(), "two_weeks"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "holiday_coverage_gap") {
		t.Fatalf("expected no warning inside coverage, got %q", buf.String())
	}
}

func TestConfirmSelection(t *testing.T) {
	svc, _ := newTestService(t, sunday)

	got, err := svc.ConfirmSelection(context.Background(), transport.SelectionRequest{
		IntakeRequest: highIntake,
		Date:          "2026-10-20",
		TimeSlot:      "10:00 AM - 12:00 PM",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := transport.BookingSelectionResponse{
		Date:               "2026-10-20",
		DateLabel:          "Tue, Oct 20",
		TimeSlot:           "10:00 AM - 12:00 PM",
		Priority:           "high",
		AvailabilityWindow: "this_week",
		Score:              100,
		EstimatedValue:     "$5,000+",
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestConfirmSelectionRejects(t *testing.T) {
	svc, _ := newTestService(t, sunday)

	cases := []struct {
		name    string
		req     transport.SelectionRequest
		wantMsg string
	}{
		{
			name:    "weekend",
			req:     transport.SelectionRequest{IntakeRequest: highIntake, Date: "2026-10-24", TimeSlot: "8:00 AM - 10:00 AM"},
			wantMsg: msgDateNotAvailable,
		},
		{
			name:    "faster than earned",
			req:     transport.SelectionRequest{IntakeRequest: lowIntake, Date: "2026-10-19", TimeSlot: "8:00 AM - 10:00 AM"},
			wantMsg: msgDateNotAvailable,
		},
		{
			name:    "unknown time",
			req:     transport.SelectionRequest{IntakeRequest: highIntake, Date: "2026-10-19", TimeSlot: "6:00 PM - 8:00 PM"},
			wantMsg: msgTimeSlotUnavailable,
		},
		{
			name:    "bad date",
			req:     transport.SelectionRequest{IntakeRequest: highIntake, Date: "10/19/2026", TimeSlot: "8:00 AM - 10:00 AM"},
			wantMsg: msgInvalidDate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ConfirmSelection(context.Background(), tc.req)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}

	_, err := svc.ConfirmSelection(context.Background(), transport.SelectionRequest{IntakeRequest: highIntake, Date: "2026-02-30", TimeSlot: "8:00 AM - 10:00 AM"})
	var parseErr *time.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected the parse failure to stay reachable, got %v", err)
	}
}

func TestScoreMatchesAnswersExactly(t *testing.T) {
	svc, _ := newTestService(t, sunday)

	got := svc.Score(context.Background(), transport.IntakeRequest{PropertyType: "commercial", FenceType: "VINYL", FenceLength: "xlarge", Timeline: "asap"})
	if got.Score != 20+15+35+15 || got.Factors["fence_type"] != 15 {
		t.Fatalf("expected fallback fence weight, got %+v", got)
	}
	if strings.Join(got.UnknownAnswers, ",") != "fence_type" {
		t.Fatalf("expected fence_type to be reported unknown, got %v", got.UnknownAnswers)
	}
}
