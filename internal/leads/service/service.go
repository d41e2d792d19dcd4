// Package service orchestrates the estimate booking flow: score the intake,
// offer dates for the resulting availability window, and confirm the date
// and time the customer picked.
package service

import (
	"context"
	"time"

	"fence_estimate_backend/internal/leads/holidays"
	"fence_estimate_backend/internal/leads/scheduling"
	"fence_estimate_backend/internal/leads/scoring"
	"fence_estimate_backend/internal/leads/transport"
	"fence_estimate_backend/platform/apperr"
	"fence_estimate_backend/platform/logger"
)

const (
	msgUnknownWindow       = "unknown availability window"
	msgDateNotAvailable    = "date is not an available slot"
	msgInvalidDate         = "date must be formatted as YYYY-MM-DD"
	msgTimeSlotUnavailable = "time slot is not offered"
)

type Service struct {
	slots *scheduling.Generator
	log   *logger.Logger
}

func New(slots *scheduling.Generator, log *logger.Logger) *Service {
	return &Service{slots: slots, log: log}
}

// Score computes the lead score for an intake.
func (s *Service) Score(ctx context.Context, req transport.IntakeRequest) transport.LeadScoreResponse {
	result := scoreIntake(req)
	s.log.WithContext(ctx).Debug("lead scored",
		"score", result.Score,
		"priority", result.Priority,
		"version", result.Version,
	)
	return toLeadScoreResponse(result, unknownAnswers(req))
}

// Options scores the intake and returns the dates and times offered for it.
func (s *Service) Options(ctx context.Context, req transport.IntakeRequest) transport.BookingOptionsResponse {
	result := scoreIntake(req)
	scan := s.scan(ctx, s.slots.Today(), result.AvailabilityWindow)

	return transport.BookingOptionsResponse{
		LeadScore:     toLeadScoreResponse(result, unknownAnswers(req)),
		SlotsResponse: s.toSlotsResponse(result.AvailabilityWindow, scan),
	}
}

// Slots returns the dates offered for a window, counted from today.
func (s *Service) Slots(ctx context.Context, window string) (transport.SlotsResponse, error) {
	return s.SlotsFrom(ctx, window, s.slots.Today())
}

// SlotsFrom returns the dates offered for a window as if today were from.
func (s *Service) SlotsFrom(ctx context.Context, window string, from time.Time) (transport.SlotsResponse, error) {
	w := scoring.AvailabilityWindow(window).Normalize()
	if !w.IsKnown() {
		return transport.SlotsResponse{}, apperr.BadRequest(msgUnknownWindow).
			WithDetails(scoring.Windows())
	}

	scan := s.scan(ctx, from, w)
	return s.toSlotsResponse(w, scan), nil
}

// TimeSlots returns the fixed appointment windows.
func (s *Service) TimeSlots() transport.TimeSlotsResponse {
	return transport.TimeSlotsResponse{TimeSlots: s.slots.TimeSlots()}
}

// ConfirmSelection validates a picked date and time against the slots the
// intake qualifies for today. The score is recomputed from the answers, so a
// client cannot book into a faster window than its intake earns.
func (s *Service) ConfirmSelection(ctx context.Context, req transport.SelectionRequest) (transport.BookingSelectionResponse, error) {
	result := scoreIntake(req.IntakeRequest)

	picked, err := time.ParseInLocation(holidays.DateLayout, req.Date, s.slots.Location())
	if err != nil {
		return transport.BookingSelectionResponse{}, apperr.Wrap(apperr.KindValidation, msgInvalidDate, err)
	}
	if !scheduling.IsTimeSlot(req.TimeSlot) {
		return transport.BookingSelectionResponse{}, apperr.Validation(msgTimeSlotUnavailable).
			WithDetails(scheduling.GetTimeSlots())
	}

	scan := s.scan(ctx, s.slots.Today(), result.AvailabilityWindow)
	if !containsDay(scan.Slots, picked) {
		offered := toSlotResponses(scan.Slots)
		s.log.WithContext(ctx).Info("booking date rejected",
			"date", req.Date,
			"window", result.AvailabilityWindow,
		)
		return transport.BookingSelectionResponse{}, apperr.Validation(msgDateNotAvailable).
			WithDetails(offered)
	}

	return transport.BookingSelectionResponse{
		Date:               picked.Format(holidays.DateLayout),
		DateLabel:          scheduling.FormatSlotDate(picked),
		TimeSlot:           req.TimeSlot,
		Priority:           string(result.Priority),
		AvailabilityWindow: string(result.AvailabilityWindow),
		Score:              result.Score,
		EstimatedValue:     result.EstimatedValue,
	}, nil
}

func (s *Service) scan(ctx context.Context, from time.Time, window scoring.AvailabilityWindow) scheduling.ScanResult {
	scan := s.slots.Scan(from, window)
	if last, gap := s.slots.CoverageGap(scan); gap {
		s.log.WithContext(ctx).HolidayCoverageGap(string(window), last, scan.Through.Format(holidays.DateLayout))
	}
	return scan
}

func (s *Service) toSlotsResponse(window scoring.AvailabilityWindow, scan scheduling.ScanResult) transport.SlotsResponse {
	_, last := s.slots.Holidays().Coverage()
	return transport.SlotsResponse{
		AvailabilityWindow:     string(window),
		Timezone:               s.slots.Location().String(),
		Slots:                  toSlotResponses(scan.Slots),
		TimeSlots:              s.slots.TimeSlots(),
		HolidaysCoveredThrough: last,
	}
}

func containsDay(days []time.Time, day time.Time) bool {
	for _, d := range days {
		if d.Equal(day) {
			return true
		}
	}
	return false
}
