package service

import (
	"time"

	"fence_estimate_backend/internal/leads/holidays"
	"fence_estimate_backend/internal/leads/scheduling"
	"fence_estimate_backend/internal/leads/scoring"
	"fence_estimate_backend/internal/leads/transport"
)

func scoreIntake(req transport.IntakeRequest) scoring.LeadScore {
	if len(req.FenceTypes) > 0 {
		types := make([]scoring.FenceType, len(req.FenceTypes))
		for i, t := range req.FenceTypes {
			types[i] = scoring.FenceType(t)
		}
		return scoring.CalculateMulti(
			scoring.PropertyType(req.PropertyType),
			types,
			scoring.FenceLength(req.FenceLength),
			scoring.Timeline(req.Timeline),
		)
	}

	return scoring.Calculate(scoring.Intake{
		PropertyType: scoring.PropertyType(req.PropertyType),
		FenceType:    scoring.FenceType(req.FenceType),
		FenceLength:  scoring.FenceLength(req.FenceLength),
		Timeline:     scoring.Timeline(req.Timeline),
	})
}

// unknownAnswers lists the factors that fell back to a default weight.
func unknownAnswers(req transport.IntakeRequest) []string {
	var unknown []string
	if !scoring.PropertyType(req.PropertyType).IsKnown() {
		unknown = append(unknown, scoring.FactorPropertyType)
	}
	if len(req.FenceTypes) > 0 {
		for _, t := range req.FenceTypes {
			if !scoring.FenceType(t).IsKnown() {
				unknown = append(unknown, scoring.FactorFenceType)
				break
			}
		}
	} else if !scoring.FenceType(req.FenceType).IsKnown() {
		unknown = append(unknown, scoring.FactorFenceType)
	}
	if !scoring.FenceLength(req.FenceLength).IsKnown() {
		unknown = append(unknown, scoring.FactorFenceLength)
	}
	if !scoring.Timeline(req.Timeline).IsKnown() {
		unknown = append(unknown, scoring.FactorTimeline)
	}
	return unknown
}

func toLeadScoreResponse(result scoring.LeadScore, unknown []string) transport.LeadScoreResponse {
	return transport.LeadScoreResponse{
		Score:              result.Score,
		Priority:           string(result.Priority),
		AvailabilityWindow: string(result.AvailabilityWindow),
		EstimatedValue:     result.EstimatedValue,
		Factors:            result.Factors,
		Version:            result.Version,
		UnknownAnswers:     unknown,
	}
}

func toSlotResponses(days []time.Time) []transport.SlotResponse {
	out := make([]transport.SlotResponse, 0, len(days))
	for _, d := range days {
		out = append(out, transport.SlotResponse{
			Date:  d.Format(holidays.DateLayout),
			Label: scheduling.FormatSlotDate(d),
		})
	}
	return out
}
