package transport

import "strings"

// Request DTOs

// IntakeRequest carries the four estimate form answers. Unknown answers are
// accepted and scored with fallback weights; FenceTypes takes precedence over
// FenceType when the form sends a multi-select.
type IntakeRequest struct {
	PropertyType string   `json:"propertyType" validate:"max=50"`
	FenceType    string   `json:"fenceType" validate:"max=50"`
	FenceTypes   []string `json:"fenceTypes,omitempty" validate:"omitempty,max=10,dive,max=50"`
	FenceLength  string   `json:"fenceLength" validate:"max=50"`
	Timeline     string   `json:"timeline" validate:"max=50"`
}

// Normalized returns a copy with every answer trimmed and lower-cased so
// form values such as "Vinyl " match the scoring tables.
func (r IntakeRequest) Normalized() IntakeRequest {
	out := IntakeRequest{
		PropertyType: normalize(r.PropertyType),
		FenceType:    normalize(r.FenceType),
		FenceLength:  normalize(r.FenceLength),
		Timeline:     normalize(r.Timeline),
	}
	if r.FenceTypes != nil {
		out.FenceTypes = make([]string, len(r.FenceTypes))
		for i, f := range r.FenceTypes {
			out.FenceTypes[i] = normalize(f)
		}
	}
	return out
}

type SlotsQuery struct {
	Window string `form:"window" validate:"required,oneof=this_week next_week two_weeks"`
}

func (q SlotsQuery) Normalized() SlotsQuery {
	return SlotsQuery{Window: normalize(q.Window)}
}

// SelectionRequest confirms a date and time picked from the offered slots.
type SelectionRequest struct {
	IntakeRequest
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"timeSlot" validate:"required,max=50"`
}

// Response DTOs

type LeadScoreResponse struct {
	Score              int            `json:"score"`
	Priority           string         `json:"priority"`
	AvailabilityWindow string         `json:"availabilityWindow"`
	EstimatedValue     string         `json:"estimatedValue"`
	Factors            map[string]int `json:"factors"`
	Version            string         `json:"version"`
	UnknownAnswers     []string       `json:"unknownAnswers,omitempty"`
}

type SlotResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type SlotsResponse struct {
	AvailabilityWindow string         `json:"availabilityWindow"`
	Timezone           string         `json:"timezone"`
	Slots              []SlotResponse `json:"slots"`
	TimeSlots          []string       `json:"timeSlots"`
	// HolidaysCoveredThrough is the last year the holiday calendar knows.
	HolidaysCoveredThrough int `json:"holidaysCoveredThrough"`
}

type BookingOptionsResponse struct {
	LeadScore LeadScoreResponse `json:"leadScore"`
	SlotsResponse
}

type TimeSlotsResponse struct {
	TimeSlots []string `json:"timeSlots"`
}

// BookingSelectionResponse is the normalized booking a client forwards to
// the lead submission endpoint together with contact details.
type BookingSelectionResponse struct {
	Date               string `json:"date"`
	DateLabel          string `json:"dateLabel"`
	TimeSlot           string `json:"timeSlot"`
	Priority           string `json:"priority"`
	AvailabilityWindow string `json:"availabilityWindow"`
	Score              int    `json:"score"`
	EstimatedValue     string `json:"estimatedValue"`
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
