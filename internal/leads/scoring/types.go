package scoring

import "strings"

// PropertyType is the kind of property the fence is for.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyFarm        PropertyType = "farm"
)

// FenceType is the requested fence material or job kind.
type FenceType string

const (
	FenceWood      FenceType = "wood"
	FenceVinyl     FenceType = "vinyl"
	FenceChainLink FenceType = "chain-link"
	FenceAluminum  FenceType = "aluminum"
	FencePrivacy   FenceType = "privacy"
	FencePool      FenceType = "pool"
	FenceFarm      FenceType = "farm"
	FenceRepair    FenceType = "repair"
	FenceGate      FenceType = "gate"
	FenceUnsure    FenceType = "unsure"
)

// FenceLength is the customer's rough estimate of the run length.
type FenceLength string

const (
	LengthSmall  FenceLength = "small"
	LengthMedium FenceLength = "medium"
	LengthLarge  FenceLength = "large"
	LengthXLarge FenceLength = "xlarge"
	LengthUnsure FenceLength = "unsure"
)

// Timeline is how soon the customer wants the work done.
type Timeline string

const (
	TimelineASAP     Timeline = "asap"
	TimelineMonth    Timeline = "month"
	Timeline3Months  Timeline = "3months"
	TimelinePlanning Timeline = "planning"
)

// Priority is the lead tier derived from the score.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AvailabilityWindow is the horizon in which appointment dates are offered.
type AvailabilityWindow string

const (
	WindowThisWeek AvailabilityWindow = "this_week"
	WindowNextWeek AvailabilityWindow = "next_week"
	WindowTwoWeeks AvailabilityWindow = "two_weeks"
)

// Factor keys used in LeadScore.Factors.
const (
	FactorPropertyType = "property_type"
	FactorFenceType    = "fence_type"
	FactorFenceLength  = "fence_length"
	FactorTimeline     = "timeline"
)

// Normalize trims and lower-cases a window name.
func (w AvailabilityWindow) Normalize() AvailabilityWindow {
	return AvailabilityWindow(normalize(string(w)))
}

// IsKnown reports whether p is one of the property types in the weight table.
func (p PropertyType) IsKnown() bool {
	switch p {
	case PropertyResidential, PropertyCommercial, PropertyFarm:
		return true
	}
	return false
}

// IsKnown reports whether f is one of the fence types in the weight table.
func (f FenceType) IsKnown() bool {
	switch f {
	case FenceWood, FenceVinyl, FenceChainLink, FenceAluminum, FencePrivacy,
		FencePool, FenceFarm, FenceRepair, FenceGate, FenceUnsure:
		return true
	}
	return false
}

// IsKnown reports whether l is one of the lengths in the weight table.
func (l FenceLength) IsKnown() bool {
	switch l {
	case LengthSmall, LengthMedium, LengthLarge, LengthXLarge, LengthUnsure:
		return true
	}
	return false
}

// IsKnown reports whether t is one of the timelines in the weight table.
func (t Timeline) IsKnown() bool {
	switch t {
	case TimelineASAP, TimelineMonth, Timeline3Months, TimelinePlanning:
		return true
	}
	return false
}

// IsKnown reports whether w is exactly one of the three windows.
func (w AvailabilityWindow) IsKnown() bool {
	switch w {
	case WindowThisWeek, WindowNextWeek, WindowTwoWeeks:
		return true
	}
	return false
}

// Windows returns the availability windows in order of urgency.
func Windows() []AvailabilityWindow {
	return []AvailabilityWindow{WindowThisWeek, WindowNextWeek, WindowTwoWeeks}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
