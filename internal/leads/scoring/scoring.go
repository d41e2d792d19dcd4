// Package scoring computes the lead score for a fence estimate intake.
// Scoring is a pure lookup over four answer tables and never fails:
// answers missing from a table contribute that table's fallback weight.
// Lookups are exact; "Vinyl" is not "vinyl".
package scoring

const (
	// Version tracks the scoring model for debugging and analysis.
	// Bump this when changing weights or thresholds.
	Version = "2024-fence-v1"

	// Priority thresholds on the summed score.
	highThreshold   = 70
	mediumThreshold = 45

	fallbackPropertyWeight = 10
	fallbackFenceWeight    = 15
	fallbackLengthWeight   = 15
	fallbackTimelineWeight = 5
)

// Intake holds the four categorical answers collected by the estimate form.
type Intake struct {
	PropertyType PropertyType
	FenceType    FenceType
	FenceLength  FenceLength
	Timeline     Timeline
}

// LeadScore is the result of scoring one intake.
type LeadScore struct {
	Score              int
	Priority           Priority
	AvailabilityWindow AvailabilityWindow
	EstimatedValue     string
	Factors            map[string]int
	Version            string
}

// CalculateLeadScore scores raw answer strings.
func CalculateLeadScore(propertyType, fenceType, fenceLength, timeline string) LeadScore {
	return Calculate(Intake{
		PropertyType: PropertyType(propertyType),
		FenceType:    FenceType(fenceType),
		FenceLength:  FenceLength(fenceLength),
		Timeline:     Timeline(timeline),
	})
}

// Calculate scores an intake.
func Calculate(in Intake) LeadScore {
	return fromFactors(map[string]int{
		FactorPropertyType: PropertyWeight(in.PropertyType),
		FactorFenceType:    FenceWeight(in.FenceType),
		FactorFenceLength:  LengthWeight(in.FenceLength),
		FactorTimeline:     TimelineWeight(in.Timeline),
	})
}

// CalculateMulti scores an intake where the customer picked several fence
// types. The fence dimension uses ScoreFenceTypes.
func CalculateMulti(propertyType PropertyType, fenceTypes []FenceType, fenceLength FenceLength, timeline Timeline) LeadScore {
	return fromFactors(map[string]int{
		FactorPropertyType: PropertyWeight(propertyType),
		FactorFenceType:    ScoreFenceTypes(fenceTypes),
		FactorFenceLength:  LengthWeight(fenceLength),
		FactorTimeline:     TimelineWeight(timeline),
	})
}

// ScoreFenceTypes returns the highest fence weight among types so a
// multi-select answer stays within the single-type band. An empty list
// scores the fallback weight.
func ScoreFenceTypes(types []FenceType) int {
	if len(types) == 0 {
		return fallbackFenceWeight
	}
	best := 0
	for _, t := range types {
		if w := FenceWeight(t); w > best {
			best = w
		}
	}
	return best
}

func fromFactors(factors map[string]int) LeadScore {
	total := 0
	for _, v := range factors {
		total += v
	}

	priority := Classify(total)
	return LeadScore{
		Score:              total,
		Priority:           priority,
		AvailabilityWindow: WindowFor(priority),
		EstimatedValue:     EstimatedValueFor(priority),
		Factors:            factors,
		Version:            Version,
	}
}

// Classify maps a score to its priority tier.
func Classify(score int) Priority {
	switch {
	case score >= highThreshold:
		return PriorityHigh
	case score >= mediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// WindowFor returns the availability window offered for a priority.
func WindowFor(p Priority) AvailabilityWindow {
	switch p {
	case PriorityHigh:
		return WindowThisWeek
	case PriorityMedium:
		return WindowNextWeek
	default:
		return WindowTwoWeeks
	}
}

// EstimatedValueFor returns the display job value for a priority.
func EstimatedValueFor(p Priority) string {
	switch p {
	case PriorityHigh:
		return "$5,000+"
	case PriorityMedium:
		return "$1,000 - $5,000"
	default:
		return "Under $1,000"
	}
}

// PropertyWeight returns the 0-20 contribution of the property type.
func PropertyWeight(p PropertyType) int {
	switch p {
	case PropertyCommercial:
		return 20
	case PropertyFarm:
		return 18
	case PropertyResidential:
		return 10
	default:
		return fallbackPropertyWeight
	}
}

// FenceWeight returns the 0-30 contribution of the fence type.
func FenceWeight(f FenceType) int {
	switch f {
	case FenceFarm:
		return 30
	case FenceVinyl, FenceAluminum:
		return 25
	case FencePrivacy:
		return 20
	case FenceWood:
		return 18
	case FencePool:
		return 15
	case FenceChainLink:
		return 12
	case FenceGate:
		return 8
	case FenceRepair:
		return 5
	case FenceUnsure:
		return 15
	default:
		return fallbackFenceWeight
	}
}

// LengthWeight returns the 0-35 contribution of the fence length.
func LengthWeight(l FenceLength) int {
	switch l {
	case LengthXLarge:
		return 35
	case LengthLarge:
		return 25
	case LengthMedium:
		return 15
	case LengthSmall:
		return 5
	case LengthUnsure:
		return 15
	default:
		return fallbackLengthWeight
	}
}

// TimelineWeight returns the 0-15 contribution of the timeline.
func TimelineWeight(t Timeline) int {
	switch t {
	case TimelineASAP:
		return 15
	case TimelineMonth:
		return 10
	case Timeline3Months:
		return 5
	case TimelinePlanning:
		return 2
	default:
		return fallbackTimelineWeight
	}
}
