package scoring

import "testing"

var (
	propertyWeights = map[PropertyType]int{
		PropertyCommercial: 20, PropertyFarm: 18, PropertyResidential: 10,
	}
	fenceWeights = map[FenceType]int{
		FenceFarm: 30, FenceVinyl: 25, FenceAluminum: 25, FencePrivacy: 20, FenceWood: 18,
		FencePool: 15, FenceChainLink: 12, FenceGate: 8, FenceRepair: 5, FenceUnsure: 15,
	}
	lengthWeights = map[FenceLength]int{
		LengthXLarge: 35, LengthLarge: 25, LengthMedium: 15, LengthSmall: 5, LengthUnsure: 15,
	}
	timelineWeights = map[Timeline]int{
		TimelineASAP: 15, TimelineMonth: 10, Timeline3Months: 5, TimelinePlanning: 2,
	}
)

func TestCalculateSumsTableWeightsForEveryCombination(t *testing.T) {
	for p, pw := range propertyWeights {
		for f, fw := range fenceWeights {
			for l, lw := range lengthWeights {
				for tl, tw := range timelineWeights {
					got := Calculate(Intake{PropertyType: p, FenceType: f, FenceLength: l, Timeline: tl})
					want := pw + fw + lw + tw
					if got.Score != want {
						t.Fatalf("%s/%s/%s/%s: expected score %d, got %d", p, f, l, tl, want, got.Score)
					}
					if got.Score < 0 || got.Score > 100 {
						t.Fatalf("score %d out of range", got.Score)
					}
					if got.Priority != Classify(want) {
						t.Fatalf("expected priority %s, got %s", Classify(want), got.Priority)
					}
				}
			}
		}
	}
}

func TestUnknownAnswersUseFallbackWeights(t *testing.T) {
	cases := []struct {
		name   string
		intake Intake
		factor string
		want   int
	}{
		{"property", Intake{PropertyType: "castle", FenceType: FenceWood, FenceLength: LengthLarge, Timeline: TimelineASAP}, FactorPropertyType, 10},
		{"fence", Intake{PropertyType: PropertyFarm, FenceType: "electric", FenceLength: LengthSmall, Timeline: TimelineMonth}, FactorFenceType, 15},
		{"length", Intake{PropertyType: PropertyCommercial, FenceType: FenceGate, FenceLength: "", Timeline: TimelinePlanning}, FactorFenceLength, 15},
		{"timeline", Intake{PropertyType: PropertyResidential, FenceType: FenceVinyl, FenceLength: LengthXLarge, Timeline: "someday"}, FactorTimeline, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.intake)
			if got.Factors[tc.factor] != tc.want {
				t.Fatalf("expected %s to contribute %d, got %d", tc.factor, tc.want, got.Factors[tc.factor])
			}
			sum := 0
			for _, v := range got.Factors {
				sum += v
			}
			if sum != got.Score {
				t.Fatalf("factors sum %d does not match score %d", sum, got.Score)
			}
		})
	}

	empty := CalculateLeadScore("", "", "", "")
	if empty.Score != 45 || empty.Priority != PriorityMedium {
		t.Fatalf("expected all-fallback score 45/medium, got %d/%s", empty.Score, empty.Priority)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Priority
	}{
		{0, PriorityLow},
		{44, PriorityLow},
		{45, PriorityMedium},
		{69, PriorityMedium},
		{70, PriorityHigh},
		{100, PriorityHigh},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestBoundaryScoresThroughCalculate(t *testing.T) {
	cases := []struct {
		intake Intake
		score  int
		want   Priority
	}{
		// 18 + 5 + 15 + 5, 44 is not reachable from the tables
		{Intake{PropertyFarm, FenceRepair, LengthMedium, Timeline3Months}, 43, PriorityLow},
		// 20 + 12 + 35 + 2
		{Intake{PropertyCommercial, FenceChainLink, LengthXLarge, TimelinePlanning}, 69, PriorityMedium},
		// 10 + 15 + 15 + 5
		{Intake{PropertyResidential, FencePool, LengthMedium, Timeline3Months}, 45, PriorityMedium},
		// 18 + 25 + 25 + 2
		{Intake{PropertyFarm, FenceVinyl, LengthLarge, TimelinePlanning}, 70, PriorityHigh},
		// 20 + 12 + 25 + 10
		{Intake{PropertyCommercial, FenceChainLink, LengthLarge, TimelineMonth}, 67, PriorityMedium},
	}
	for _, tc := range cases {
		got := Calculate(tc.intake)
		if got.Score != tc.score || got.Priority != tc.want {
			t.Errorf("%+v: expected %d/%s, got %d/%s", tc.intake, tc.score, tc.want, got.Score, got.Priority)
		}
	}
}

func TestExampleScenarios(t *testing.T) {
	cases := []struct {
		name                            string
		property, fence, length, timing string
		score                           int
		priority                        Priority
		window                          AvailabilityWindow
		value                           string
	}{
		{"premium farm job", "commercial", "farm", "xlarge", "asap", 100, PriorityHigh, WindowThisWeek, "$5,000+"},
		{"small repair", "residential", "repair", "small", "planning", 22, PriorityLow, WindowTwoWeeks, "Under $1,000"},
		{"wood backyard", "residential", "wood", "medium", "month", 53, PriorityMedium, WindowNextWeek, "$1,000 - $5,000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateLeadScore(tc.property, tc.fence, tc.length, tc.timing)
			if got.Score != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, got.Score)
			}
			if got.Priority != tc.priority || got.AvailabilityWindow != tc.window || got.EstimatedValue != tc.value {
				t.Fatalf("expected %s/%s/%q, got %s/%s/%q", tc.priority, tc.window, tc.value, got.Priority, got.AvailabilityWindow, got.EstimatedValue)
			}
			if got.Version != Version {
				t.Fatalf("expected version %s, got %s", Version, got.Version)
			}
		})
	}
}

func TestWindowAndValueDependOnlyOnPriority(t *testing.T) {
	// Both score 53 and 60 are medium.
	a := CalculateLeadScore("residential", "wood", "medium", "month")
	b := CalculateLeadScore("commercial", "privacy", "medium", "3months")
	if a.Priority != b.Priority {
		t.Fatalf("expected same priority, got %s and %s", a.Priority, b.Priority)
	}
	if a.AvailabilityWindow != b.AvailabilityWindow || a.EstimatedValue != b.EstimatedValue {
		t.Fatalf("expected identical window and value, got %+v and %+v", a, b)
	}
}

func TestCaseAndSpaceVariantsScoreFallback(t *testing.T) {
	fences := []FenceType{"VINYL", " vinyl ", "Vinyl", "chain link"}
	for _, f := range fences {
		if got := FenceWeight(f); got != fallbackFenceWeight {
			t.Errorf("fence %q: expected fallback %d, got %d", f, fallbackFenceWeight, got)
		}
		if f.IsKnown() {
			t.Errorf("fence %q: expected unknown", f)
		}
	}

	got := CalculateLeadScore("Commercial", "FARM", "XLarge", "ASAP")
	if got.Score != 45 || got.Priority != PriorityMedium {
		t.Fatalf("expected 10+15+15+5 = 45/medium, got %d/%s", got.Score, got.Priority)
	}
	if PropertyWeight(" commercial") != fallbackPropertyWeight || TimelineWeight("Asap") != fallbackTimelineWeight {
		t.Fatal("expected padded or capitalized answers to use fallback weights")
	}
	if !FenceChainLink.IsKnown() || AvailabilityWindow("someday").IsKnown() {
		t.Fatal("unexpected IsKnown result")
	}
}

func TestScoreFenceTypes(t *testing.T) {
	cases := []struct {
		name  string
		types []FenceType
		want  int
	}{
		{"empty", nil, 15},
		{"single", []FenceType{FenceGate}, 8},
		{"highest wins", []FenceType{FenceRepair, FenceVinyl, FenceWood}, 25},
		{"unknown mixed", []FenceType{"bamboo", FenceRepair}, 15},
	}
	for _, tc := range cases {
		if got := ScoreFenceTypes(tc.types); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}

	got := CalculateMulti(PropertyCommercial, []FenceType{FenceWood, FenceFarm}, LengthXLarge, TimelineASAP)
	if got.Score != 100 {
		t.Fatalf("expected multi-select score 100, got %d", got.Score)
	}
}
