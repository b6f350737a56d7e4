package cognitive

// Level thresholds on the additive load score.
const (
	OverloadThreshold = 80
	HighThreshold     = 60
	OptimalThreshold  = 30
)

// band awards points when a value crosses limit. Bands are checked in
// order and the first crossing wins.
type band struct {
	limit  float64
	points int
}

func pointsAbove(v float64, bands ...band) int {
	for _, b := range bands {
		if v > b.limit {
			return b.points
		}
	}
	return 0
}

func pointsBelow(v float64, bands ...band) int {
	for _, b := range bands {
		if v < b.limit {
			return b.points
		}
	}
	return 0
}

// Contribution is the points one signal added to the load score.
type Contribution struct {
	Signal string `json:"signal"`
	Points int    `json:"points"`
}

// Breakdown returns each signal's contribution in a fixed order.
func Breakdown(m Metrics) []Contribution {
	c := m.Current
	return []Contribution{
		{"response_delay", pointsAbove(c.ResponseDelay, band{30, 25}, band{15, 15}, band{10, 5})},
		{"error_rate", pointsAbove(c.ErrorRate, band{0.4, 30}, band{0.2, 20}, band{0.1, 10})},
		{"help_requests", pointsAbove(float64(c.HelpRequests), band{5, 20}, band{3, 15}, band{1, 5})},
		{"task_switching_frequency", pointsAbove(c.TaskSwitchingFrequency, band{0.8, 15}, band{0.5, 10})},
		{"confusion_indicators", pointsAbove(float64(c.ConfusionIndicators), band{3, 25}, band{1, 15})},
		{"engagement_level", pointsBelow(c.EngagementLevel, band{0.3, 20}, band{0.5, 10})},
		{"total_cognitive_load", pointsAbove(m.Session.TotalCognitiveLoad, band{80, 15}, band{60, 10})},
	}
}

// Score sums every signal's contribution.
func Score(m Metrics) int {
	total := 0
	for _, c := range Breakdown(m) {
		total += c.Points
	}
	return total
}

// Classify buckets a load score into a level. Every integer maps to
// exactly one level.
func Classify(score int) Level {
	switch {
	case score >= OverloadThreshold:
		return LevelOverload
	case score >= HighThreshold:
		return LevelHigh
	case score >= OptimalThreshold:
		return LevelOptimal
	default:
		return LevelLow
	}
}
