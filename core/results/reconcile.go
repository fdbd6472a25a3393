package results

// Reconcile merges a possibly-partial backend payload with the default
// dataset into a fully populated View. Each top-level group (scores, radar,
// weak topics, recommendations, AI dependency) is reconciled independently
// and substituted wholesale when absent or empty; present fields of one
// group are never mixed with defaults of another.
func Reconcile(raw *Raw) View {
	if raw == nil {
		return DefaultView()
	}

	view := View{
		Scores:          DefaultScores(),
		Radar:           DefaultRadar(),
		WeakTopics:      DefaultWeakTopics(),
		Recommendations: DefaultRecommendations(),
		AIDependency:    DefaultAIDependency,
	}

	if raw.Scores != nil {
		view.Scores = *raw.Scores
	}
	if raw.RadarScores.complete() {
		view.Radar = Radar{
			Clarity:          clamp(*raw.RadarScores.Clarity),
			Application:      clamp(*raw.RadarScores.Application),
			Logic:            clamp(*raw.RadarScores.Logic),
			CriticalThinking: clamp(*raw.RadarScores.CriticalThinking),
			Retention:        clamp(*raw.RadarScores.Retention),
		}
	}
	if len(raw.WeakTopics) > 0 {
		view.WeakTopics = tallyWeakTopics(raw.WeakTopics)
	}
	if len(raw.Recommendations) > 0 {
		view.Recommendations = append([]Recommendation(nil), raw.Recommendations...)
	}
	if raw.AIDependency != nil {
		view.AIDependency = *raw.AIDependency
	}
	return view
}

// tallyWeakTopics folds the wire's flat topic list into ordered
// {topic, count} entries, first occurrence first.
func tallyWeakTopics(topics []string) []WeakTopic {
	counts := make(map[string]int, len(topics))
	order := make([]string, 0, len(topics))
	for _, topic := range topics {
		if _, seen := counts[topic]; !seen {
			order = append(order, topic)
		}
		counts[topic]++
	}
	tallied := make([]WeakTopic, 0, len(order))
	for _, topic := range order {
		tallied = append(tallied, WeakTopic{Topic: topic, Count: counts[topic]})
	}
	return tallied
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
