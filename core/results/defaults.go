package results

// The fixed default dataset. A result page must never render visually empty
// sections, so any group the backend omits is substituted wholesale from
// here. Functions return fresh copies; callers may mutate.

// DefaultScores keeps the weighted-formula arithmetic intact:
// 0.4*91.5 + 0.3*85 + 0.2*92 + 0.1*75 = 88.
func DefaultScores() Scores {
	return Scores{
		ConceptClarity:     91.5,
		Application:        85,
		LogicalConsistency: 92,
		Depth:              75,
		FinalScore:         88,
	}
}

func DefaultRadar() Radar {
	return Radar{
		Clarity:          90,
		Application:      85,
		Logic:            75,
		CriticalThinking: 82,
		Retention:        88,
	}
}

func DefaultWeakTopics() []WeakTopic {
	return []WeakTopic{
		{Topic: "Data Structures", Count: 12},
		{Topic: "Recursion", Count: 8},
		{Topic: "Dynamic Programming", Count: 15},
		{Topic: "Graph Theory", Count: 6},
	}
}

func DefaultRecommendations() []Recommendation {
	return []Recommendation{
		{Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", Topic: "Algorithms", Match: 94},
		{Title: "Cracking the Coding Interview", Author: "Gayle Laakmann McDowell", Topic: "Data Structures", Match: 88},
		{Title: "Clean Code", Author: "Robert C. Martin", Topic: "Software Engineering", Match: 82},
	}
}

// DefaultAIDependency sits in the low-risk band so fallback data never
// fabricates a risk warning.
const DefaultAIDependency = 28.5

// DefaultView is the fully-default result, rendered when no payload exists.
func DefaultView() View {
	return View{
		Scores:          DefaultScores(),
		Radar:           DefaultRadar(),
		WeakTopics:      DefaultWeakTopics(),
		Recommendations: DefaultRecommendations(),
		AIDependency:    DefaultAIDependency,
	}
}
