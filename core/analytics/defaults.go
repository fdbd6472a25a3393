package analytics

// Default groups for analytics views, same wholesale-substitution policy as
// the result reconciler: a dashboard never renders an empty chart section.

func DefaultScoreHistory() []ScorePoint {
	return []ScorePoint{
		{Date: "Week 1", Score: 65},
		{Date: "Week 2", Score: 72},
		{Date: "Week 3", Score: 78},
		{Date: "Week 4", Score: 85},
		{Date: "Week 5", Score: 92},
	}
}

func DefaultScoreTrend() []TrendPoint {
	return []TrendPoint{
		{Date: "Quiz 1", Average: 72},
		{Date: "Exam 1", Average: 68},
		{Date: "Quiz 2", Average: 76},
		{Date: "Midterm", Average: 81},
		{Date: "Quiz 3", Average: 85},
	}
}

func DefaultTopicAverages() []TopicAverage {
	return []TopicAverage{
		{Topic: "Recursion", Average: 72},
		{Topic: "Graphs", Average: 65},
		{Topic: "DP", Average: 58},
		{Topic: "Trees", Average: 85},
	}
}

func DefaultRoster() []StudentRow {
	return []StudentRow{
		{ID: 1, Name: "Alice Johnson", Score: 92, WeakTopic: "Dynamic Programming", Trend: "+5%", Status: "Strong"},
		{ID: 2, Name: "Bob Smith", Score: 76, WeakTopic: "Graphs", Trend: "+2%", Status: "Stable"},
		{ID: 3, Name: "Charlie Davis", Score: 58, WeakTopic: "Recursion", Trend: "-4%", Status: "At Risk"},
		{ID: 4, Name: "Diana Prince", Score: 88, WeakTopic: "Trees", Trend: "+8%", Status: "Strong"},
		{ID: 5, Name: "Edward King", Score: 62, WeakTopic: "Sorting", Trend: "-2%", Status: "At Risk"},
	}
}

func DefaultSuggestions() []Suggestion {
	return []Suggestion{
		{
			Title: "Maintain Current Pace",
			Description: "Student is performing well. Encourage deeper exploration " +
				"of advanced topics to maintain engagement.",
		},
	}
}
