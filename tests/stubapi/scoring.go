package stubapi

import "strings"

// Scoring weights for the final grade.
const (
	wConcept     = 0.4
	wApplication = 0.3
	wLogic       = 0.2
	wDepth       = 0.1
)

var followupQuestions = []Question{
	{ID: "q1", Question: "Explain the core concept of your submission in your own words."},
	{ID: "q2", Question: "How would you apply this concept to a problem you have not seen before?"},
	{ID: "q3", Question: "Which part of the topic do you feel least confident about, and why?"},
}

var cannedWeakTopics = map[string][]string{
	"general":   {"Recursion", "Data Structures", "Recursion"},
	"math":      {"Calculus", "Linear Algebra"},
	"physics":   {"Thermodynamics", "Kinematics", "Thermodynamics"},
	"computers": {"Dynamic Programming", "Graph Theory", "Dynamic Programming"},
}

var cannedRecommendations = []recommendation{
	{Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", Topic: "Data Structures & Algorithms", Match: 94},
	{Title: "Cracking the Coding Interview", Author: "Gayle Laakmann McDowell", Topic: "Problem Solving", Match: 88},
	{Title: "Clean Code", Author: "Robert C. Martin", Topic: "Code Quality", Match: 82},
}

// score derives per-dimension marks from the submission text. The
// derivation is arbitrary but deterministic so callers see stable
// analytics across requests.
func score(a *Assignment) {
	n := float64(len(a.Text))
	base := 60 + mod(n, 25) // 60..84

	a.ConceptClarity = clamp(base + 8)
	a.Application = clamp(base + 4)
	a.LogicalConsistency = clamp(base + 6)
	a.Depth = clamp(base - 2)
	a.FinalScore = clamp(wConcept*a.ConceptClarity +
		wApplication*a.Application +
		wLogic*a.LogicalConsistency +
		wDepth*a.Depth)

	a.RadarClarity = a.ConceptClarity
	a.RadarApplication = a.Application
	a.RadarLogic = a.LogicalConsistency
	a.RadarCriticalThinking = clamp(base + 2)
	a.RadarRetention = clamp(base + 5)

	topics, ok := cannedWeakTopics[strings.ToLower(a.Subject)]
	if !ok {
		topics = cannedWeakTopics["general"]
	}
	a.WeakTopics = append([]string(nil), topics...)
	a.Recommendations = append([]recommendation(nil), cannedRecommendations...)
	a.AIDependency = clamp(20 + mod(n, 40)) // 20..59
}

// rescore folds follow-up answers into the marks. Substantive answers
// nudge scores up, blank ones pull them down.
func rescore(a *Assignment) {
	var delta float64
	for _, q := range a.Questions {
		if strings.TrimSpace(a.Responses[q.ID]) == "" {
			delta -= 3
		} else {
			delta += 2
		}
	}
	a.ConceptClarity = clamp(a.ConceptClarity + delta)
	a.Application = clamp(a.Application + delta)
	a.LogicalConsistency = clamp(a.LogicalConsistency + delta)
	a.Depth = clamp(a.Depth + delta)
	a.FinalScore = clamp(wConcept*a.ConceptClarity +
		wApplication*a.Application +
		wLogic*a.LogicalConsistency +
		wDepth*a.Depth)
}

func mod(n, m float64) float64 {
	return float64(int(n) % int(m))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
