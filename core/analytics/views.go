package analytics

import "github.com/verilearn/verilearn/core/results"

// View-model builders. Like results.Reconcile they are pure functions over
// possibly-partial payloads: each group falls back wholesale to its default,
// a nil payload (no data, not-found) yields the fully-default view, and all
// classification labels come from the shared banding rules.

// DashboardView is the presentation-ready student dashboard.
type DashboardView struct {
	OverallScore     float64
	OverallBand      results.Band
	GrowthTrend      float64
	TotalAssignments int
	AIDependency     float64
	Risk             results.RiskBand
	ScoreHistory     []ScorePoint
	WeakTopics       []results.WeakTopic
}

func BuildDashboard(raw *Dashboard) DashboardView {
	view := DashboardView{
		ScoreHistory: DefaultScoreHistory(),
		WeakTopics:   results.DefaultWeakTopics(),
		AIDependency: results.DefaultAIDependency,
	}
	if raw != nil {
		view.OverallScore = raw.OverallScore
		view.GrowthTrend = raw.GrowthTrend
		view.TotalAssignments = raw.TotalAssignments
		view.AIDependency = raw.AIDependency
		if len(raw.ScoreHistory) > 0 {
			view.ScoreHistory = raw.ScoreHistory
		}
		if len(raw.WeakTopics) > 0 {
			view.WeakTopics = raw.WeakTopics
		}
	}
	view.OverallBand = results.ScoreBand(view.OverallScore)
	view.Risk = results.DependencyBand(view.AIDependency)
	return view
}

// ClassView is the presentation-ready class analytics page.
type ClassView struct {
	ClassAverage   float64
	AverageBand    results.Band
	TotalStudents  int
	MostWeakTopic  string
	StrongestTopic string
	Distribution   Distribution
	ScoreTrend     []TrendPoint
	TopicAverages  []TopicAverage
	AIRiskStudents int
}

func BuildClass(raw *ClassAnalytics) ClassView {
	view := ClassView{
		ScoreTrend:    DefaultScoreTrend(),
		TopicAverages: DefaultTopicAverages(),
	}
	if raw != nil {
		view.ClassAverage = raw.ClassAverage
		view.TotalStudents = raw.TotalStudents
		view.MostWeakTopic = raw.MostWeakTopic
		view.StrongestTopic = raw.StrongestTopic
		view.AIRiskStudents = raw.AIRiskStudents
		if raw.Distribution != nil {
			view.Distribution = *raw.Distribution
		}
		if len(raw.ScoreTrend) > 0 {
			view.ScoreTrend = raw.ScoreTrend
		}
		if len(raw.TopicAverages) > 0 {
			view.TopicAverages = raw.TopicAverages
		}
	}
	view.AverageBand = results.ScoreBand(view.ClassAverage)
	return view
}

// BuildRoster fills the teacher's student table; an empty roster falls back
// to the default rows, and rows missing a status label get one from the
// score cut-offs.
func BuildRoster(rows []StudentRow) []StudentRow {
	if len(rows) == 0 {
		return DefaultRoster()
	}
	out := append([]StudentRow(nil), rows...)
	for i := range out {
		if out[i].Status == "" {
			out[i].Status = StatusLabel(out[i].Score)
		}
	}
	return out
}

// StatusLabel mirrors the backend's roster labels: >=80 Strong, >=60 Stable,
// otherwise At Risk.
func StatusLabel(score float64) string {
	switch {
	case score >= 80:
		return "Strong"
	case score >= 60:
		return "Stable"
	default:
		return "At Risk"
	}
}

// StudentView is the presentation-ready per-student analytics page.
type StudentView struct {
	StudentID    int
	StudentName  string
	OverallScore float64
	OverallBand  results.Band
	GrowthTrend  float64
	AIDependency float64
	Risk         results.RiskBand
	ScoreHistory []ScorePoint
	Radar        results.Radar
	WeakTopics   []results.WeakTopic
	Timeline     []TimelineEntry
	Suggestions  []Suggestion
}

func BuildStudent(raw *StudentAnalytics) StudentView {
	view := StudentView{
		ScoreHistory: DefaultScoreHistory(),
		Radar:        results.DefaultRadar(),
		WeakTopics:   results.DefaultWeakTopics(),
		Suggestions:  DefaultSuggestions(),
		AIDependency: results.DefaultAIDependency,
	}
	if raw != nil {
		view.StudentID = raw.StudentID
		view.StudentName = raw.StudentName
		view.OverallScore = raw.OverallScore
		view.GrowthTrend = raw.GrowthTrend
		view.AIDependency = raw.AIDependency
		view.Timeline = raw.Timeline
		if len(raw.ScoreHistory) > 0 {
			view.ScoreHistory = raw.ScoreHistory
		}
		// same all-five-or-nothing rule as the result reconciler
		reconciled := results.Reconcile(&results.Raw{
			RadarScores: raw.RadarScores,
			WeakTopics:  raw.WeakTopics,
		})
		view.Radar = reconciled.Radar
		view.WeakTopics = reconciled.WeakTopics
		if len(raw.Suggestions) > 0 {
			view.Suggestions = raw.Suggestions
		}
	}
	view.OverallBand = results.ScoreBand(view.OverallScore)
	view.Risk = results.DependencyBand(view.AIDependency)
	return view
}
