package analytics

import "github.com/verilearn/verilearn/core/results"

// Wire payloads of the analytics endpoints. Groups that may legitimately be
// empty are sliced; scalar groups that distinguish absent from zero are
// pointer-typed, same discipline as results.Raw.

// ScorePoint is one dated entry of a score history or trend series.
type ScorePoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// TrendPoint is one dated class average.
type TrendPoint struct {
	Date    string  `json:"date"`
	Average float64 `json:"avg"`
}

// TopicAverage is the mean final score of one subject.
type TopicAverage struct {
	Topic   string  `json:"topic"`
	Average float64 `json:"avg"`
}

// Distribution buckets the latest scores per student.
type Distribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Dashboard is GET /student/dashboard.
type Dashboard struct {
	OverallScore     float64             `json:"overall_score"`
	GrowthTrend      float64             `json:"growth_trend"`
	TotalAssignments int                 `json:"total_assignments"`
	AIDependency     float64             `json:"ai_dependency_score"`
	ScoreHistory     []ScorePoint        `json:"score_history"`
	WeakTopics       []results.WeakTopic `json:"weak_topic_summary"`
}

// ClassAnalytics is GET /teacher/class-analytics.
type ClassAnalytics struct {
	ClassAverage   float64        `json:"class_average"`
	TotalStudents  int            `json:"total_students"`
	MostWeakTopic  string         `json:"most_weak_topic"`
	StrongestTopic string         `json:"strongest_topic"`
	Distribution   *Distribution  `json:"performance_distribution"`
	ScoreTrend     []TrendPoint   `json:"score_trend"`
	TopicAverages  []TopicAverage `json:"topic_averages"`
	AIRiskStudents int            `json:"ai_risk_students"`
}

// StudentRow is one entry of GET /teacher/students.
type StudentRow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	WeakTopic    string  `json:"weak_topic"`
	Trend        string  `json:"trend"`
	Status       string  `json:"status"`
	AIDependency float64 `json:"ai_dependency"`
}

// TimelineEntry is one week of a student's weak-topic timeline.
type TimelineEntry struct {
	Week   string `json:"week"`
	Topics string `json:"topics"`
	Detail string `json:"detail"`
}

// Suggestion is one teacher intervention suggestion.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StudentAnalytics is GET /teacher/student/{id}.
type StudentAnalytics struct {
	StudentID    int               `json:"student_id"`
	StudentName  string            `json:"student_name"`
	OverallScore float64           `json:"overall_score"`
	GrowthTrend  float64           `json:"growth_trend"`
	AIDependency float64           `json:"ai_dependency_score"`
	ScoreHistory []ScorePoint      `json:"score_history"`
	RadarScores  *results.RawRadar `json:"radar_scores"`
	WeakTopics   []string          `json:"weak_topics"`
	Timeline     []TimelineEntry   `json:"topic_timeline"`
	Suggestions  []Suggestion      `json:"intervention_suggestions"`
}
