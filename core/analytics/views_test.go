package analytics

import (
	"reflect"
	"testing"

	"github.com/verilearn/verilearn/core/results"
)

func f(v float64) *float64 { return &v }

func TestBuildDashboard(t *testing.T) {
	t.Run("nil payload falls back wholesale", func(t *testing.T) {
		view := BuildDashboard(nil)
		if !reflect.DeepEqual(view.ScoreHistory, DefaultScoreHistory()) {
			t.Errorf("ScoreHistory = %+v, want defaults", view.ScoreHistory)
		}
		if !reflect.DeepEqual(view.WeakTopics, results.DefaultWeakTopics()) {
			t.Errorf("WeakTopics = %+v, want defaults", view.WeakTopics)
		}
		if view.AIDependency != results.DefaultAIDependency {
			t.Errorf("AIDependency = %v, want default", view.AIDependency)
		}
		if view.Risk != results.RiskLow {
			t.Errorf("Risk = %v, want low risk", view.Risk)
		}
	})

	t.Run("present groups are kept, bands derived", func(t *testing.T) {
		raw := &Dashboard{
			OverallScore:     83.2,
			GrowthTrend:      4.5,
			TotalAssignments: 7,
			AIDependency:     61,
			ScoreHistory:     []ScorePoint{{Date: "2026-03-01", Score: 83.2}},
		}
		view := BuildDashboard(raw)
		if view.OverallBand != results.BandHigh {
			t.Errorf("OverallBand = %v, want high", view.OverallBand)
		}
		if view.Risk != results.RiskHigh {
			t.Errorf("Risk = %v, want high risk", view.Risk)
		}
		if !reflect.DeepEqual(view.ScoreHistory, raw.ScoreHistory) {
			t.Errorf("ScoreHistory = %+v, want the payload's", view.ScoreHistory)
		}
		// empty weak topics still fall back
		if !reflect.DeepEqual(view.WeakTopics, results.DefaultWeakTopics()) {
			t.Errorf("WeakTopics = %+v, want defaults", view.WeakTopics)
		}
	})
}

func TestBuildClass(t *testing.T) {
	view := BuildClass(nil)
	if !reflect.DeepEqual(view.ScoreTrend, DefaultScoreTrend()) {
		t.Errorf("ScoreTrend = %+v, want defaults", view.ScoreTrend)
	}
	if !reflect.DeepEqual(view.TopicAverages, DefaultTopicAverages()) {
		t.Errorf("TopicAverages = %+v, want defaults", view.TopicAverages)
	}

	raw := &ClassAnalytics{
		ClassAverage: 74.4,
		Distribution: &Distribution{High: 3, Medium: 5, Low: 2},
		ScoreTrend:   []TrendPoint{{Date: "2026-03-01", Average: 74.4}},
	}
	view = BuildClass(raw)
	if view.AverageBand != results.BandMedium {
		t.Errorf("AverageBand = %v, want medium", view.AverageBand)
	}
	if view.Distribution != (Distribution{High: 3, Medium: 5, Low: 2}) {
		t.Errorf("Distribution = %+v, want the payload's", view.Distribution)
	}
	if !reflect.DeepEqual(view.ScoreTrend, raw.ScoreTrend) {
		t.Errorf("ScoreTrend = %+v, want the payload's", view.ScoreTrend)
	}
}

func TestBuildRoster(t *testing.T) {
	t.Run("empty roster falls back", func(t *testing.T) {
		if got := BuildRoster(nil); !reflect.DeepEqual(got, DefaultRoster()) {
			t.Errorf("BuildRoster(nil) = %+v, want defaults", got)
		}
	})

	t.Run("missing status gets labelled", func(t *testing.T) {
		rows := []StudentRow{
			{ID: 1, Name: "A", Score: 85},
			{ID: 2, Name: "B", Score: 70, Status: "Custom"},
			{ID: 3, Name: "C", Score: 40},
		}
		got := BuildRoster(rows)
		if got[0].Status != "Strong" {
			t.Errorf("rows[0].Status = %q, want Strong", got[0].Status)
		}
		if got[1].Status != "Custom" {
			t.Errorf("rows[1].Status = %q, want untouched", got[1].Status)
		}
		if got[2].Status != "At Risk" {
			t.Errorf("rows[2].Status = %q, want At Risk", got[2].Status)
		}
		// input must not be mutated
		if rows[0].Status != "" {
			t.Error("BuildRoster mutated its input")
		}
	})
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{92, "Strong"},
		{80, "Strong"},
		{79.9, "Stable"},
		{60, "Stable"},
		{59.9, "At Risk"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.score); got != tt.want {
			t.Errorf("StatusLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBuildStudent(t *testing.T) {
	t.Run("nil payload falls back wholesale", func(t *testing.T) {
		view := BuildStudent(nil)
		if view.Radar != results.DefaultRadar() {
			t.Errorf("Radar = %+v, want defaults", view.Radar)
		}
		if !reflect.DeepEqual(view.Suggestions, DefaultSuggestions()) {
			t.Errorf("Suggestions = %+v, want defaults", view.Suggestions)
		}
	})

	t.Run("partial radar counts as absent", func(t *testing.T) {
		raw := &StudentAnalytics{
			StudentID:   3,
			StudentName: "Charlie Davis",
			RadarScores: &results.RawRadar{Clarity: f(60), Application: f(55)},
			WeakTopics:  []string{"Recursion", "Recursion", "Graphs"},
		}
		view := BuildStudent(raw)
		if view.Radar != results.DefaultRadar() {
			t.Errorf("Radar = %+v, want defaults for a partial payload", view.Radar)
		}
		want := []results.WeakTopic{{Topic: "Recursion", Count: 2}, {Topic: "Graphs", Count: 1}}
		if !reflect.DeepEqual(view.WeakTopics, want) {
			t.Errorf("WeakTopics = %+v, want %+v", view.WeakTopics, want)
		}
	})

	t.Run("complete payload keeps its groups", func(t *testing.T) {
		raw := &StudentAnalytics{
			StudentID:    1,
			StudentName:  "Alice Johnson",
			OverallScore: 91,
			AIDependency: 35,
			RadarScores: &results.RawRadar{
				Clarity: f(90), Application: f(88), Logic: f(85), CriticalThinking: f(80), Retention: f(86),
			},
			Suggestions: []Suggestion{{Title: "Stretch Goals", Description: "Offer harder problems."}},
		}
		view := BuildStudent(raw)
		if view.OverallBand != results.BandHigh {
			t.Errorf("OverallBand = %v, want high", view.OverallBand)
		}
		if view.Risk != results.RiskModerate {
			t.Errorf("Risk = %v, want moderate", view.Risk)
		}
		want := results.Radar{Clarity: 90, Application: 88, Logic: 85, CriticalThinking: 80, Retention: 86}
		if view.Radar != want {
			t.Errorf("Radar = %+v, want %+v", view.Radar, want)
		}
		if len(view.Suggestions) != 1 || view.Suggestions[0].Title != "Stretch Goals" {
			t.Errorf("Suggestions = %+v, want the payload's", view.Suggestions)
		}
	})
}
