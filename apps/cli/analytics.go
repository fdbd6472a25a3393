package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/verilearn/verilearn/core"
	"github.com/verilearn/verilearn/core/analytics"
	"github.com/verilearn/verilearn/core/navigation"
)

func (cli *commandLine) dashboard(ctx context.Context) error {
	if err := cli.ensure(ctx, navigation.RouteStudentDashboard); err != nil {
		return err
	}
	raw, err := cli.api.Dashboard(ctx)
	if err != nil && !core.IsNotFound(err) {
		return err
	}
	view := analytics.BuildDashboard(raw)

	fmt.Fprintf(cli.out, "Overall score:   %.1f (%s)\n", view.OverallScore, view.OverallBand)
	fmt.Fprintf(cli.out, "Growth trend:    %+.1f\n", view.GrowthTrend)
	fmt.Fprintf(cli.out, "Assignments:     %d\n", view.TotalAssignments)
	fmt.Fprintf(cli.out, "AI dependency:   %.1f (%s)\n", view.AIDependency, view.Risk)

	fmt.Fprintf(cli.out, "\nScore history\n")
	for _, p := range view.ScoreHistory {
		fmt.Fprintf(cli.out, "  %-12s %5.1f\n", p.Date, p.Score)
	}
	fmt.Fprintf(cli.out, "\nWeak topics\n")
	for _, t := range view.WeakTopics {
		fmt.Fprintf(cli.out, "  %-24s x%d\n", t.Topic, t.Count)
	}
	return nil
}

func (cli *commandLine) classAnalytics(ctx context.Context) error {
	if err := cli.ensure(ctx, navigation.RouteTeacherDashboard); err != nil {
		return err
	}
	raw, err := cli.api.ClassAnalytics(ctx)
	if err != nil && !core.IsNotFound(err) {
		return err
	}
	view := analytics.BuildClass(raw)

	fmt.Fprintf(cli.out, "Class average:   %.1f (%s)\n", view.ClassAverage, view.AverageBand)
	fmt.Fprintf(cli.out, "Students:        %d\n", view.TotalStudents)
	fmt.Fprintf(cli.out, "Most weak topic: %s\n", view.MostWeakTopic)
	fmt.Fprintf(cli.out, "Strongest topic: %s\n", view.StrongestTopic)
	fmt.Fprintf(cli.out, "AI-risk students:%d\n", view.AIRiskStudents)

	d := view.Distribution
	fmt.Fprintf(cli.out, "\nPerformance distribution\n  high %d | medium %d | low %d\n", d.High, d.Medium, d.Low)

	fmt.Fprintf(cli.out, "\nScore trend\n")
	for _, p := range view.ScoreTrend {
		fmt.Fprintf(cli.out, "  %-12s %5.1f\n", p.Date, p.Average)
	}
	fmt.Fprintf(cli.out, "\nTopic averages\n")
	for _, t := range view.TopicAverages {
		fmt.Fprintf(cli.out, "  %-24s %5.1f\n", t.Topic, t.Average)
	}
	return nil
}

func (cli *commandLine) students(ctx context.Context) error {
	if err := cli.ensure(ctx, navigation.RouteTeacherStudents); err != nil {
		return err
	}
	rows, err := cli.api.Students(ctx)
	if err != nil && !core.IsNotFound(err) {
		return err
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSCORE\tWEAK TOPIC\tTREND\tSTATUS\tAI DEP")
	for _, row := range analytics.BuildRoster(rows) {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%s\t%s\t%s\t%.1f\n",
			row.ID, row.Name, row.Score, row.WeakTopic, row.Trend, row.Status, row.AIDependency)
	}
	return tw.Flush()
}

func (cli *commandLine) studentAnalytics(ctx context.Context, id int) error {
	if err := cli.ensure(ctx, navigation.RouteTeacherStudent); err != nil {
		return err
	}
	raw, err := cli.api.StudentAnalytics(ctx, id)
	if err != nil && !core.IsNotFound(err) {
		return err
	}
	view := analytics.BuildStudent(raw)

	fmt.Fprintf(cli.out, "%s (id %d)\n\n", view.StudentName, view.StudentID)
	fmt.Fprintf(cli.out, "Overall score:   %.1f (%s)\n", view.OverallScore, view.OverallBand)
	fmt.Fprintf(cli.out, "Growth trend:    %+.1f\n", view.GrowthTrend)
	fmt.Fprintf(cli.out, "AI dependency:   %.1f (%s)\n", view.AIDependency, view.Risk)

	r := view.Radar
	fmt.Fprintf(cli.out, "\nUnderstanding radar\n")
	fmt.Fprintf(cli.out, "  Clarity %.0f | Application %.0f | Logic %.0f | Critical thinking %.0f | Retention %.0f\n",
		r.Clarity, r.Application, r.Logic, r.CriticalThinking, r.Retention)

	fmt.Fprintf(cli.out, "\nScore history\n")
	for _, p := range view.ScoreHistory {
		fmt.Fprintf(cli.out, "  %-12s %5.1f\n", p.Date, p.Score)
	}
	fmt.Fprintf(cli.out, "\nWeak topics\n")
	for _, t := range view.WeakTopics {
		fmt.Fprintf(cli.out, "  %-24s x%d\n", t.Topic, t.Count)
	}
	if len(view.Timeline) > 0 {
		fmt.Fprintf(cli.out, "\nTopic timeline\n")
		for _, entry := range view.Timeline {
			fmt.Fprintf(cli.out, "  %-8s %-16s %s\n", entry.Week, entry.Topics, entry.Detail)
		}
	}
	fmt.Fprintf(cli.out, "\nSuggestions\n")
	for _, s := range view.Suggestions {
		fmt.Fprintf(cli.out, "  %s: %s\n", s.Title, s.Description)
	}
	return nil
}
