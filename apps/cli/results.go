package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/verilearn/verilearn/core"
	"github.com/verilearn/verilearn/core/navigation"
	"github.com/verilearn/verilearn/core/results"
)

func (cli *commandLine) results(ctx context.Context, id int) error {
	if err := cli.ensure(ctx, navigation.RouteStudentResults); err != nil {
		return err
	}

	if id == 0 {
		if cli.hist == nil {
			return errors.New("no -id given and the local submission history is unavailable")
		}
		entry, ok, err := cli.hist.Latest(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("no submissions recorded yet; pass -id or run `verilearn submit` first")
		}
		id = entry.AssignmentID
	}

	raw, err := cli.api.Results(ctx, id)
	if err != nil {
		if !core.IsNotFound(err) {
			return err
		}
		// unknown assignment renders the sample dataset rather than a dead end
		raw = nil
		fmt.Fprintf(cli.out, "Assignment %d has no results yet; showing sample data.\n\n", id)
	}
	cli.printResults(id, results.Reconcile(raw))
	return nil
}

func (cli *commandLine) printResults(id int, view results.View) {
	fmt.Fprintf(cli.out, "Results for assignment %d\n\n", id)

	s := view.Scores
	fmt.Fprintf(cli.out, "Final score:          %5.1f (%s)\n", s.FinalScore, results.ScoreBand(s.FinalScore))
	fmt.Fprintf(cli.out, "  Concept clarity:    %5.1f\n", s.ConceptClarity)
	fmt.Fprintf(cli.out, "  Application:        %5.1f\n", s.Application)
	fmt.Fprintf(cli.out, "  Logical consistency:%5.1f\n", s.LogicalConsistency)
	fmt.Fprintf(cli.out, "  Depth:              %5.1f\n", s.Depth)

	r := view.Radar
	fmt.Fprintf(cli.out, "\nUnderstanding radar\n")
	fmt.Fprintf(cli.out, "  Clarity %.0f | Application %.0f | Logic %.0f | Critical thinking %.0f | Retention %.0f\n",
		r.Clarity, r.Application, r.Logic, r.CriticalThinking, r.Retention)

	fmt.Fprintf(cli.out, "\nWeak topics\n")
	for _, t := range view.WeakTopics {
		fmt.Fprintf(cli.out, "  %-24s x%d\n", t.Topic, t.Count)
	}

	fmt.Fprintf(cli.out, "\nRecommended resources\n")
	for _, rec := range view.Recommendations {
		fmt.Fprintf(cli.out, "  %s by %s (%s, %.0f%% match)\n", rec.Title, rec.Author, rec.Topic, rec.Match)
	}

	fmt.Fprintf(cli.out, "\nAI dependency: %.1f (%s)\n", view.AIDependency, results.DependencyBand(view.AIDependency))
}
