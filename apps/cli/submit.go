package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/verilearn/verilearn/core/navigation"
	"github.com/verilearn/verilearn/core/submission"
)

func (cli *commandLine) submit(ctx context.Context, file, subject string) error {
	if err := cli.ensure(ctx, navigation.RouteStudentSubmit); err != nil {
		return err
	}

	text, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "reading assignment file")
	}

	// Ctrl-C mid-flow abandons the attempt instead of leaving it half-submitted
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	wf := submission.NewWorkflow(cli.api, cli.log)
	cancelWatch := context.AfterFunc(ctx, wf.Abandon)
	defer cancelWatch()

	fmt.Fprintln(cli.out, "Analyzing your assignment...")
	if err := wf.Analyze(ctx, string(text), subject); err != nil {
		return err
	}

	questions := wf.Questions()
	fmt.Fprintf(cli.out, "Answer %d follow-up questions to verify your understanding.\n", len(questions))
	fmt.Fprintln(cli.out, "Press Enter to leave a question blank.")
	scanner := bufio.NewScanner(cli.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i, q := range questions {
		fmt.Fprintf(cli.out, "\n%d/%d: %s\n> ", i+1, len(questions), q.Question)
		if !scanner.Scan() {
			break // EOF; remaining answers go out empty
		}
		if err := wf.SetResponse(q.ID, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading responses")
	}

	fmt.Fprintln(cli.out, "\nSubmitting responses...")
	if err := wf.SubmitFollowup(ctx); err != nil {
		return err
	}

	id := wf.AssignmentID()
	if cli.hist != nil {
		if err := cli.hist.Record(ctx, id, wf.Draft().Subject); err != nil {
			cli.log.Warn("recording submission locally", err)
		}
	}
	fmt.Fprintf(cli.out, "Done. Assignment %d submitted; run `verilearn results` to see your scores.\n", id)
	return nil
}
