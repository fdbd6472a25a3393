package submission

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/verilearn/verilearn/core"
)

var (
	// errors
	ErrBusy            = errors.New("a call is already in flight")
	ErrNotDraft        = errors.New("analysis already started; start a new submission")
	ErrNotAwaiting     = errors.New("no follow-up questions pending")
	ErrUnknownQuestion = errors.New("unknown follow-up question id")
	ErrAbandoned       = errors.New("submission was abandoned")
)

type (
	// Analyzer is the backend surface the workflow drives.
	Analyzer interface {
		SubmitAssignment(ctx context.Context, text, subject string) (Analysis, error)
		SubmitFollowup(ctx context.Context, assignmentID int, responses map[string]string) error
	}

	// Workflow takes one assignment from draft through analysis, follow-up and
	// completion. Exactly one instance is active per submission attempt;
	// Completed is terminal and a fresh Workflow starts the next attempt.
	Workflow struct {
		ID string

		analyzer Analyzer
		log      core.Logger

		// cancels in-flight calls when the instance is abandoned
		ctx    context.Context
		cancel context.CancelFunc

		mu           sync.Mutex
		phase        Phase
		draft        Draft
		assignmentID int
		questions    []FollowupQuestion
		responses    map[string]string
		lastErr      string
		inFlight     bool
		epoch        uint64
	}
)

func NewWorkflow(analyzer Analyzer, log core.Logger) *Workflow {
	ctx, cancel := context.WithCancel(context.Background())
	return &Workflow{
		ID:       uuid.NewString(),
		analyzer: analyzer,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
		phase:    PhaseDraft,
	}
}

// Analyze validates the draft locally and, if it passes, submits it for
// analysis. A failed validation stays in Draft with the error message set
// and issues no network call. A failed call returns to Draft with the
// entered text and subject preserved.
func (wf *Workflow) Analyze(ctx context.Context, text, subject string) error {
	wf.mu.Lock()
	if wf.inFlight {
		wf.mu.Unlock()
		return ErrBusy
	}
	if wf.phase != PhaseDraft {
		wf.mu.Unlock()
		return ErrNotDraft
	}

	draft := Draft{Text: text, Subject: subject}
	if err := draft.Validate(); err != nil {
		wf.draft = draft
		wf.lastErr = err.Error()
		wf.mu.Unlock()
		return err
	}

	wf.draft = draft
	wf.phase = PhaseAnalyzing
	wf.inFlight = true
	epoch := wf.epoch
	wf.mu.Unlock()

	callCtx, done := wf.callContext(ctx)
	analysis, err := wf.analyzer.SubmitAssignment(callCtx, draft.Text, draft.Subject)
	done()

	wf.mu.Lock()
	defer wf.mu.Unlock()
	wf.inFlight = false
	if epoch != wf.epoch {
		// instance was abandoned mid-flight; the stale response must not
		// apply a transition
		wf.log.Debug("submission: discarding stale analyze response", wf.ID)
		return ErrAbandoned
	}
	if err != nil {
		wf.phase = PhaseDraft
		wf.lastErr = err.Error()
		return err
	}

	wf.phase = PhaseAwaitingFollowup
	wf.assignmentID = analysis.AssignmentID
	wf.questions = analysis.Questions
	wf.responses = make(map[string]string, len(analysis.Questions))
	for _, q := range analysis.Questions {
		wf.responses[q.ID] = ""
	}
	wf.lastErr = ""
	return nil
}

// SetResponse records the learner's answer to one follow-up question.
// A pure local edit; no state transition.
func (wf *Workflow) SetResponse(questionID, text string) error {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	if wf.phase != PhaseAwaitingFollowup {
		return ErrNotAwaiting
	}
	if _, ok := wf.responses[questionID]; !ok {
		return ErrUnknownQuestion
	}
	wf.responses[questionID] = text
	return nil
}

// SubmitFollowup sends the follow-up responses. Questions left unanswered
// are submitted as empty strings. On failure the workflow returns to
// AwaitingFollowup with the responses intact so the learner can retry.
func (wf *Workflow) SubmitFollowup(ctx context.Context) error {
	wf.mu.Lock()
	if wf.inFlight {
		wf.mu.Unlock()
		return ErrBusy
	}
	if wf.phase != PhaseAwaitingFollowup {
		wf.mu.Unlock()
		return ErrNotAwaiting
	}

	responses := make(map[string]string, len(wf.questions))
	for _, q := range wf.questions {
		responses[q.ID] = wf.responses[q.ID] // missing == empty string
	}
	assignmentID := wf.assignmentID
	wf.phase = PhaseSubmitting
	wf.inFlight = true
	epoch := wf.epoch
	wf.mu.Unlock()

	callCtx, done := wf.callContext(ctx)
	err := wf.analyzer.SubmitFollowup(callCtx, assignmentID, responses)
	done()

	wf.mu.Lock()
	defer wf.mu.Unlock()
	wf.inFlight = false
	if epoch != wf.epoch {
		wf.log.Debug("submission: discarding stale follow-up response", wf.ID)
		return ErrAbandoned
	}
	if err != nil {
		wf.phase = PhaseAwaitingFollowup
		wf.lastErr = err.Error()
		return err
	}

	wf.phase = PhaseCompleted
	wf.lastErr = ""
	return nil
}

// Abandon cancels any in-flight call and bars its response from ever
// applying a transition. The instance is dead afterwards.
func (wf *Workflow) Abandon() {
	wf.mu.Lock()
	wf.epoch++
	wf.mu.Unlock()
	wf.cancel()
}

// Phase returns the current lifecycle phase.
func (wf *Workflow) Phase() Phase {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return wf.phase
}

// AssignmentID is valid once the workflow reaches AwaitingFollowup.
func (wf *Workflow) AssignmentID() int {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return wf.assignmentID
}

// Draft returns the entered text and subject; preserved across failed calls.
func (wf *Workflow) Draft() Draft {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return wf.draft
}

func (wf *Workflow) Questions() []FollowupQuestion {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return append([]FollowupQuestion(nil), wf.questions...)
}

// Responses returns a copy of the learner's answers so far.
func (wf *Workflow) Responses() map[string]string {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	cp := make(map[string]string, len(wf.responses))
	for id, text := range wf.responses {
		cp[id] = text
	}
	return cp
}

// LastError is the message attached to the current non-terminal state, or "".
func (wf *Workflow) LastError() string {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return wf.lastErr
}

// callContext ties a call to both the caller's context and the instance
// lifetime, so Abandon cancels the request itself.
func (wf *Workflow) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	callCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(wf.ctx, cancel)
	return callCtx, func() {
		stop()
		cancel()
	}
}
