package submission

import (
	"github.com/verilearn/verilearn/core"
)

// Phase is the workflow's position in the submission lifecycle.
type Phase int

const (
	PhaseDraft Phase = iota
	PhaseAnalyzing
	PhaseAwaitingFollowup
	PhaseSubmitting
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseDraft:
		return "draft"
	case PhaseAnalyzing:
		return "analyzing"
	case PhaseAwaitingFollowup:
		return "awaiting-followup"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// FollowupQuestion is one clarifying question generated by the backend.
type FollowupQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// Analysis is the analyze endpoint's response.
type Analysis struct {
	AssignmentID int                `json:"assignment_id"`
	Questions    []FollowupQuestion `json:"followup_questions"`
}

// DefaultSubject is used when a draft names no subject.
const DefaultSubject = "General"

// Draft is an assignment not yet submitted for analysis. It exists only
// client-side until analysis succeeds.
type Draft struct {
	Text    string `json:"text" validate:"min=20"`
	Subject string `json:"subject" validate:"max=100"`
}

// Clean normalizes the draft: text trimmed, blank subject defaulted.
func (d *Draft) Clean() {
	d.Text = core.CleanString(d.Text)
	d.Subject = core.CleanString(d.Subject)
	if d.Subject == "" {
		d.Subject = DefaultSubject
	}
}

// Validate cleans the draft and checks it locally. No network is involved.
func (d *Draft) Validate() error {
	d.Clean()
	return core.TranslateValidationErrors(core.Validate.Struct(d))
}
