package view

import (
	"context"
	"log"
	"sync"

	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/notify"
	"github.com/selamsoft/selam-web/internal/types"
)

// FormState is a form's field record plus its idle/submitting flag.
type FormState struct {
	mu         sync.Mutex
	values     types.FieldValues
	submitting bool
}

// NewFormState starts an idle form with the given values.
func NewFormState(values types.FieldValues) *FormState {
	if values == nil {
		values = types.FieldValues{}
	}
	return &FormState{values: values}
}

// Set merges one field edit into the record.
func (f *FormState) Set(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.values.With(name, value)
}

// Values returns the current record. Callers must not mutate it.
func (f *FormState) Values() types.FieldValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Begin moves the form to submitting. It returns false when a submission
// is already running.
func (f *FormState) Begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	f.submitting = true
	return true
}

// Finish returns the form to idle.
func (f *FormState) Finish() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
}

// Submitting reports whether a submission is running.
func (f *FormState) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// InFlight guards keys that may only have one operation running, such as
// a form's submission token.
type InFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewInFlight returns an empty guard.
func NewInFlight() *InFlight {
	return &InFlight{keys: make(map[string]struct{})}
}

// Acquire claims key. It returns false if key is already held.
func (g *InFlight) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.keys[key]; held {
		return false
	}
	g.keys[key] = struct{}{}
	return true
}

// Release gives key back.
func (g *InFlight) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.keys, key)
}

// Outcome tells the page what to do after a submit.
type Outcome struct {
	Notice      *notify.Notice
	Redirect    string // empty: stay on the form
	Values      types.FieldValues
	FieldErrors map[string]string
}

// Succeeded reports whether the submission went through.
func (o Outcome) Succeeded() bool {
	return o.Redirect != ""
}

// ApplicationAPI is the part of the API client the submitter needs.
type ApplicationAPI interface {
	SubmitApplication(ctx context.Context, sub api.Submission) (*api.Receipt, error)
}

// Notices shown around a job application.
var (
	NoticeApplied = notify.Success("Application Submitted!",
		"Thank you for your application. We'll review it and get back to you soon.")
	NoticeInvalid = notify.Failure("Check your application",
		"Some fields need your attention before we can submit.")
	NoticeDuplicate = notify.Failure("Already submitting",
		"Your application is already being submitted. Please wait.")
)

const genericSubmitError = "An error occurred. Please try again."

// Submitter runs job application submissions.
type Submitter struct {
	api      ApplicationAPI
	inflight *InFlight
	maxBytes int64
}

// NewSubmitter creates a submitter. maxBytes caps each attachment.
func NewSubmitter(client ApplicationAPI, inflight *InFlight, maxBytes int64) *Submitter {
	if inflight == nil {
		inflight = NewInFlight()
	}
	return &Submitter{api: client, inflight: inflight, maxBytes: maxBytes}
}

// Submit validates the form and posts it with its attachments. On success
// the outcome redirects to the job listing; on any failure it stays on the
// form with every entered value intact. The form is idle again on return.
func (s *Submitter) Submit(ctx context.Context, form *FormState, token, jobID string, resume, coverLetter *types.Attachment) Outcome {
	values := form.Values()
	stay := Outcome{Values: values}

	if !form.Begin() {
		stay.Notice = &NoticeDuplicate
		return stay
	}
	defer form.Finish()

	if token != "" {
		if !s.inflight.Acquire(token) {
			stay.Notice = &NoticeDuplicate
			return stay
		}
		defer s.inflight.Release(token)
	}

	application := types.ApplicationFromValues(values)
	fieldErrs := types.FieldErrors(application.Validate())
	if fieldErrs == nil {
		fieldErrs = map[string]string{}
	}
	if resume == nil {
		fieldErrs[types.FieldResume] = "Please upload your resume"
	}
	for _, att := range []*types.Attachment{resume, coverLetter} {
		if att == nil {
			continue
		}
		if msg, ok := types.CheckAttachment(att, s.maxBytes); !ok {
			fieldErrs[att.Field] = msg
		}
	}
	if len(fieldErrs) > 0 {
		stay.Notice = &NoticeInvalid
		stay.FieldErrors = fieldErrs
		return stay
	}

	receipt, err := s.api.SubmitApplication(ctx, api.Submission{
		JobID:       jobID,
		Form:        application,
		Resume:      resume,
		CoverLetter: coverLetter,
	})
	if err != nil {
		log.Printf("[view] application for job %s failed: %v", jobID, err)
		msg := err.Error()
		if msg == "" {
			msg = genericSubmitError
		}
		n := notify.Failure("Submission Failed", msg)
		stay.Notice = &n
		return stay
	}

	log.Printf("[view] application for job %s accepted (status %d, id %q)", jobID, receipt.StatusCode, receipt.ID)
	return Outcome{Notice: &NoticeApplied, Redirect: "/jobs"}
}
