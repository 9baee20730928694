package view

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/notify"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls []api.Submission
	err   error
	check func(*FormState)
	form  *FormState
}

func (f *fakeAPI) SubmitApplication(ctx context.Context, sub api.Submission) (*api.Receipt, error) {
	f.mu.Lock()
	f.calls = append(f.calls, sub)
	f.mu.Unlock()
	if f.check != nil {
		f.check(f.form)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &api.Receipt{StatusCode: 201, ID: "app-1"}, nil
}

func filledForm() *FormState {
	form := NewFormState(nil)
	for name, value := range map[string]string{
		"firstName":  "Meron",
		"lastName":   "Alemu",
		"email":      "meron@example.com",
		"phone":      "+251 911 123 456",
		"city":       "Addis Ababa",
		"experience": "4",
		"skills":     "Go",
		"interest":   "Growth",
	} {
		form.Set(name, value)
	}
	return form
}

func pdfResume() *types.Attachment {
	return &types.Attachment{
		Field:    types.FieldResume,
		Filename: "cv.pdf",
		Data:     []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"),
	}
}

func TestFormState_BeginFinish(t *testing.T) {
	form := NewFormState(nil)
	assert.False(t, form.Submitting())

	require.True(t, form.Begin())
	assert.True(t, form.Submitting())
	assert.False(t, form.Begin(), "second submission must be refused")

	form.Finish()
	assert.False(t, form.Submitting())
	assert.True(t, form.Begin())
}

func TestFormState_SetMerges(t *testing.T) {
	form := NewFormState(types.FieldValues{"city": "Adama"})
	before := form.Values()

	form.Set("firstName", "Hana")

	assert.Equal(t, "Hana", form.Values().Get("firstName"))
	assert.Equal(t, "Adama", form.Values().Get("city"))
	assert.Empty(t, before.Get("firstName"))
}

func TestInFlight(t *testing.T) {
	g := NewInFlight()
	assert.True(t, g.Acquire("a"))
	assert.False(t, g.Acquire("a"))
	assert.True(t, g.Acquire("b"))
	g.Release("a")
	assert.True(t, g.Acquire("a"))
}

func TestSubmitter_Success(t *testing.T) {
	fake := &fakeAPI{}
	form := filledForm()
	fake.form = form
	fake.check = func(f *FormState) {
		assert.True(t, f.Submitting(), "form is submitting while the request runs")
	}
	s := NewSubmitter(fake, nil, types.DefaultMaxUploadBytes)

	out := s.Submit(context.Background(), form, uuid.NewString(), "3", pdfResume(), nil)

	require.True(t, out.Succeeded())
	assert.Equal(t, "/jobs", out.Redirect)
	require.NotNil(t, out.Notice)
	assert.Equal(t, notify.KindSuccess, out.Notice.Kind)
	assert.Equal(t, "Application Submitted!", out.Notice.Title)
	assert.False(t, form.Submitting())

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "3", fake.calls[0].JobID)
	assert.Equal(t, "Meron", fake.calls[0].Form.FirstName)
	assert.Equal(t, "application/pdf", fake.calls[0].Resume.ContentType)
}

func TestSubmitter_FailureKeepsValues(t *testing.T) {
	fake := &fakeAPI{err: errors.New("Failed to submit application (HTTP 500)")}
	form := filledForm()
	s := NewSubmitter(fake, nil, types.DefaultMaxUploadBytes)

	out := s.Submit(context.Background(), form, "", "3", pdfResume(), nil)

	assert.False(t, out.Succeeded())
	assert.Empty(t, out.Redirect)
	require.NotNil(t, out.Notice)
	assert.Equal(t, notify.KindError, out.Notice.Kind)
	assert.Equal(t, "Submission Failed", out.Notice.Title)
	assert.Equal(t, "Failed to submit application (HTTP 500)", out.Notice.Description)
	assert.Equal(t, "Meron", out.Values.Get("firstName"))
	assert.Equal(t, "Addis Ababa", form.Values().Get("city"))
	assert.False(t, form.Submitting())
}

func TestSubmitter_FailureWithoutMessage(t *testing.T) {
	fake := &fakeAPI{err: errors.New("")}
	s := NewSubmitter(fake, nil, types.DefaultMaxUploadBytes)

	out := s.Submit(context.Background(), filledForm(), "", "3", pdfResume(), nil)

	require.NotNil(t, out.Notice)
	assert.Equal(t, "An error occurred. Please try again.", out.Notice.Description)
}

func TestSubmitter_ValidationStopsBeforeAPI(t *testing.T) {
	fake := &fakeAPI{}
	form := filledForm()
	form.Set("email", "not-an-email")
	s := NewSubmitter(fake, nil, types.DefaultMaxUploadBytes)

	out := s.Submit(context.Background(), form, "", "3", nil, nil)

	assert.False(t, out.Succeeded())
	assert.Empty(t, fake.calls)
	assert.Contains(t, out.FieldErrors, "email")
	assert.Contains(t, out.FieldErrors, types.FieldResume)
	assert.False(t, form.Submitting())
}

func TestSubmitter_RejectsBadAttachment(t *testing.T) {
	fake := &fakeAPI{}
	s := NewSubmitter(fake, nil, types.DefaultMaxUploadBytes)
	cover := &types.Attachment{Field: types.FieldCoverLetter, Filename: "cover.exe", Data: []byte("MZ")}

	out := s.Submit(context.Background(), filledForm(), "", "3", pdfResume(), cover)

	assert.Empty(t, fake.calls)
	assert.Contains(t, out.FieldErrors, types.FieldCoverLetter)
}

func TestSubmitter_RefusesWhileSubmitting(t *testing.T) {
	fake := &fakeAPI{}
	form := filledForm()
	require.True(t, form.Begin())
	s := NewSubmitter(fake, nil, types.DefaultMaxUploadBytes)

	out := s.Submit(context.Background(), form, "", "3", pdfResume(), nil)

	assert.Empty(t, fake.calls)
	require.NotNil(t, out.Notice)
	assert.Equal(t, NoticeDuplicate, *out.Notice)
	assert.True(t, form.Submitting(), "the running submission still owns the form")
}

func TestSubmitter_SameTokenOnce(t *testing.T) {
	guard := NewInFlight()
	token := uuid.NewString()
	require.True(t, guard.Acquire(token))

	fake := &fakeAPI{}
	s := NewSubmitter(fake, guard, types.DefaultMaxUploadBytes)
	out := s.Submit(context.Background(), filledForm(), token, "3", pdfResume(), nil)

	assert.Empty(t, fake.calls)
	assert.False(t, out.Succeeded())

	guard.Release(token)
	out = s.Submit(context.Background(), filledForm(), token, "3", pdfResume(), nil)
	assert.True(t, out.Succeeded())
	assert.Len(t, fake.calls, 1)
}

type fakeSink struct {
	saved []types.ContactMessage
	err   error
}

func (f *fakeSink) SaveContactMessage(ctx context.Context, msg *types.ContactMessage) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.saved = append(f.saved, *msg)
	return uuid.New(), nil
}

func contactForm() *FormState {
	return NewFormState(types.FieldValues{
		"firstName": "Abel",
		"lastName":  "Tesfaye",
		"email":     "abel@example.com",
		"subject":   "Partnership",
		"message":   "Let's talk.",
	})
}

func TestSubmitContact_NotifyOnly(t *testing.T) {
	out := SubmitContact(context.Background(), contactForm(), nil)

	assert.Equal(t, "/contact", out.Redirect)
	require.NotNil(t, out.Notice)
	assert.Equal(t, "Message Sent!", out.Notice.Title)
	assert.Equal(t, "Thank you for your message. We'll get back to you soon.", out.Notice.Description)
}

func TestSubmitContact_Store(t *testing.T) {
	sink := &fakeSink{}
	out := SubmitContact(context.Background(), contactForm(), sink)

	assert.True(t, out.Succeeded())
	require.Len(t, sink.saved, 1)
	assert.Equal(t, "Partnership", sink.saved[0].Subject)
}

func TestSubmitContact_StoreFailure(t *testing.T) {
	form := contactForm()
	out := SubmitContact(context.Background(), form, &fakeSink{err: errors.New("db down")})

	assert.False(t, out.Succeeded())
	assert.Equal(t, NoticeMessageFailed, *out.Notice)
	assert.Equal(t, "Abel", out.Values.Get("firstName"))
	assert.False(t, form.Submitting())
}

func TestSubmitContact_Invalid(t *testing.T) {
	form := contactForm()
	form.Set("message", "  ")
	sink := &fakeSink{}

	out := SubmitContact(context.Background(), form, sink)

	assert.False(t, out.Succeeded())
	assert.Contains(t, out.FieldErrors, "message")
	assert.Empty(t, sink.saved)
}
