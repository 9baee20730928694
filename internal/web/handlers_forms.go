package web

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/textproto"

	"github.com/selamsoft/selam-web/internal/content"
	"github.com/selamsoft/selam-web/internal/notify"
	"github.com/selamsoft/selam-web/internal/rendering"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/selamsoft/selam-web/internal/view"
)

// Form names bound into their tokens.
const (
	formApplication = "application"
	formContact     = "contact"
)

// maxFieldBytes caps one text field of the application form.
const maxFieldBytes = 64 << 10

var (
	noticeExpired = notify.Failure("Form expired",
		"Your form session expired. Please review your details and submit again.")
	noticeTooLarge = notify.Failure("Upload too large",
		"Your files are larger than we accept. Please upload smaller documents.")
)

type applyPage struct {
	JobID    string
	JobTitle string
	Token    string
	Sections []formSection
}

type contactPage struct {
	Cards         []content.ContactCard
	OfficeAddress []string
	OfficeVisit   []string
	FAQ           []content.QA
	Fields        []formField
	Token         string
}

// jobTitle resolves the title shown above the application form.
func (s *Server) jobTitle(r *http.Request, jobID string) string {
	if job, ok := view.FindJob(s.loadJobs(r.Context()), jobID); ok && job.Title != "" {
		return job.Title
	}
	return content.UnknownTitle
}

func (s *Server) renderApply(w http.ResponseWriter, r *http.Request, status int, jobID string, notice *notify.Notice, values types.FieldValues, errs map[string]string) {
	token, err := s.tokens.Issue(formApplication)
	if err != nil {
		log.Printf("[web] %v", err)
		s.renderError(w, r, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	s.render(w, r, status, rendering.PageApply, "Apply", notice, applyPage{
		JobID:    jobID,
		JobTitle: s.jobTitle(r, jobID),
		Token:    token,
		Sections: fillSections(applicationSections(s.maxUploadBytes), values, errs),
	})
}

func (s *Server) handleApplyForm(w http.ResponseWriter, r *http.Request) {
	s.renderApply(w, r, http.StatusOK, r.PathValue("jobId"), nil, types.FieldValues{}, nil)
}

func (s *Server) handleApplySubmit(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")

	r.Body = http.MaxBytesReader(w, r.Body, 2*s.maxUploadBytes+(1<<20))
	up, err := s.readApplication(r)
	if err != nil {
		err = &ErrUpload{Cause: err}
		log.Printf("[web] application for job %s: %v", jobID, err)
		notice := &noticeTooLarge
		var errs map[string]string
		if HTTPStatus(err) == http.StatusRequestEntityTooLarge {
			if up.pending != "" {
				errs = map[string]string{up.pending: types.TooLargeMessage(s.maxUploadBytes)}
			}
		} else {
			notice = &view.NoticeInvalid
		}
		s.renderApply(w, r, HTTPStatus(err), jobID, notice, up.values, errs)
		return
	}

	tokenID, err := s.tokens.Verify(up.token, formApplication)
	if err != nil {
		err = &ErrFormToken{Form: formApplication, Cause: err}
		log.Printf("[web] %v", err)
		s.renderApply(w, r, HTTPStatus(err), jobID, &noticeExpired, up.values, nil)
		return
	}

	out := s.submitter.Submit(r.Context(), view.NewFormState(up.values), tokenID, jobID,
		up.files[types.FieldResume], up.files[types.FieldCoverLetter])
	if out.Succeeded() {
		s.redirectWithNotice(w, r, out.Redirect, out.Notice)
		return
	}

	status := http.StatusBadGateway
	switch {
	case len(out.FieldErrors) > 0:
		status = http.StatusUnprocessableEntity
	case out.Notice != nil && *out.Notice == view.NoticeDuplicate:
		status = http.StatusConflict
	}
	s.renderApply(w, r, status, jobID, out.Notice, out.Values, out.FieldErrors)
}

// applicationUpload is an application form read off the wire.
type applicationUpload struct {
	values types.FieldValues
	token  string
	files  map[string]*types.Attachment
	// pending names the file field whose part was still being read when
	// the body failed.
	pending string
}

// readApplication streams the multipart body part by part. Each file is
// kept up to one byte past the upload limit, the rest of it is discarded,
// so oversize files reach validation without being buffered whole. Text
// values read before a failure are returned alongside the error.
func (s *Server) readApplication(r *http.Request) (*applicationUpload, error) {
	up := &applicationUpload{
		values: formValues(types.ApplicationFieldNames, func(string) string { return "" }),
		files:  map[string]*types.Attachment{},
	}
	mr, err := r.MultipartReader()
	if err != nil {
		return up, err
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return up, nil
		}
		if err != nil {
			return up, err
		}
		up.pending = ""
		name := part.FormName()

		if part.FileName() == "" {
			data, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
			part.Close()
			if err != nil {
				return up, err
			}
			if name == notify.FieldName {
				up.token = string(data)
			} else if _, ok := up.values[name]; ok {
				up.values[name] = string(data)
			}
			continue
		}

		if name != types.FieldResume && name != types.FieldCoverLetter {
			part.Close()
			continue
		}
		up.pending = name
		data, err := io.ReadAll(io.LimitReader(part, s.maxUploadBytes+1))
		if err != nil {
			return up, err
		}
		if int64(len(data)) <= s.maxUploadBytes {
			up.pending = ""
		}
		part.Close()
		if len(data) == 0 {
			continue
		}
		up.files[name] = &types.Attachment{
			Field:       name,
			Filename:    part.FileName(),
			ContentType: partContentType(part.Header),
			Data:        data,
		}
	}
}

func partContentType(h textproto.MIMEHeader) string {
	if ct := h.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (s *Server) renderContact(w http.ResponseWriter, r *http.Request, status int, notice *notify.Notice, values types.FieldValues, errs map[string]string) {
	token, err := s.tokens.Issue(formContact)
	if err != nil {
		log.Printf("[web] %v", err)
		s.renderError(w, r, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	s.render(w, r, status, rendering.PageContact, "Contact", notice, contactPage{
		Cards:         content.ContactCards,
		OfficeAddress: content.OfficeAddress,
		OfficeVisit:   content.OfficeVisit,
		FAQ:           content.FAQ,
		Fields:        fill(contactFields, values, errs),
		Token:         token,
	})
}

func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	s.renderContact(w, r, http.StatusOK, nil, types.FieldValues{}, nil)
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := r.ParseForm(); err != nil {
		err = &ErrUpload{Cause: err}
		log.Printf("[web] contact: %v", err)
		s.renderContact(w, r, HTTPStatus(err), &view.NoticeContactInvalid, types.FieldValues{}, nil)
		return
	}

	values := formValues(types.ContactFieldNames, r.PostFormValue)

	if _, err := s.tokens.Verify(r.PostFormValue(notify.FieldName), formContact); err != nil {
		err = &ErrFormToken{Form: formContact, Cause: err}
		log.Printf("[web] %v", err)
		s.renderContact(w, r, HTTPStatus(err), &noticeExpired, values, nil)
		return
	}

	out := view.SubmitContact(r.Context(), view.NewFormState(values), s.contacts)
	if out.Succeeded() {
		s.redirectWithNotice(w, r, out.Redirect, out.Notice)
		return
	}

	status := http.StatusServiceUnavailable
	if len(out.FieldErrors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	s.renderContact(w, r, status, out.Notice, out.Values, out.FieldErrors)
}
