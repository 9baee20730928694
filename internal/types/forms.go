package types

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// FieldValues is the flat field-name -> value record behind a form.
type FieldValues map[string]string

// With returns a copy of v with name set to value. v itself is never
// modified, so every other field keeps its prior value.
func (v FieldValues) With(name, value string) FieldValues {
	out := make(FieldValues, len(v)+1)
	maps.Copy(out, v)
	out[name] = value
	return out
}

// Get returns the value of name, or "" when unset.
func (v FieldValues) Get(name string) string {
	return v[name]
}

// ApplicationFieldNames lists the job application text fields in the
// order they are transmitted.
var ApplicationFieldNames = []string{
	"firstName", "lastName", "email", "phone", "address", "city",
	"experience", "jobTitle", "company", "linkedin", "portfolio",
	"skills", "interest", "project", "salary", "startDate",
}

// ApplicationForm is the text part of a job application.
type ApplicationForm struct {
	FirstName  string `form:"firstName" validate:"required,max=100"`
	LastName   string `form:"lastName" validate:"required,max=100"`
	Email      string `form:"email" validate:"required,email"`
	Phone      string `form:"phone" validate:"required,max=40"`
	Address    string `form:"address" validate:"max=300"`
	City       string `form:"city" validate:"required,max=100"`
	Experience string `form:"experience" validate:"required,years"`
	JobTitle   string `form:"jobTitle" validate:"max=150"`
	Company    string `form:"company" validate:"max=150"`
	LinkedIn   string `form:"linkedin" validate:"omitempty,url"`
	Portfolio  string `form:"portfolio" validate:"omitempty,url"`
	Skills     string `form:"skills" validate:"required,max=5000"`
	Interest   string `form:"interest" validate:"required,max=5000"`
	Project    string `form:"project" validate:"max=5000"`
	Salary     string `form:"salary" validate:"max=100"`
	StartDate  string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
}

func (a *ApplicationForm) fields() []*string {
	return []*string{
		&a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Address, &a.City,
		&a.Experience, &a.JobTitle, &a.Company, &a.LinkedIn, &a.Portfolio,
		&a.Skills, &a.Interest, &a.Project, &a.Salary, &a.StartDate,
	}
}

// ApplicationFromValues builds the form from a field record, trimming
// surrounding whitespace.
func ApplicationFromValues(v FieldValues) ApplicationForm {
	var a ApplicationForm
	for i, p := range a.fields() {
		*p = strings.TrimSpace(v[ApplicationFieldNames[i]])
	}
	return a
}

// Values returns the form as a field record.
func (a ApplicationForm) Values() FieldValues {
	out := make(FieldValues, len(ApplicationFieldNames))
	for i, p := range a.fields() {
		out[ApplicationFieldNames[i]] = *p
	}
	return out
}

// Validate checks the declarative field rules.
func (a *ApplicationForm) Validate() error {
	return Validator().Struct(a)
}

// Attachment field names on the wire.
const (
	FieldResume      = "resume"
	FieldCoverLetter = "coverLetter"
)

// DefaultMaxUploadBytes caps each attachment.
const DefaultMaxUploadBytes = 5 << 20

func allowedDocument(mime string) bool {
	switch mime {
	case "application/pdf",
		"application/msword",
		"application/x-ole-storage",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/zip": // some docx files sniff as plain zip
		return true
	}
	return false
}

var allowedExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// Attachment is one uploaded document.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// FormatSize renders an upload limit for people: whole megabytes as "5MB",
// anything else in kilobytes rounded up, so a limit is never shown as 0.
func FormatSize(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", n>>20)
	}
	return fmt.Sprintf("%dKB", (n+1<<10-1)>>10)
}

// TooLargeMessage is the field error for an attachment over maxBytes.
func TooLargeMessage(maxBytes int64) string {
	return "The file is larger than " + FormatSize(maxBytes)
}

// CheckAttachment verifies the extension, size and sniffed content type
// of an upload and fills in ContentType. It returns a user-facing message
// when the file is rejected.
func CheckAttachment(att *Attachment, maxBytes int64) (string, bool) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if len(att.Data) == 0 {
		return "The file is empty", false
	}
	if int64(len(att.Data)) > maxBytes {
		return TooLargeMessage(maxBytes), false
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(att.Filename))] {
		return "Upload a PDF, DOC, or DOCX file", false
	}
	mt := mimetype.Detect(att.Data)
	ok := false
	for m := mt; m != nil; m = m.Parent() {
		if allowedDocument(m.String()) {
			ok = true
			break
		}
	}
	if !ok {
		return "Upload a PDF, DOC, or DOCX file", false
	}
	att.ContentType = mt.String()
	return "", true
}

// ContactMessage is what the contact page collects.
type ContactMessage struct {
	FirstName string `form:"firstName" json:"first_name" validate:"required,max=100"`
	LastName  string `form:"lastName" json:"last_name" validate:"required,max=100"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Phone     string `form:"phone" json:"phone,omitempty" validate:"max=40"`
	Subject   string `form:"subject" json:"subject" validate:"required,max=200"`
	Message   string `form:"message" json:"message" validate:"required,max=5000"`
}

// ContactFieldNames lists the contact form fields in display order.
var ContactFieldNames = []string{"firstName", "lastName", "email", "phone", "subject", "message"}

// ContactFromValues builds a contact message from a field record.
func ContactFromValues(v FieldValues) ContactMessage {
	return ContactMessage{
		FirstName: strings.TrimSpace(v["firstName"]),
		LastName:  strings.TrimSpace(v["lastName"]),
		Email:     strings.TrimSpace(v["email"]),
		Phone:     strings.TrimSpace(v["phone"]),
		Subject:   strings.TrimSpace(v["subject"]),
		Message:   strings.TrimSpace(v["message"]),
	}
}

// Validate checks the declarative field rules.
func (c *ContactMessage) Validate() error {
	return Validator().Struct(c)
}
