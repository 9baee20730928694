package web

import (
	"github.com/selamsoft/selam-web/internal/types"
)

// formField describes one input and, once filled, its current value and
// error.
type formField struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Hint        string
	Accept      string
	Min         string
	Max         string
	Required    bool
	Textarea    bool
	Rows        int

	Value string
	Error string
}

type formSection struct {
	Title  string
	Fields []formField
}

const documentAccept = ".pdf,.doc,.docx"

func applicationSections(maxUploadBytes int64) []formSection {
	hint := "PDF, DOC, or DOCX (max " + types.FormatSize(maxUploadBytes) + ")"
	return []formSection{
		{Title: "Personal Information", Fields: []formField{
			{Name: "firstName", Label: "First Name", Type: "text", Placeholder: "Enter your first name", Required: true},
			{Name: "lastName", Label: "Last Name", Type: "text", Placeholder: "Enter your last name", Required: true},
			{Name: "email", Label: "Email Address", Type: "email", Placeholder: "your.email@example.com", Required: true},
			{Name: "phone", Label: "Phone Number", Type: "tel", Placeholder: "+251 911 123 456", Required: true},
			{Name: "address", Label: "Address", Type: "text", Placeholder: "Your full address"},
			{Name: "city", Label: "City", Type: "text", Placeholder: "Addis Ababa", Required: true},
			{Name: "experience", Label: "Years of Experience", Type: "number", Placeholder: "5", Min: "0", Max: "50", Required: true},
		}},
		{Title: "Professional Information", Fields: []formField{
			{Name: "jobTitle", Label: "Current Job Title", Type: "text", Placeholder: "Senior Developer, Product Manager, etc."},
			{Name: "company", Label: "Current Company", Type: "text", Placeholder: "Your current employer"},
			{Name: "linkedin", Label: "LinkedIn Profile", Type: "url", Placeholder: "https://linkedin.com/in/yourprofile"},
			{Name: "portfolio", Label: "Portfolio/Website", Type: "url", Placeholder: "https://yourportfolio.com"},
			{Name: "skills", Label: "Key Skills", Textarea: true, Rows: 3, Placeholder: "List your key technical skills, programming languages, frameworks, etc.", Required: true},
		}},
		{Title: "Application Details", Fields: []formField{
			{Name: "interest", Label: "Why are you interested in this position?", Textarea: true, Rows: 4, Placeholder: "Tell us what attracts you to this role and our company...", Required: true},
			{Name: "project", Label: "Tell us about a relevant project or achievement", Textarea: true, Rows: 4, Placeholder: "Describe a project you've worked on or an achievement you're proud of..."},
			{Name: "salary", Label: "Expected Salary Range (ETB per month)", Type: "text", Placeholder: "e.g., 25,000 - 35,000"},
			{Name: "startDate", Label: "When can you start?", Type: "date"},
		}},
		{Title: "Documents", Fields: []formField{
			{Name: types.FieldResume, Label: "Resume/CV", Type: "file", Accept: documentAccept, Hint: hint, Required: true},
			{Name: types.FieldCoverLetter, Label: "Cover Letter (Optional)", Type: "file", Accept: documentAccept, Hint: hint},
		}},
	}
}

var contactFields = []formField{
	{Name: "firstName", Label: "First Name", Type: "text", Placeholder: "Your first name", Required: true},
	{Name: "lastName", Label: "Last Name", Type: "text", Placeholder: "Your last name", Required: true},
	{Name: "email", Label: "Email", Type: "email", Placeholder: "your.email@example.com", Required: true},
	{Name: "phone", Label: "Phone Number", Type: "tel", Placeholder: "+251 911 123 456"},
	{Name: "subject", Label: "Subject", Type: "text", Placeholder: "What's this about?", Required: true},
	{Name: "message", Label: "Message", Textarea: true, Rows: 6, Placeholder: "Tell us more about your project...", Required: true},
}

// fill copies fields with their values and errors. File inputs never
// echo a value.
func fill(fields []formField, values types.FieldValues, errs map[string]string) []formField {
	out := make([]formField, len(fields))
	for i, f := range fields {
		if f.Type != "file" {
			f.Value = values.Get(f.Name)
		}
		f.Error = errs[f.Name]
		out[i] = f
	}
	return out
}

func fillSections(sections []formSection, values types.FieldValues, errs map[string]string) []formSection {
	out := make([]formSection, len(sections))
	for i, sec := range sections {
		out[i] = formSection{Title: sec.Title, Fields: fill(sec.Fields, values, errs)}
	}
	return out
}

// formValues reads the named fields from a parsed request form.
func formValues(names []string, get func(string) string) types.FieldValues {
	values := make(types.FieldValues, len(names))
	for _, name := range names {
		values[name] = get(name)
	}
	return values
}
