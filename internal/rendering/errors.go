// Package rendering renders the site's HTML pages from embedded templates.
package rendering

import "fmt"

// TemplateError represents an error parsing or looking up a page template
type TemplateError struct {
	Page    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s (%s): %v", e.Message, e.Page, e.Cause)
	}
	return fmt.Sprintf("template error: %s (%s)", e.Message, e.Page)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure executing a page
type RenderError struct {
	Page    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s (%s): %v", e.Message, e.Page, e.Cause)
	}
	return fmt.Sprintf("render error: %s (%s)", e.Message, e.Page)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
