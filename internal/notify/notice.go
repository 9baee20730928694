// Package notify carries one-shot notices across a redirect and guards
// forms with signed tokens.
package notify

// Kind is the tone of a notice.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is a transient message shown once to the visitor.
type Notice struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Success builds a success notice.
func Success(title, description string) Notice {
	return Notice{Kind: KindSuccess, Title: title, Description: description}
}

// Failure builds an error notice.
func Failure(title, description string) Notice {
	return Notice{Kind: KindError, Title: title, Description: description}
}

// IsError reports whether the notice reports a failure.
func (n Notice) IsError() bool {
	return n.Kind == KindError
}
