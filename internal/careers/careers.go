// Package careers implements the job-application pipeline: submission
// validation, resume content sniffing, and outbound email dispatch.
package careers

import "fmt"

// Resume is the uploaded file with its client-declared metadata. The declared
// filename and MIME type are untrusted; Sniff determines the true type from
// the bytes.
type Resume struct {
	Filename     string
	DeclaredMime string
	Data         []byte
}

// Submission is one application as received from the form. It lives for the
// duration of a single request and is never persisted.
type Submission struct {
	Name              string
	Email             string
	Phone             string
	PreferredLocation string
	Message           string
	// Website is the honeypot field. Humans never see it; a non-empty
	// value marks the submission as automated.
	Website string
	Resume  *Resume
}

// TrapTripped reports whether the honeypot caught this submission. Trapped
// submissions are accepted silently and never emailed.
func (s *Submission) TrapTripped() bool {
	return s.Website != ""
}

// Class separates failures by who must act on them: the applicant, the
// operator, or nobody (transient transport trouble).
type Class int

const (
	// ClassInput is a client mistake: missing fields, bad email, or a
	// disallowed file. Reported with a specific message, HTTP 400-class.
	ClassInput Class = iota
	// ClassConfig means the mail credentials are absent. HTTP 500-class
	// with an operator instruction, logged as a server fault.
	ClassConfig
	// ClassDelivery is an SMTP transport failure. HTTP 500-class with a
	// generic retry message; the underlying error is logged, not exposed.
	ClassDelivery
)

// Error is a classified pipeline failure. Message is safe to show the
// caller; Err carries the technical cause for server-side logs.
type Error struct {
	Class   Class
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func inputErr(message string) *Error {
	return &Error{Class: ClassInput, Message: message}
}
