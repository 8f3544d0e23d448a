package careers

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxResumeBytes is the default resume size cap (10 MiB, inclusive).
const MaxResumeBytes = 10 * 1024 * 1024

// emailPattern is the basic local@domain.tld shape: no whitespace, exactly
// one @, at least one dot after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// legacyExts are old Word formats we refuse outright.
var legacyExts = []string{".doc", ".docm"}

// executableExts are filename extensions denylisted regardless of content.
var executableExts = []string{
	".exe", ".bat", ".cmd", ".sh", ".msi", ".com", ".scr", ".ps1", ".vbs", ".js", ".jar",
}

// Validate applies the submission rules in order, short-circuiting on the
// first failure. All rules are pure and synchronous; no file content is
// inspected here (that is Sniff's job) and no I/O occurs.
//
// The honeypot is not checked here: callers decide what to do with trapped
// submissions via TrapTripped before validating.
func Validate(sub *Submission, maxBytes int64) *Error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.PreferredLocation = strings.TrimSpace(sub.PreferredLocation)
	sub.Message = strings.TrimSpace(sub.Message)

	if sub.Name == "" || sub.Email == "" || sub.Phone == "" || sub.PreferredLocation == "" {
		return inputErr("Please fill out all required fields.")
	}

	if !emailPattern.MatchString(sub.Email) {
		return inputErr("Please enter a valid email address.")
	}

	if sub.Resume == nil || len(sub.Resume.Data) == 0 {
		return inputErr("Please attach your resume (PDF or DOCX).")
	}

	if int64(len(sub.Resume.Data)) > maxBytes {
		return inputErr(fmt.Sprintf("Resume too large. Max file size is %dMB.", maxBytes/(1024*1024)))
	}

	lower := strings.ToLower(sub.Resume.Filename)
	for _, ext := range legacyExts {
		if strings.HasSuffix(lower, ext) {
			return inputErr("Legacy Word files are not allowed. Upload PDF or DOCX.")
		}
	}
	for _, ext := range executableExts {
		if strings.HasSuffix(lower, ext) {
			return inputErr("Executable files are not allowed. Upload PDF or DOCX.")
		}
	}

	return nil
}
