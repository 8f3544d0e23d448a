package careers

import (
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Accepted resume MIME types. Nothing else leaves the sniffer.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	mimeZip    = "application/zip"
	mimeBinary = "application/octet-stream"
)

// Attachment is a sniffed, normalized resume ready for mail dispatch.
type Attachment struct {
	Filename string
	Mime     string
	Data     []byte
}

var (
	resumeExtPattern = regexp.MustCompile(`(?i)\.(pdf|docx|doc|docm)$`)
	unsafeChars      = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	underscoreRuns   = regexp.MustCompile(`_{2,}`)
)

// maxFilenameLen caps the normalized filename length.
const maxFilenameLen = 120

// Sniff determines the true content type of the resume from its bytes,
// ignoring the client-declared MIME type and extension, and produces a
// filesystem-safe filename re-suffixed to match the detected type.
//
// A DOCX file is internally a ZIP container, so a generic ZIP detection
// paired with a .docx filename is reinterpreted as DOCX. Any result other
// than PDF or DOCX is rejected.
//
// Pure function over the resume bytes and metadata; no I/O.
func Sniff(resume *Resume) (Attachment, *Error) {
	detected := mimetype.Detect(resume.Data)
	lowerName := strings.ToLower(resume.Filename)

	mime := detected.String()
	if detected.Is(mimeBinary) {
		// Signature detection failed; fall back to what the client said.
		mime = resume.DeclaredMime
		if mime == "" {
			mime = mimeBinary
		}
	}

	if detected.Is(mimeZip) && strings.HasSuffix(lowerName, ".docx") {
		mime = MimeDOCX
	}

	var ext string
	switch mime {
	case MimePDF:
		ext = ".pdf"
	case MimeDOCX:
		ext = ".docx"
	default:
		return Attachment{}, inputErr("Unsupported resume file type. Allowed: PDF or DOCX.")
	}

	return Attachment{
		Filename: normalizeFilename(lowerName, ext),
		Mime:     mime,
		Data:     resume.Data,
	}, nil
}

// normalizeFilename strips the name to [A-Za-z0-9._-], collapses runs of
// underscores, replaces any existing resume extension with ext, and bounds
// the total length at maxFilenameLen without cutting the extension off.
func normalizeFilename(name, ext string) string {
	base := resumeExtPattern.ReplaceAllString(name, "")
	base = unsafeChars.ReplaceAllString(base, "_")
	base = underscoreRuns.ReplaceAllString(base, "_")

	if limit := maxFilenameLen - len(ext); len(base) > limit {
		base = base[:limit]
	}
	return base + ext
}
