package careers

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/wneessen/go-mail"
)

// Message is a fully constructed application notice ready for transmission.
type Message struct {
	ReplyTo    string
	Subject    string
	Text       string
	HTML       string
	Attachment Attachment
}

// Relay transmits application notices. Implementations make exactly one
// attempt per Send; retry policy belongs to the user, not this layer.
type Relay interface {
	// Configured reports whether the transport has the credentials it
	// needs. An unconfigured relay is an operator error, distinct from a
	// delivery failure.
	Configured() bool
	Send(ctx context.Context, msg Message) error
}

// SMTPOptions is the transport configuration for SMTPRelay, supplied by the
// hosting environment.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	// Secure selects implicit TLS (SMTPS). When false the relay uses
	// STARTTLS.
	Secure bool
	// From overrides the sender address. When empty the SMTP account's own
	// address is used if it looks like an email, else the recipient
	// address stands in as the transport default.
	From string
	// To is the notification recipient.
	To string
}

// SMTPRelay sends application notices through an SMTP server using go-mail.
type SMTPRelay struct {
	opts SMTPOptions
}

// NewSMTPRelay returns a relay over opts. The options are not checked here;
// Configured reports completeness so that missing credentials surface as a
// per-request configuration error rather than a boot failure.
func NewSMTPRelay(opts SMTPOptions) *SMTPRelay {
	return &SMTPRelay{opts: opts}
}

// Configured reports whether host, user, and password are all present.
func (r *SMTPRelay) Configured() bool {
	return r.opts.Host != "" && r.opts.Username != "" && r.opts.Password != ""
}

// fromAddress resolves the sender: explicit override first, then the SMTP
// account when it looks like an email address, then the recipient as the
// transport default.
func (r *SMTPRelay) fromAddress() string {
	if from := strings.TrimSpace(r.opts.From); from != "" {
		return from
	}
	if strings.Contains(r.opts.Username, "@") {
		return r.opts.Username
	}
	return r.opts.To
}

// Send makes a single delivery attempt. Transient SMTP failures are returned
// to the caller; there is no retry.
func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	m.SetUserAgent("Crack Taco Careers Form")

	if err := m.From(r.fromAddress()); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(r.opts.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	// Reply-To is always the applicant so the recipient can answer
	// directly.
	if err := m.ReplyTo(msg.ReplyTo); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	if err := m.AttachReader(msg.Attachment.Filename, bytes.NewReader(msg.Attachment.Data),
		mail.WithFileContentType(mail.ContentType(msg.Attachment.Mime))); err != nil {
		return fmt.Errorf("attach resume: %w", err)
	}

	opts := []mail.Option{
		mail.WithPort(r.opts.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(r.opts.Username),
		mail.WithPassword(r.opts.Password),
	}
	if r.opts.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(r.opts.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, m)
}

// htmlBody renders the HTML notice. template/html entity-escapes every
// user-supplied value, covering & < > " '.
var htmlBody = template.Must(template.New("careers").Parse(`<div style="font-family:Inter,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;line-height:1.5;color:#0b0b0b;">
  <h2 style="margin:0 0 8px 0;">New Careers Application</h2>
  <table style="border-collapse:collapse;width:100%;font-size:14px;">
    <tbody>
{{- range .Rows}}
      <tr>
        <td style="padding:6px 8px;border-bottom:1px solid #eee;width:180px;color:#444;font-weight:600;">{{.Label}}</td>
        <td style="padding:6px 8px;border-bottom:1px solid #eee;">{{.Value}}</td>
      </tr>
{{- end}}
    </tbody>
  </table>
  <h3 style="margin:20px 0 8px 0;">Message</h3>
  <div style="white-space:pre-wrap;border:1px solid #eee;padding:12px;border-radius:8px;background:#fafafa;">{{.Message}}</div>
</div>
`))

type bodyRow struct {
	Label, Value string
}

// BuildMessage assembles the notice for a validated submission and its
// sniffed attachment: subject line, a plaintext transcription of all fields,
// and an HTML rendering with every user value escaped.
func BuildMessage(sub *Submission, att Attachment) (Message, error) {
	subject := fmt.Sprintf("Careers Application - %s (%s)", sub.Name, sub.PreferredLocation)

	message := sub.Message
	if message == "" {
		message = "No message provided."
	}

	text := strings.Join([]string{
		"New careers application submitted:",
		"",
		"Name: " + sub.Name,
		"Email: " + sub.Email,
		"Phone: " + sub.Phone,
		"Preferred Location: " + sub.PreferredLocation,
		"Resume: " + att.Filename,
		"",
		"Message:",
		message,
	}, "\n")

	var html bytes.Buffer
	err := htmlBody.Execute(&html, struct {
		Rows    []bodyRow
		Message string
	}{
		Rows: []bodyRow{
			{"Name", sub.Name},
			{"Email", sub.Email},
			{"Phone", sub.Phone},
			{"Preferred Location", sub.PreferredLocation},
			{"Resume", att.Filename},
		},
		Message: message,
	})
	if err != nil {
		return Message{}, fmt.Errorf("render html body: %w", err)
	}

	return Message{
		ReplyTo:    sub.Email,
		Subject:    subject,
		Text:       text,
		HTML:       html.String(),
		Attachment: att,
	}, nil
}
