package careers

import (
	"context"
	"fmt"
	"log/slog"
)

// configMessage tells the operator exactly what to set. It is deliberately
// distinct from the generic delivery failure so a misconfigured deployment
// is diagnosable from the response alone.
const configMessage = "Email is not configured yet. Set SMTP_HOST, SMTP_PORT, SMTP_USER, and SMTP_PASS."

const deliveryMessage = "We could not submit your application. Please try again."

// Service runs the full careers pipeline: validation, content sniffing,
// configuration check, then a single mail dispatch. Steps are strictly
// sequential; no step starts before the previous one passed.
type Service struct {
	relay    Relay
	maxBytes int64
}

// NewService builds the pipeline over relay. maxBytes <= 0 selects the
// default resume cap.
func NewService(relay Relay, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = MaxResumeBytes
	}
	return &Service{relay: relay, maxBytes: maxBytes}
}

// Submit processes one application. A nil return means the submission was
// accepted: either the notice was sent, or the honeypot caught a bot and the
// submission was silently dropped (indistinguishable to the caller, by
// design). A non-nil *Error carries the failure class and a caller-safe
// message.
func (s *Service) Submit(ctx context.Context, sub *Submission) *Error {
	if sub.TrapTripped() {
		// Report success without sending so bots get no signal that they
		// were detected.
		slog.Info("careers submission trapped by honeypot")
		return nil
	}

	if err := Validate(sub, s.maxBytes); err != nil {
		return err
	}

	att, err := Sniff(sub.Resume)
	if err != nil {
		return err
	}

	if !s.relay.Configured() {
		return &Error{Class: ClassConfig, Message: configMessage}
	}

	msg, buildErr := BuildMessage(sub, att)
	if buildErr != nil {
		return &Error{Class: ClassDelivery, Message: deliveryMessage, Err: buildErr}
	}

	if sendErr := s.relay.Send(ctx, msg); sendErr != nil {
		return &Error{
			Class:   ClassDelivery,
			Message: deliveryMessage,
			Err:     fmt.Errorf("mail dispatch: %w", sendErr),
		}
	}

	slog.Info("careers application relayed",
		"preferred_location", sub.PreferredLocation,
		"resume", att.Filename,
		"mime", att.Mime,
	)
	return nil
}
