package notify

import "context"

// EmailSender delivers one formatted HTML message. Failures are isolated at
// the dispatcher boundary, so implementations just report them.
type EmailSender interface {
	Send(ctx context.Context, subject, htmlBody string) error
}
