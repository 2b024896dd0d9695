// Package mail sends quotation emails. The service depends only on the
// Mailer contract; SMTP is the shipped transport.
package mail

import "context"

// Message is one outbound email. Attachment, when present, is the
// rendered PDF and is encoded base64 on the wire.
type Message struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
