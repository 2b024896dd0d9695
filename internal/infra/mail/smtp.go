package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
)

// SMTPConfig carries the transport settings, all taken from the
// environment by the app config.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// SMTPMailer sends mail over plain SMTP with AUTH. A misconfigured or
// unreachable server surfaces as an error to the caller; nothing is
// retried here.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("send mail: empty recipient")
	}
	body, contentType, err := buildMIME(msg)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	var payload bytes.Buffer
	fmt.Fprintf(&payload, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&payload, "To: %s\r\n", msg.To)
	fmt.Fprintf(&payload, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&payload, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&payload, "Content-Type: %s\r\n", contentType)
	payload.WriteString("\r\n")
	payload.Write(body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	// smtp.SendMail has no context hook; honor cancellation by bailing
	// out before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, payload.Bytes()); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// buildMIME assembles the message body: plain text only, or a
// multipart/mixed envelope with the PDF attached base64-encoded.
func buildMIME(msg Message) ([]byte, string, error) {
	if len(msg.Attachment) == 0 {
		return []byte(msg.Body), `text/plain; charset="utf-8"`, nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", `text/plain; charset="utf-8"`)
	part, err := w.CreatePart(textHeader)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write([]byte(msg.Body)); err != nil {
		return nil, "", err
	}

	name := msg.AttachmentName
	if name == "" {
		name = "attachment.pdf"
	}
	attHeader := textproto.MIMEHeader{}
	attHeader.Set("Content-Type", "application/pdf")
	attHeader.Set("Content-Transfer-Encoding", "base64")
	attHeader.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))
	part, err = w.CreatePart(attHeader)
	if err != nil {
		return nil, "", err
	}
	enc := base64.NewEncoder(base64.StdEncoding, part)
	if _, err := enc.Write(msg.Attachment); err != nil {
		return nil, "", err
	}
	if err := enc.Close(); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf(`multipart/mixed; boundary=%q`, w.Boundary()), nil
}
