// Package emailer delivers HTML reports through the local sendmail binary.
// Transport only: body construction and content are the caller's business.
package emailer

import (
	"fmt"
	"mime"
	"os/exec"
	"strings"
)

const defaultSendmail = "/usr/sbin/sendmail"

// Sender sends mail to a single recipient.
type Sender struct {
	Recipient string
	From      string // optional
	// Sendmail is the path of the sendmail binary; defaults to /usr/sbin/sendmail.
	Sendmail string
}

// New returns a Sender for the recipient.
func New(recipient string) *Sender {
	return &Sender{Recipient: recipient}
}

// SendHTML sends a multipart/alternative message with a plain-text fallback
// and the given HTML body.
func (s *Sender) SendHTML(subject, html string) error {
	sendmail := s.Sendmail
	if sendmail == "" {
		sendmail = defaultSendmail
	}

	msg := s.message(subject, html)

	cmd := exec.Command(sendmail, "-t", "-oi")
	cmd.Stdin = strings.NewReader(msg)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("sendmail failed: %w: %s", err, out)
	}
	return nil
}

// message builds the raw multipart/alternative MIME message.
func (s *Sender) message(subject, html string) string {
	const boundary = "=_kubera_report_alt"

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", s.Recipient)
	if s.From != "" {
		fmt.Fprintf(&b, "From: %s\r\n", s.From)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString("This email requires an HTML-capable email client.\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(html)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}
