package mail

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"portfolio/internal/config"
)

// ErrBadHeader is returned when a header value contains a line break, which would
// let a caller inject extra headers.
var ErrBadHeader = errors.New("invalid header found")

// Message is a plaintext email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers a message exactly once. Implementations do not retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

var sendMail = smtp.SendMail

// SMTPMailer sends through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	addr string
	host string
	auth smtp.Auth
}

// NewSMTP builds a mailer from the mail configuration. Auth is skipped when no user is set.
func NewSMTP(cfg config.MailConfig) *SMTPMailer {
	m := &SMTPMailer{
		addr: cfg.Host + ":" + strconv.Itoa(cfg.Port),
		host: cfg.Host,
	}
	if cfg.User != "" {
		m.auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return m
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	raw, err := Compose(msg, time.Now())
	if err != nil {
		return err
	}
	if m.host == "" {
		return errors.New("mail transport not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := sendMail(m.addr, m.auth, msg.From, msg.To, raw); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Compose renders msg as RFC 5322 bytes. It fails with ErrBadHeader before producing
// any output if a header value contains CR or LF.
func Compose(msg Message, date time.Time) ([]byte, error) {
	headers := [][2]string{
		{"From", msg.From},
		{"To", strings.Join(msg.To, ", ")},
		{"Subject", msg.Subject},
	}
	if msg.ReplyTo != "" {
		headers = append(headers, [2]string{"Reply-To", msg.ReplyTo})
	}
	for _, h := range headers {
		if strings.ContainsAny(h[1], "\r\n") {
			return nil, fmt.Errorf("%w: %s", ErrBadHeader, h[0])
		}
	}

	var b strings.Builder
	for _, h := range headers {
		v := h[1]
		if h[0] == "Subject" {
			v = mime.QEncoding.Encode("utf-8", v)
		}
		b.WriteString(h[0] + ": " + v + "\r\n")
	}
	b.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(crlf(msg.Body))
	b.WriteString("\r\n")
	return []byte(b.String()), nil
}

// crlf rewrites CRLF, lone CR and lone LF line breaks as CRLF.
func crlf(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")
	return strings.ReplaceAll(body, "\n", "\r\n")
}
