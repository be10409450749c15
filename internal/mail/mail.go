// Package mail доставляет письма со ссылками для входа.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Sender — внешний почтовый транспорт.
type Sender interface {
	Send(ctx context.Context, subject, body, from string, to []string) error
}

// SMTPSender отправляет письма через SMTP-релей.
type SMTPSender struct {
	addr string
	host string
	auth smtp.Auth
}

// NewSMTPSender создаёт отправителя; пустой user означает релей без аутентификации.
func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	s := &SMTPSender{
		addr: host + ":" + strconv.Itoa(port),
		host: host,
	}
	if user != "" {
		s.auth = smtp.PlainAuth("", user, password, host)
	}
	return s
}

func (s *SMTPSender) Send(ctx context.Context, subject, body, from string, to []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(to) == 0 {
		return fmt.Errorf("mail: no recipients")
	}
	msg := BuildMessage(subject, body, from, to, time.Now())
	if err := smtp.SendMail(s.addr, s.auth, from, to, msg); err != nil {
		return fmt.Errorf("mail: send via %s: %w", s.addr, err)
	}
	return nil
}

// BuildMessage собирает text/plain письмо в формате RFC 5322.
func BuildMessage(subject, body, from string, to []string, date time.Time) []byte {
	var b bytes.Buffer
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return b.Bytes()
}

// LogSender пишет письмо в лог вместо отправки (режим разработки).
type LogSender struct {
	Logger *zap.SugaredLogger
}

func NewLogSender(logger *zap.SugaredLogger) *LogSender {
	return &LogSender{Logger: logger}
}

func (s *LogSender) Send(_ context.Context, subject, body, from string, to []string) error {
	s.Logger.Infow("Email not sent: no SMTP host configured",
		"from", from,
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
