package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildMessage_HeadersAndCRLFBody(t *testing.T) {
	date := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := string(BuildMessage("Your login link for Superlists", "Use this link to log in:\n\nhttp://x/accounts/login?token=abc",
		"noreply@superlists", []string{"a@b.com", "c@d.com"}, date))

	assert.Contains(t, msg, "From: noreply@superlists\r\n")
	assert.Contains(t, msg, "To: a@b.com, c@d.com\r\n")
	assert.Contains(t, msg, "Subject: Your login link for Superlists\r\n")
	assert.Contains(t, msg, "Date: Tue, 02 Jan 2024 03:04:05 +0000\r\n")

	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	if assert.Len(t, parts, 2) {
		assert.Equal(t, "Use this link to log in:\r\n\r\nhttp://x/accounts/login?token=abc", parts[1])
	}
}

func TestSMTPSender_RejectsCancelledContextAndNoRecipients(t *testing.T) {
	s := NewSMTPSender("127.0.0.1", 1, "", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, "s", "b", "f@x", []string{"a@b.com"}), context.Canceled)

	assert.Error(t, s.Send(context.Background(), "s", "b", "f@x", nil))
}

func TestLogSender_WritesEntry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSender(zap.New(core).Sugar())

	err := s.Send(context.Background(), "subj", "body", "noreply@superlists", []string{"a@b.com"})
	assert.NoError(t, err)
	if assert.Equal(t, 1, logs.Len()) {
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "subj", fields["subject"])
		assert.Equal(t, "body", fields["body"])
	}
}
