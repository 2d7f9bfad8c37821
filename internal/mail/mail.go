// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mail submits the rendered digest over SMTP. Delivery is
// best-effort from the pipeline's point of view; the only hard rule is that
// an empty digest is never sent, which the caller enforces.
package mail

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Recipients splits a comma-separated recipient list, trimming whitespace
// and dropping blanks.
func Recipients(raw string) []string {
	var out []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// Send submits a plain-text message through the configured SMTP server.
// smtp.SendMail negotiates STARTTLS on the submission port before
// authenticating.
func Send(cfg types.MailConfig, subject, body string) error {
	recipients := Recipients(cfg.Recipients)
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	msg := buildMessage(cfg.From, recipients, subject, body)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.From, cfg.Password, cfg.Host)

	if err := smtp.SendMail(addr, auth, cfg.From, recipients, msg); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}

// buildMessage assembles RFC 5322 headers and the UTF-8 body. The subject is
// Q-encoded since digest subjects carry non-ASCII dashes.
func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
