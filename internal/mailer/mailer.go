package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/veriframe/vf-pipeline/internal/adapter"
)

// PairEntry is one similar pair rendered into a digest
type PairEntry struct {
	WatchedAssetID uuid.UUID
	OriginURL      string
	SimilarURL     string
	OriginSecond   *float64
	SimilarSecond  *float64
}

// Digest is the aggregated content of one notification email
type Digest struct {
	Recipient string
	Pairs     []PairEntry
}

// Mailer renders and sends pipeline emails
//
//go:generate mockgen -source=mailer.go -destination=../mocks/mailer.go -package=mocks -mock_names=Mailer=MockMailer
type Mailer interface {
	// SendSimilarityDigest sends the aggregated similar-pair digest
	SendSimilarityDigest(ctx context.Context, digest *Digest) error
	// SendSubscriptionConfirmation sends the opt-in confirmation link
	SendSubscriptionConfirmation(ctx context.Context, recipient string, assetID uuid.UUID, confirmURL string) error
}

// Config holds sender identity configuration
type Config struct {
	From    string
	ReplyTo string
}

type mailer struct {
	cfg    Config
	sender adapter.SMTPSender
}

// NewMailer creates a mailer delivering through the given SMTP sender
func NewMailer(cfg Config, sender adapter.SMTPSender) Mailer {
	return &mailer{cfg: cfg, sender: sender}
}

// SendSimilarityDigest sends the aggregated similar-pair digest
func (m *mailer) SendSimilarityDigest(_ context.Context, digest *Digest) error {
	if len(digest.Pairs) == 0 {
		return nil
	}

	text, html, err := renderDigest(digest)
	if err != nil {
		return fmt.Errorf("failed to render digest: %w", err)
	}

	msg := m.newMessage(digest.Recipient, fmt.Sprintf("Similarity alerts for your assets (%d)", len(digest.Pairs)))
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}

// SendSubscriptionConfirmation sends the opt-in confirmation link
func (m *mailer) SendSubscriptionConfirmation(_ context.Context, recipient string, assetID uuid.UUID, confirmURL string) error {
	text, html, err := renderConfirmation(assetID, confirmURL)
	if err != nil {
		return fmt.Errorf("failed to render confirmation: %w", err)
	}

	msg := m.newMessage(recipient, "Confirm your similarity alert subscription")
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}
	return nil
}

func (m *mailer) newMessage(recipient, subject string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	if m.cfg.ReplyTo != "" {
		msg.SetHeader("Reply-To", m.cfg.ReplyTo)
	}
	return msg
}
