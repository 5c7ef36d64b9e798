package adapter

import "gopkg.in/gomail.v2"

// SMTPSender defines an interface for sending mail to enable mocking
//
//go:generate mockgen -source=smtp.go -destination=../mocks/smtp.go -package=mocks -mock_names=SMTPSender=MockSMTPSender
type SMTPSender interface {
	Send(m ...*gomail.Message) error
}

// RealSMTPSender implements SMTPSender using a gomail dialer.
// A new connection is dialed per Send call; dispatch volume is low
// enough that connection reuse is not worth the bookkeeping.
type RealSMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender creates a new SMTP sender for the given relay
func NewSMTPSender(host string, port int, username, password string) SMTPSender {
	return &RealSMTPSender{dialer: gomail.NewDialer(host, port, username, password)}
}

func (s *RealSMTPSender) Send(m ...*gomail.Message) error {
	return s.dialer.DialAndSend(m...)
}
