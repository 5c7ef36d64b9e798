package messaging

import "context"

// Ack controls what the consumer does with a message after handling
type Ack int

const (
	// AckDone removes the message from the stream
	AckDone Ack = iota
	// AckRetry redelivers the message after the ack wait elapses
	AckRetry
	// AckDrop terminates delivery without further retries
	AckDrop
)

// Handler processes one raw message body and decides its fate
type Handler func(ctx context.Context, data []byte) Ack

// Consumer defines the interface for durable subscriptions on the asset event stream
//
//go:generate mockgen -source=consumer.go -destination=../mocks/consumer.go -package=mocks -mock_names=Consumer=MockConsumer
type Consumer interface {
	// Consume binds a durable consumer to subject and processes messages with
	// handler until ctx is cancelled
	Consume(ctx context.Context, subject, durable string, handler Handler) error
	// Close closes the connection
	Close()
}
