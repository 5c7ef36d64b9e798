package messaging

import (
	"context"

	"github.com/veriframe/vf-pipeline/internal/domain"
)

// Subjects carried by the asset event stream
const (
	SubjectMintRequest  = "assets.mint.request"
	SubjectMintOK       = "assets.mint.ok"
	SubjectMintFailed   = "assets.mint.fails"
	SubjectSimilarFound = "assets.similar.found"
	SubjectHashRequest  = "assets.hash.request"
)

// Publisher defines the interface for publishing events to the asset event stream
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishMintRequest enqueues a mint request, either fresh or as a retry
	PublishMintRequest(ctx context.Context, req *domain.MintRequest) error
	// PublishMintOK announces a confirmed on-chain mint
	PublishMintOK(ctx context.Context, ok *domain.MintOK) error
	// PublishMintFailed announces a terminally failed mint
	PublishMintFailed(ctx context.Context, failed *domain.MintFailed) error
	// PublishHashRequest asks the hashing subsystem to process an asset
	PublishHashRequest(ctx context.Context, req *domain.HashRequest) error
	// Close closes the connection
	Close()
}
