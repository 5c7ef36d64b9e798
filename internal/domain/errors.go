package domain

import "errors"

var (
	// ErrAssetNotFound is returned when an asset id resolves to no stored record
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetAlreadyExists is returned when a user re-registers a source url
	ErrAssetAlreadyExists = errors.New("asset already exists")

	// ErrAssetTaken is returned when another worker already owns the mint of an asset
	ErrAssetTaken = errors.New("asset mint already in progress")

	// ErrAlreadyMinted is returned when the chain reports the token already exists
	ErrAlreadyMinted = errors.New("token is already in use")

	// ErrHashIncomplete is returned when minting is requested before the
	// hashing pipeline finished for the asset
	ErrHashIncomplete = errors.New("asset hashing not completed")

	// ErrMissingFileHash is returned when an asset has no stored file hash
	ErrMissingFileHash = errors.New("asset file hash missing")

	// ErrSubscriptionNotFound is returned when no subscription matches a user/asset pair
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrUserNotFound is returned when a user id resolves to no stored record
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPayload is returned when a queue message fails structural validation
	ErrInvalidPayload = errors.New("invalid message payload")

	// ErrRetriesExhausted is returned when a mint request runs out of delivery attempts
	ErrRetriesExhausted = errors.New("mint retries exhausted")
)

// MintFailure classifies a failed mint attempt so callers can decide
// between retrying and terminating the request.
type MintFailure struct {
	Reason    string
	Transient bool
	Err       error
}

func (e *MintFailure) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *MintFailure) Unwrap() error {
	return e.Err
}

// TransientMintFailure wraps err as a retryable mint failure
func TransientMintFailure(reason string, err error) *MintFailure {
	return &MintFailure{Reason: reason, Transient: true, Err: err}
}

// PermanentMintFailure wraps err as a non-retryable mint failure
func PermanentMintFailure(reason string, err error) *MintFailure {
	return &MintFailure{Reason: reason, Transient: false, Err: err}
}
