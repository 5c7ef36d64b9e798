package registry

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veriframe/vf-pipeline/internal/adapter"
)

// confirmClaims is the signed content of a subscription confirmation token
type confirmClaims struct {
	UserID    string    `json:"user_id"`
	AssetID   uuid.UUID `json:"asset_id"`
	ExpiresAt int64     `json:"exp"`
	Signature string    `json:"sig"`
}

// ConfirmTokenIssuer mints and verifies the HMAC-signed tokens embedded in
// subscription confirmation links
type ConfirmTokenIssuer struct {
	secret string
	clock  adapter.Clock
}

// NewConfirmTokenIssuer creates a token issuer with the given shared secret
func NewConfirmTokenIssuer(secret string, clock adapter.Clock) *ConfirmTokenIssuer {
	return &ConfirmTokenIssuer{secret: secret, clock: clock}
}

// Issue creates a confirmation token for the (user, asset) pair
func (i *ConfirmTokenIssuer) Issue(userID string, assetID uuid.UUID, ttl time.Duration) (string, error) {
	claims := confirmClaims{
		UserID:    userID,
		AssetID:   assetID,
		ExpiresAt: i.clock.Now().Add(ttl).Unix(),
	}
	claims.Signature = i.sign(claims)

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Verify checks a confirmation token and returns the confirmed pair
func (i *ConfirmTokenIssuer) Verify(token string) (string, uuid.UUID, error) {
	payload, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("malformed token: %w", err)
	}

	var claims confirmClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", uuid.Nil, fmt.Errorf("malformed token: %w", err)
	}

	expected := i.sign(claims)
	if !hmac.Equal([]byte(expected), []byte(claims.Signature)) {
		return "", uuid.Nil, fmt.Errorf("invalid token signature")
	}
	if i.clock.Now().Unix() > claims.ExpiresAt {
		return "", uuid.Nil, fmt.Errorf("token expired")
	}

	return claims.UserID, claims.AssetID, nil
}

// sign computes the signature over {exp}.{user_id}.{asset_id}
func (i *ConfirmTokenIssuer) sign(claims confirmClaims) string {
	signaturePayload := fmt.Sprintf("%d.%s.%s", claims.ExpiresAt, claims.UserID, claims.AssetID)

	h := hmac.New(sha256.New, []byte(i.secret))
	h.Write([]byte(signaturePayload))
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}
