package ethereum

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// Keystore hands out one signing key per user. Keys are generated lazily and
// stored sealed under the master key, so a user keeps the same address across
// mints and workers.
//
//go:generate mockgen -source=keystore.go -destination=../../mocks/keystore.go -package=mocks -mock_names=Keystore=MockKeystore
type Keystore interface {
	// GetOrCreate returns the user's signing key, generating one on first use
	GetOrCreate(ctx context.Context, userID string) (*ecdsa.PrivateKey, common.Address, error)
}

type keystore struct {
	store  store.Store
	base64 adapter.Base64
	master cipher.AEAD
}

// NewKeystore creates a keystore sealing keys under the hex-encoded 32-byte
// master key
func NewKeystore(masterKeyHex string, s store.Store, b64 adapter.Base64) (Keystore, error) {
	key, err := hex.DecodeString(masterKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid master key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("master key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to init GCM: %w", err)
	}

	return &keystore{store: s, base64: b64, master: aead}, nil
}

// GetOrCreate returns the user's signing key, generating one on first use.
// Concurrent first calls for the same user are safe: the store keeps the
// first stored row and every caller unseals that row.
func (k *keystore) GetOrCreate(ctx context.Context, userID string) (*ecdsa.PrivateKey, common.Address, error) {
	existing, err := k.store.GetKeyPair(ctx, userID)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to load key pair: %w", err)
	}
	if existing != nil {
		return k.unseal(existing)
	}

	generated, err := crypto.GenerateKey()
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to generate key: %w", err)
	}

	sealed, err := k.seal(crypto.FromECDSA(generated))
	if err != nil {
		return nil, common.Address{}, err
	}

	stored, err := k.store.CreateKeyPair(ctx, &schema.KeyPair{
		UserID:           userID,
		Address:          crypto.PubkeyToAddress(generated.PublicKey).Hex(),
		SealedPrivateKey: sealed,
		CreatedAt:        time.Now(),
	})
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to store key pair: %w", err)
	}

	return k.unseal(stored)
}

func (k *keystore) seal(plaintext []byte) (string, error) {
	nonce := make([]byte, k.master.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := k.master.Seal(nonce, nonce, plaintext, nil)
	return k.base64.Encode(sealed), nil
}

func (k *keystore) unseal(kp *schema.KeyPair) (*ecdsa.PrivateKey, common.Address, error) {
	sealed, err := k.base64.Decode(kp.SealedPrivateKey)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to decode sealed key: %w", err)
	}

	nonceSize := k.master.NonceSize()
	if len(sealed) < nonceSize {
		return nil, common.Address{}, fmt.Errorf("sealed key too short")
	}

	plaintext, err := k.master.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to unseal key: %w", err)
	}

	key, err := crypto.ToECDSA(plaintext)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to parse key: %w", err)
	}

	return key, crypto.PubkeyToAddress(key.PublicKey), nil
}
