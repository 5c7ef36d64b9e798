package schema

import "time"

// KeyPair represents the key_pairs table - one sealed signing key per user.
// The private key is stored encrypted under the keystore master key and is
// never returned by the API surface.
type KeyPair struct {
	// UserID is the owner of the key pair
	UserID string `gorm:"column:user_id;primaryKey;type:text"`
	// Address is the derived public address
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// SealedPrivateKey is the encrypted private key, base64 encoded
	SealedPrivateKey string `gorm:"column:sealed_private_key;not null;type:text"`
	// CreatedAt is the timestamp when the key pair was generated
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the KeyPair model
func (KeyPair) TableName() string {
	return "key_pairs"
}
