package schema

import "time"

// User represents the users table - notification recipients
type User struct {
	// UserID is the external user identifier
	UserID string `gorm:"column:user_id;primaryKey;type:text"`
	// Email is the notification address
	Email string `gorm:"column:email;not null;type:text;index:idx_users_email"`
	// WalletAddress is the user's self-custodied address, if linked
	WalletAddress *string `gorm:"column:wallet_address;type:text"`
	// CreatedAt is the timestamp the user was first recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
