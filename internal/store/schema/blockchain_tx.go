package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlockchainTx represents the blockchain_txs table - an append-only record of
// confirmed mint transactions. TxHash carries a partial unique index so a
// replayed completion is a no-op while hash-less reconciliation rows stay
// insertable.
type BlockchainTx struct {
	// AssetID is the asset the transaction minted
	AssetID uuid.UUID `gorm:"column:asset_id;primaryKey;type:uuid"`
	// CreationTime is the confirmation timestamp, part of the key so an asset
	// can carry multiple historical transactions
	CreationTime time.Time `gorm:"column:creation_time;primaryKey;type:timestamptz"`
	// TxHash is the on-chain transaction hash, empty for a reconciliation
	// record written without a locally observed submission
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex:idx_blockchain_txs_hash,where:tx_hash <> '';type:text"`
	// ContractAddress is the contract the mint was submitted to
	ContractAddress string `gorm:"column:contract_address;not null;type:text"`
	// Sender is the address the transaction was signed with
	Sender string `gorm:"column:sender;not null;default:'';type:text"`
	// Recipient is the address the token was minted to
	Recipient string `gorm:"column:recipient;not null;type:text"`
	// BlockNumber is the block the transaction was mined in
	BlockNumber uint64 `gorm:"column:block_number;not null;default:0"`
	// GasUsed is the gas consumed by the transaction
	GasUsed uint64 `gorm:"column:gas_used;not null;default:0"`
	// EffectiveGasPrice is the per-gas price actually paid, in the smallest
	// chain unit
	EffectiveGasPrice uint64 `gorm:"column:effective_gas_price;not null;default:0"`
	// Cost is GasUsed times EffectiveGasPrice
	Cost uint64 `gorm:"column:cost;not null;default:0"`
	// Currency names the unit Cost and EffectiveGasPrice are denominated in
	Currency string `gorm:"column:currency;not null;default:'wei';type:text"`
	// TxError records the failure reason for a submission that reached the
	// chain but did not succeed
	TxError *string `gorm:"column:tx_error;type:text"`
	// Raw is the full receipt payload as returned by the gateway
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
}

// TableName specifies the table name for the BlockchainTx model
func (BlockchainTx) TableName() string {
	return "blockchain_txs"
}
