package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
)

const registryABI = `[
	{"inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"hashFile","type":"string"},{"name":"price","type":"uint256"}],"name":"mint","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const receiptPollInterval = 3 * time.Second

// MintParams carries everything needed to submit one mint transaction
type MintParams struct {
	Key       *ecdsa.PrivateKey
	Recipient common.Address
	AssetID   uuid.UUID
	HashFile  string
	Price     uint64
}

// MintResult is the confirmed outcome of a mint submission
type MintResult struct {
	TxHash            string
	Sender            string
	Recipient         string
	Contract          string
	BlockNumber       uint64
	GasUsed           uint64
	EffectiveGasPrice uint64
}

// Gateway submits mint transactions and answers ownership queries against
// the asset registry contract
//
//go:generate mockgen -source=gateway.go -destination=../../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// Mint submits a mint transaction and waits for confirmation.
	// Returns domain.ErrAlreadyMinted when the token id is already taken.
	Mint(ctx context.Context, params MintParams) (*MintResult, error)

	// TokenOwner returns the current owner of the token minted for assetID,
	// nil when the token does not exist on chain
	TokenOwner(ctx context.Context, assetID uuid.UUID) (*string, error)

	// Close closes the underlying connection
	Close()
}

// GatewayConfig holds the chain parameters for the gateway
type GatewayConfig struct {
	ChainID         int64
	ContractAddress string
	Confirmations   uint64
	ConfirmTimeout  time.Duration
	GasLimit        uint64
}

type gateway struct {
	cfg      GatewayConfig
	client   adapter.EthClient
	clock    adapter.Clock
	contract common.Address
	abi      abi.ABI
}

// NewGateway creates a gateway bound to the registry contract
func NewGateway(cfg GatewayConfig, client adapter.EthClient, clock adapter.Clock) (Gateway, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry ABI: %w", err)
	}

	return &gateway{
		cfg:      cfg,
		client:   client,
		clock:    clock,
		contract: common.HexToAddress(cfg.ContractAddress),
		abi:      parsed,
	}, nil
}

// TokenID derives the on-chain token id from the asset id. The uuid's 16
// bytes are interpreted as a big-endian integer, so the mapping is stable
// across services without any shared counter.
func TokenID(assetID uuid.UUID) *big.Int {
	return new(big.Int).SetBytes(assetID[:])
}

// Mint submits a mint transaction and waits for confirmation
func (g *gateway) Mint(ctx context.Context, params MintParams) (*MintResult, error) {
	tokenID := TokenID(params.AssetID)

	input, err := g.abi.Pack("mint", params.Recipient, tokenID, params.HashFile, new(big.Int).SetUint64(params.Price))
	if err != nil {
		return nil, fmt.Errorf("failed to pack mint call: %w", err)
	}

	from := crypto.PubkeyToAddress(params.Key.PublicKey)

	// A dry-run call surfaces reverts before gas is spent. The registry
	// reverts with a stable message when the token id is taken.
	if _, err := g.client.CallContract(ctx, ethereum.CallMsg{
		From: from,
		To:   &g.contract,
		Data: input,
	}, nil); err != nil {
		if isAlreadyMinted(err) {
			return nil, domain.ErrAlreadyMinted
		}
		return nil, fmt.Errorf("mint call reverted: %w", err)
	}

	nonce, err := g.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit := g.cfg.GasLimit
	if gasLimit == 0 {
		gasLimit, err = g.client.EstimateGas(ctx, ethereum.CallMsg{
			From: from,
			To:   &g.contract,
			Data: input,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &g.contract,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     input,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(g.cfg.ChainID)), params.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := g.client.SendTransaction(ctx, signedTx); err != nil {
		if isAlreadyMinted(err) {
			return nil, domain.ErrAlreadyMinted
		}
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.InfoCtx(ctx, "Mint transaction submitted",
		zap.String("tx_hash", signedTx.Hash().Hex()),
		zap.String("asset_id", params.AssetID.String()),
		zap.String("recipient", params.Recipient.Hex()))

	receipt, err := g.waitForReceipt(ctx, signedTx.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("mint transaction reverted: %s", signedTx.Hash().Hex())
	}

	gasPriceUsed := gasPrice.Uint64()
	if receipt.EffectiveGasPrice != nil {
		gasPriceUsed = receipt.EffectiveGasPrice.Uint64()
	}

	return &MintResult{
		TxHash:            signedTx.Hash().Hex(),
		Sender:            from.Hex(),
		Recipient:         params.Recipient.Hex(),
		Contract:          g.contract.Hex(),
		BlockNumber:       receipt.BlockNumber.Uint64(),
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: gasPriceUsed,
	}, nil
}

// waitForReceipt polls until the transaction is mined and buried under the
// configured number of confirmations
func (g *gateway) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	deadline := g.clock.Now().Add(g.cfg.ConfirmTimeout)

	for {
		receipt, err := g.client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			confirmed, err := g.isConfirmed(ctx, receipt)
			if err != nil {
				return nil, err
			}
			if confirmed {
				return receipt, nil
			}
		} else if err != nil && !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get receipt: %w", err)
		}

		if g.clock.Now().After(deadline) {
			return nil, fmt.Errorf("transaction not confirmed within %s: %s", g.cfg.ConfirmTimeout, txHash.Hex())
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-g.clock.After(receiptPollInterval):
		}
	}
}

func (g *gateway) isConfirmed(ctx context.Context, receipt *types.Receipt) (bool, error) {
	if g.cfg.Confirmations <= 1 {
		return true, nil
	}

	head, err := g.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to get head: %w", err)
	}

	depth := new(big.Int).Sub(head.Number, receipt.BlockNumber)
	return depth.Uint64()+1 >= g.cfg.Confirmations, nil
}

// TokenOwner returns the current owner of the token minted for assetID
func (g *gateway) TokenOwner(ctx context.Context, assetID uuid.UUID) (*string, error) {
	input, err := g.abi.Pack("ownerOf", TokenID(assetID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack ownerOf call: %w", err)
	}

	result, err := g.client.CallContract(ctx, ethereum.CallMsg{
		To:   &g.contract,
		Data: input,
	}, nil)
	if err != nil {
		// ERC721 ownerOf reverts for nonexistent tokens; anything else is a
		// transport failure the caller must not mistake for absence
		if isNonexistentToken(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query token owner: %w", err)
	}

	outputs, err := g.abi.Unpack("ownerOf", result)
	if err != nil || len(outputs) == 0 {
		return nil, fmt.Errorf("failed to unpack ownerOf result: %w", err)
	}

	owner, ok := outputs[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected ownerOf output type")
	}
	if owner == (common.Address{}) {
		return nil, nil
	}

	hex := owner.Hex()
	return &hex, nil
}

// isNonexistentToken matches the ownerOf revert for an unminted token id
func isNonexistentToken(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "execution reverted") ||
		strings.Contains(msg, "nonexistent token")
}

// isAlreadyMinted matches the registry's duplicate-token revert reasons
func isAlreadyMinted(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "token is already in use") ||
		strings.Contains(msg, "already minted") ||
		strings.Contains(msg, "token already minted")
}

// Close closes the underlying connection
func (g *gateway) Close() {
	g.client.Close()
}
