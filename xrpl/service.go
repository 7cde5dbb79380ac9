// Package xrpl implements the wallet-management operations exposed by the
// HTTP API: wallet initialization and metadata, the issuer configuration
// blob, the NFT event log, and issuer trust-line authorization.
package xrpl

import (
	"context"

	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/client"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/storage"
)

// Document names in the storage backend
const (
	walletDocName = "wallet.json"
	nftLogDocName = "nft-log.json"
)

// docVersion is written into new documents; readers assume the current shape
const docVersion = 1

// Funder funds a freshly generated address with test XRP
type Funder interface {
	Fund(ctx context.Context, address string) error
}

// Service performs the wallet-management operations against an injected
// storage backend and ledger client. It holds no mutable state of its own.
type Service struct {
	store     storage.Store
	ledger    client.Ledger
	faucet    Funder
	network   model.NetworkInfo
	sourceTag uint32
	log       *zap.Logger
}

// NewService creates a Service. faucet may be nil when the selected network
// has no faucet.
func NewService(store storage.Store, ledger client.Ledger, faucet Funder, network model.NetworkInfo, sourceTag uint32, log *zap.Logger) *Service {
	return &Service{
		store:     store,
		ledger:    ledger,
		faucet:    faucet,
		network:   network,
		sourceTag: sourceTag,
		log:       log,
	}
}
