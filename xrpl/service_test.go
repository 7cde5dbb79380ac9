package xrpl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/client"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/storage"
)

const (
	testIssuerAddr   = "rP9jPyP5kyvFRb6ZiRghAGw5u8SGAmU4bd"
	testHolderAddr   = "rDNvpqSzJzk8Qx2vjZVi1zEYFW9sVhQbMy"
	testSourceTag    = uint32(845921)
	testCurrencyCode = "USD"
)

func newTestService(t *testing.T, ledger client.Ledger) (*Service, storage.Store) {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	network, err := client.NetworkByID(model.NetworkTestnet)
	require.NoError(t, err)

	svc := NewService(store, ledger, nil, network, testSourceTag, zap.NewNop())
	return svc, store
}

// seedWalletDoc persists a wallet document with the three role wallets
func seedWalletDoc(t *testing.T, store storage.Store, cfg *model.WalletConfig) *model.WalletDocument {
	t.Helper()

	doc := &model.WalletDocument{
		Version:   docVersion,
		Network:   model.NetworkTestnet,
		SourceTag: testSourceTag,
		Wallets: []model.WalletRecord{
			{Role: model.RoleIssuer, Address: testIssuerAddr, PublicKey: "EDISSUERPUB", PrivateKey: "EDISSUERPRIV", Seed: "sEdIssuerSeed"},
			{Role: model.RoleHot, Address: "rHotWalletAddr1111111111111111111", PublicKey: "EDHOTPUB", PrivateKey: "EDHOTPRIV", Seed: "sEdHotSeed"},
			{Role: model.RoleCustomer, Address: testHolderAddr, PublicKey: "EDCUSTPUB", PrivateKey: "EDCUSTPRIV", Seed: "sEdCustSeed"},
		},
		Config: cfg,
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), walletDocName, data))
	return doc
}
