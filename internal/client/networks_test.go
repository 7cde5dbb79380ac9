package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
)

func TestNetworkByID(t *testing.T) {
	testnet, err := NetworkByID(model.NetworkTestnet)
	require.NoError(t, err)
	assert.True(t, testnet.HasFaucet())
	assert.NotEmpty(t, testnet.WebsocketURL)
	assert.NotEmpty(t, testnet.JSONRPCURL)

	mainnet, err := NetworkByID(model.NetworkMainnet)
	require.NoError(t, err)
	assert.False(t, mainnet.HasFaucet())

	_, err = NetworkByID("devnet")
	assert.Error(t, err)
}

func TestNetworksOrder(t *testing.T) {
	all := Networks()
	require.Len(t, all, 2)
	assert.Equal(t, model.NetworkTestnet, all[0].ID)
	assert.Equal(t, model.NetworkMainnet, all[1].ID)
}
