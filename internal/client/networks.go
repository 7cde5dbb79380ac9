package client

import (
	"fmt"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
)

// networks is the static connection table for the two supported XRPL
// deployments. It is constant lookup data and is never mutated at runtime.
var networks = map[model.Network]model.NetworkInfo{
	model.NetworkTestnet: {
		ID:                model.NetworkTestnet,
		Name:              "XRPL Testnet",
		Description:       "Altnet test deployment with faucet funding and resettable state",
		JSONRPCURL:        "https://s.altnet.rippletest.net:51234",
		WebsocketURL:      "wss://s.altnet.rippletest.net:51233",
		FaucetURL:         "https://faucet.altnet.rippletest.net/accounts",
		BaseReserveDrops:  1000000,
		OwnerReserveDrops: 200000,
	},
	model.NetworkMainnet: {
		ID:                model.NetworkMainnet,
		Name:              "XRPL Mainnet",
		Description:       "Production XRP Ledger deployment",
		JSONRPCURL:        "https://xrplcluster.com",
		WebsocketURL:      "wss://xrplcluster.com",
		BaseReserveDrops:  1000000,
		OwnerReserveDrops: 200000,
	},
}

// NetworkByID returns the connection profile for a network identifier
func NetworkByID(id model.Network) (model.NetworkInfo, error) {
	n, ok := networks[id]
	if !ok {
		return model.NetworkInfo{}, fmt.Errorf("unknown network %q", id)
	}
	return n, nil
}

// Networks returns the connection profiles of all supported networks,
// testnet first.
func Networks() []model.NetworkInfo {
	return []model.NetworkInfo{
		networks[model.NetworkTestnet],
		networks[model.NetworkMainnet],
	}
}
