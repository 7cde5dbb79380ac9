package model

// NetworkInfo is the static connection profile of one XRPL deployment.
// Reserves are stored in drops and rendered as XRP strings by handlers.
type NetworkInfo struct {
	ID                Network
	Name              string
	Description       string
	JSONRPCURL        string
	WebsocketURL      string
	FaucetURL         string
	BaseReserveDrops  uint64
	OwnerReserveDrops uint64
}

// HasFaucet reports whether the network offers faucet funding
func (n NetworkInfo) HasFaucet() bool {
	return n.FaucetURL != ""
}

// NetworkResponse represents one entry of GET /api/networks
type NetworkResponse struct {
	ID              Network `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	JSONRPCURL      string  `json:"jsonRpcUrl"`
	WebsocketURL    string  `json:"websocketUrl"`
	Faucet          bool    `json:"faucet"`
	BaseReserveXRP  string  `json:"baseReserveXrp"`
	OwnerReserveXRP string  `json:"ownerReserveXrp"`
}
