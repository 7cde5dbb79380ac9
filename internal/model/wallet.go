package model

// Network identifies one of the two supported XRPL deployments
type Network string

const (
	NetworkTestnet Network = "testnet"
	NetworkMainnet Network = "mainnet"
)

// Valid reports whether the network identifier is one of the supported values
func (n Network) Valid() bool {
	return n == NetworkTestnet || n == NetworkMainnet
}

// WalletRole is the role tag of a wallet record
type WalletRole string

const (
	RoleIssuer   WalletRole = "issuer"
	RoleHot      WalletRole = "hot"
	RoleCustomer WalletRole = "customer"
)

// Roles is the fixed ordered set of wallet roles created at initialization
var Roles = []WalletRole{RoleIssuer, RoleHot, RoleCustomer}

// Valid reports whether the role is drawn from the fixed set
func (r WalletRole) Valid() bool {
	switch r {
	case RoleIssuer, RoleHot, RoleCustomer:
		return true
	}
	return false
}

// WalletRecord is one wallet entry in the wallet document.
// PrivateKey and Seed are persisted but must never leave the API boundary.
type WalletRecord struct {
	Role       WalletRole `json:"role"`
	Address    string     `json:"address"`
	PublicKey  string     `json:"publicKey"`
	PrivateKey string     `json:"privateKey,omitempty"`
	Seed       string     `json:"seed,omitempty"`
}

// IssuerFlags are the issuer account settings recorded in the configuration
type IssuerFlags struct {
	DefaultRipple bool   `json:"defaultRipple"`
	RequireAuth   bool   `json:"requireAuth"`
	DisallowXRP   bool   `json:"disallowXRP"`
	ConfiguredAt  string `json:"configuredAt,omitempty"`
}

// TrustLineResult is the per-wallet outcome of trust-line creation
type TrustLineResult struct {
	Role    WalletRole `json:"role"`
	Address string     `json:"address"`
	OK      bool       `json:"ok"`
	TxHash  string     `json:"txHash,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// TrustLineSetup describes the issued currency and its creation results
type TrustLineSetup struct {
	Currency string            `json:"currency"`
	Limit    string            `json:"limit"`
	Results  []TrustLineResult `json:"results,omitempty"`
}

// WalletConfig is the configuration sub-document of the wallet document
type WalletConfig struct {
	Issuer    IssuerFlags    `json:"issuer"`
	TrustLine TrustLineSetup `json:"trustline"`
}

// WalletDocument is the persisted wallet document.
// Version is written for forward compatibility; readers assume the current shape.
type WalletDocument struct {
	Version   int            `json:"version"`
	Network   Network        `json:"network"`
	SourceTag uint32         `json:"sourceTag"`
	Wallets   []WalletRecord `json:"wallets"`
	Config    *WalletConfig  `json:"config,omitempty"`
}

// WalletByRole returns the first wallet record with the given role, or nil
func (d *WalletDocument) WalletByRole(role WalletRole) *WalletRecord {
	for i := range d.Wallets {
		if d.Wallets[i].Role == role {
			return &d.Wallets[i]
		}
	}
	return nil
}

// WalletView is a wallet record with secret material stripped
type WalletView struct {
	Role      WalletRole `json:"role"`
	Address   string     `json:"address"`
	PublicKey string     `json:"publicKey"`
	QR        string     `json:"qr,omitempty"`
}

// WalletResponse represents response for GET /api/wallet
type WalletResponse struct {
	Network   Network       `json:"network"`
	SourceTag uint32        `json:"sourceTag"`
	Wallets   []WalletView  `json:"wallets"`
	Config    *WalletConfig `json:"config,omitempty"`
}
