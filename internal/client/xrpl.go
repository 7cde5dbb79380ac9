package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/Peersyst/xrpl-go/xrpl/queries/account"
	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/Peersyst/xrpl-go/xrpl/transaction/types"
	"github.com/Peersyst/xrpl-go/xrpl/wallet"
	"github.com/Peersyst/xrpl-go/xrpl/websocket"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
)

// TrustLine is one trust line of an account, as reported by account_lines.
// PeerAuthorized means the peer (the issuer, when querying the holder side)
// has authorized the line.
type TrustLine struct {
	Account        string `json:"account"`
	Currency       string `json:"currency"`
	Balance        string `json:"balance"`
	Limit          string `json:"limit"`
	Authorized     bool   `json:"authorized"`
	PeerAuthorized bool   `json:"peerAuthorized"`
	NoRipple       bool   `json:"noRipple"`
}

// Ledger is the XRPL surface consumed by the service: trust line queries and
// the single issuer-side authorization transaction.
type Ledger interface {
	// AccountLines returns all trust lines of the given account
	AccountLines(ctx context.Context, address string) ([]TrustLine, error)
	// AuthorizeTrustLine submits one signed TrustSet with the tfSetfAuth flag
	// from the issuer toward the holder and waits for validation.
	// Returns the transaction hash on success.
	AuthorizeTrustLine(ctx context.Context, issuerSeed, holder, currency string, sourceTag uint32) (string, error)
}

// SubmitError reports a transaction that was submitted but not validated
// successfully by the ledger.
type SubmitError struct {
	Result string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("transaction not validated: %s", e.Result)
}

// IsSubmitError checks if error is SubmitError
func IsSubmitError(err error) bool {
	_, ok := err.(*SubmitError)
	return ok
}

// XRPLClient is a client for working with the XRP Ledger over websocket
type XRPLClient struct {
	ws      *websocket.Client
	network model.NetworkInfo
}

// NewXRPLClient creates a new XRPL client for the given network
func NewXRPLClient(network model.NetworkInfo) *XRPLClient {
	ws := websocket.NewClient(
		websocket.NewClientConfig().WithHost(network.WebsocketURL),
	)
	return &XRPLClient{ws: ws, network: network}
}

// Connect opens the websocket connection
func (c *XRPLClient) Connect() error {
	if err := c.ws.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.network.WebsocketURL, err)
	}
	return nil
}

// Close tears down the websocket connection
func (c *XRPLClient) Close() {
	c.ws.Disconnect()
}

// AccountLines returns all trust lines of the given account
func (c *XRPLClient) AccountLines(_ context.Context, address string) ([]TrustLine, error) {
	res, err := c.ws.GetAccountLines(&account.LinesRequest{
		Account: types.Address(address),
	})
	if err != nil {
		return nil, fmt.Errorf("account_lines failed for %s: %w", address, err)
	}

	lines := make([]TrustLine, 0, len(res.Lines))
	for _, l := range res.Lines {
		lines = append(lines, TrustLine{
			Account:        string(l.Account),
			Currency:       l.Currency,
			Balance:        l.Balance,
			Limit:          l.Limit,
			Authorized:     l.Authorized,
			PeerAuthorized: l.PeerAuthorized,
			NoRipple:       l.NoRipple,
		})
	}
	return lines, nil
}

// AuthorizeTrustLine builds, signs and submits the issuer's TrustSet with the
// tfSetfAuth flag for the holder's line. One submission, no retries.
func (c *XRPLClient) AuthorizeTrustLine(_ context.Context, issuerSeed, holder, currency string, sourceTag uint32) (string, error) {
	w, err := wallet.FromSeed(issuerSeed, "")
	if err != nil {
		return "", fmt.Errorf("failed to derive issuer wallet: %w", err)
	}

	tx := &transaction.TrustSet{
		BaseTx: transaction.BaseTx{
			Account: types.Address(w.ClassicAddress),
		},
		// An authorizing TrustSet carries the holder as peer and a zero limit
		LimitAmount: types.IssuedCurrencyAmount{
			Currency: currency,
			Issuer:   types.Address(holder),
			Value:    "0",
		},
	}
	tx.SetSetAuthFlag()

	flatTx := tx.Flatten()
	if sourceTag != 0 {
		flatTx["SourceTag"] = sourceTag
	}

	if err := c.ws.Autofill(&flatTx); err != nil {
		return "", fmt.Errorf("failed to autofill transaction: %w", err)
	}

	blob, hash, err := w.Sign(flatTx)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	res, err := c.ws.SubmitTxBlobAndWait(blob, false)
	if err != nil {
		return "", fmt.Errorf("failed to submit transaction: %w", err)
	}
	if err := checkSubmitResult(engineResult(res.Meta), res.Validated); err != nil {
		return "", err
	}
	return hash, nil
}

// engineResult extracts the final TransactionResult code from transaction
// metadata
func engineResult(meta any) string {
	m, ok := meta.(map[string]any)
	if !ok {
		return ""
	}
	code, _ := m["TransactionResult"].(string)
	return code
}

// checkSubmitResult classifies the outcome of a submitted transaction.
// A validated transaction with a non-tes engine result (tec-class results are
// included in the ledger as failures) is an engine failure, not a transport
// failure.
func checkSubmitResult(result string, validated bool) error {
	if !validated {
		return &SubmitError{Result: "transaction was not validated"}
	}
	if result != "" && !strings.HasPrefix(result, "tes") {
		return &SubmitError{Result: result}
	}
	return nil
}
