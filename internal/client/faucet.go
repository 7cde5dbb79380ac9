package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FaucetClient client for the XRPL testnet faucet API
type FaucetClient struct {
	url    string
	client *http.Client
}

// NewFaucetClient creates a new faucet client for the given faucet URL
func NewFaucetClient(url string) *FaucetClient {
	return &FaucetClient{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// fundRequest request to the faucet API
type fundRequest struct {
	Destination string `json:"destination"`
}

// fundResponse response from the faucet API
type fundResponse struct {
	Amount  json.Number `json:"amount"`
	Account struct {
		Address string `json:"address"`
	} `json:"account"`
}

// Fund asks the faucet to fund the given address with test XRP
func (c *FaucetClient) Fund(ctx context.Context, address string) error {
	body, err := json.Marshal(fundRequest{Destination: address})
	if err != nil {
		return fmt.Errorf("failed to encode faucet request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build faucet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call faucet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fund %s: faucet status %d", address, resp.StatusCode)
	}

	var fundResp fundResponse
	if err := json.NewDecoder(resp.Body).Decode(&fundResp); err != nil {
		return fmt.Errorf("failed to decode faucet response: %w", err)
	}
	return nil
}
