package xrpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/common"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/storage"
)

// Config returns the configuration sub-document of the wallet document.
// Both a missing wallet document and a wallet document without configuration
// report NOT_INITIALIZED.
func (s *Service) Config(ctx context.Context) (*model.WalletConfig, error) {
	doc, err := s.loadWalletDoc(ctx)
	if err != nil {
		return nil, err
	}
	if doc.Config == nil {
		return nil, errNotInitialized()
	}
	return doc.Config, nil
}

// SetConfig validates and writes the configuration sub-document under the
// wallet document's per-name lock, stamping configuredAt. Returns the stored
// configuration and created=true when no configuration existed before.
func (s *Service) SetConfig(ctx context.Context, cfg model.WalletConfig) (*model.WalletConfig, bool, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, false, err
	}
	cfg.Issuer.ConfiguredAt = time.Now().UTC().Format(time.RFC3339)

	var created bool
	err := s.store.Update(ctx, walletDocName, func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, errNotInitialized()
		}
		var doc model.WalletDocument
		if err := json.Unmarshal(current, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode wallet document: %w", err)
		}
		created = doc.Config == nil
		doc.Config = &cfg
		return json.MarshalIndent(&doc, "", "  ")
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, errNotInitialized()
		}
		return nil, false, err
	}
	return &cfg, created, nil
}

// validateCurrency checks the XRPL currency code form: a three-character
// code or a 40-character hex code
func validateCurrency(code string) error {
	if len(code) == 3 {
		return nil
	}
	if len(code) == 40 && isHex(code) {
		return nil
	}
	return errInvalidRequest("currency must be a 3-character or 40-character hex code")
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'f',
			r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func validateConfig(cfg *model.WalletConfig) error {
	if err := validateCurrency(cfg.TrustLine.Currency); err != nil {
		return err
	}
	if err := common.ValidateIssuedAmount(cfg.TrustLine.Limit); err != nil {
		return errInvalidRequest(fmt.Sprintf("invalid trust line limit: %v", err))
	}
	for _, r := range cfg.TrustLine.Results {
		if !r.Role.Valid() {
			return errInvalidRequest(fmt.Sprintf("unknown wallet role %q", r.Role))
		}
	}
	return nil
}
