package xrpl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/client"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/storage"
)

// loadWalletDoc reads and decodes the wallet document
func (s *Service) loadWalletDoc(ctx context.Context) (*model.WalletDocument, error) {
	data, err := s.store.Load(ctx, walletDocName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errNotInitialized()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet document: %w", err)
	}

	var doc model.WalletDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode wallet document: %w", err)
	}
	return &doc, nil
}

// WalletInfo returns the wallet document with secret material stripped.
// PrivateKey and Seed never cross this boundary.
func (s *Service) WalletInfo(ctx context.Context) (*model.WalletResponse, error) {
	doc, err := s.loadWalletDoc(ctx)
	if err != nil {
		return nil, err
	}
	return s.walletView(doc), nil
}

// InitWallets generates the fixed set of role wallets, funds them from the
// faucet when the network has one, and persists the wallet document.
// Fails with ALREADY_INITIALIZED when a non-empty document exists. The
// existence check and the write run inside the document's per-name lock, so
// concurrent initializations cannot overwrite each other's seeds.
func (s *Service) InitWallets(ctx context.Context) (*model.WalletResponse, error) {
	var doc *model.WalletDocument

	err := s.store.Update(ctx, walletDocName, func(current []byte) ([]byte, error) {
		if len(current) > 0 {
			return nil, errAlreadyInitialized()
		}

		doc = &model.WalletDocument{
			Version:   docVersion,
			Network:   s.network.ID,
			SourceTag: s.sourceTag,
		}
		for _, role := range model.Roles {
			keys, err := client.GenerateKeys()
			if err != nil {
				return nil, fmt.Errorf("failed to generate %s wallet: %w", role, err)
			}

			if s.faucet != nil && s.network.HasFaucet() {
				if err := s.faucet.Fund(ctx, keys.Address); err != nil {
					return nil, fmt.Errorf("failed to fund %s wallet: %w", role, err)
				}
				s.log.Info("funded wallet from faucet",
					zap.String("role", string(role)),
					zap.String("address", keys.Address))
			}

			doc.Wallets = append(doc.Wallets, model.WalletRecord{
				Role:       role,
				Address:    keys.Address,
				PublicKey:  keys.PublicKey,
				PrivateKey: keys.PrivateKey,
				Seed:       keys.Seed,
			})
		}
		return json.MarshalIndent(doc, "", "  ")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("wallet document created",
		zap.String("network", string(s.network.ID)),
		zap.Int("wallets", len(doc.Wallets)))
	return s.walletView(doc), nil
}

// walletView strips secret material and attaches an address QR code per wallet
func (s *Service) walletView(doc *model.WalletDocument) *model.WalletResponse {
	resp := &model.WalletResponse{
		Network:   doc.Network,
		SourceTag: doc.SourceTag,
		Wallets:   make([]model.WalletView, 0, len(doc.Wallets)),
		Config:    doc.Config,
	}
	for _, w := range doc.Wallets {
		qr, err := generateQRCode(w.Address)
		if err != nil {
			// QR is decorative; the address itself is still returned
			s.log.Warn("failed to generate QR code", zap.String("address", w.Address), zap.Error(err))
			qr = ""
		}
		resp.Wallets = append(resp.Wallets, model.WalletView{
			Role:      w.Role,
			Address:   w.Address,
			PublicKey: w.PublicKey,
			QR:        qr,
		})
	}
	return resp
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
