package client

import (
	"fmt"

	"github.com/Peersyst/xrpl-go/pkg/crypto"
	"github.com/Peersyst/xrpl-go/xrpl/wallet"
)

// Keys is freshly generated wallet key material
type Keys struct {
	Address    string
	PublicKey  string
	PrivateKey string
	Seed       string
}

// GenerateKeys generates a new ed25519 XRPL keypair locally (no network call)
func GenerateKeys() (Keys, error) {
	w, err := wallet.New(crypto.ED25519())
	if err != nil {
		return Keys{}, fmt.Errorf("failed to generate wallet: %w", err)
	}
	return Keys{
		Address:    string(w.ClassicAddress),
		PublicKey:  w.PublicKey,
		PrivateKey: w.PrivateKey,
		Seed:       w.Seed,
	}, nil
}
