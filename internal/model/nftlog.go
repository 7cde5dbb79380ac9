package model

import (
	"fmt"
	"time"
)

// NFTEventKind is the kind tag of an NFT log event
type NFTEventKind string

const (
	NFTEventMint           NFTEventKind = "mint"
	NFTEventBurn           NFTEventKind = "burn"
	NFTEventOfferCreated   NFTEventKind = "offer_created"
	NFTEventOfferAccepted  NFTEventKind = "offer_accepted"
	NFTEventOfferCancelled NFTEventKind = "offer_cancelled"
)

// Valid reports whether the kind is drawn from the fixed set
func (k NFTEventKind) Valid() bool {
	switch k {
	case NFTEventMint, NFTEventBurn, NFTEventOfferCreated, NFTEventOfferAccepted, NFTEventOfferCancelled:
		return true
	}
	return false
}

// NFTEvent is one entry in the NFT event log.
// Key is an opaque caller-supplied identifier; duplicates are not prevented.
type NFTEvent struct {
	Kind         NFTEventKind `json:"kind"`
	Key          string       `json:"key"`
	TokenID      string       `json:"tokenId,omitempty"`
	TxHash       string       `json:"txHash,omitempty"`
	URI          string       `json:"uri,omitempty"`
	Transferable *bool        `json:"transferable,omitempty"`
	OfferIndex   string       `json:"offerIndex,omitempty"`
	Amount       string       `json:"amount,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
}

// Validate validates the caller-supplied fields of an event
func (e *NFTEvent) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("kind must be one of mint, burn, offer_created, offer_accepted, offer_cancelled")
	}
	if e.Key == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}

// NFTLogDocument is the persisted NFT event log, ordered oldest first
type NFTLogDocument struct {
	Version int        `json:"version"`
	Events  []NFTEvent `json:"events"`
}
