package xrpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/storage"
)

// NFTEvents returns the full event log, oldest first
func (s *Service) NFTEvents(ctx context.Context) ([]model.NFTEvent, error) {
	data, err := s.store.Load(ctx, nftLogDocName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errNotInitialized()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load NFT log: %w", err)
	}

	var doc model.NFTLogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode NFT log: %w", err)
	}
	return doc.Events, nil
}

// AppendNFTEvent appends one event to the log under the document's per-name
// lock. The timestamp is stamped server-side; duplicate keys are allowed.
// Returns created=true when the append created the log document.
func (s *Service) AppendNFTEvent(ctx context.Context, ev model.NFTEvent) (model.NFTEvent, bool, error) {
	if err := ev.Validate(); err != nil {
		return model.NFTEvent{}, false, errInvalidRequest(err.Error())
	}
	ev.Timestamp = time.Now().UTC()

	var created bool
	err := s.store.Update(ctx, nftLogDocName, func(current []byte) ([]byte, error) {
		var doc model.NFTLogDocument
		if current == nil {
			doc.Version = docVersion
			created = true
		} else if err := json.Unmarshal(current, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode NFT log: %w", err)
		}
		doc.Events = append(doc.Events, ev)
		return json.MarshalIndent(&doc, "", "  ")
	})
	if err != nil {
		return model.NFTEvent{}, false, err
	}

	s.log.Info("NFT event appended",
		zap.String("kind", string(ev.Kind)),
		zap.String("key", ev.Key))
	return ev, created, nil
}
